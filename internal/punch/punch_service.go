package punch

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Netosantos999/controle-ponto-app/internal/events"
	"github.com/Netosantos999/controle-ponto-app/internal/messaging/kafka"
	puncherrors "github.com/Netosantos999/controle-ponto-app/internal/punch/errors"
	"github.com/Netosantos999/controle-ponto-app/internal/shared/contextutil"
	"github.com/Netosantos999/controle-ponto-app/internal/timesheet"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// duplicateWindow rejects a second punch from the same employee inside
// this interval. Badge readers double-fire on a slow swipe.
const duplicateWindow = 60 * time.Second

const (
	lunchOutTime = "12:00"
	lunchInTime  = "13:00"

	dayEndTime    = "17:00"
	fridayEndTime = "16:00"

	nightWatchStart = "18:00"
	nightWatchEnd   = "06:00"
	dayWatchStart   = "06:00"
	dayWatchEnd     = "18:00"
)

//go:generate mockgen -source=punch_service.go -destination=mock/punch_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, req RecordPunchRequest) (PunchResponse, error)
	RecordStandardDay(ctx context.Context, req StandardDayRequest) ([]PunchResponse, error)
	RecordNightWatch(ctx context.Context, req WatchShiftRequest) ([]PunchResponse, error)
	RecordDayWatch(ctx context.Context, req WatchShiftRequest) ([]PunchResponse, error)
	ListByEmployee(ctx context.Context, employeeID, fromDate, toDate string) ([]PunchResponse, error)
	Update(ctx context.Context, id string, req UpdatePunchRequest) (PunchResponse, error)
	Delete(ctx context.Context, id string) error

	// EventsByEmployee converts the stored rows of one employee into
	// engine events. Rows that no longer parse are skipped with a
	// warning instead of failing the whole computation.
	EventsByEmployee(ctx context.Context, employeeID, fromDate, toDate string) ([]timesheet.Event, error)

	// EventsInRange does the same for every employee, tagging each
	// event with the employee name for roster matching.
	EventsInRange(ctx context.Context, fromDate, toDate string) ([]timesheet.Event, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("punch.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("punch.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		logger: l,
	}
}

func validatePunchInput(employeeID, action, date, clock string) (timesheet.Action, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return "", puncherrors.ErrInvalidPunchID
	}
	act, err := timesheet.ParseAction(action)
	if err != nil {
		return "", puncherrors.ErrInvalidAction
	}
	if _, err := time.Parse(timesheet.DateLayout, date); err != nil {
		return "", puncherrors.ErrInvalidPunchDate
	}
	if _, err := time.Parse(timesheet.TimeLayout, clock); err != nil {
		return "", puncherrors.ErrInvalidPunchTime
	}
	return act, nil
}

func (s *service) Record(ctx context.Context, req RecordPunchRequest) (PunchResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	act, err := validatePunchInput(req.EmployeeID, req.Action, req.Date, req.Time)
	if err != nil {
		s.logger.Warn("record punch rejected",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.String("action", req.Action),
		)
		return PunchResponse{}, err
	}

	if err := s.checkDuplicate(ctx, req.EmployeeID, req.Date, req.Time); err != nil {
		return PunchResponse{}, err
	}

	row := &Punch{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(req.EmployeeID),
		Action:     string(act),
		PunchDate:  req.Date,
		PunchTime:  req.Time,
	}

	if err := s.persistWithOutbox(ctx, rid, []*Punch{row}); err != nil {
		s.logger.Error("record punch persist failed", zap.String("request_id", rid), zap.Error(err))
		return PunchResponse{}, mapRepositoryError(err)
	}

	s.bumpRevision(ctx, req.EmployeeID)
	s.logger.Info("punch recorded",
		zap.String("request_id", rid),
		zap.String("punch_id", row.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("action", string(act)),
	)
	return mapToResponse(*row), nil
}

func (s *service) RecordStandardDay(ctx context.Context, req StandardDayRequest) ([]PunchResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := validatePunchInput(req.EmployeeID, string(timesheet.ActionStart), req.Date, req.StartTime); err != nil {
		return nil, err
	}

	day, _ := time.Parse(timesheet.DateLayout, req.Date)
	end := dayEndTime
	if day.Weekday() == time.Friday {
		end = fridayEndTime
	}

	rows := buildPunchSet(req.EmployeeID, [][2]string{
		{string(timesheet.ActionStart), req.StartTime},
		{string(timesheet.ActionPause), lunchOutTime},
		{string(timesheet.ActionResume), lunchInTime},
		{string(timesheet.ActionEnd), end},
	}, req.Date)

	if err := s.persistWithOutbox(ctx, rid, rows); err != nil {
		s.logger.Error("record standard day failed", zap.String("request_id", rid), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	s.bumpRevision(ctx, req.EmployeeID)
	s.logger.Info("standard day recorded",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
	)
	return mapToListResponse(rows), nil
}

func (s *service) RecordNightWatch(ctx context.Context, req WatchShiftRequest) ([]PunchResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := validatePunchInput(req.EmployeeID, string(timesheet.ActionStart), req.Date, nightWatchStart); err != nil {
		return nil, err
	}

	day, _ := time.Parse(timesheet.DateLayout, req.Date)
	nextDay := day.AddDate(0, 0, 1).Format(timesheet.DateLayout)

	rows := []*Punch{
		newPunch(req.EmployeeID, string(timesheet.ActionStart), req.Date, nightWatchStart),
		newPunch(req.EmployeeID, string(timesheet.ActionEnd), nextDay, nightWatchEnd),
	}

	if err := s.persistWithOutbox(ctx, rid, rows); err != nil {
		s.logger.Error("record night watch failed", zap.String("request_id", rid), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	s.bumpRevision(ctx, req.EmployeeID)
	s.logger.Info("night watch recorded",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
	)
	return mapToListResponse(rows), nil
}

func (s *service) RecordDayWatch(ctx context.Context, req WatchShiftRequest) ([]PunchResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := validatePunchInput(req.EmployeeID, string(timesheet.ActionStart), req.Date, dayWatchStart); err != nil {
		return nil, err
	}

	rows := []*Punch{
		newPunch(req.EmployeeID, string(timesheet.ActionStart), req.Date, dayWatchStart),
		newPunch(req.EmployeeID, string(timesheet.ActionEnd), req.Date, dayWatchEnd),
	}

	if err := s.persistWithOutbox(ctx, rid, rows); err != nil {
		s.logger.Error("record day watch failed", zap.String("request_id", rid), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	s.bumpRevision(ctx, req.EmployeeID)
	s.logger.Info("day watch recorded",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
	)
	return mapToListResponse(rows), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID, fromDate, toDate string) ([]PunchResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, puncherrors.ErrInvalidPunchID
	}
	if err := validateRange(fromDate, toDate); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByEmployeeAndRange(ctx, employeeID, fromDate, toDate)
	if err != nil {
		s.logger.Error("list punches failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]PunchResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePunchRequest) (PunchResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PunchResponse{}, puncherrors.ErrInvalidPunchID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PunchResponse{}, mapRepositoryError(err)
	}

	act, err := validatePunchInput(row.EmployeeID.String(), req.Action, req.Date, req.Time)
	if err != nil {
		return PunchResponse{}, err
	}

	row.Action = string(act)
	row.PunchDate = req.Date
	row.PunchTime = req.Time

	if err := s.repo.Update(ctx, row); err != nil {
		s.logger.Error("update punch failed", zap.String("punch_id", id), zap.Error(err))
		return PunchResponse{}, mapRepositoryError(err)
	}

	s.bumpRevision(ctx, row.EmployeeID.String())
	s.logger.Info("punch updated", zap.String("punch_id", id))
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return puncherrors.ErrInvalidPunchID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete punch failed", zap.String("punch_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.bumpRevision(ctx, row.EmployeeID.String())
	s.logger.Info("punch deleted", zap.String("punch_id", id))
	return nil
}

func (s *service) EventsByEmployee(ctx context.Context, employeeID, fromDate, toDate string) ([]timesheet.Event, error) {
	rows, err := s.repo.ListByEmployeeAndRange(ctx, employeeID, fromDate, toDate)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return s.toEvents(rows, func(Punch) string { return employeeID }), nil
}

func (s *service) EventsInRange(ctx context.Context, fromDate, toDate string) ([]timesheet.Event, error) {
	rows, err := s.repo.ListByRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return s.toEvents(rows, func(p Punch) string { return p.Employee.Name }), nil
}

func (s *service) toEvents(rows []Punch, tag func(Punch) string) []timesheet.Event {
	evs := make([]timesheet.Event, 0, len(rows))
	for _, row := range rows {
		ev, err := timesheet.ParseEvent(tag(row), row.Action, row.PunchDate, row.PunchTime)
		if err != nil {
			s.logger.Warn("skipping malformed punch row",
				zap.String("punch_id", row.ID.String()),
				zap.String("date", row.PunchDate),
				zap.String("time", row.PunchTime),
				zap.Error(err),
			)
			continue
		}
		evs = append(evs, ev)
	}
	return evs
}

func (s *service) checkDuplicate(ctx context.Context, employeeID, date, clock string) error {
	last, err := s.repo.LastByEmployee(ctx, employeeID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if last == nil {
		return nil
	}

	lastEv, err := timesheet.ParseEvent(employeeID, last.Action, last.PunchDate, last.PunchTime)
	if err != nil {
		return nil
	}
	newEv, err := timesheet.ParseEvent(employeeID, string(timesheet.ActionStart), date, clock)
	if err != nil {
		return nil
	}

	delta := newEv.At.Sub(lastEv.At)
	if delta < 0 {
		delta = -delta
	}
	if delta < duplicateWindow {
		s.logger.Warn("duplicate punch rejected",
			zap.String("employee_id", employeeID),
			zap.Duration("delta", delta),
		)
		return puncherrors.ErrDuplicatePunch
	}
	return nil
}

// persistWithOutbox writes the punch rows and their outbox events in one
// transaction so the Kafka feed never sees a punch that did not commit.
func (s *service) persistWithOutbox(ctx context.Context, rid string, rows []*Punch) error {
	if s.db == nil || s.outbox == nil {
		return s.repo.CreateBatch(ctx, rows)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.CreateBatch(ctx, rows); err != nil {
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	for _, row := range rows {
		event := events.PunchRecordedEvent{
			EventType:  "punch_recorded",
			RequestID:  rid,
			PunchID:    row.ID.String(),
			EmployeeID: row.EmployeeID.String(),
			Action:     row.Action,
			PunchDate:  row.PunchDate,
			PunchTime:  row.PunchTime,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "punch",
			AggregateID:   row.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PunchRecordedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *service) bumpRevision(ctx context.Context, employeeID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Incr(ctx, timesheet.EmployeeRevisionKey(employeeID)).Err(); err != nil {
		s.logger.Error("bump employee revision failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
	}
	if err := s.rdb.Incr(ctx, timesheet.GlobalRevisionKey).Err(); err != nil {
		s.logger.Error("bump global revision failed", zap.Error(err))
	}
}

func newPunch(employeeID, action, date, clock string) *Punch {
	return &Punch{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(employeeID),
		Action:     action,
		PunchDate:  date,
		PunchTime:  clock,
	}
}

func buildPunchSet(employeeID string, actions [][2]string, date string) []*Punch {
	rows := make([]*Punch, len(actions))
	for i, a := range actions {
		rows[i] = newPunch(employeeID, a[0], date, a[1])
	}
	return rows
}

func validateRange(fromDate, toDate string) error {
	from, err := time.Parse(timesheet.DateLayout, fromDate)
	if err != nil {
		return puncherrors.ErrInvalidPunchDate
	}
	to, err := time.Parse(timesheet.DateLayout, toDate)
	if err != nil {
		return puncherrors.ErrInvalidPunchDate
	}
	if to.Before(from) {
		return puncherrors.ErrInvalidPunchDate
	}
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return puncherrors.ErrPunchNotFound
	}
	return err
}

func mapToResponse(p Punch) PunchResponse {
	return PunchResponse{
		ID:         p.ID.String(),
		EmployeeID: p.EmployeeID.String(),
		Action:     p.Action,
		Date:       p.PunchDate,
		Time:       p.PunchTime,
	}
}

func mapToListResponse(ps []*Punch) []PunchResponse {
	resp := make([]PunchResponse, len(ps))
	for i, p := range ps {
		resp[i] = mapToResponse(*p)
	}
	return resp
}
