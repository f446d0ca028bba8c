package holiday

import (
	"context"
	"errors"
	"strings"
	"time"

	holidayerrors "github.com/Netosantos999/controle-ponto-app/internal/holiday/errors"
	"github.com/Netosantos999/controle-ponto-app/internal/timesheet"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	// Snapshot returns an immutable calendar covering [from, to]; computations
	// receive reference data as an explicit value rather than reading shared
	// mutable state.
	Snapshot(ctx context.Context, from, to time.Time) (*Calendar, error)

	ListYear(ctx context.Context, year int) ([]HolidayEntry, error)
	ListCustom(ctx context.Context) ([]HolidayEntryResponse, error)
	ListIgnored(ctx context.Context) ([]HolidayEntryResponse, error)
	AddCustom(ctx context.Context, req UpsertHolidayRequest) (HolidayEntryResponse, error)
	RemoveCustom(ctx context.Context, id string) error
	AddIgnored(ctx context.Context, req UpsertHolidayRequest) (HolidayEntryResponse, error)
	RemoveIgnored(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

func (s *service) Snapshot(ctx context.Context, from, to time.Time) (*Calendar, error) {
	customRows, err := s.repo.ListCustom(ctx)
	if err != nil {
		s.logger.Error("load custom holidays failed", zap.Error(err))
		return nil, err
	}
	ignoredRows, err := s.repo.ListIgnored(ctx)
	if err != nil {
		s.logger.Error("load ignored holidays failed", zap.Error(err))
		return nil, err
	}

	custom := make(map[string]string, len(customRows))
	for _, row := range customRows {
		custom[row.HolidayDate.Format(timesheet.DateLayout)] = row.Description
	}
	ignored := make(map[string]string, len(ignoredRows))
	for _, row := range ignoredRows {
		ignored[row.HolidayDate.Format(timesheet.DateLayout)] = row.Description
	}

	return NewCalendar(from, to, custom, ignored), nil
}

// HolidayEntry is one effective holiday in the merged calendar.
type HolidayEntry struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Source      string `json:"source"` // "algorithmic" or "custom"
}

func (s *service) ListYear(ctx context.Context, year int) ([]HolidayEntry, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	cal, err := s.Snapshot(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var entries []HolidayEntry
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		desc, ok := cal.Describe(day)
		if !ok {
			continue
		}
		key := day.Format(timesheet.DateLayout)
		source := "algorithmic"
		if _, isCustom := cal.custom[key]; isCustom {
			source = "custom"
		}
		entries = append(entries, HolidayEntry{Date: key, Description: desc, Source: source})
	}
	return entries, nil
}

func (s *service) ListCustom(ctx context.Context) ([]HolidayEntryResponse, error) {
	rows, err := s.repo.ListCustom(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]HolidayEntryResponse, len(rows))
	for i, row := range rows {
		res[i] = HolidayEntryResponse{
			ID:          row.ID.String(),
			Date:        row.HolidayDate.Format(timesheet.DateLayout),
			Description: row.Description,
		}
	}
	return res, nil
}

func (s *service) ListIgnored(ctx context.Context) ([]HolidayEntryResponse, error) {
	rows, err := s.repo.ListIgnored(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]HolidayEntryResponse, len(rows))
	for i, row := range rows {
		res[i] = HolidayEntryResponse{
			ID:          row.ID.String(),
			Date:        row.HolidayDate.Format(timesheet.DateLayout),
			Description: row.Description,
		}
	}
	return res, nil
}

func (s *service) AddCustom(ctx context.Context, req UpsertHolidayRequest) (HolidayEntryResponse, error) {
	date, err := time.Parse(timesheet.DateLayout, req.Date)
	if err != nil {
		return HolidayEntryResponse{}, holidayerrors.ErrInvalidHolidayDate
	}

	row := &CustomHoliday{
		ID:          uuid.New(),
		HolidayDate: date,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.repo.CreateCustom(ctx, row); err != nil {
		s.logger.Error("create custom holiday failed", zap.String("date", req.Date), zap.Error(err))
		return HolidayEntryResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx)
	s.logger.Info("custom holiday added", zap.String("date", req.Date))
	return HolidayEntryResponse{ID: row.ID.String(), Date: req.Date, Description: row.Description}, nil
}

func (s *service) RemoveCustom(ctx context.Context, id string) error {
	if err := s.repo.DeleteCustom(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	s.invalidate(ctx)
	s.logger.Info("custom holiday removed", zap.String("id", id))
	return nil
}

func (s *service) AddIgnored(ctx context.Context, req UpsertHolidayRequest) (HolidayEntryResponse, error) {
	date, err := time.Parse(timesheet.DateLayout, req.Date)
	if err != nil {
		return HolidayEntryResponse{}, holidayerrors.ErrInvalidHolidayDate
	}

	row := &IgnoredHoliday{
		ID:          uuid.New(),
		HolidayDate: date,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.repo.CreateIgnored(ctx, row); err != nil {
		s.logger.Error("create ignored holiday failed", zap.String("date", req.Date), zap.Error(err))
		return HolidayEntryResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx)
	s.logger.Info("holiday ignore added", zap.String("date", req.Date))
	return HolidayEntryResponse{ID: row.ID.String(), Date: req.Date, Description: row.Description}, nil
}

func (s *service) RemoveIgnored(ctx context.Context, id string) error {
	if err := s.repo.DeleteIgnored(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	s.invalidate(ctx)
	s.logger.Info("holiday ignore removed", zap.String("id", id))
	return nil
}

// invalidate bumps the shared holiday revision so cached overtime results
// keyed on the previous revision go stale.
func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Incr(ctx, timesheet.HolidayRevisionKey).Err(); err != nil {
		s.logger.Error("bump holiday revision failed", zap.Error(err))
	}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return holidayerrors.ErrHolidayNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return holidayerrors.ErrHolidayAlreadyExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		return holidayerrors.ErrHolidayAlreadyExists
	}

	return err
}
