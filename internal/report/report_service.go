package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Netosantos999/controle-ponto-app/internal/employee"
	"github.com/Netosantos999/controle-ponto-app/internal/holiday"
	"github.com/Netosantos999/controle-ponto-app/internal/punch"
	"github.com/Netosantos999/controle-ponto-app/internal/timesheet"
	timesheeterrors "github.com/Netosantos999/controle-ponto-app/internal/timesheet/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// reportTTL bounds staleness for results whose revision keys were lost,
// for example after a Redis flush.
const reportTTL = 10 * time.Minute

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	WorkedHours(ctx context.Context, employeeID, fromDate, toDate string) (WorkedHoursResponse, error)
	Overtime(ctx context.Context, employeeID, fromDate, toDate string) (OvertimeResponse, error)
	OvertimeSummary(ctx context.Context, employeeID, fromDate, toDate string) (OvertimeSummaryResponse, error)
	OvertimeAll(ctx context.Context, fromDate, toDate string) (OvertimeAllResponse, error)
	Absences(ctx context.Context, fromDate, toDate string) (AbsencesResponse, error)
}

type service struct {
	punches   punch.Service
	employees employee.Service
	holidays  holiday.Service
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(
	punches punch.Service,
	employees employee.Service,
	holidays holiday.Service,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		punches:   punches,
		employees: employees,
		holidays:  holidays,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func parseRange(fromDate, toDate string) (time.Time, time.Time, error) {
	from, err := time.Parse(timesheet.DateLayout, fromDate)
	if err != nil {
		return time.Time{}, time.Time{}, timesheeterrors.ErrInvalidReportRange
	}
	to, err := time.Parse(timesheet.DateLayout, toDate)
	if err != nil {
		return time.Time{}, time.Time{}, timesheeterrors.ErrInvalidReportRange
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, timesheeterrors.ErrInvalidReportRange
	}
	return from, to, nil
}

func (s *service) WorkedHours(ctx context.Context, employeeID, fromDate, toDate string) (WorkedHoursResponse, error) {
	if _, _, err := parseRange(fromDate, toDate); err != nil {
		return WorkedHoursResponse{}, err
	}

	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return WorkedHoursResponse{}, err
	}

	events, err := s.punches.EventsByEmployee(ctx, employeeID, fromDate, toDate)
	if err != nil {
		return WorkedHoursResponse{}, err
	}

	entries, err := timesheet.WorkedHours(events)
	if err != nil {
		return WorkedHoursResponse{}, mapEngineError(err)
	}

	days := make([]WorkedDayResponse, len(entries))
	for i, e := range entries {
		days[i] = WorkedDayResponse{Date: e.Date, Worked: e.Worked}
	}

	return WorkedHoursResponse{
		EmployeeID: employeeID,
		From:       fromDate,
		To:         toDate,
		Days:       days,
	}, nil
}

func (s *service) Overtime(ctx context.Context, employeeID, fromDate, toDate string) (OvertimeResponse, error) {
	from, to, err := parseRange(fromDate, toDate)
	if err != nil {
		return OvertimeResponse{}, err
	}

	empl, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return OvertimeResponse{}, err
	}
	if timesheet.IsWatchman(empl.Role) {
		return OvertimeResponse{}, timesheeterrors.ErrWatchmanExempt
	}

	cacheKey := s.overtimeCacheKey(ctx, employeeID, fromDate, toDate)
	if s.rdb != nil && cacheKey != "" {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp OvertimeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		events, err := s.punches.EventsByEmployee(ctx, employeeID, fromDate, toDate)
		if err != nil {
			return OvertimeResponse{}, err
		}

		cal, err := s.holidays.Snapshot(ctx, from, to)
		if err != nil {
			return OvertimeResponse{}, err
		}

		overtime, err := timesheet.ComputeOvertime(events, cal)
		if err != nil {
			return OvertimeResponse{}, mapEngineError(err)
		}

		resp := mapOvertime(employeeID, fromDate, toDate, overtime)

		if s.rdb != nil && cacheKey != "" {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, reportTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return OvertimeResponse{}, err
	}

	return v.(OvertimeResponse), nil
}

func (s *service) OvertimeSummary(ctx context.Context, employeeID, fromDate, toDate string) (OvertimeSummaryResponse, error) {
	full, err := s.Overtime(ctx, employeeID, fromDate, toDate)
	if err != nil {
		return OvertimeSummaryResponse{}, err
	}
	return OvertimeSummaryResponse{
		EmployeeID: employeeID,
		From:       fromDate,
		To:         toDate,
		Premium50:  full.Premium50.Total,
		Premium100: full.Premium100.Total,
	}, nil
}

// OvertimeAll runs the per-employee computation for the whole roster,
// skipping watchman roles. Each line goes through Overtime so the
// revision-keyed cache applies per employee; a line that fails to
// compute is logged and skipped rather than failing the summary.
func (s *service) OvertimeAll(ctx context.Context, fromDate, toDate string) (OvertimeAllResponse, error) {
	if _, _, err := parseRange(fromDate, toDate); err != nil {
		return OvertimeAllResponse{}, err
	}

	empls, err := s.employees.GetAll(ctx)
	if err != nil {
		return OvertimeAllResponse{}, err
	}

	resp := OvertimeAllResponse{
		From:      fromDate,
		To:        toDate,
		Employees: []EmployeeOvertimeResponse{},
	}
	for _, empl := range empls {
		if timesheet.IsWatchman(empl.Role) {
			continue
		}
		full, err := s.Overtime(ctx, empl.ID, fromDate, toDate)
		if err != nil {
			// one broken punch history must not hide the rest of the roster
			s.logger.Warn("skipping employee in roster summary",
				zap.String("employee_id", empl.ID),
				zap.Error(err),
			)
			continue
		}
		resp.Employees = append(resp.Employees, EmployeeOvertimeResponse{
			EmployeeID: empl.ID,
			Name:       empl.Name,
			Premium50:  full.Premium50.Total,
			Premium100: full.Premium100.Total,
		})
	}
	return resp, nil
}

func (s *service) Absences(ctx context.Context, fromDate, toDate string) (AbsencesResponse, error) {
	from, to, err := parseRange(fromDate, toDate)
	if err != nil {
		return AbsencesResponse{}, err
	}

	cacheKey := s.absencesCacheKey(ctx, fromDate, toDate)
	if s.rdb != nil && cacheKey != "" {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp AbsencesResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		roster, err := s.employees.Roster(ctx)
		if err != nil {
			return AbsencesResponse{}, err
		}

		events, err := s.punches.EventsInRange(ctx, fromDate, toDate)
		if err != nil {
			return AbsencesResponse{}, err
		}

		cal, err := s.holidays.Snapshot(ctx, from, to)
		if err != nil {
			return AbsencesResponse{}, err
		}

		resp := AbsencesResponse{
			From:     fromDate,
			To:       toDate,
			Absences: timesheet.Absences(from, to, roster, events, cal),
		}

		if s.rdb != nil && cacheKey != "" {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, reportTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return AbsencesResponse{}, err
	}

	return v.(AbsencesResponse), nil
}

// overtimeCacheKey folds the employee and holiday revisions into the key
// so any punch or calendar mutation makes previous entries unreachable.
func (s *service) overtimeCacheKey(ctx context.Context, employeeID, fromDate, toDate string) string {
	empRev, holRev := "0", "0"
	if s.rdb != nil {
		vals, err := s.rdb.MGet(ctx,
			timesheet.EmployeeRevisionKey(employeeID),
			timesheet.HolidayRevisionKey,
		).Result()
		if err == nil && len(vals) == 2 {
			if v, ok := vals[0].(string); ok {
				empRev = v
			}
			if v, ok := vals[1].(string); ok {
				holRev = v
			}
		}
	}
	return fmt.Sprintf("report:overtime:%s:%s:%s:e%s:h%s", employeeID, fromDate, toDate, empRev, holRev)
}

func (s *service) absencesCacheKey(ctx context.Context, fromDate, toDate string) string {
	allRev, holRev := "0", "0"
	if s.rdb != nil {
		vals, err := s.rdb.MGet(ctx,
			timesheet.GlobalRevisionKey,
			timesheet.HolidayRevisionKey,
		).Result()
		if err == nil && len(vals) == 2 {
			if v, ok := vals[0].(string); ok {
				allRev = v
			}
			if v, ok := vals[1].(string); ok {
				holRev = v
			}
		}
	}
	return fmt.Sprintf("report:absences:%s:%s:a%s:h%s", fromDate, toDate, allRev, holRev)
}

func mapOvertime(employeeID, fromDate, toDate string, overtime timesheet.Overtime) OvertimeResponse {
	return OvertimeResponse{
		EmployeeID: employeeID,
		From:       fromDate,
		To:         toDate,
		Premium50:  mapBucket(overtime.Premium50),
		Premium100: mapBucket(overtime.Premium100),
	}
}

func mapBucket(b timesheet.BucketTotal) BucketResponse {
	resp := BucketResponse{
		Total: timesheet.FormatDuration(b.Total),
		Days:  []DayResponse{},
	}
	for _, date := range b.Dates() {
		day := DayResponse{Date: date}
		for _, frag := range b.ByDate[date] {
			day.Fragments = append(day.Fragments, FragmentResponse{
				ShiftStart: frag.ShiftStart.Format(timesheet.TimeLayout),
				Duration:   timesheet.FormatDuration(frag.Duration),
				DayPart:    string(frag.DayPart),
			})
		}
		resp.Days = append(resp.Days, day)
	}
	return resp
}

func mapEngineError(err error) error {
	if errors.Is(err, timesheet.ErrMixedEmployees) {
		return timesheeterrors.ErrMixedEmployees
	}
	return err
}
