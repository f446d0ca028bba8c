package punch

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/Netosantos999/controle-ponto-app/internal/events"
	"github.com/Netosantos999/controle-ponto-app/internal/messaging/kafka"
	puncherrors "github.com/Netosantos999/controle-ponto-app/internal/punch/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	createFn        func(ctx context.Context, p *Punch) error
	createBatchFn   func(ctx context.Context, ps []*Punch) error
	findByIDFn      func(ctx context.Context, id string) (*Punch, error)
	updateFn        func(ctx context.Context, p *Punch) error
	deleteFn        func(ctx context.Context, id string) error
	lastFn          func(ctx context.Context, employeeID string) (*Punch, error)
	listByEmplFn    func(ctx context.Context, employeeID, fromDate, toDate string) ([]Punch, error)
	listByRangeFn   func(ctx context.Context, fromDate, toDate string) ([]Punch, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, p *Punch) error {
	return f.createFn(ctx, p)
}
func (f *fakeRepo) CreateBatch(ctx context.Context, ps []*Punch) error {
	return f.createBatchFn(ctx, ps)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Punch, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, p *Punch) error {
	return f.updateFn(ctx, p)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeRepo) LastByEmployee(ctx context.Context, employeeID string) (*Punch, error) {
	return f.lastFn(ctx, employeeID)
}
func (f *fakeRepo) ListByEmployeeAndRange(ctx context.Context, employeeID, fromDate, toDate string) ([]Punch, error) {
	return f.listByEmplFn(ctx, employeeID, fromDate, toDate)
}
func (f *fakeRepo) ListByRange(ctx context.Context, fromDate, toDate string) ([]Punch, error) {
	return f.listByRangeFn(ctx, fromDate, toDate)
}

func noLastPunch() *fakeRepo {
	return &fakeRepo{
		lastFn:        func(context.Context, string) (*Punch, error) { return nil, nil },
		createBatchFn: func(context.Context, []*Punch) error { return nil },
	}
}

func TestService_Record_ValidationErrors(t *testing.T) {
	svc := NewService(nil, noLastPunch(), nil)
	empID := uuid.NewString()

	cases := []struct {
		name string
		req  RecordPunchRequest
		want error
	}{
		{"bad id", RecordPunchRequest{EmployeeID: "nope", Action: "ENTRADA", Date: "2024-09-02", Time: "08:00"}, puncherrors.ErrInvalidPunchID},
		{"bad action", RecordPunchRequest{EmployeeID: empID, Action: "CHEGADA", Date: "2024-09-02", Time: "08:00"}, puncherrors.ErrInvalidAction},
		{"bad date", RecordPunchRequest{EmployeeID: empID, Action: "ENTRADA", Date: "02/09/2024", Time: "08:00"}, puncherrors.ErrInvalidPunchDate},
		{"bad time", RecordPunchRequest{EmployeeID: empID, Action: "ENTRADA", Date: "2024-09-02", Time: "8h00"}, puncherrors.ErrInvalidPunchTime},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestService_Record_DuplicateWithinWindow(t *testing.T) {
	empID := uuid.NewString()
	repo := noLastPunch()
	repo.lastFn = func(context.Context, string) (*Punch, error) {
		return &Punch{Action: "ENTRADA", PunchDate: "2024-09-02", PunchTime: "08:00"}, nil
	}
	svc := NewService(nil, repo, nil)

	_, err := svc.Record(context.Background(), RecordPunchRequest{
		EmployeeID: empID, Action: "SAIDA", Date: "2024-09-02", Time: "08:00",
	})
	assert.ErrorIs(t, err, puncherrors.ErrDuplicatePunch)

	// one minute apart is allowed again
	_, err = svc.Record(context.Background(), RecordPunchRequest{
		EmployeeID: empID, Action: "SAIDA", Date: "2024-09-02", Time: "08:01",
	})
	assert.NoError(t, err)
}

func TestService_RecordStandardDay_WeekdayEnds(t *testing.T) {
	var batches [][]*Punch
	repo := noLastPunch()
	repo.createBatchFn = func(_ context.Context, ps []*Punch) error {
		batches = append(batches, ps)
		return nil
	}
	svc := NewService(nil, repo, nil)
	empID := uuid.NewString()

	// 2024-09-02 is a Monday, 2024-09-06 a Friday.
	monday, err := svc.RecordStandardDay(context.Background(), StandardDayRequest{
		EmployeeID: empID, Date: "2024-09-02", StartTime: "08:00",
	})
	assert.NoError(t, err)
	assert.Len(t, monday, 4)
	assert.Equal(t, "ENTRADA", monday[0].Action)
	assert.Equal(t, "12:00", monday[1].Time)
	assert.Equal(t, "13:00", monday[2].Time)
	assert.Equal(t, "17:00", monday[3].Time)

	friday, err := svc.RecordStandardDay(context.Background(), StandardDayRequest{
		EmployeeID: empID, Date: "2024-09-06", StartTime: "08:00",
	})
	assert.NoError(t, err)
	assert.Equal(t, "16:00", friday[3].Time)

	assert.Len(t, batches, 2)
}

func TestService_RecordNightWatch_SpansDays(t *testing.T) {
	repo := noLastPunch()
	svc := NewService(nil, repo, nil)

	rows, err := svc.RecordNightWatch(context.Background(), WatchShiftRequest{
		EmployeeID: uuid.NewString(), Date: "2024-09-02",
	})
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "ENTRADA", rows[0].Action)
	assert.Equal(t, "2024-09-02", rows[0].Date)
	assert.Equal(t, "18:00", rows[0].Time)
	assert.Equal(t, "SAIDA", rows[1].Action)
	assert.Equal(t, "2024-09-03", rows[1].Date)
	assert.Equal(t, "06:00", rows[1].Time)
}

func TestService_RecordDayWatch_SameDay(t *testing.T) {
	repo := noLastPunch()
	svc := NewService(nil, repo, nil)

	rows, err := svc.RecordDayWatch(context.Background(), WatchShiftRequest{
		EmployeeID: uuid.NewString(), Date: "2024-09-02",
	})
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "06:00", rows[0].Time)
	assert.Equal(t, "18:00", rows[1].Time)
	assert.Equal(t, rows[0].Date, rows[1].Date)
}

func TestService_EventsByEmployee_SkipsMalformedRows(t *testing.T) {
	empID := uuid.NewString()
	repo := noLastPunch()
	repo.listByEmplFn = func(context.Context, string, string, string) ([]Punch, error) {
		return []Punch{
			{ID: uuid.New(), Action: "ENTRADA", PunchDate: "2024-09-02", PunchTime: "08:00"},
			{ID: uuid.New(), Action: "ENTRADA", PunchDate: "bad-date", PunchTime: "08:00"},
			{ID: uuid.New(), Action: "SAIDA", PunchDate: "2024-09-02", PunchTime: "17:00"},
		}, nil
	}
	svc := NewService(nil, repo, nil)

	evs, err := svc.EventsByEmployee(context.Background(), empID, "2024-09-01", "2024-09-30")
	assert.NoError(t, err)
	assert.Len(t, evs, 2)
	assert.Equal(t, empID, evs[0].Employee)
}

func TestService_Record_PersistsPunchAndOutboxOnOneTransaction(t *testing.T) {
	gormDB, mock, closePool := newGormOverMock(t)
	defer closePool()

	sqlDB, err := gormDB.DB()
	assert.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "punches"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO punches`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO outbox_events`).
		WithArgs(
			sqlmock.AnyArg(), sqlmock.AnyArg(), "punch", sqlmock.AnyArg(),
			"punch_recorded", events.PunchRecordedTopic, sqlmock.AnyArg(),
			kafka.OutboxStatusPending,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewRepository(gormDB)
	outbox := kafka.NewOutboxRepository(sqlDB)
	svc := NewServiceWithOutbox(sqlDB, repo, outbox, nil)

	resp, err := svc.Record(context.Background(), RecordPunchRequest{
		EmployeeID: uuid.NewString(), Action: "ENTRADA", Date: "2024-09-02", Time: "08:00",
	})
	assert.NoError(t, err)
	assert.Equal(t, "ENTRADA", resp.Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Record_OutboxFailureRollsBackPunch(t *testing.T) {
	gormDB, mock, closePool := newGormOverMock(t)
	defer closePool()

	sqlDB, err := gormDB.DB()
	assert.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "punches"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO punches`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO outbox_events`).
		WillReturnError(errors.New("outbox unavailable"))
	mock.ExpectRollback()

	repo := NewRepository(gormDB)
	outbox := kafka.NewOutboxRepository(sqlDB)
	svc := NewServiceWithOutbox(sqlDB, repo, outbox, nil)

	_, err = svc.Record(context.Background(), RecordPunchRequest{
		EmployeeID: uuid.NewString(), Action: "ENTRADA", Date: "2024-09-02", Time: "08:00",
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Update_InvalidID(t *testing.T) {
	svc := NewService(nil, noLastPunch(), nil)

	_, err := svc.Update(context.Background(), "nope", UpdatePunchRequest{})
	assert.ErrorIs(t, err, puncherrors.ErrInvalidPunchID)
}

func TestService_ListByEmployee_RejectsInvertedRange(t *testing.T) {
	svc := NewService(nil, noLastPunch(), nil)

	_, err := svc.ListByEmployee(context.Background(), uuid.NewString(), "2024-09-30", "2024-09-01")
	assert.ErrorIs(t, err, puncherrors.ErrInvalidPunchDate)
}
