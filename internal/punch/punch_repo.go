package punch

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=punch_repo.go -destination=mock/punch_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Punch) error
	CreateBatch(ctx context.Context, ps []*Punch) error
	FindByID(ctx context.Context, id string) (*Punch, error)
	Update(ctx context.Context, p *Punch) error
	Delete(ctx context.Context, id string) error

	// LastByEmployee returns the newest punch by date and clock, or nil
	// when the employee has none.
	LastByEmployee(ctx context.Context, employeeID string) (*Punch, error)

	ListByEmployeeAndRange(ctx context.Context, employeeID, fromDate, toDate string) ([]Punch, error)
	ListByRange(ctx context.Context, fromDate, toDate string) ([]Punch, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

const insertPunch = `
        INSERT INTO punches (
            id, employee_id, action, punch_date, punch_time, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6)
    `

// insert writes one row on the transaction when one is bound, so punch
// rows and their outbox events commit or roll back together.
func (r *repository) insert(ctx context.Context, p *Punch) error {
	if r.tx != nil {
		if p.CreatedAt.IsZero() {
			p.CreatedAt = time.Now().UTC()
		}
		_, err := r.tx.ExecContext(
			ctx, insertPunch,
			p.ID, p.EmployeeID, p.Action, p.PunchDate, p.PunchTime, p.CreatedAt,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) Create(ctx context.Context, p *Punch) error {
	return r.insert(ctx, p)
}

func (r *repository) CreateBatch(ctx context.Context, ps []*Punch) error {
	if len(ps) == 0 {
		return nil
	}
	if r.tx == nil {
		return r.db.WithContext(ctx).Create(ps).Error
	}
	for _, p := range ps {
		if err := r.insert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Punch, error) {
	var p Punch
	err := r.db.WithContext(ctx).
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *Punch) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Punch{}, "id = ?", id).Error
}

func (r *repository) LastByEmployee(ctx context.Context, employeeID string) (*Punch, error) {
	var p Punch
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("punch_date DESC, punch_time DESC").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListByEmployeeAndRange(ctx context.Context, employeeID, fromDate, toDate string) ([]Punch, error) {
	var ps []Punch
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("punch_date BETWEEN ? AND ?", fromDate, toDate).
		Order("punch_date ASC, punch_time ASC").
		Find(&ps).Error
	return ps, err
}

func (r *repository) ListByRange(ctx context.Context, fromDate, toDate string) ([]Punch, error) {
	var ps []Punch
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("punch_date BETWEEN ? AND ?", fromDate, toDate).
		Order("punch_date ASC, punch_time ASC").
		Find(&ps).Error
	return ps, err
}
