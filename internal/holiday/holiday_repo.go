package holiday

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	ListCustom(ctx context.Context) ([]CustomHoliday, error)
	ListIgnored(ctx context.Context) ([]IgnoredHoliday, error)
	CreateCustom(ctx context.Context, h *CustomHoliday) error
	CreateIgnored(ctx context.Context, h *IgnoredHoliday) error
	DeleteCustom(ctx context.Context, id string) error
	DeleteIgnored(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListCustom(ctx context.Context) ([]CustomHoliday, error) {
	var rows []CustomHoliday
	err := r.db.WithContext(ctx).Order("holiday_date ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) ListIgnored(ctx context.Context) ([]IgnoredHoliday, error) {
	var rows []IgnoredHoliday
	err := r.db.WithContext(ctx).Order("holiday_date ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) CreateCustom(ctx context.Context, h *CustomHoliday) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *repository) CreateIgnored(ctx context.Context, h *IgnoredHoliday) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *repository) DeleteCustom(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&CustomHoliday{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteIgnored(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&IgnoredHoliday{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
