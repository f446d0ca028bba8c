package holiday

import (
	"time"

	"github.com/google/uuid"
)

// CustomHoliday is an administrator-added holiday. Removing a date from rule
// consideration requires deleting the row; the ignore list does not apply.
type CustomHoliday struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	HolidayDate time.Time `gorm:"column:holiday_date;type:date;not null;uniqueIndex:uq_custom_holiday_date"`
	Description string    `gorm:"column:description;type:varchar(200);not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (CustomHoliday) TableName() string {
	return "custom_holidays"
}

// IgnoredHoliday marks an algorithmic holiday as a normal workday.
type IgnoredHoliday struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	HolidayDate time.Time `gorm:"column:holiday_date;type:date;not null;uniqueIndex:uq_ignored_holiday_date"`
	Description string    `gorm:"column:description;type:varchar(200);not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (IgnoredHoliday) TableName() string {
	return "ignored_holidays"
}
