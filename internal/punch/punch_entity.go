package punch

import (
	"time"

	"github.com/Netosantos999/controle-ponto-app/internal/employee"

	"github.com/google/uuid"
)

// Punch is a single clock event as recorded by a device or operator.
// Date and clock are kept as the wire strings so rows round-trip the
// device feed without timezone drift.
type Punch struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index:idx_punch_employee_date,priority:1"`
	Action     string    `gorm:"size:10"`
	PunchDate  string    `gorm:"size:10;index:idx_punch_employee_date,priority:2"`
	PunchTime  string    `gorm:"size:5"`
	CreatedAt  time.Time

	Employee employee.Employee `gorm:"foreignKey:EmployeeID"`
}

func (Punch) TableName() string {
	return "punches"
}
