package payroll

import "time"

type Payroll struct {
	ID          uint       `gorm:"column:id;primaryKey"`
	UserID      uint       `gorm:"column:user_id;not null;index"`
	Period      string     `gorm:"column:period;not null"` // format YYYY-MM
	BasicSalary float64    `gorm:"column:basic_salary;not null"`
	Allowances  float64    `gorm:"column:allowances;not null;default:0"`
	Overtime    float64    `gorm:"column:overtime;not null;default:0"`
	Deductions  float64    `gorm:"column:deductions;not null;default:0"`
	Tax         float64    `gorm:"column:tax;not null;default:0"`
	NetSalary   float64    `gorm:"column:net_salary;not null"`
	Status      string     `gorm:"column:status;not null;default:pending"`
	PaidAt      *time.Time `gorm:"column:paid_at"`
	Notes       *string    `gorm:"column:notes"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)
