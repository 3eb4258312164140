package payroll

import "time"

type CreatePayrollRequest struct {
	UserID      uint    `json:"userId" binding:"required"`
	Period      string  `json:"period" binding:"required"`
	BasicSalary float64 `json:"basicSalary" binding:"required,gt=0"`
	Allowances  float64 `json:"allowances" binding:"gte=0"`
	Overtime    float64 `json:"overtime" binding:"gte=0"`
	Deductions  float64 `json:"deductions" binding:"gte=0"`
	Tax         float64 `json:"tax" binding:"gte=0"`
	Notes       *string `json:"notes"`
}

type PayrollResponse struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"userId"`
	Period      string     `json:"period"`
	BasicSalary float64    `json:"basicSalary"`
	Allowances  float64    `json:"allowances"`
	Overtime    float64    `json:"overtime"`
	Deductions  float64    `json:"deductions"`
	Tax         float64    `json:"tax"`
	NetSalary   float64    `json:"netSalary"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

func toResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Period:      p.Period,
		BasicSalary: p.BasicSalary,
		Allowances:  p.Allowances,
		Overtime:    p.Overtime,
		Deductions:  p.Deductions,
		Tax:         p.Tax,
		NetSalary:   p.NetSalary,
		Status:      p.Status,
		PaidAt:      p.PaidAt,
		Notes:       p.Notes,
	}
}
