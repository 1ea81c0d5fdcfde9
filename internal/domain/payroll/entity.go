package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateType classifies a date for pay-multiplier purposes.
type RateType string

const (
	RateTypeRegular RateType = "Regular"
	RateTypeWeekend RateType = "Weekend"
	RateTypeHoliday RateType = "Holiday"
)

// PayslipStatus enum
type PayslipStatus string

const (
	PayslipStatusDraft     PayslipStatus = "draft"
	PayslipStatusFinalized PayslipStatus = "finalized"
)

// PayLine is one derived pay row for one employee on one date. Output-only:
// produced fresh per derivation call and never mutated afterwards.
type PayLine struct {
	ID            string
	PayslipID     string
	EmployeeID    string
	Date          time.Time
	RegularHours  float64
	OvertimeHours float64
	Multiplier    float64
	RateType      RateType
	TotalPay      decimal.Decimal
	CreatedAt     time.Time
}

// Payslip aggregates the pay lines of one employee over a period.
type Payslip struct {
	ID                 string
	EmployeeID         string
	PeriodStart        time.Time
	PeriodEnd          time.Time
	TotalRegularHours  float64
	TotalOvertimeHours float64
	TotalPay           decimal.Decimal
	Status             PayslipStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Lines []PayLine

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
