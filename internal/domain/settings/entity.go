package settings

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holiday is one configured holiday. Recurring holidays repeat every year on
// the same month and day; the stored year is only meaningful for non-recurring
// entries. PayMultiplier 0 means "use the organization holiday multiplier".
type Holiday struct {
	Date          time.Time `json:"date"`
	Name          string    `json:"name"`
	Recurring     bool      `json:"recurring"`
	PayMultiplier float64   `json:"pay_multiplier"`
}

// CompanySettings holds the organization-wide pay and calendar rules. A single
// row exists per deployment.
type CompanySettings struct {
	ID                 string
	BaseHourlyRate     decimal.Decimal
	OvertimeHourlyRate decimal.Decimal

	WeekendMultiplier   float64
	HolidayMultiplier   float64
	StandardHoursPerDay float64

	DoubleTimeOnSunday         bool
	OvertimeAfterStandardHours bool

	// WeekendWeekdays uses time.Weekday numbering: Sunday is 0.
	WeekendWeekdays []int
	WeekendDates    []time.Time
	Holidays        []Holiday

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Defaults returns the rules in effect before any settings row is saved.
func Defaults() CompanySettings {
	return CompanySettings{
		BaseHourlyRate:             decimal.Zero,
		OvertimeHourlyRate:         decimal.Zero,
		WeekendMultiplier:          1.0,
		HolidayMultiplier:          1.0,
		StandardHoursPerDay:        8.0,
		DoubleTimeOnSunday:         false,
		OvertimeAfterStandardHours: true,
		WeekendWeekdays:            []int{int(time.Saturday), int(time.Sunday)},
	}
}
