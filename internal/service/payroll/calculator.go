package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/payroll"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/settings"
)

// Calculator holds the pure pay/time derivation rules. Every method is a
// stateless function of its arguments; rules are passed explicitly per call.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// ResolvedRate is the effective multiplier and classification for one date.
type ResolvedRate struct {
	Multiplier float64
	RateType   payroll.RateType
}

// IsWeekend reports whether the date falls on a configured weekend weekday or
// an explicitly listed weekend date.
func (c *Calculator) IsWeekend(date time.Time, rules settings.CompanySettings) bool {
	wd := int(date.Weekday())
	for _, d := range rules.WeekendWeekdays {
		if d == wd {
			return true
		}
	}
	for _, d := range rules.WeekendDates {
		if sameDate(d, date) {
			return true
		}
	}
	return false
}

// MatchHoliday returns the first configured holiday matching the date, or nil.
// Recurring holidays match on (month, day) ignoring the year; a recurring
// Feb 29 holiday therefore only matches in leap years. Non-recurring holidays
// match on exact date equality.
func (c *Calculator) MatchHoliday(date time.Time, rules settings.CompanySettings) *settings.Holiday {
	for i := range rules.Holidays {
		h := &rules.Holidays[i]
		if h.Recurring {
			if h.Date.Month() == date.Month() && h.Date.Day() == date.Day() {
				return h
			}
			continue
		}
		if sameDate(h.Date, date) {
			return h
		}
	}
	return nil
}

// ResolveRate classifies a date and resolves its effective multiplier.
//
// Priority, highest first:
//  1. holiday match — holiday multiplier, rate type Holiday (a holiday that
//     falls on a weekend is paid at the holiday rate, never stacked);
//  2. weekend match — weekend multiplier, rate type Weekend;
//  3. default — multiplier 1.0, rate type Regular.
//
// Double-time-on-Sunday is a floor of 2.0 applied after classification, so a
// holiday still wins over a plain Sunday, and a holiday that falls on a
// Sunday pays max(holiday multiplier, 2.0). The result is always >= 1.0.
func (c *Calculator) ResolveRate(date time.Time, rules settings.CompanySettings) ResolvedRate {
	resolved := ResolvedRate{Multiplier: 1.0, RateType: payroll.RateTypeRegular}

	if h := c.MatchHoliday(date, rules); h != nil {
		m := h.PayMultiplier
		if m == 0 {
			m = rules.HolidayMultiplier
		}
		resolved = ResolvedRate{Multiplier: m, RateType: payroll.RateTypeHoliday}
	} else if c.IsWeekend(date, rules) {
		resolved = ResolvedRate{Multiplier: rules.WeekendMultiplier, RateType: payroll.RateTypeWeekend}
	}

	if rules.DoubleTimeOnSunday && date.Weekday() == time.Sunday && resolved.Multiplier < 2.0 {
		resolved.Multiplier = 2.0
	}
	if resolved.Multiplier < 1.0 {
		resolved.Multiplier = 1.0
	}

	return resolved
}

// SplitHours divides worked hours into the regular portion (up to the
// standard-hours threshold) and the overtime remainder.
func (c *Calculator) SplitHours(workedHours, standardHoursPerDay float64) (regular, overtime float64) {
	if workedHours <= 0 {
		return 0, 0
	}
	regular = workedHours
	if regular > standardHoursPerDay {
		regular = standardHoursPerDay
		overtime = workedHours - standardHoursPerDay
	}
	return regular, overtime
}

// DerivePay computes the pay line for one employee-day.
//
// Under the split policy (OvertimeAfterStandardHours), overtime hours are paid
// at the employee's rate scaled by the organization overtime/base ratio:
//
//	total = regular·rate·multiplier + overtime·rate·multiplier·(overtimeRate/baseRate)
//
// Under the flat policy all worked hours pay rate·multiplier. Zero worked
// hours yield zero pay but the rate type is still resolved, so reporting can
// show 0-hour holiday rows.
func (c *Calculator) DerivePay(workedHours float64, date time.Time, employeeRate decimal.Decimal, rules settings.CompanySettings) payroll.PayLine {
	regular, overtime := c.SplitHours(workedHours, rules.StandardHoursPerDay)
	resolved := c.ResolveRate(date, rules)

	mult := decimal.NewFromFloat(resolved.Multiplier)

	var total decimal.Decimal
	if rules.OvertimeAfterStandardHours {
		otFactor := decimal.NewFromInt(1)
		if rules.BaseHourlyRate.IsPositive() {
			otFactor = rules.OvertimeHourlyRate.Div(rules.BaseHourlyRate)
		}
		regularPay := decimal.NewFromFloat(regular).Mul(employeeRate).Mul(mult)
		overtimePay := decimal.NewFromFloat(overtime).Mul(employeeRate).Mul(mult).Mul(otFactor)
		total = regularPay.Add(overtimePay)
	} else {
		total = decimal.NewFromFloat(workedHours).Mul(employeeRate).Mul(mult)
	}

	return payroll.PayLine{
		Date:          date,
		RegularHours:  regular,
		OvertimeHours: overtime,
		Multiplier:    resolved.Multiplier,
		RateType:      resolved.RateType,
		TotalPay:      total.Round(2),
	}
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
