package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse-hr/paytime-backend-go/internal/domain/payroll"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/settings"
)

func testRules() settings.CompanySettings {
	return settings.CompanySettings{
		BaseHourlyRate:             decimal.NewFromInt(25),
		OvertimeHourlyRate:         decimal.RequireFromString("37.5"),
		WeekendMultiplier:          1.25,
		HolidayMultiplier:          1.5,
		StandardHoursPerDay:        8,
		OvertimeAfterStandardHours: true,
		WeekendWeekdays:            []int{int(time.Saturday), int(time.Sunday)},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsWeekend(t *testing.T) {
	calc := NewCalculator()
	rules := testRules()

	assert.True(t, calc.IsWeekend(date(2025, time.May, 3), rules))  // Saturday
	assert.True(t, calc.IsWeekend(date(2025, time.May, 4), rules))  // Sunday
	assert.False(t, calc.IsWeekend(date(2025, time.May, 5), rules)) // Monday

	t.Run("explicit weekend date wins regardless of weekday", func(t *testing.T) {
		rules := testRules()
		rules.WeekendDates = []time.Time{date(2025, time.May, 7)} // a Wednesday
		assert.True(t, calc.IsWeekend(date(2025, time.May, 7), rules))
	})
}

func TestMatchHoliday(t *testing.T) {
	calc := NewCalculator()

	t.Run("exact date for non-recurring", func(t *testing.T) {
		rules := testRules()
		rules.Holidays = []settings.Holiday{
			{Date: date(2025, time.December, 25), Name: "Christmas"},
		}

		require.NotNil(t, calc.MatchHoliday(date(2025, time.December, 25), rules))
		assert.Nil(t, calc.MatchHoliday(date(2026, time.December, 25), rules))
	})

	t.Run("recurring matches any year on month and day", func(t *testing.T) {
		rules := testRules()
		rules.Holidays = []settings.Holiday{
			{Date: date(2020, time.January, 1), Name: "New Year", Recurring: true},
		}

		require.NotNil(t, calc.MatchHoliday(date(2025, time.January, 1), rules))
		assert.Nil(t, calc.MatchHoliday(date(2025, time.January, 2), rules))
	})

	t.Run("recurring Feb 29 only matches leap years", func(t *testing.T) {
		rules := testRules()
		rules.Holidays = []settings.Holiday{
			{Date: date(2024, time.February, 29), Name: "Leap Day", Recurring: true},
		}

		assert.NotNil(t, calc.MatchHoliday(date(2028, time.February, 29), rules))
		assert.Nil(t, calc.MatchHoliday(date(2025, time.February, 28), rules))
		assert.Nil(t, calc.MatchHoliday(date(2025, time.March, 1), rules))
	})
}

func TestResolveRate(t *testing.T) {
	calc := NewCalculator()

	t.Run("regular weekday", func(t *testing.T) {
		got := calc.ResolveRate(date(2025, time.May, 5), testRules())
		assert.Equal(t, payroll.RateTypeRegular, got.RateType)
		assert.Equal(t, 1.0, got.Multiplier)
	})

	t.Run("weekend", func(t *testing.T) {
		got := calc.ResolveRate(date(2025, time.May, 3), testRules())
		assert.Equal(t, payroll.RateTypeWeekend, got.RateType)
		assert.Equal(t, 1.25, got.Multiplier)
	})

	t.Run("holiday beats weekend", func(t *testing.T) {
		rules := testRules()
		// 2025-05-03 is a Saturday
		rules.Holidays = []settings.Holiday{{Date: date(2025, time.May, 3), Name: "Founders Day"}}

		got := calc.ResolveRate(date(2025, time.May, 3), rules)
		assert.Equal(t, payroll.RateTypeHoliday, got.RateType)
		assert.Equal(t, 1.5, got.Multiplier)
	})

	t.Run("per-holiday multiplier overrides the organization default", func(t *testing.T) {
		rules := testRules()
		rules.Holidays = []settings.Holiday{{Date: date(2025, time.May, 5), Name: "Special", PayMultiplier: 3.0}}

		got := calc.ResolveRate(date(2025, time.May, 5), rules)
		assert.Equal(t, 3.0, got.Multiplier)
	})

	t.Run("double time on Sunday is a floor", func(t *testing.T) {
		rules := testRules()
		rules.DoubleTimeOnSunday = true

		// Plain Sunday: weekend 1.25 raised to 2.0
		got := calc.ResolveRate(date(2025, time.May, 4), rules)
		assert.Equal(t, payroll.RateTypeWeekend, got.RateType)
		assert.Equal(t, 2.0, got.Multiplier)

		// Holiday on Sunday below the floor is raised
		rules.Holidays = []settings.Holiday{{Date: date(2025, time.May, 4), Name: "Low", PayMultiplier: 1.5}}
		got = calc.ResolveRate(date(2025, time.May, 4), rules)
		assert.Equal(t, payroll.RateTypeHoliday, got.RateType)
		assert.Equal(t, 2.0, got.Multiplier)

		// Holiday above the floor keeps its own multiplier
		rules.Holidays[0].PayMultiplier = 2.5
		got = calc.ResolveRate(date(2025, time.May, 4), rules)
		assert.Equal(t, 2.5, got.Multiplier)
	})

	t.Run("multiplier never drops below 1.0", func(t *testing.T) {
		rules := testRules()
		rules.WeekendMultiplier = 0.5

		got := calc.ResolveRate(date(2025, time.May, 3), rules)
		assert.Equal(t, 1.0, got.Multiplier)
	})
}

func TestSplitHours(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name         string
		worked       float64
		wantRegular  float64
		wantOvertime float64
	}{
		{"under threshold", 6, 6, 0},
		{"exactly threshold", 8, 8, 0},
		{"over threshold", 10, 8, 2},
		{"zero", 0, 0, 0},
		{"negative treated as zero", -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regular, overtime := calc.SplitHours(tt.worked, 8)
			assert.Equal(t, tt.wantRegular, regular)
			assert.Equal(t, tt.wantOvertime, overtime)
		})
	}
}

func TestDerivePay(t *testing.T) {
	calc := NewCalculator()
	rate := decimal.NewFromInt(25)

	t.Run("regular day with overtime", func(t *testing.T) {
		// 8h * 25 + 2h * 25 * (37.5/25) = 200 + 75 = 275
		line := calc.DerivePay(10, date(2025, time.May, 5), rate, testRules())

		assert.Equal(t, 8.0, line.RegularHours)
		assert.Equal(t, 2.0, line.OvertimeHours)
		assert.Equal(t, payroll.RateTypeRegular, line.RateType)
		assert.True(t, line.TotalPay.Equal(decimal.NewFromInt(275)), "got %s", line.TotalPay)
	})

	t.Run("holiday scales both portions", func(t *testing.T) {
		rules := testRules()
		rules.Holidays = []settings.Holiday{{Date: date(2025, time.May, 5), Name: "Holiday"}}

		// (8 * 25 + 2 * 37.5) * 1.5 = 412.5
		line := calc.DerivePay(10, date(2025, time.May, 5), rate, rules)

		assert.Equal(t, payroll.RateTypeHoliday, line.RateType)
		assert.Equal(t, 1.5, line.Multiplier)
		assert.True(t, line.TotalPay.Equal(decimal.RequireFromString("412.5")), "got %s", line.TotalPay)
	})

	t.Run("flat policy pays all hours at base", func(t *testing.T) {
		rules := testRules()
		rules.OvertimeAfterStandardHours = false

		line := calc.DerivePay(10, date(2025, time.May, 5), rate, rules)
		assert.True(t, line.TotalPay.Equal(decimal.NewFromInt(250)), "got %s", line.TotalPay)
	})

	t.Run("employee rate scaled by overtime ratio", func(t *testing.T) {
		// Employee earns 30/h; overtime factor stays 37.5/25 = 1.5.
		// 8 * 30 + 2 * 30 * 1.5 = 240 + 90 = 330
		line := calc.DerivePay(10, date(2025, time.May, 5), decimal.NewFromInt(30), testRules())
		assert.True(t, line.TotalPay.Equal(decimal.NewFromInt(330)), "got %s", line.TotalPay)
	})

	t.Run("zero hours still classified", func(t *testing.T) {
		rules := testRules()
		rules.Holidays = []settings.Holiday{{Date: date(2025, time.May, 5), Name: "Holiday"}}

		line := calc.DerivePay(0, date(2025, time.May, 5), rate, rules)
		assert.Equal(t, payroll.RateTypeHoliday, line.RateType)
		assert.True(t, line.TotalPay.IsZero())
	})

	t.Run("derivation is idempotent", func(t *testing.T) {
		first := calc.DerivePay(9.5, date(2025, time.May, 3), rate, testRules())
		second := calc.DerivePay(9.5, date(2025, time.May, 3), rate, testRules())
		assert.Equal(t, first, second)
	})

	t.Run("money rounded to 2 decimals", func(t *testing.T) {
		rules := testRules()
		line := calc.DerivePay(7.333333, date(2025, time.May, 5), rate, rules)
		assert.True(t, line.TotalPay.Equal(decimal.RequireFromString("183.33")), "got %s", line.TotalPay)
	})
}
