package settings

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/validator"
)

func floatPtr(f float64) *float64 { return &f }

func TestUpdateSettingsRequestValidate(t *testing.T) {
	t.Run("empty request is valid", func(t *testing.T) {
		req := UpdateSettingsRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("valid full request", func(t *testing.T) {
		rate := decimal.NewFromInt(25)
		weekdays := []int{0, 6}
		dates := []string{"2025-12-24"}
		holidays := []HolidayPayload{{Date: "2025-12-25", Name: "Christmas", PayMultiplier: 2.0}}

		req := UpdateSettingsRequest{
			BaseHourlyRate:    &rate,
			WeekendMultiplier: floatPtr(1.25),
			HolidayMultiplier: floatPtr(1.5),
			StandardHours:     floatPtr(8),
			WeekendWeekdays:   &weekdays,
			WeekendDates:      &dates,
			Holidays:          &holidays,
		}
		assert.NoError(t, req.Validate())
	})

	tests := []struct {
		name  string
		req   UpdateSettingsRequest
		field string
	}{
		{
			"weekend multiplier below 1",
			UpdateSettingsRequest{WeekendMultiplier: floatPtr(0.5)},
			"weekend_multiplier",
		},
		{
			"holiday multiplier below 1",
			UpdateSettingsRequest{HolidayMultiplier: floatPtr(0.9)},
			"holiday_multiplier",
		},
		{
			"zero standard hours",
			UpdateSettingsRequest{StandardHours: floatPtr(0)},
			"standard_hours_per_day",
		},
		{
			"standard hours above a day",
			UpdateSettingsRequest{StandardHours: floatPtr(25)},
			"standard_hours_per_day",
		},
		{
			"weekday out of range",
			UpdateSettingsRequest{WeekendWeekdays: &[]int{7}},
			"weekend_weekdays",
		},
		{
			"malformed weekend date",
			UpdateSettingsRequest{WeekendDates: &[]string{"12/24/2025"}},
			"weekend_dates",
		},
		{
			"malformed holiday date",
			UpdateSettingsRequest{Holidays: &[]HolidayPayload{{Date: "Dec 25"}}},
			"holidays",
		},
		{
			"holiday multiplier between 0 and 1",
			UpdateSettingsRequest{Holidays: &[]HolidayPayload{{Date: "2025-12-25", PayMultiplier: 0.5}}},
			"holidays",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			_, ok := errs.ToMap()[tt.field]
			assert.True(t, ok, "expected error on field %s, got %v", tt.field, errs.ToMap())
		})
	}

	t.Run("holiday multiplier of zero means inherit", func(t *testing.T) {
		req := UpdateSettingsRequest{Holidays: &[]HolidayPayload{{Date: "2025-12-25"}}}
		assert.NoError(t, req.Validate())
	})
}

func TestDefaults(t *testing.T) {
	d := Defaults()

	assert.Equal(t, 8.0, d.StandardHoursPerDay)
	assert.Equal(t, 1.0, d.WeekendMultiplier)
	assert.Equal(t, 1.0, d.HolidayMultiplier)
	assert.True(t, d.OvertimeAfterStandardHours)
	assert.ElementsMatch(t, []int{0, 6}, d.WeekendWeekdays)
}
