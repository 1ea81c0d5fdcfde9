package settings

import (
	"github.com/shopspring/decimal"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/validator"
)

type HolidayPayload struct {
	Date          string  `json:"date"`
	Name          string  `json:"name"`
	Recurring     bool    `json:"recurring"`
	PayMultiplier float64 `json:"pay_multiplier"`
}

type SettingsResponse struct {
	BaseHourlyRate     decimal.Decimal  `json:"base_hourly_rate"`
	OvertimeHourlyRate decimal.Decimal  `json:"overtime_hourly_rate"`
	WeekendMultiplier  float64          `json:"weekend_multiplier"`
	HolidayMultiplier  float64          `json:"holiday_multiplier"`
	StandardHours      float64          `json:"standard_hours_per_day"`
	DoubleTimeSunday   bool             `json:"double_time_on_sunday"`
	OvertimeAfterStd   bool             `json:"overtime_after_standard_hours"`
	WeekendWeekdays    []int            `json:"weekend_weekdays"`
	WeekendDates       []string         `json:"weekend_dates"`
	Holidays           []HolidayPayload `json:"holidays"`
}

// UpdateSettingsRequest applies partially: nil fields keep their stored value.
type UpdateSettingsRequest struct {
	BaseHourlyRate     *decimal.Decimal  `json:"base_hourly_rate,omitempty"`
	OvertimeHourlyRate *decimal.Decimal  `json:"overtime_hourly_rate,omitempty"`
	WeekendMultiplier  *float64          `json:"weekend_multiplier,omitempty"`
	HolidayMultiplier  *float64          `json:"holiday_multiplier,omitempty"`
	StandardHours      *float64          `json:"standard_hours_per_day,omitempty"`
	DoubleTimeSunday   *bool             `json:"double_time_on_sunday,omitempty"`
	OvertimeAfterStd   *bool             `json:"overtime_after_standard_hours,omitempty"`
	WeekendWeekdays    *[]int            `json:"weekend_weekdays,omitempty"`
	WeekendDates       *[]string         `json:"weekend_dates,omitempty"`
	Holidays           *[]HolidayPayload `json:"holidays,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BaseHourlyRate != nil && r.BaseHourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_hourly_rate", Message: "must be non-negative"})
	}
	if r.OvertimeHourlyRate != nil && r.OvertimeHourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hourly_rate", Message: "must be non-negative"})
	}
	if r.WeekendMultiplier != nil && *r.WeekendMultiplier < 1.0 {
		errs = append(errs, validator.ValidationError{Field: "weekend_multiplier", Message: "must be at least 1.0"})
	}
	if r.HolidayMultiplier != nil && *r.HolidayMultiplier < 1.0 {
		errs = append(errs, validator.ValidationError{Field: "holiday_multiplier", Message: "must be at least 1.0"})
	}
	if r.StandardHours != nil && (*r.StandardHours <= 0 || *r.StandardHours > 24) {
		errs = append(errs, validator.ValidationError{Field: "standard_hours_per_day", Message: "must be between 0 and 24"})
	}
	if r.WeekendWeekdays != nil {
		for _, d := range *r.WeekendWeekdays {
			if d < 0 || d > 6 {
				errs = append(errs, validator.ValidationError{Field: "weekend_weekdays", Message: "weekday must be between 0 (Sunday) and 6 (Saturday)"})
				break
			}
		}
	}
	if r.WeekendDates != nil {
		for _, d := range *r.WeekendDates {
			if _, ok := timeutil.ParseDate(d); !ok {
				errs = append(errs, validator.ValidationError{Field: "weekend_dates", Message: "dates must use YYYY-MM-DD"})
				break
			}
		}
	}
	if r.Holidays != nil {
		for _, h := range *r.Holidays {
			if _, ok := timeutil.ParseDate(h.Date); !ok {
				errs = append(errs, validator.ValidationError{Field: "holidays", Message: "holiday dates must use YYYY-MM-DD"})
				break
			}
			if h.PayMultiplier != 0 && h.PayMultiplier < 1.0 {
				errs = append(errs, validator.ValidationError{Field: "holidays", Message: "holiday pay multiplier must be 0 or at least 1.0"})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func ToResponse(s CompanySettings) SettingsResponse {
	resp := SettingsResponse{
		BaseHourlyRate:     s.BaseHourlyRate,
		OvertimeHourlyRate: s.OvertimeHourlyRate,
		WeekendMultiplier:  s.WeekendMultiplier,
		HolidayMultiplier:  s.HolidayMultiplier,
		StandardHours:      s.StandardHoursPerDay,
		DoubleTimeSunday:   s.DoubleTimeOnSunday,
		OvertimeAfterStd:   s.OvertimeAfterStandardHours,
		WeekendWeekdays:    s.WeekendWeekdays,
		WeekendDates:       make([]string, 0, len(s.WeekendDates)),
		Holidays:           make([]HolidayPayload, 0, len(s.Holidays)),
	}
	for _, d := range s.WeekendDates {
		resp.WeekendDates = append(resp.WeekendDates, timeutil.FormatDate(d))
	}
	for _, h := range s.Holidays {
		resp.Holidays = append(resp.Holidays, HolidayPayload{
			Date:          timeutil.FormatDate(h.Date),
			Name:          h.Name,
			Recurring:     h.Recurring,
			PayMultiplier: h.PayMultiplier,
		})
	}
	return resp
}
