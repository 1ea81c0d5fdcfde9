package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/workpulse-hr/paytime-backend-go/internal/domain/settings"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/database"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
)

type SettingsService interface {
	Get(ctx context.Context) (settings.SettingsResponse, error)
	Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error)
}

type SettingsServiceImpl struct {
	db           *database.DB
	settingsRepo settings.SettingsRepository
}

func NewSettingsService(db *database.DB, settingsRepo settings.SettingsRepository) SettingsService {
	return &SettingsServiceImpl{
		db:           db,
		settingsRepo: settingsRepo,
	}
}

// Get implements SettingsService. Before any settings row is saved the
// defaults are returned, so callers always see a complete rule set.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.SettingsResponse, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.ToResponse(settings.Defaults()), nil
		}
		return settings.SettingsResponse{}, fmt.Errorf("failed to load company settings: %w", err)
	}
	return settings.ToResponse(current), nil
}

// Update implements SettingsService. Fields absent from the request keep their
// stored value.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.SettingsResponse{}, fmt.Errorf("failed to load company settings: %w", err)
		}
		current = settings.Defaults()
	}

	applyUpdate(&current, req)

	saved, err := s.settingsRepo.Upsert(ctx, current)
	if err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to save company settings: %w", err)
	}
	return settings.ToResponse(saved), nil
}

func applyUpdate(current *settings.CompanySettings, req settings.UpdateSettingsRequest) {
	if req.BaseHourlyRate != nil {
		current.BaseHourlyRate = *req.BaseHourlyRate
	}
	if req.OvertimeHourlyRate != nil {
		current.OvertimeHourlyRate = *req.OvertimeHourlyRate
	}
	if req.WeekendMultiplier != nil {
		current.WeekendMultiplier = *req.WeekendMultiplier
	}
	if req.HolidayMultiplier != nil {
		current.HolidayMultiplier = *req.HolidayMultiplier
	}
	if req.StandardHours != nil {
		current.StandardHoursPerDay = *req.StandardHours
	}
	if req.DoubleTimeSunday != nil {
		current.DoubleTimeOnSunday = *req.DoubleTimeSunday
	}
	if req.OvertimeAfterStd != nil {
		current.OvertimeAfterStandardHours = *req.OvertimeAfterStd
	}
	if req.WeekendWeekdays != nil {
		current.WeekendWeekdays = *req.WeekendWeekdays
	}
	if req.WeekendDates != nil {
		dates := make([]time.Time, 0, len(*req.WeekendDates))
		for _, d := range *req.WeekendDates {
			parsed, _ := timeutil.ParseDate(d)
			dates = append(dates, parsed)
		}
		current.WeekendDates = dates
	}
	if req.Holidays != nil {
		holidays := make([]settings.Holiday, 0, len(*req.Holidays))
		for _, h := range *req.Holidays {
			parsed, _ := timeutil.ParseDate(h.Date)
			holidays = append(holidays, settings.Holiday{
				Date:          parsed,
				Name:          h.Name,
				Recurring:     h.Recurring,
				PayMultiplier: h.PayMultiplier,
			})
		}
		current.Holidays = holidays
	}
}
