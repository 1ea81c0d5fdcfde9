package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/settings"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// Get implements settings.SettingsRepository. A deployment holds at most one
// settings row.
func (r *settingsRepositoryImpl) Get(ctx context.Context) (settings.CompanySettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, base_hourly_rate, overtime_hourly_rate,
			weekend_multiplier, holiday_multiplier, standard_hours_per_day,
			double_time_on_sunday, overtime_after_standard_hours,
			weekend_weekdays, weekend_dates, holidays,
			created_at, updated_at
		FROM company_settings
		ORDER BY created_at
		LIMIT 1
	`

	var s settings.CompanySettings
	err := q.QueryRow(ctx, query).Scan(
		&s.ID, &s.BaseHourlyRate, &s.OvertimeHourlyRate,
		&s.WeekendMultiplier, &s.HolidayMultiplier, &s.StandardHoursPerDay,
		&s.DoubleTimeOnSunday, &s.OvertimeAfterStandardHours,
		&s.WeekendWeekdays, &s.WeekendDates, &s.Holidays,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.CompanySettings{}, settings.ErrSettingsNotFound
		}
		return settings.CompanySettings{}, fmt.Errorf("failed to get company settings: %w", err)
	}

	return s, nil
}

// Upsert implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Upsert(ctx context.Context, s settings.CompanySettings) (settings.CompanySettings, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query := `
		INSERT INTO company_settings (
			id, base_hourly_rate, overtime_hourly_rate,
			weekend_multiplier, holiday_multiplier, standard_hours_per_day,
			double_time_on_sunday, overtime_after_standard_hours,
			weekend_weekdays, weekend_dates, holidays
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			base_hourly_rate = EXCLUDED.base_hourly_rate,
			overtime_hourly_rate = EXCLUDED.overtime_hourly_rate,
			weekend_multiplier = EXCLUDED.weekend_multiplier,
			holiday_multiplier = EXCLUDED.holiday_multiplier,
			standard_hours_per_day = EXCLUDED.standard_hours_per_day,
			double_time_on_sunday = EXCLUDED.double_time_on_sunday,
			overtime_after_standard_hours = EXCLUDED.overtime_after_standard_hours,
			weekend_weekdays = EXCLUDED.weekend_weekdays,
			weekend_dates = EXCLUDED.weekend_dates,
			holidays = EXCLUDED.holidays,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.BaseHourlyRate, s.OvertimeHourlyRate,
		s.WeekendMultiplier, s.HolidayMultiplier, s.StandardHoursPerDay,
		s.DoubleTimeOnSunday, s.OvertimeAfterStandardHours,
		s.WeekendWeekdays, s.WeekendDates, s.Holidays,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return settings.CompanySettings{}, fmt.Errorf("failed to upsert company settings: %w", err)
	}

	return s, nil
}
