package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/workpulse-hr/paytime-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/settings"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/database"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
	payrollService "github.com/workpulse-hr/paytime-backend-go/internal/service/payroll"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	settingsRepo   settings.SettingsRepository
	calculator     *payrollService.Calculator
	db             *database.DB
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	settingsRepo settings.SettingsRepository,
	calculator *payrollService.Calculator,
	db *database.DB,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		settingsRepo:   settingsRepo,
		calculator:     calculator,
		db:             db,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills zero-hour absent records for active employees
// with no attendance record on the previous day. Weekend and holiday dates are
// left alone.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	yesterday := timeutil.DateOnly(time.Now().UTC().AddDate(0, 0, -1))
	return j.markAbsentFor(ctx, yesterday)
}

func (j *AttendanceJobs) markAbsentFor(ctx context.Context, date time.Time) error {
	rules, err := j.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			return fmt.Errorf("failed to load company settings: %w", err)
		}
		rules = settings.Defaults()
	}

	if j.calculator.IsWeekend(date, rules) || j.calculator.MatchHoliday(date, rules) != nil {
		slog.Info("Cron: Skipping absence marking on non-working day", "date", timeutil.FormatDate(date))
		return nil
	}

	employees, err := j.employeeRepo.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to get active employees: %w", err)
	}

	recorded, err := j.attendanceRepo.EmployeeIDsWithRecordOn(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to check existing records: %w", err)
	}

	marked := 0
	for _, emp := range employees {
		if recorded[emp.ID] {
			continue
		}

		_, err := j.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       date,
			Status:     attendance.StatusAbsent,
			Shift:      attendance.ShiftDay,
		})
		if err != nil {
			slog.Error("Cron: Failed to mark employee absent", "employee_id", emp.ID, "date", timeutil.FormatDate(date), "error", err)
			continue
		}
		marked++
	}

	if marked > 0 {
		slog.Info("Cron: Marked absent employees", "date", timeutil.FormatDate(date), "count", marked)
	}
	return nil
}
