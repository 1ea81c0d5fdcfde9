package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/workpulse-hr/paytime-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/overtime"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/settings"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/database"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
	payrollService "github.com/workpulse-hr/paytime-backend-go/internal/service/payroll"
)

type AttendanceService interface {
	Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error)
	Get(ctx context.Context, id string) (attendance.AttendanceResponse, error)
	List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, int64, error)
	Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error)
	Delete(ctx context.Context, id string) error

	// RecordInterval derives and persists the record for one work interval,
	// replacing any existing record for the same employee and date. Used by
	// manual entry, corrections and the punch import.
	RecordInterval(ctx context.Context, interval attendance.WorkInterval, biometric bool, rules settings.CompanySettings) (attendance.Attendance, error)
}

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	overtimeRepo   overtime.OvertimeRepository
	employeeRepo   employee.EmployeeRepository
	settingsRepo   settings.SettingsRepository
	calculator     *payrollService.Calculator
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	overtimeRepo overtime.OvertimeRepository,
	employeeRepo employee.EmployeeRepository,
	settingsRepo settings.SettingsRepository,
	calculator *payrollService.Calculator,
) AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		overtimeRepo:   overtimeRepo,
		employeeRepo:   employeeRepo,
		settingsRepo:   settingsRepo,
		calculator:     calculator,
	}
}

// Derive builds the attendance record for one interval under the given rules.
// Pure: no I/O, no clock reads.
func Derive(interval attendance.WorkInterval, biometric bool, rules settings.CompanySettings, calc *payrollService.Calculator) attendance.Attendance {
	worked := timeutil.ElapsedHours(interval.CheckIn, interval.CheckOut)
	regular, over := calc.SplitHours(worked, rules.StandardHoursPerDay)

	status := attendance.StatusAbsent
	if worked > 0 {
		status = attendance.StatusPresent
	}

	shift := attendance.ShiftNight
	if interval.CheckIn.Valid && interval.CheckIn.Hour >= 6 && interval.CheckIn.Hour < 18 {
		shift = attendance.ShiftDay
	}

	return attendance.Attendance{
		EmployeeID:    interval.EmployeeID,
		Date:          timeutil.DateOnly(interval.Date),
		CheckIn:       interval.CheckIn,
		CheckOut:      interval.CheckOut,
		WorkedHours:   worked,
		RegularHours:  regular,
		OvertimeHours: over,
		Status:        status,
		Shift:         shift,
		Biometric:     biometric,
	}
}

// deriveOvertime builds the pending overtime record for a day whose worked
// hours exceed the standard threshold. The overtime portion is the tail of
// the interval: it starts overtimeHours before checkout.
func deriveOvertime(att attendance.Attendance) overtime.OvertimeRecord {
	start := timeutil.TimeOfDay{}
	if att.CheckOut.Valid {
		start = timeutil.FromSeconds(att.CheckOut.Seconds() - int(att.OvertimeHours*3600))
	}
	return overtime.OvertimeRecord{
		EmployeeID:    att.EmployeeID,
		Date:          att.Date,
		StartTime:     start,
		EndTime:       att.CheckOut,
		OvertimeHours: att.OvertimeHours,
		Status:        overtime.StatusPending,
	}
}

// RecordInterval implements AttendanceService.
func (s *AttendanceServiceImpl) RecordInterval(ctx context.Context, interval attendance.WorkInterval, biometric bool, rules settings.CompanySettings) (attendance.Attendance, error) {
	derived := Derive(interval, biometric, rules, s.calculator)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, interval.EmployeeID, derived.Date)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}

	var saved attendance.Attendance
	if existing != nil {
		derived.ID = existing.ID
		if err := s.attendanceRepo.Update(ctx, derived); err != nil {
			return attendance.Attendance{}, fmt.Errorf("failed to update attendance record: %w", err)
		}
		saved = derived
	} else {
		saved, err = s.attendanceRepo.Create(ctx, derived)
		if err != nil {
			return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
		}
	}

	if saved.OvertimeHours > 0 {
		if _, err := s.overtimeRepo.UpsertForDate(ctx, deriveOvertime(saved)); err != nil {
			return attendance.Attendance{}, fmt.Errorf("failed to upsert overtime record: %w", err)
		}
	} else {
		if err := s.overtimeRepo.DeletePendingForDate(ctx, saved.EmployeeID, saved.Date); err != nil {
			return attendance.Attendance{}, fmt.Errorf("failed to clear pending overtime: %w", err)
		}
	}

	return saved, nil
}

// Create implements AttendanceService.
func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rules, err := s.loadRules(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := timeutil.ParseDate(req.Date)
	interval := attendance.WorkInterval{
		EmployeeID: req.EmployeeID,
		Date:       date,
		CheckIn:    timeutil.ParseTimeOfDay(req.CheckIn),
		CheckOut:   timeutil.ParseTimeOfDay(req.CheckOut),
	}

	saved, err := s.RecordInterval(ctx, interval, false, rules)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(saved), nil
}

// Update implements AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	current, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rules, err := s.loadRules(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	interval := attendance.WorkInterval{
		EmployeeID: current.EmployeeID,
		Date:       current.Date,
		CheckIn:    current.CheckIn,
		CheckOut:   current.CheckOut,
	}
	if req.CheckIn != nil {
		interval.CheckIn = timeutil.ParseTimeOfDay(*req.CheckIn)
	}
	if req.CheckOut != nil {
		interval.CheckOut = timeutil.ParseTimeOfDay(*req.CheckOut)
	}

	saved, err := s.RecordInterval(ctx, interval, current.Biometric, rules)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(saved), nil
}

// Get implements AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(att), nil
}

// List implements AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, int64, error) {
	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		result = append(result, attendance.ToResponse(r))
	}
	return result, total, nil
}

// Delete implements AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	att, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.overtimeRepo.DeletePendingForDate(ctx, att.EmployeeID, att.Date); err != nil {
		return fmt.Errorf("failed to clear pending overtime: %w", err)
	}
	return s.attendanceRepo.Delete(ctx, id)
}

func (s *AttendanceServiceImpl) loadRules(ctx context.Context) (settings.CompanySettings, error) {
	rules, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.Defaults(), nil
		}
		return settings.CompanySettings{}, fmt.Errorf("failed to load company settings: %w", err)
	}
	return rules, nil
}
