package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/payroll"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/settings"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/database"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
)

type PayrollService interface {
	// GeneratePayslips derives one payslip per employee over the requested
	// period, one pay line per attendance day. Employees that already have a
	// payslip for the identical period are skipped.
	GeneratePayslips(ctx context.Context, req payroll.GeneratePayslipsRequest) ([]payroll.PayslipResponse, error)
	GetPayslip(ctx context.Context, id string) (payroll.PayslipResponse, error)
	ListPayslips(ctx context.Context, filter payroll.PayslipFilter) ([]payroll.PayslipResponse, int64, error)
	DeletePayslip(ctx context.Context, id string) error
	RenderPayslipPDF(ctx context.Context, id string) ([]byte, error)
}

type PayrollServiceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	settingsRepo   settings.SettingsRepository
	calculator     *Calculator
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	settingsRepo settings.SettingsRepository,
	calculator *Calculator,
) PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		settingsRepo:   settingsRepo,
		calculator:     calculator,
	}
}

// GeneratePayslips implements PayrollService.
func (s *PayrollServiceImpl) GeneratePayslips(ctx context.Context, req payroll.GeneratePayslipsRequest) ([]payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	periodStart, _ := timeutil.ParseDate(req.PeriodStart)
	periodEnd, _ := timeutil.ParseDate(req.PeriodEnd)

	rules, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			return nil, fmt.Errorf("failed to load company settings: %w", err)
		}
		rules = settings.Defaults()
	}

	employees, err := s.targetEmployees(ctx, req.EmployeeIDs)
	if err != nil {
		return nil, err
	}

	var generated []payroll.Payslip
	for _, emp := range employees {
		// Skip employees already generated for an identical period.
		_, err := s.payrollRepo.GetPayslipByEmployeePeriod(ctx, emp.ID, periodStart, periodEnd)
		if err == nil {
			continue
		}
		if !errors.Is(err, payroll.ErrPayslipNotFound) {
			return nil, fmt.Errorf("failed to check existing payslip: %w", err)
		}

		slip, err := s.deriveSlip(ctx, emp, periodStart, periodEnd, rules)
		if err != nil {
			return nil, err
		}
		if len(slip.Lines) == 0 {
			continue
		}

		created, err := s.payrollRepo.CreatePayslip(ctx, slip)
		if err != nil {
			if errors.Is(err, payroll.ErrPayslipAlreadyExists) {
				continue
			}
			return nil, fmt.Errorf("failed to create payslip for employee %s: %w", emp.ID, err)
		}
		generated = append(generated, created)
	}

	result := make([]payroll.PayslipResponse, 0, len(generated))
	for _, p := range generated {
		result = append(result, payroll.ToPayslipResponse(p))
	}
	return result, nil
}

// deriveSlip computes the pay lines for one employee over a period. Each
// attendance day derives independently; days without a record contribute
// nothing.
func (s *PayrollServiceImpl) deriveSlip(ctx context.Context, emp employee.Employee, start, end time.Time, rules settings.CompanySettings) (payroll.Payslip, error) {
	records, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, emp.ID, start, end)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to load attendance for employee %s: %w", emp.ID, err)
	}

	rate := emp.HourlyRate
	if !rate.IsPositive() {
		rate = rules.BaseHourlyRate
	}

	slip := payroll.Payslip{
		EmployeeID:  emp.ID,
		PeriodStart: start,
		PeriodEnd:   end,
		TotalPay:    decimal.Zero,
		Status:      payroll.PayslipStatusDraft,
	}

	for _, rec := range records {
		line := s.calculator.DerivePay(rec.WorkedHours, rec.Date, rate, rules)
		line.EmployeeID = emp.ID

		slip.TotalRegularHours += line.RegularHours
		slip.TotalOvertimeHours += line.OvertimeHours
		slip.TotalPay = slip.TotalPay.Add(line.TotalPay)
		slip.Lines = append(slip.Lines, line)
	}

	return slip, nil
}

func (s *PayrollServiceImpl) targetEmployees(ctx context.Context, ids []string) ([]employee.Employee, error) {
	if len(ids) == 0 {
		employees, err := s.employeeRepo.GetActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get employees: %w", err)
		}
		return employees, nil
	}

	var employees []employee.Employee
	for _, id := range ids {
		emp, err := s.employeeRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

// GetPayslip implements PayrollService.
func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	slip, err := s.payrollRepo.GetPayslipByID(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	return payroll.ToPayslipResponse(slip), nil
}

// ListPayslips implements PayrollService.
func (s *PayrollServiceImpl) ListPayslips(ctx context.Context, filter payroll.PayslipFilter) ([]payroll.PayslipResponse, int64, error) {
	slips, total, err := s.payrollRepo.ListPayslips(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]payroll.PayslipResponse, 0, len(slips))
	for _, p := range slips {
		result = append(result, payroll.ToPayslipResponse(p))
	}
	return result, total, nil
}

// DeletePayslip implements PayrollService.
func (s *PayrollServiceImpl) DeletePayslip(ctx context.Context, id string) error {
	return s.payrollRepo.DeletePayslip(ctx, id)
}
