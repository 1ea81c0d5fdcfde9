package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	// CreatePayslip stores the payslip and its lines atomically.
	CreatePayslip(ctx context.Context, slip Payslip) (Payslip, error)

	// GetPayslipByID returns the payslip with its lines loaded.
	GetPayslipByID(ctx context.Context, id string) (Payslip, error)

	// GetPayslipByEmployeePeriod is used to skip employees that were already
	// generated for an identical period.
	GetPayslipByEmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) (Payslip, error)

	ListPayslips(ctx context.Context, filter PayslipFilter) ([]Payslip, int64, error)
	DeletePayslip(ctx context.Context, id string) error
}
