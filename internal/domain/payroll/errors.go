package payroll

import "errors"

var (
	ErrPayslipNotFound      = errors.New("payslip not found")
	ErrPayslipAlreadyExists = errors.New("payslip already exists for this employee and period")
)
