package response

import (
	"errors"
	"net/http"

	"github.com/workpulse-hr/paytime-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/overtime"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/payroll"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/settings"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceExists):
		Conflict(w, "Attendance record already exists for this date")

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime record not found")
	case errors.Is(err, overtime.ErrOvertimeAlreadyProcessed):
		Conflict(w, "Overtime record already processed")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPayslipAlreadyExists):
		Conflict(w, "Payslip already exists for this period")

	// Settings domain errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Company settings not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
