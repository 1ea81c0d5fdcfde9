package employee

import (
	"github.com/shopspring/decimal"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Code       string           `json:"code"`
	Name       string           `json:"name"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string
	Name       *string          `json:"name,omitempty"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
	IsActive   *bool            `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	IsActive   bool            `json:"is_active"`
}

type EmployeeFilter struct {
	Search     string
	ActiveOnly bool
	Page       int
	Limit      int
}
