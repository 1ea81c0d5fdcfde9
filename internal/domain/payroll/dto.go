package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/validator"
)

type GeneratePayslipsRequest struct {
	PeriodStart string   `json:"period_start"`
	PeriodEnd   string   `json:"period_end"`
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

func (r *GeneratePayslipsRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := timeutil.ParseDate(r.PeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must use YYYY-MM-DD"})
	}
	end, okEnd := timeutil.ParseDate(r.PeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must use YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayLineResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	Date          string          `json:"date"`
	RegularHours  float64         `json:"regular_hours"`
	OvertimeHours float64         `json:"overtime_hours"`
	Multiplier    float64         `json:"effective_multiplier"`
	RateType      string          `json:"rate_type"`
	TotalPay      decimal.Decimal `json:"total_pay"`
}

type PayslipResponse struct {
	ID                 string            `json:"id"`
	EmployeeID         string            `json:"employee_id"`
	EmployeeName       string            `json:"employee_name,omitempty"`
	EmployeeCode       string            `json:"employee_code,omitempty"`
	PeriodStart        string            `json:"period_start"`
	PeriodEnd          string            `json:"period_end"`
	TotalRegularHours  float64           `json:"total_regular_hours"`
	TotalOvertimeHours float64           `json:"total_overtime_hours"`
	TotalPay           decimal.Decimal   `json:"total_pay"`
	Status             string            `json:"status"`
	Lines              []PayLineResponse `json:"lines,omitempty"`
}

type PayslipFilter struct {
	EmployeeID string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

func ToLineResponse(l PayLine) PayLineResponse {
	return PayLineResponse{
		ID:            l.ID,
		EmployeeID:    l.EmployeeID,
		Date:          timeutil.FormatDate(l.Date),
		RegularHours:  timeutil.Round2(l.RegularHours),
		OvertimeHours: timeutil.Round2(l.OvertimeHours),
		Multiplier:    l.Multiplier,
		RateType:      string(l.RateType),
		TotalPay:      l.TotalPay,
	}
}

func ToPayslipResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:                 p.ID,
		EmployeeID:         p.EmployeeID,
		PeriodStart:        timeutil.FormatDate(p.PeriodStart),
		PeriodEnd:          timeutil.FormatDate(p.PeriodEnd),
		TotalRegularHours:  timeutil.Round2(p.TotalRegularHours),
		TotalOvertimeHours: timeutil.Round2(p.TotalOvertimeHours),
		TotalPay:           p.TotalPay,
		Status:             string(p.Status),
	}
	if p.EmployeeName != nil {
		resp.EmployeeName = *p.EmployeeName
	}
	if p.EmployeeCode != nil {
		resp.EmployeeCode = *p.EmployeeCode
	}
	for _, l := range p.Lines {
		resp.Lines = append(resp.Lines, ToLineResponse(l))
	}
	return resp
}
