package attendance

import (
	"time"

	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	CheckIn    string `json:"check_in,omitempty"`
	CheckOut   string `json:"check_out,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := timeutil.ParseDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must use YYYY-MM-DD"})
	}
	if r.CheckIn != "" && !timeutil.ParseTimeOfDay(r.CheckIn).Valid {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must use HH:MM or HH:MM:SS"})
	}
	if r.CheckOut != "" && !timeutil.ParseTimeOfDay(r.CheckOut).Valid {
		errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must use HH:MM or HH:MM:SS"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID       string
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CheckIn != nil && *r.CheckIn != "" && !timeutil.ParseTimeOfDay(*r.CheckIn).Valid {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must use HH:MM or HH:MM:SS"})
	}
	if r.CheckOut != nil && *r.CheckOut != "" && !timeutil.ParseTimeOfDay(*r.CheckOut).Valid {
		errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must use HH:MM or HH:MM:SS"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	EmployeeCode  string  `json:"employee_code,omitempty"`
	Date          string  `json:"date"`
	CheckIn       *string `json:"check_in"`
	CheckOut      *string `json:"check_out"`
	WorkedHours   float64 `json:"worked_hours"`
	MinimumHour   float64 `json:"minimum_hour"`
	OvertimeHours float64 `json:"overtime_hours"`
	Status        string  `json:"status"`
	Shift         string  `json:"shift"`
	Biometric     bool    `json:"biometric"`
}

type AttendanceFilter struct {
	EmployeeID string
	From       *time.Time
	To         *time.Time
	Status     string
	Page       int
	Limit      int
}

// ToResponse maps an entity to its API shape. Displayed hours are rounded to
// 2 decimals; stored values keep full precision.
func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		Date:          timeutil.FormatDate(a.Date),
		CheckIn:       a.CheckIn.StringPtr(),
		CheckOut:      a.CheckOut.StringPtr(),
		WorkedHours:   timeutil.Round2(a.WorkedHours),
		MinimumHour:   timeutil.Round2(a.RegularHours),
		OvertimeHours: timeutil.Round2(a.OvertimeHours),
		Status:        a.Status,
		Shift:         a.Shift,
		Biometric:     a.Biometric,
	}
	if a.EmployeeName != nil {
		resp.EmployeeName = *a.EmployeeName
	}
	if a.EmployeeCode != nil {
		resp.EmployeeCode = *a.EmployeeCode
	}
	return resp
}
