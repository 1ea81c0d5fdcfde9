package overtime

import (
	"time"

	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
)

type OvertimeResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	EmployeeCode  string  `json:"employee_code,omitempty"`
	Date          string  `json:"date"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	OvertimeHours float64 `json:"overtime_hours"`
	Status        string  `json:"status"`
}

type OvertimeFilter struct {
	EmployeeID string
	Status     Status
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

func ToResponse(r OvertimeRecord) OvertimeResponse {
	resp := OvertimeResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		Date:          timeutil.FormatDate(r.Date),
		StartTime:     r.StartTime.StringPtr(),
		EndTime:       r.EndTime.StringPtr(),
		OvertimeHours: timeutil.Round2(r.OvertimeHours),
		Status:        string(r.Status),
	}
	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}
	if r.EmployeeCode != nil {
		resp.EmployeeCode = *r.EmployeeCode
	}
	return resp
}
