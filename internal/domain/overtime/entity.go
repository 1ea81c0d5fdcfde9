package overtime

import (
	"time"

	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// OvertimeRecord is derived whenever an attendance day exceeds the standard
// hours threshold. StartTime marks where the overtime portion of the interval
// begins; EndTime is the checkout.
type OvertimeRecord struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	StartTime     timeutil.TimeOfDay
	EndTime       timeutil.TimeOfDay
	OvertimeHours float64
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
