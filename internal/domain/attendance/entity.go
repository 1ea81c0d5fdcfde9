package attendance

import (
	"time"

	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"

	ShiftDay   = "Day"
	ShiftNight = "Night"
)

// WorkInterval is the canonical check-in/check-out pair for one employee on
// one date. Corrections produce a new interval; intervals are never mutated.
type WorkInterval struct {
	EmployeeID string
	Date       time.Time
	CheckIn    timeutil.TimeOfDay
	CheckOut   timeutil.TimeOfDay
}

// Attendance is a derived attendance record. Hours and status are computed
// from the interval and the organization rules at write time.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    timeutil.TimeOfDay
	CheckOut   timeutil.TimeOfDay
	// WorkedHours is the full-precision elapsed span; RegularHours is capped
	// at the standard-hours threshold and OvertimeHours holds the remainder.
	WorkedHours   float64
	RegularHours  float64
	OvertimeHours float64
	Status        string
	Shift         string
	// Biometric marks records produced by a punch-data import rather than
	// manual entry.
	Biometric bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
