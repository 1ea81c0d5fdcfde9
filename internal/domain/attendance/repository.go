package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns nil without error when no record exists;
	// used for upserts during import and for double-entry checks.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	Update(ctx context.Context, att Attendance) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListByEmployeeAndRange returns records ordered by date for payslip
	// derivation over a period.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// EmployeeIDsWithRecordOn reports which employees already have a record
	// for the given date. Used by the absent-marking job.
	EmployeeIDsWithRecordOn(ctx context.Context, date time.Time) (map[string]bool, error)
}
