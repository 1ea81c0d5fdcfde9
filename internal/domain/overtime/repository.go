package overtime

import (
	"context"
	"time"
)

type OvertimeRepository interface {
	// UpsertForDate replaces the pending record for (employee, date) so that
	// re-deriving an attendance day never duplicates overtime rows. Records
	// already approved or rejected are left untouched.
	UpsertForDate(ctx context.Context, rec OvertimeRecord) (OvertimeRecord, error)

	// DeletePendingForDate removes a pending record when a correction brings
	// the day back under the standard-hours threshold.
	DeletePendingForDate(ctx context.Context, employeeID string, date time.Time) error

	GetByID(ctx context.Context, id string) (OvertimeRecord, error)
	List(ctx context.Context, filter OvertimeFilter) ([]OvertimeRecord, int64, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
