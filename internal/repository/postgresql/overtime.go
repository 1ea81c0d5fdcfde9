package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/overtime"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/database"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
)

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepositoryImpl{db: db}
}

const overtimeColumns = `
	o.id, o.employee_id, o.date, o.start_time, o.end_time,
	o.overtime_hours, o.status, o.created_at, o.updated_at,
	e.name, e.code
`

func scanOvertime(row pgx.Row) (overtime.OvertimeRecord, error) {
	var rec overtime.OvertimeRecord
	var startTime, endTime *string

	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &startTime, &endTime,
		&rec.OvertimeHours, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeCode,
	)
	if err != nil {
		return overtime.OvertimeRecord{}, err
	}

	rec.StartTime = timeutil.ParseTimeOfDayPtr(startTime)
	rec.EndTime = timeutil.ParseTimeOfDayPtr(endTime)
	return rec, nil
}

// UpsertForDate implements overtime.OvertimeRepository. A record that has
// already been approved or rejected is returned unchanged.
func (r *overtimeRepositoryImpl) UpsertForDate(ctx context.Context, rec overtime.OvertimeRecord) (overtime.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	var existingID string
	var existingStatus overtime.Status
	err := q.QueryRow(ctx,
		`SELECT id, status FROM overtime_records WHERE employee_id = $1 AND date = $2`,
		rec.EmployeeID, rec.Date,
	).Scan(&existingID, &existingStatus)

	switch {
	case err == nil && existingStatus != overtime.StatusPending:
		return r.GetByID(ctx, existingID)

	case err == nil:
		rec.ID = existingID
		updateQuery := `
			UPDATE overtime_records
			SET start_time = $1, end_time = $2, overtime_hours = $3, updated_at = NOW()
			WHERE id = $4
		`
		if _, err := q.Exec(ctx, updateQuery, rec.StartTime.StringPtr(), rec.EndTime.StringPtr(), rec.OvertimeHours, rec.ID); err != nil {
			return overtime.OvertimeRecord{}, fmt.Errorf("failed to update overtime record: %w", err)
		}
		return rec, nil

	case errors.Is(err, pgx.ErrNoRows):
		rec.ID = uuid.NewString()
		rec.Status = overtime.StatusPending
		insertQuery := `
			INSERT INTO overtime_records (id, employee_id, date, start_time, end_time, overtime_hours, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at, updated_at
		`
		err := q.QueryRow(ctx, insertQuery,
			rec.ID, rec.EmployeeID, rec.Date,
			rec.StartTime.StringPtr(), rec.EndTime.StringPtr(), rec.OvertimeHours, rec.Status,
		).Scan(&rec.CreatedAt, &rec.UpdatedAt)
		if err != nil {
			return overtime.OvertimeRecord{}, fmt.Errorf("failed to create overtime record: %w", err)
		}
		return rec, nil

	default:
		return overtime.OvertimeRecord{}, fmt.Errorf("failed to check existing overtime record: %w", err)
	}
}

// DeletePendingForDate implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) DeletePendingForDate(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`DELETE FROM overtime_records WHERE employee_id = $1 AND date = $2 AND status = $3`,
		employeeID, date, overtime.StatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to delete pending overtime record: %w", err)
	}

	return nil
}

// GetByID implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) GetByID(ctx context.Context, id string) (overtime.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM overtime_records o
		JOIN employees e ON e.id = o.employee_id
		WHERE o.id = $1
	`, overtimeColumns)

	rec, err := scanOvertime(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.OvertimeRecord{}, overtime.ErrOvertimeNotFound
		}
		return overtime.OvertimeRecord{}, fmt.Errorf("failed to get overtime record: %w", err)
	}

	return rec, nil
}

// List implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) List(ctx context.Context, filter overtime.OvertimeFilter) ([]overtime.OvertimeRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND o.employee_id = $%d", argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND o.status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND o.date >= $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND o.date <= $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM overtime_records o " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count overtime records: %w", err)
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM overtime_records o
		JOIN employees e ON e.id = o.employee_id
		%s
		ORDER BY o.date DESC, e.code
		LIMIT $%d OFFSET $%d
	`, overtimeColumns, where, argPos, argPos+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list overtime records: %w", err)
	}
	defer rows.Close()

	var records []overtime.OvertimeRecord
	for rows.Next() {
		rec, err := scanOvertime(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// UpdateStatus implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) UpdateStatus(ctx context.Context, id string, status overtime.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE overtime_records SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update overtime status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeNotFound
	}

	return nil
}
