package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/database"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in, a.check_out,
	a.worked_hours, a.regular_hours, a.overtime_hours,
	a.status, a.shift, a.biometric, a.created_at, a.updated_at,
	e.name, e.code
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	var checkIn, checkOut *string

	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &checkIn, &checkOut,
		&att.WorkedHours, &att.RegularHours, &att.OvertimeHours,
		&att.Status, &att.Shift, &att.Biometric, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName, &att.EmployeeCode,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	att.CheckIn = timeutil.ParseTimeOfDayPtr(checkIn)
	att.CheckOut = timeutil.ParseTimeOfDayPtr(checkOut)
	return att, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	att.ID = uuid.NewString()

	query := `
		INSERT INTO attendances (
			id, employee_id, date, check_in, check_out,
			worked_hours, regular_hours, overtime_hours, status, shift, biometric
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.EmployeeID, att.Date, att.CheckIn.StringPtr(), att.CheckOut.StringPtr(),
		att.WorkedHours, att.RegularHours, att.OvertimeHours, att.Status, att.Shift, att.Biometric,
	).Scan(&att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAttendanceExists
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`, attendanceColumns)

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date = $2
	`, attendanceColumns)

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_in = $1, check_out = $2,
			worked_hours = $3, regular_hours = $4, overtime_hours = $5,
			status = $6, shift = $7, biometric = $8, updated_at = NOW()
		WHERE id = $9
	`

	tag, err := q.Exec(ctx, query,
		att.CheckIn.StringPtr(), att.CheckOut.StringPtr(),
		att.WorkedHours, att.RegularHours, att.OvertimeHours,
		att.Status, att.Shift, att.Biometric, att.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND a.employee_id = $%d", argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND a.date >= $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND a.date <= $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND a.status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendances a " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		%s
		ORDER BY a.date DESC, e.code
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, where, argPos, argPos+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date
	`, attendanceColumns)

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// EmployeeIDsWithRecordOn implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) EmployeeIDsWithRecordOn(ctx context.Context, date time.Time) (map[string]bool, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT employee_id FROM attendances WHERE date = $1`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get recorded employee ids: %w", err)
	}
	defer rows.Close()

	recorded := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		recorded[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return recorded, nil
}
