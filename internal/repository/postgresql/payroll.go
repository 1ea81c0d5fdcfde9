package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/payroll"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payslipColumns = `
	p.id, p.employee_id, p.period_start, p.period_end,
	p.total_regular_hours, p.total_overtime_hours, p.total_pay, p.status,
	p.created_at, p.updated_at, e.name, e.code
`

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var p payroll.Payslip
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd,
		&p.TotalRegularHours, &p.TotalOvertimeHours, &p.TotalPay, &p.Status,
		&p.CreatedAt, &p.UpdatedAt, &p.EmployeeName, &p.EmployeeCode,
	)
	if err != nil {
		return payroll.Payslip{}, err
	}
	return p, nil
}

// CreatePayslip implements payroll.PayrollRepository. The payslip and all its
// lines are written in one transaction.
func (r *payrollRepositoryImpl) CreatePayslip(ctx context.Context, slip payroll.Payslip) (payroll.Payslip, error) {
	slip.ID = uuid.NewString()

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		slipQuery := `
			INSERT INTO payslips (
				id, employee_id, period_start, period_end,
				total_regular_hours, total_overtime_hours, total_pay, status
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at, updated_at
		`
		err := tx.QueryRow(ctx, slipQuery,
			slip.ID, slip.EmployeeID, slip.PeriodStart, slip.PeriodEnd,
			slip.TotalRegularHours, slip.TotalOvertimeHours, slip.TotalPay, slip.Status,
		).Scan(&slip.CreatedAt, &slip.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return payroll.ErrPayslipAlreadyExists
			}
			return fmt.Errorf("failed to insert payslip: %w", err)
		}

		lineQuery := `
			INSERT INTO payslip_lines (
				id, payslip_id, employee_id, date,
				regular_hours, overtime_hours, multiplier, rate_type, total_pay
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`
		for i := range slip.Lines {
			line := &slip.Lines[i]
			line.ID = uuid.NewString()
			line.PayslipID = slip.ID

			_, err := tx.Exec(ctx, lineQuery,
				line.ID, line.PayslipID, line.EmployeeID, line.Date,
				line.RegularHours, line.OvertimeHours, line.Multiplier, line.RateType, line.TotalPay,
			)
			if err != nil {
				return fmt.Errorf("failed to insert payslip line: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return payroll.Payslip{}, err
	}

	return slip, nil
}

// GetPayslipByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetPayslipByID(ctx context.Context, id string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`, payslipColumns)

	slip, err := scanPayslip(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	lines, err := r.getLines(ctx, slip.ID)
	if err != nil {
		return payroll.Payslip{}, err
	}
	slip.Lines = lines

	return slip, nil
}

// GetPayslipByEmployeePeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetPayslipByEmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.period_start = $2 AND p.period_end = $3
	`, payslipColumns)

	slip, err := scanPayslip(q.QueryRow(ctx, query, employeeID, start, end))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip by period: %w", err)
	}

	return slip, nil
}

// ListPayslips implements payroll.PayrollRepository. Lines are not loaded;
// callers fetch a single payslip for the full detail.
func (r *payrollRepositoryImpl) ListPayslips(ctx context.Context, filter payroll.PayslipFilter) ([]payroll.Payslip, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND p.employee_id = $%d", argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND p.period_start >= $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND p.period_end <= $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM payslips p " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payslips: %w", err)
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		%s
		ORDER BY p.period_start DESC, e.code
		LIMIT $%d OFFSET $%d
	`, payslipColumns, where, argPos, argPos+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var slips []payroll.Payslip
	for rows.Next() {
		slip, err := scanPayslip(rows)
		if err != nil {
			return nil, 0, err
		}
		slips = append(slips, slip)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return slips, total, nil
}

// DeletePayslip implements payroll.PayrollRepository. Lines cascade.
func (r *payrollRepositoryImpl) DeletePayslip(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payslips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payslip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayslipNotFound
	}

	return nil
}

func (r *payrollRepositoryImpl) getLines(ctx context.Context, payslipID string) ([]payroll.PayLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payslip_id, employee_id, date,
			regular_hours, overtime_hours, multiplier, rate_type, total_pay, created_at
		FROM payslip_lines
		WHERE payslip_id = $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, payslipID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payslip lines: %w", err)
	}
	defer rows.Close()

	var lines []payroll.PayLine
	for rows.Next() {
		var line payroll.PayLine
		err := rows.Scan(
			&line.ID, &line.PayslipID, &line.EmployeeID, &line.Date,
			&line.RegularHours, &line.OvertimeHours, &line.Multiplier, &line.RateType, &line.TotalPay, &line.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
