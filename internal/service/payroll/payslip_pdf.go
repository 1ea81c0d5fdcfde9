package payroll

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
)

// RenderPayslipPDF implements PayrollService.
func (s *PayrollServiceImpl) RenderPayslipPDF(ctx context.Context, id string) ([]byte, error) {
	slip, err := s.payrollRepo.GetPayslipByID(ctx, id)
	if err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, slip.EmployeeID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", emp.Name, emp.Code))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", timeutil.FormatDate(slip.PeriodStart), timeutil.FormatDate(slip.PeriodEnd)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	writeLineRow(pdf, "Date", "Regular", "Overtime", "Rate Type", "Multiplier", "Pay")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range slip.Lines {
		writeLineRow(pdf,
			timeutil.FormatDate(line.Date),
			fmt.Sprintf("%.2f", line.RegularHours),
			fmt.Sprintf("%.2f", line.OvertimeHours),
			string(line.RateType),
			fmt.Sprintf("%.2f", line.Multiplier),
			line.TotalPay.StringFixed(2),
		)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Regular hours: %.2f", slip.TotalRegularHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Overtime hours: %.2f", slip.TotalOvertimeHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total pay: %s", slip.TotalPay.StringFixed(2)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeLineRow(pdf *gofpdf.Fpdf, cols ...string) {
	widths := []float64{30, 25, 25, 30, 25, 30}
	for i, c := range cols {
		pdf.CellFormat(widths[i], 7, c, "1", 0, "", false, 0, "")
	}
	pdf.Ln(-1)
}
