package punchimport

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/workpulse-hr/paytime-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/settings"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
	attendanceService "github.com/workpulse-hr/paytime-backend-go/internal/service/attendance"
)

var ErrUnsupportedFileType = errors.New("unsupported file type: expected .xlsx, .xls or .csv")

// ImportResult reports what happened to each row of an import. Bad rows are
// skipped and counted, never a hard failure.
type ImportResult struct {
	Imported    int      `json:"imported"`
	Skipped     int      `json:"skipped"`
	SkipReasons []string `json:"skip_reasons,omitempty"`
}

type ImportService interface {
	// ImportFile parses a spreadsheet of punch events or check-in/out rows
	// and persists one derived attendance record per employee per day.
	// defaultDate is used for rows whose timestamp carries no resolvable date.
	ImportFile(ctx context.Context, filename string, r io.Reader, defaultDate time.Time) (ImportResult, error)
}

type ImportServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	settingsRepo  settings.SettingsRepository
	attendanceSvc attendanceService.AttendanceService
}

func NewImportService(
	employeeRepo employee.EmployeeRepository,
	settingsRepo settings.SettingsRepository,
	attendanceSvc attendanceService.AttendanceService,
) ImportService {
	return &ImportServiceImpl{
		employeeRepo:  employeeRepo,
		settingsRepo:  settingsRepo,
		attendanceSvc: attendanceSvc,
	}
}

// ImportFile implements ImportService.
func (s *ImportServiceImpl) ImportFile(ctx context.Context, filename string, r io.Reader, defaultDate time.Time) (ImportResult, error) {
	rows, err := readRows(filename, r)
	if err != nil {
		return ImportResult{}, err
	}
	if len(rows) < 2 {
		return ImportResult{}, errors.New("file has no data rows")
	}

	mapped, unmapped := mapHeaders(rows[0])
	for _, h := range unmapped {
		slog.Warn("Ignoring unmapped import column", "header", h)
	}
	if len(mapped) == 0 {
		return ImportResult{}, errors.New("no recognizable columns in header row")
	}

	var result ImportResult
	var intervals []attendance.WorkInterval
	if hasPunchShape(mapped) {
		intervals = s.collectPunchRows(rows[1:], mapped, defaultDate, &result)
	} else {
		intervals = s.collectIntervalRows(rows[1:], mapped, defaultDate, &result)
	}

	rules, err := s.loadRules(ctx)
	if err != nil {
		return ImportResult{}, err
	}

	for _, interval := range intervals {
		emp, err := s.resolveEmployee(ctx, interval.EmployeeID)
		if err != nil {
			result.skip(fmt.Sprintf("unknown employee %q", interval.EmployeeID))
			continue
		}
		interval.EmployeeID = emp.ID

		if _, err := s.attendanceSvc.RecordInterval(ctx, interval, true, rules); err != nil {
			slog.Error("Failed to persist imported attendance", "employee_id", emp.ID, "date", timeutil.FormatDate(interval.Date), "error", err)
			result.skip(fmt.Sprintf("employee %s %s: %v", emp.Code, timeutil.FormatDate(interval.Date), err))
			continue
		}
		result.Imported++
	}

	return result, nil
}

// collectPunchRows handles device exports: one row per punch event, folded
// into intervals per employee per day.
func (s *ImportServiceImpl) collectPunchRows(rows [][]string, mapped map[int]column, defaultDate time.Time, result *ImportResult) []attendance.WorkInterval {
	var events []PunchEvent
	for i, row := range rows {
		if isBlankRow(row) {
			continue
		}
		var employeeRaw, timestampRaw, actionRaw string
		for idx, c := range mapped {
			if idx >= len(row) {
				continue
			}
			switch c {
			case colEmployeeID:
				employeeRaw = strings.TrimSpace(row[idx])
			case colTimestamp:
				timestampRaw = strings.TrimSpace(row[idx])
			case colAction:
				actionRaw = row[idx]
			}
		}

		if employeeRaw == "" {
			result.skip(fmt.Sprintf("row %d: missing employee identifier", i+2))
			continue
		}

		stamp := NormalizeTimestamp(timestampRaw)
		date := defaultDate
		if stamp.HasDate {
			date = stamp.Date
		} else if date.IsZero() {
			result.skip(fmt.Sprintf("row %d: no resolvable date", i+2))
			continue
		}

		events = append(events, PunchEvent{
			EmployeeID: employeeRaw,
			Date:       date,
			Time:       stamp.Time,
			Action:     ParseAction(actionRaw),
		})
	}
	return GroupPunches(events)
}

// collectIntervalRows handles manual exports: one row per employee-day with
// check-in and check-out columns.
func (s *ImportServiceImpl) collectIntervalRows(rows [][]string, mapped map[int]column, defaultDate time.Time, result *ImportResult) []attendance.WorkInterval {
	var intervals []attendance.WorkInterval
	for i, row := range rows {
		if isBlankRow(row) {
			continue
		}
		var employeeRaw, dateRaw, checkInRaw, checkOutRaw string
		for idx, c := range mapped {
			if idx >= len(row) {
				continue
			}
			switch c {
			case colEmployeeID:
				employeeRaw = strings.TrimSpace(row[idx])
			case colDate:
				dateRaw = strings.TrimSpace(row[idx])
			case colCheckIn:
				checkInRaw = strings.TrimSpace(row[idx])
			case colCheckOut:
				checkOutRaw = strings.TrimSpace(row[idx])
			}
		}

		if employeeRaw == "" {
			result.skip(fmt.Sprintf("row %d: missing employee identifier", i+2))
			continue
		}

		date := defaultDate
		if dateRaw != "" {
			if stamp := NormalizeTimestamp(dateRaw); stamp.HasDate {
				date = stamp.Date
			}
		}
		if date.IsZero() {
			result.skip(fmt.Sprintf("row %d: no resolvable date", i+2))
			continue
		}

		checkIn := NormalizeTimestamp(checkInRaw)
		checkOut := NormalizeTimestamp(checkOutRaw)

		intervals = append(intervals, attendance.WorkInterval{
			EmployeeID: employeeRaw,
			Date:       timeutil.DateOnly(date),
			CheckIn:    checkIn.Time,
			CheckOut:   checkOut.Time,
		})
	}
	return intervals
}

func (s *ImportServiceImpl) resolveEmployee(ctx context.Context, raw string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByCode(ctx, raw)
	if err == nil {
		return emp, nil
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, err
	}
	return s.employeeRepo.GetByID(ctx, raw)
}

func (s *ImportServiceImpl) loadRules(ctx context.Context) (settings.CompanySettings, error) {
	rules, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.Defaults(), nil
		}
		return settings.CompanySettings{}, fmt.Errorf("failed to load company settings: %w", err)
	}
	return rules, nil
}

func (r *ImportResult) skip(reason string) {
	r.Skipped++
	r.SkipReasons = append(r.SkipReasons, reason)
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// readRows loads the raw cell grid from a spreadsheet, dispatching on the
// file extension.
func readRows(filename string, r io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return readExcelRows(r)
	case ".csv":
		return readCSVRows(r)
	default:
		return nil, ErrUnsupportedFileType
	}
}

func readExcelRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSVRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv payload: %w", err)
	}
	return rows, nil
}
