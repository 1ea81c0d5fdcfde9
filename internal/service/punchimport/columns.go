package punchimport

import "strings"

// column identifies a canonical spreadsheet column after synonym mapping.
type column int

const (
	colUnknown column = iota
	colEmployeeID
	colDate
	colCheckIn
	colCheckOut
	colTimestamp
	colAction
)

// columnSynonyms maps normalized header names to canonical columns. Headers
// are matched case-insensitively with all whitespace removed, so
// "Employee ID", "employee_id" and "EMPLOYEEID" all resolve the same way.
var columnSynonyms = map[string]column{
	"employeeid":  colEmployeeID,
	"employee_id": colEmployeeID,
	"id":          colEmployeeID,
	"empid":       colEmployeeID,

	"date": colDate,

	"checkin":  colCheckIn,
	"check_in": colCheckIn,
	"timein":   colCheckIn,

	"checkout":  colCheckOut,
	"check_out": colCheckOut,
	"timeout":   colCheckOut,

	"timestamp": colTimestamp,

	"action": colAction,
}

func normalizeHeader(h string) string {
	h = strings.ToLower(h)
	h = strings.ReplaceAll(h, " ", "")
	h = strings.ReplaceAll(h, "\t", "")
	return strings.TrimSpace(h)
}

// mapHeaders resolves a header row to canonical columns by index. Unmapped
// headers are returned separately so the caller can log and drop them instead
// of silently coercing.
func mapHeaders(headers []string) (mapped map[int]column, unmapped []string) {
	mapped = make(map[int]column)
	for i, h := range headers {
		c, ok := columnSynonyms[normalizeHeader(h)]
		if !ok {
			if strings.TrimSpace(h) != "" {
				unmapped = append(unmapped, h)
			}
			continue
		}
		// First mapping wins; a duplicate synonym is ambiguous and dropped.
		duplicate := false
		for _, existing := range mapped {
			if existing == c {
				duplicate = true
				break
			}
		}
		if duplicate {
			unmapped = append(unmapped, h)
			continue
		}
		mapped[i] = c
	}
	return mapped, unmapped
}

// hasPunchShape reports whether the mapped headers describe punch-event rows
// (timestamp + action) as opposed to interval rows (check-in/check-out).
func hasPunchShape(mapped map[int]column) bool {
	var hasTimestamp, hasAction bool
	for _, c := range mapped {
		switch c {
		case colTimestamp:
			hasTimestamp = true
		case colAction:
			hasAction = true
		}
	}
	return hasTimestamp && hasAction
}
