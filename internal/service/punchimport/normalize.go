package punchimport

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
)

// excelEpoch is the spreadsheet serial-date epoch (day 0 = 1899-12-30, which
// absorbs the historical Lotus 1900 leap-year bug).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// NormalizedStamp is the canonical (date, time) pair extracted from a raw
// spreadsheet timestamp. Either side may be absent.
type NormalizedStamp struct {
	Date    time.Time
	HasDate bool
	Time    timeutil.TimeOfDay
}

// NormalizeTimestamp parses the heterogeneous timestamp representations seen
// in spreadsheet exports, in this resolution order:
//
//  1. Excel numeric date serial (days since 1899-12-30, fractional part is
//     the time of day);
//  2. "YYYY/MM/DD-HH:mm:ss", the biometric-device export format;
//  3. ISO "YYYY-MM-DD", optionally followed by a time;
//  4. "MM/DD/YYYY", optionally followed by a time.
//
// Anything unrecognized yields HasDate=false; callers fall back to a supplied
// default date.
func NormalizeTimestamp(raw string) NormalizedStamp {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NormalizedStamp{}
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		return fromSerial(serial)
	}

	if stamp, ok := fromDeviceFormat(raw); ok {
		return stamp
	}

	datePart, timePart := splitDateTime(raw)

	if d, err := time.Parse("2006-01-02", datePart); err == nil {
		return NormalizedStamp{Date: d, HasDate: true, Time: timeutil.ParseTimeOfDay(timePart)}
	}

	if d, err := time.Parse("01/02/2006", datePart); err == nil {
		return NormalizedStamp{Date: d, HasDate: true, Time: timeutil.ParseTimeOfDay(timePart)}
	}

	// Unrecognized date: the value may still carry a bare time of day.
	return NormalizedStamp{Time: timeutil.ParseTimeOfDay(raw)}
}

func fromSerial(serial float64) NormalizedStamp {
	if serial <= 0 {
		return NormalizedStamp{}
	}
	days := math.Floor(serial)
	frac := serial - days

	date := excelEpoch.AddDate(0, 0, int(days))
	secs := int(math.Round(frac * 86400))
	if secs >= 86400 {
		secs = 86399
	}

	stamp := NormalizedStamp{Date: date, HasDate: true}
	if frac > 0 {
		stamp.Time = timeutil.FromSeconds(secs)
	}
	return stamp
}

// fromDeviceFormat parses "YYYY/MM/DD-HH:mm:ss", where '-' separates the date
// and time portions.
func fromDeviceFormat(raw string) (NormalizedStamp, bool) {
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return NormalizedStamp{}, false
	}
	d, err := time.Parse("2006/01/02", strings.TrimSpace(parts[0]))
	if err != nil {
		return NormalizedStamp{}, false
	}
	return NormalizedStamp{Date: d, HasDate: true, Time: timeutil.ParseTimeOfDay(parts[1])}, true
}

// splitDateTime separates "2025-05-01 08:30:00" style values into date and
// time portions. A 'T' separator is treated like a space.
func splitDateTime(raw string) (datePart, timePart string) {
	raw = strings.ReplaceAll(raw, "T", " ")
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return "", ""
	}
	datePart = fields[0]
	if len(fields) > 1 {
		timePart = fields[1]
	}
	return datePart, timePart
}
