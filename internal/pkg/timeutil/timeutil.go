package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical date form used for grouping and storage keys.
const DateLayout = "2006-01-02"

// TimeOfDay is a wall-clock time. The zero value with Valid=false means
// "absent": a missing or unparseable time that downstream derivation treats
// as zero worked hours rather than an error.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
	Valid  bool
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS". Anything else (empty,
// malformed, out-of-range components) yields an absent TimeOfDay.
func ParseTimeOfDay(s string) TimeOfDay {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimeOfDay{}
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return TimeOfDay{}
		}
		nums[i] = n
	}

	t := TimeOfDay{Hour: nums[0], Minute: nums[1], Valid: true}
	if len(nums) == 3 {
		t.Second = nums[2]
	}
	if t.Hour > 23 || t.Minute > 59 || t.Second > 59 {
		return TimeOfDay{}
	}
	return t
}

// FromClock builds a valid TimeOfDay from clock components without validation
// of ranges. Intended for values already known to be in range.
func FromClock(hour, minute, second int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute, Second: second, Valid: true}
}

// FromSeconds converts seconds since midnight into a TimeOfDay. Values outside
// a single day are clamped into [0, 86399].
func FromSeconds(secs int) TimeOfDay {
	if secs < 0 {
		secs = 0
	}
	if secs > 86399 {
		secs = 86399
	}
	return TimeOfDay{
		Hour:   secs / 3600,
		Minute: (secs % 3600) / 60,
		Second: secs % 60,
		Valid:  true,
	}
}

// Seconds returns seconds since midnight, or 0 when absent.
func (t TimeOfDay) Seconds() int {
	if !t.Valid {
		return 0
	}
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// String formats as "HH:MM:SS"; absent values format as the empty string.
func (t TimeOfDay) String() string {
	if !t.Valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// StringPtr returns the "HH:MM:SS" form, or nil when absent. Used when
// persisting nullable time columns.
func (t TimeOfDay) StringPtr() *string {
	if !t.Valid {
		return nil
	}
	s := t.String()
	return &s
}

// ParseTimeOfDayPtr parses a nullable stored time column back into a
// TimeOfDay; nil maps to absent.
func ParseTimeOfDayPtr(s *string) TimeOfDay {
	if s == nil {
		return TimeOfDay{}
	}
	return ParseTimeOfDay(*s)
}

// ElapsedHours computes worked hours between two wall-clock times on the same
// day. Returns 0 when either side is absent or when the span is not positive.
// Overnight spans are NOT wrapped: a checkout numerically before the checkin
// counts as zero hours, and overnight shifts must be recorded as two same-day
// entries.
func ElapsedHours(start, end TimeOfDay) float64 {
	if !start.Valid || !end.Valid {
		return 0
	}
	span := end.Seconds() - start.Seconds()
	if span <= 0 {
		return 0
	}
	return float64(span) / 3600.0
}

// Round2 rounds to 2 decimal places for display. Pay calculation keeps full
// precision and only the final money amount is rounded.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// ParseDate parses the canonical "YYYY-MM-DD" form.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	return t, err == nil
}

// FormatDate renders the canonical "YYYY-MM-DD" form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOnly strips any time component, normalizing to midnight UTC so that
// records keyed on the same calendar day always compare equal.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
