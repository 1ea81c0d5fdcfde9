package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/workpulse-hr/paytime-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/paytime-backend-go/internal/domain/settings"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
	payrollService "github.com/workpulse-hr/paytime-backend-go/internal/service/payroll"
)

func testRules() settings.CompanySettings {
	rules := settings.Defaults()
	rules.StandardHoursPerDay = 8
	return rules
}

func TestDerive(t *testing.T) {
	calc := payrollService.NewCalculator()
	day := time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC)

	t.Run("full day with overtime", func(t *testing.T) {
		interval := attendance.WorkInterval{
			EmployeeID: "E1",
			Date:       day,
			CheckIn:    timeutil.FromClock(8, 0, 0),
			CheckOut:   timeutil.FromClock(18, 0, 0),
		}

		got := Derive(interval, false, testRules(), calc)

		assert.Equal(t, 10.0, got.WorkedHours)
		assert.Equal(t, 8.0, got.RegularHours)
		assert.Equal(t, 2.0, got.OvertimeHours)
		assert.Equal(t, attendance.StatusPresent, got.Status)
		assert.Equal(t, attendance.ShiftDay, got.Shift)
	})

	t.Run("missing check-in marks absent", func(t *testing.T) {
		interval := attendance.WorkInterval{
			EmployeeID: "E1",
			Date:       day,
			CheckOut:   timeutil.FromClock(17, 0, 0),
		}

		got := Derive(interval, false, testRules(), calc)

		assert.Zero(t, got.WorkedHours)
		assert.Equal(t, attendance.StatusAbsent, got.Status)
	})

	t.Run("overnight interval counts zero hours", func(t *testing.T) {
		interval := attendance.WorkInterval{
			EmployeeID: "E1",
			Date:       day,
			CheckIn:    timeutil.FromClock(22, 0, 0),
			CheckOut:   timeutil.FromClock(6, 0, 0),
		}

		got := Derive(interval, false, testRules(), calc)

		assert.Zero(t, got.WorkedHours)
		assert.Equal(t, attendance.StatusAbsent, got.Status)
		assert.Equal(t, attendance.ShiftNight, got.Shift)
	})

	t.Run("evening check-in is a night shift", func(t *testing.T) {
		interval := attendance.WorkInterval{
			EmployeeID: "E1",
			Date:       day,
			CheckIn:    timeutil.FromClock(19, 0, 0),
			CheckOut:   timeutil.FromClock(23, 0, 0),
		}

		got := Derive(interval, false, testRules(), calc)
		assert.Equal(t, attendance.ShiftNight, got.Shift)
	})

	t.Run("date normalized to midnight", func(t *testing.T) {
		interval := attendance.WorkInterval{
			EmployeeID: "E1",
			Date:       time.Date(2025, time.May, 5, 13, 45, 0, 0, time.UTC),
			CheckIn:    timeutil.FromClock(9, 0, 0),
			CheckOut:   timeutil.FromClock(17, 0, 0),
		}

		got := Derive(interval, true, testRules(), calc)
		assert.Equal(t, day, got.Date)
		assert.True(t, got.Biometric)
	})
}

func TestDeriveOvertime(t *testing.T) {
	att := attendance.Attendance{
		EmployeeID:    "E1",
		Date:          time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC),
		CheckIn:       timeutil.FromClock(8, 0, 0),
		CheckOut:      timeutil.FromClock(18, 0, 0),
		OvertimeHours: 2,
	}

	rec := deriveOvertime(att)

	// Overtime covers the tail of the interval: 16:00 to 18:00.
	assert.Equal(t, timeutil.FromClock(16, 0, 0), rec.StartTime)
	assert.Equal(t, timeutil.FromClock(18, 0, 0), rec.EndTime)
	assert.Equal(t, 2.0, rec.OvertimeHours)
}
