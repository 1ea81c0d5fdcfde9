package punchimport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
)

func TestParseAction(t *testing.T) {
	assert.Equal(t, ActionSignOn, ParseAction("SIGN ON"))
	assert.Equal(t, ActionSignOn, ParseAction("signon"))
	assert.Equal(t, ActionSignOn, ParseAction("  Sign   On  "))
	assert.Equal(t, ActionSignOn, ParseAction("IN"))
	assert.Equal(t, ActionSignOff, ParseAction("SIGN OFF"))
	assert.Equal(t, ActionSignOff, ParseAction("out"))
	assert.Equal(t, ActionUnknown, ParseAction("BREAK"))
	assert.Equal(t, ActionUnknown, ParseAction(""))
}

func TestGroupPunches(t *testing.T) {
	day := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	t.Run("min sign-on and max sign-off per day", func(t *testing.T) {
		events := []PunchEvent{
			{EmployeeID: "E1", Date: day, Time: timeutil.FromClock(8, 5, 0), Action: ActionSignOn},
			{EmployeeID: "E1", Date: day, Time: timeutil.FromClock(8, 0, 0), Action: ActionSignOn},
			{EmployeeID: "E1", Date: day, Time: timeutil.FromClock(16, 50, 0), Action: ActionSignOff},
			{EmployeeID: "E1", Date: day, Time: timeutil.FromClock(17, 0, 0), Action: ActionSignOff},
		}

		intervals := GroupPunches(events)
		require.Len(t, intervals, 1)
		assert.Equal(t, timeutil.FromClock(8, 0, 0), intervals[0].CheckIn)
		assert.Equal(t, timeutil.FromClock(17, 0, 0), intervals[0].CheckOut)
	})

	t.Run("one-sided groups are kept", func(t *testing.T) {
		events := []PunchEvent{
			{EmployeeID: "E1", Date: day, Time: timeutil.FromClock(8, 0, 0), Action: ActionSignOn},
		}

		intervals := GroupPunches(events)
		require.Len(t, intervals, 1)
		assert.True(t, intervals[0].CheckIn.Valid)
		assert.False(t, intervals[0].CheckOut.Valid)
	})

	t.Run("unknown actions are ignored", func(t *testing.T) {
		events := []PunchEvent{
			{EmployeeID: "E1", Date: day, Time: timeutil.FromClock(8, 0, 0), Action: ActionSignOn},
			{EmployeeID: "E1", Date: day, Time: timeutil.FromClock(12, 0, 0), Action: ActionUnknown},
			{EmployeeID: "E1", Date: day, Time: timeutil.FromClock(17, 0, 0), Action: ActionSignOff},
		}

		intervals := GroupPunches(events)
		require.Len(t, intervals, 1)
		assert.Equal(t, timeutil.FromClock(8, 0, 0), intervals[0].CheckIn)
		assert.Equal(t, timeutil.FromClock(17, 0, 0), intervals[0].CheckOut)
	})

	t.Run("separate employees and days stay separate", func(t *testing.T) {
		nextDay := day.AddDate(0, 0, 1)
		events := []PunchEvent{
			{EmployeeID: "E2", Date: day, Time: timeutil.FromClock(9, 0, 0), Action: ActionSignOn},
			{EmployeeID: "E1", Date: nextDay, Time: timeutil.FromClock(8, 0, 0), Action: ActionSignOn},
			{EmployeeID: "E1", Date: day, Time: timeutil.FromClock(8, 0, 0), Action: ActionSignOn},
		}

		intervals := GroupPunches(events)
		require.Len(t, intervals, 3)

		// Deterministic ordering: employee then date.
		assert.Equal(t, "E1", intervals[0].EmployeeID)
		assert.Equal(t, day, intervals[0].Date)
		assert.Equal(t, "E1", intervals[1].EmployeeID)
		assert.Equal(t, nextDay, intervals[1].Date)
		assert.Equal(t, "E2", intervals[2].EmployeeID)
	})

	t.Run("events without a valid time contribute nothing", func(t *testing.T) {
		events := []PunchEvent{
			{EmployeeID: "E1", Date: day, Action: ActionSignOn},
		}

		intervals := GroupPunches(events)
		require.Len(t, intervals, 1)
		assert.False(t, intervals[0].CheckIn.Valid)
	})
}
