package punchimport

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
)

func TestReadRows(t *testing.T) {
	t.Run("csv", func(t *testing.T) {
		csv := "id,date,checkin,checkout\nE1,2025-05-01,08:00,17:00\n"
		rows, err := readRows("punches.csv", strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"id", "date", "checkin", "checkout"}, rows[0])
	})

	t.Run("ragged csv rows are tolerated", func(t *testing.T) {
		csv := "id,date,checkin,checkout\nE1,2025-05-01\n"
		rows, err := readRows("punches.csv", strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, rows, 2)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := readRows("punches.txt", strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrUnsupportedFileType)
	})
}

func TestCollectIntervalRows(t *testing.T) {
	svc := &ImportServiceImpl{}
	mapped, _ := mapHeaders([]string{"id", "date", "checkin", "checkout"})
	defaultDate := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	t.Run("well-formed rows", func(t *testing.T) {
		var result ImportResult
		rows := [][]string{
			{"E1", "2025-05-02", "08:00", "17:00"},
		}

		intervals := svc.collectIntervalRows(rows, mapped, defaultDate, &result)

		require.Len(t, intervals, 1)
		assert.Equal(t, "E1", intervals[0].EmployeeID)
		assert.Equal(t, time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC), intervals[0].Date)
		assert.Equal(t, timeutil.FromClock(8, 0, 0), intervals[0].CheckIn)
		assert.Equal(t, timeutil.FromClock(17, 0, 0), intervals[0].CheckOut)
		assert.Zero(t, result.Skipped)
	})

	t.Run("missing date falls back to default", func(t *testing.T) {
		var result ImportResult
		rows := [][]string{
			{"E1", "", "08:00", "17:00"},
		}

		intervals := svc.collectIntervalRows(rows, mapped, defaultDate, &result)

		require.Len(t, intervals, 1)
		assert.Equal(t, defaultDate, intervals[0].Date)
	})

	t.Run("missing employee id is skipped and counted", func(t *testing.T) {
		var result ImportResult
		rows := [][]string{
			{"", "2025-05-02", "08:00", "17:00"},
			{"E1", "2025-05-02", "08:00", "17:00"},
		}

		intervals := svc.collectIntervalRows(rows, mapped, defaultDate, &result)

		assert.Len(t, intervals, 1)
		assert.Equal(t, 1, result.Skipped)
		assert.Len(t, result.SkipReasons, 1)
	})

	t.Run("blank rows are ignored without counting", func(t *testing.T) {
		var result ImportResult
		rows := [][]string{
			{"", "", "", ""},
			{"E1", "2025-05-02", "08:00", "17:00"},
		}

		intervals := svc.collectIntervalRows(rows, mapped, defaultDate, &result)

		assert.Len(t, intervals, 1)
		assert.Zero(t, result.Skipped)
	})
}

func TestCollectPunchRows(t *testing.T) {
	svc := &ImportServiceImpl{}
	mapped, _ := mapHeaders([]string{"id", "timestamp", "action"})
	defaultDate := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	t.Run("device export folds into one interval per day", func(t *testing.T) {
		var result ImportResult
		rows := [][]string{
			{"E1", "2025/05/01-08:00:00", "SIGN ON"},
			{"E1", "2025/05/01-08:05:00", "SIGN ON"},
			{"E1", "2025/05/01-17:00:00", "SIGN OFF"},
		}

		intervals := svc.collectPunchRows(rows, mapped, defaultDate, &result)

		require.Len(t, intervals, 1)
		assert.Equal(t, timeutil.FromClock(8, 0, 0), intervals[0].CheckIn)
		assert.Equal(t, timeutil.FromClock(17, 0, 0), intervals[0].CheckOut)
		assert.Zero(t, result.Skipped)
	})

	t.Run("bare times use the default date", func(t *testing.T) {
		var result ImportResult
		rows := [][]string{
			{"E1", "08:00", "IN"},
			{"E1", "17:00", "OUT"},
		}

		intervals := svc.collectPunchRows(rows, mapped, defaultDate, &result)

		require.Len(t, intervals, 1)
		assert.Equal(t, defaultDate, intervals[0].Date)
		assert.Equal(t, timeutil.FromClock(8, 0, 0), intervals[0].CheckIn)
	})

	t.Run("rows without employee id are skipped", func(t *testing.T) {
		var result ImportResult
		rows := [][]string{
			{"", "2025/05/01-08:00:00", "SIGN ON"},
		}

		intervals := svc.collectPunchRows(rows, mapped, defaultDate, &result)

		assert.Empty(t, intervals)
		assert.Equal(t, 1, result.Skipped)
	})
}
