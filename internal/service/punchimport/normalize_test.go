package punchimport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
)

func TestNormalizeTimestamp(t *testing.T) {
	mayFirst := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	t.Run("device export format", func(t *testing.T) {
		got := NormalizeTimestamp("2025/05/01-11:57:37")
		require.True(t, got.HasDate)
		assert.Equal(t, mayFirst, got.Date)
		assert.Equal(t, timeutil.FromClock(11, 57, 37), got.Time)
	})

	t.Run("excel serial with fractional time", func(t *testing.T) {
		got := NormalizeTimestamp("45778.4983449074")
		require.True(t, got.HasDate)
		assert.Equal(t, mayFirst, got.Date)
		assert.Equal(t, timeutil.FromClock(11, 57, 37), got.Time)
	})

	t.Run("excel serial date only", func(t *testing.T) {
		got := NormalizeTimestamp("45778")
		require.True(t, got.HasDate)
		assert.Equal(t, mayFirst, got.Date)
		assert.False(t, got.Time.Valid)
	})

	t.Run("iso date", func(t *testing.T) {
		got := NormalizeTimestamp("2025-05-01")
		require.True(t, got.HasDate)
		assert.Equal(t, mayFirst, got.Date)
		assert.False(t, got.Time.Valid)
	})

	t.Run("iso date with time", func(t *testing.T) {
		got := NormalizeTimestamp("2025-05-01 08:30:00")
		require.True(t, got.HasDate)
		assert.Equal(t, mayFirst, got.Date)
		assert.Equal(t, timeutil.FromClock(8, 30, 0), got.Time)
	})

	t.Run("iso date with T separator", func(t *testing.T) {
		got := NormalizeTimestamp("2025-05-01T08:30:00")
		require.True(t, got.HasDate)
		assert.Equal(t, timeutil.FromClock(8, 30, 0), got.Time)
	})

	t.Run("us date format", func(t *testing.T) {
		got := NormalizeTimestamp("05/01/2025 17:15")
		require.True(t, got.HasDate)
		assert.Equal(t, mayFirst, got.Date)
		assert.Equal(t, timeutil.FromClock(17, 15, 0), got.Time)
	})

	t.Run("bare time keeps HasDate false", func(t *testing.T) {
		got := NormalizeTimestamp("08:30")
		assert.False(t, got.HasDate)
		assert.Equal(t, timeutil.FromClock(8, 30, 0), got.Time)
	})

	t.Run("garbage yields nothing", func(t *testing.T) {
		got := NormalizeTimestamp("not a timestamp")
		assert.False(t, got.HasDate)
		assert.False(t, got.Time.Valid)
	})

	t.Run("empty yields nothing", func(t *testing.T) {
		got := NormalizeTimestamp("")
		assert.False(t, got.HasDate)
		assert.False(t, got.Time.Valid)
	})

	t.Run("non-positive serial yields nothing", func(t *testing.T) {
		got := NormalizeTimestamp("0")
		assert.False(t, got.HasDate)
	})
}
