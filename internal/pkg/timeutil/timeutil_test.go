package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TimeOfDay
	}{
		{"hours and minutes", "08:30", TimeOfDay{Hour: 8, Minute: 30, Valid: true}},
		{"with seconds", "17:45:12", TimeOfDay{Hour: 17, Minute: 45, Second: 12, Valid: true}},
		{"midnight", "00:00", TimeOfDay{Valid: true}},
		{"surrounding spaces", " 09:15 ", TimeOfDay{Hour: 9, Minute: 15, Valid: true}},
		{"empty", "", TimeOfDay{}},
		{"garbage", "not a time", TimeOfDay{}},
		{"hour out of range", "24:00", TimeOfDay{}},
		{"minute out of range", "10:61", TimeOfDay{}},
		{"negative component", "-1:30", TimeOfDay{}},
		{"too many parts", "10:20:30:40", TimeOfDay{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTimeOfDay(tt.input))
		})
	}
}

func TestElapsedHours(t *testing.T) {
	t.Run("normal working day", func(t *testing.T) {
		got := ElapsedHours(FromClock(9, 0, 0), FromClock(17, 30, 0))
		assert.InDelta(t, 8.5, got, 1e-9)
	})

	t.Run("checkout before checkin yields zero", func(t *testing.T) {
		got := ElapsedHours(FromClock(22, 0, 0), FromClock(6, 0, 0))
		assert.Zero(t, got)
	})

	t.Run("equal times yield zero", func(t *testing.T) {
		assert.Zero(t, ElapsedHours(FromClock(9, 0, 0), FromClock(9, 0, 0)))
	})

	t.Run("absent checkin yields zero", func(t *testing.T) {
		assert.Zero(t, ElapsedHours(TimeOfDay{}, FromClock(17, 0, 0)))
	})

	t.Run("absent checkout yields zero", func(t *testing.T) {
		assert.Zero(t, ElapsedHours(FromClock(9, 0, 0), TimeOfDay{}))
	})
}

func TestFromSeconds(t *testing.T) {
	assert.Equal(t, FromClock(11, 57, 37), FromSeconds(43057))
	assert.Equal(t, FromClock(0, 0, 0), FromSeconds(-5))
	assert.Equal(t, FromClock(23, 59, 59), FromSeconds(90000))
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "08:05:00", FromClock(8, 5, 0).String())
	assert.Equal(t, "", TimeOfDay{}.String())
	assert.Nil(t, TimeOfDay{}.StringPtr())

	s := FromClock(17, 0, 0).StringPtr()
	require.NotNil(t, s)
	assert.Equal(t, "17:00:00", *s)
}

func TestParseTimeOfDayPtr(t *testing.T) {
	assert.Equal(t, TimeOfDay{}, ParseTimeOfDayPtr(nil))

	s := "09:30:00"
	assert.Equal(t, FromClock(9, 30, 0), ParseTimeOfDayPtr(&s))
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2025-05-01")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), d)

	_, ok = ParseDate("05/01/2025")
	assert.False(t, ok)

	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestDateOnly(t *testing.T) {
	stamped := time.Date(2025, time.May, 1, 14, 22, 3, 500, time.UTC)
	assert.Equal(t, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), DateOnly(stamped))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 8.33, Round2(8.3333333))
	assert.Equal(t, 2.5, Round2(2.499999999999))
	assert.Equal(t, 0.0, Round2(0))
}
