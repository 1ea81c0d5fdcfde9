package punchimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapHeaders(t *testing.T) {
	t.Run("synonyms resolve regardless of case and spacing", func(t *testing.T) {
		mapped, unmapped := mapHeaders([]string{"Employee ID", "DATE", "Check In", "check_out"})

		assert.Empty(t, unmapped)
		assert.Equal(t, colEmployeeID, mapped[0])
		assert.Equal(t, colDate, mapped[1])
		assert.Equal(t, colCheckIn, mapped[2])
		assert.Equal(t, colCheckOut, mapped[3])
	})

	t.Run("unrecognized headers are reported", func(t *testing.T) {
		mapped, unmapped := mapHeaders([]string{"id", "Department", "date"})

		assert.Len(t, mapped, 2)
		assert.Equal(t, []string{"Department"}, unmapped)
	})

	t.Run("duplicate synonyms are ambiguous and dropped", func(t *testing.T) {
		mapped, unmapped := mapHeaders([]string{"employee_id", "EmpID"})

		assert.Len(t, mapped, 1)
		assert.Equal(t, []string{"EmpID"}, unmapped)
	})

	t.Run("blank headers are skipped silently", func(t *testing.T) {
		mapped, unmapped := mapHeaders([]string{"id", "", "date"})

		assert.Len(t, mapped, 2)
		assert.Empty(t, unmapped)
	})
}

func TestHasPunchShape(t *testing.T) {
	punch, _ := mapHeaders([]string{"id", "timestamp", "action"})
	assert.True(t, hasPunchShape(punch))

	interval, _ := mapHeaders([]string{"id", "date", "checkin", "checkout"})
	assert.False(t, hasPunchShape(interval))

	timestampOnly, _ := mapHeaders([]string{"id", "timestamp"})
	assert.False(t, hasPunchShape(timestampOnly))
}
