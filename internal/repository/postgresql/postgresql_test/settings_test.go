package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse-hr/paytime-backend-go/internal/domain/settings"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/database"
	"github.com/workpulse-hr/paytime-backend-go/internal/repository/postgresql"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
)

// testDatabase connects once per run; tests are skipped when no test database
// is configured.
func testDatabase(t *testing.T) *database.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDBOnce.Do(func() {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	})
	return testDB
}

func truncateSettings(t *testing.T, db *database.DB) {
	_, err := db.Exec(context.Background(), "TRUNCATE TABLE company_settings CASCADE")
	require.NoError(t, err)
}

func TestSettingsRepositoryRoundTrip(t *testing.T) {
	db := testDatabase(t)
	truncateSettings(t, db)

	ctx := context.Background()
	repo := postgresql.NewSettingsRepository(db)

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, settings.ErrSettingsNotFound)

	stored := settings.Defaults()
	stored.BaseHourlyRate = decimal.NewFromInt(25)
	stored.OvertimeHourlyRate = decimal.RequireFromString("37.5")
	stored.HolidayMultiplier = 1.5
	stored.WeekendDates = []time.Time{time.Date(2025, time.December, 24, 0, 0, 0, 0, time.UTC)}
	stored.Holidays = []settings.Holiday{
		{Date: time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC), Name: "Christmas", Recurring: true, PayMultiplier: 2.0},
	}

	saved, err := repo.Upsert(ctx, stored)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	got, err := repo.Get(ctx)
	require.NoError(t, err)

	assert.True(t, got.BaseHourlyRate.Equal(stored.BaseHourlyRate))
	assert.Equal(t, 1.5, got.HolidayMultiplier)
	assert.ElementsMatch(t, stored.WeekendWeekdays, got.WeekendWeekdays)
	require.Len(t, got.Holidays, 1)
	assert.Equal(t, "Christmas", got.Holidays[0].Name)
	assert.True(t, got.Holidays[0].Recurring)
	assert.Equal(t, 2.0, got.Holidays[0].PayMultiplier)

	// A second upsert with the same ID updates in place.
	got.HolidayMultiplier = 1.75
	_, err = repo.Upsert(ctx, got)
	require.NoError(t, err)

	again, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.75, again.HolidayMultiplier)
	assert.Equal(t, saved.ID, again.ID)
}
