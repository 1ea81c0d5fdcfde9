package database

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies any pending SQL migrations at startup. A database
// that is already up to date is not an error.
func RunMigrations(migrationsPath, dsn string) error {
	// golang-migrate selects its pgx/v5 driver by URL scheme.
	databaseURL := strings.Replace(dsn, "postgres://", "pgx5://", 1)

	m, err := migrate.New("file://"+migrationsPath, databaseURL)
	if err != nil {
		return fmt.Errorf("initialize migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("No database migrations to apply")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	slog.Info("Database migrations applied")
	return nil
}
