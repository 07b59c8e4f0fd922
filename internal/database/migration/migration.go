package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"representantes/internal/config"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Table is the table every step below creates or indexes.
const Table = "representantes"

var steps = map[string][]migrationStep{
	config.DriverPostgres: {
		{
			Name: "create_table_representantes",
			SQL: `CREATE TABLE IF NOT EXISTS representantes (
  id     UUID PRIMARY KEY,
  nombre TEXT NOT NULL,
  email  TEXT NOT NULL
);`,
		},
		{
			Name: "create_index_representantes_nombre",
			SQL:  `CREATE INDEX IF NOT EXISTS idx_representantes_nombre ON representantes (nombre);`,
		},
	},
	config.DriverSQLite: {
		{
			Name: "create_table_representantes",
			SQL: `CREATE TABLE IF NOT EXISTS representantes (
  id     TEXT PRIMARY KEY,
  nombre TEXT NOT NULL,
  email  TEXT NOT NULL
);`,
		},
		{
			Name: "create_index_representantes_nombre",
			SQL:  `CREATE INDEX IF NOT EXISTS idx_representantes_nombre ON representantes (nombre);`,
		},
	},
}

var sentinelQueries = map[string]string{
	config.DriverPostgres: "SELECT to_regclass('public.representantes') IS NOT NULL",
	config.DriverSQLite:   "SELECT EXISTS (SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = 'representantes')",
}

// EnsureMigrated checks if the representantes table exists and runs the
// migration steps for driver if it doesn't. Every step is idempotent, so a
// concurrent start that races past the sentinel check is harmless.
func EnsureMigrated(ctx context.Context, db *sql.DB, driver string, log zerolog.Logger) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("driver", driver).Logger()

	driverSteps, ok := steps[driver]
	if !ok {
		return fmt.Errorf("no migration steps for driver %q", driver)
	}

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Send()

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQueries[driver]).Scan(&exists); err != nil {
		log.Error().
			Str("event", "db_migration_failed").
			Str("status", "error").
			Err(err).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Send()

	for _, step := range driverSteps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Err(err).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Send()
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Send()
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()

	return nil
}
