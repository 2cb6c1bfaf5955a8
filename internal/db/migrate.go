package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS trips (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		destination TEXT NOT NULL DEFAULT '',
		start_date  TEXT NOT NULL,
		end_date    TEXT,
		status      TEXT NOT NULL DEFAULT 'planning'
		            CHECK(status IN ('planning','active','completed','archived')),
		archived_at TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id         TEXT PRIMARY KEY,
		trip_id    TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		location   TEXT NOT NULL DEFAULT '',
		time       TEXT NOT NULL DEFAULT '',
		day        INTEGER NOT NULL CHECK(day >= 1),
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_trip ON activities(trip_id)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_trip_day ON activities(trip_id, day)`,

	// scope is 'global' for the single default row, or a trip id for a
	// per-trip override. Not a foreign key: the 'global' scope has no
	// trips row to reference.
	`CREATE TABLE IF NOT EXISTS travel_prefs (
		scope             TEXT PRIMARY KEY,
		mode              TEXT NOT NULL DEFAULT 'walk'
		                  CHECK(mode IN ('walk','drive','transit','auto')),
		walking_speed_kmh REAL NOT NULL DEFAULT 4.5,
		buffer_min        REAL NOT NULL DEFAULT 5,
		updated_at        TEXT NOT NULL
	)`,
}
