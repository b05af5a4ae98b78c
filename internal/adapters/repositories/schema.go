package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the database schema. The DDL is dialect-neutral and runs
// unchanged on SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createOriginsQuery := `
	CREATE TABLE IF NOT EXISTS origins (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		lon REAL NOT NULL,
		lat REAL NOT NULL
	);
	`

	createDestinationsQuery := `
	CREATE TABLE IF NOT EXISTS destinations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		lon REAL NOT NULL,
		lat REAL NOT NULL
	);
	`

	createMatrixCacheQuery := `
	CREATE TABLE IF NOT EXISTS matrix_cache (
        origin_id TEXT NOT NULL,
        destination_id TEXT NOT NULL,
        minutes REAL,
        PRIMARY KEY (origin_id, destination_id)
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_matrix_cache_destination_origin
    ON matrix_cache(destination_id, origin_id);
	`

	statements := []string{
		createOriginsQuery,
		createDestinationsQuery,
		createMatrixCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
