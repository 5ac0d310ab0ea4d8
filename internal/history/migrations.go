package history

import (
	"database/sql"
	"fmt"
)

// migration is a single versioned schema change
type migration struct {
	Version int
	Name    string
	Up      string
}

// allMigrations contains all schema migrations in order
var allMigrations = []migration{
	{
		Version: 1,
		Name:    "Add composite feed index for stats and per-feed listing",
		Up: `
			CREATE INDEX IF NOT EXISTS idx_snapshots_feed_fetched_at ON snapshots(feed, fetched_at DESC);
		`,
	},
}

// runMigrations applies all pending migrations on the database
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var currentVersion int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	for _, m := range allMigrations {
		if m.Version <= currentVersion {
			continue
		}

		if _, err := db.Exec(m.Up); err != nil {
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}

		if _, err := db.Exec(
			"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
			m.Version,
			m.Name,
		); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}

	return nil
}
