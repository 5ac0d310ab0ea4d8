package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/studiowebux/buoycli/internal/types"
)

// timeLayout is how fetched_at is stored in SQLite.
const timeLayout = "2006-01-02 15:04:05"

// Manager is the snapshot store: one SQLite row per recorded feed fetch.
type Manager struct {
	db *sql.DB
}

// NewManager opens (creating if needed) the snapshot database and brings
// its schema up to date.
func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to snapshot database: %w", err)
	}

	m := &Manager{db: db}
	if err := m.initSchema(); err != nil {
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return m, nil
}

func (m *Manager) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		feed TEXT NOT NULL,
		fetched_at DATETIME NOT NULL,
		row_count INTEGER NOT NULL,
		body TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_fetched_at ON snapshots(fetched_at DESC);
	CREATE INDEX IF NOT EXISTS idx_snapshots_feed ON snapshots(feed);
	`

	_, err := m.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to initialize snapshot schema: %w", err)
	}

	return nil
}

// SaveSnapshot records one successful fetch.
func (m *Manager) SaveSnapshot(feedName string, fetchedAt time.Time, rowCount int, body string) error {
	query := `
		INSERT INTO snapshots (feed, fetched_at, row_count, body)
		VALUES (?, ?, ?, ?)
	`

	_, err := m.db.Exec(query,
		feedName,
		fetchedAt.Local().Format(timeLayout),
		rowCount,
		body,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// ListSnapshots returns the most recent snapshots, newest first, without
// their bodies. Use LoadSnapshot for the full record.
func (m *Manager) ListSnapshots(limit int) ([]types.Snapshot, error) {
	query := `
		SELECT id, feed, fetched_at, row_count
		FROM snapshots
		ORDER BY fetched_at DESC, id DESC
		LIMIT ?
	`

	rows, err := m.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []types.Snapshot
	for rows.Next() {
		var s types.Snapshot
		var fetchedAt string

		if err := rows.Scan(&s.ID, &s.Feed, &fetchedAt, &s.RowCount); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		s.FetchedAt = parseStoredTime(fetchedAt)

		snapshots = append(snapshots, s)
	}

	return snapshots, rows.Err()
}

// LoadSnapshot returns one snapshot including its raw body.
func (m *Manager) LoadSnapshot(id int64) (types.Snapshot, error) {
	query := `
		SELECT id, feed, fetched_at, row_count, body
		FROM snapshots
		WHERE id = ?
	`

	var s types.Snapshot
	var fetchedAt string

	err := m.db.QueryRow(query, id).Scan(&s.ID, &s.Feed, &fetchedAt, &s.RowCount, &s.Body)
	if err == sql.ErrNoRows {
		return types.Snapshot{}, fmt.Errorf("snapshot %d not found", id)
	}
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("failed to load snapshot %d: %w", id, err)
	}
	s.FetchedAt = parseStoredTime(fetchedAt)

	return s, nil
}

// Stats aggregates the store per feed: snapshot count and last fetch time.
func (m *Manager) Stats() ([]types.FeedStats, error) {
	query := `
		SELECT feed, COUNT(*), MAX(fetched_at)
		FROM snapshots
		GROUP BY feed
		ORDER BY feed
	`

	rows, err := m.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot stats: %w", err)
	}
	defer rows.Close()

	var stats []types.FeedStats
	for rows.Next() {
		var fs types.FeedStats
		var last string

		if err := rows.Scan(&fs.Feed, &fs.SnapshotCount, &last); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot stats: %w", err)
		}
		fs.LastFetchedAt = parseStoredTime(last)

		stats = append(stats, fs)
	}

	return stats, rows.Err()
}

// Count returns the number of stored snapshots.
func (m *Manager) Count() (int, error) {
	var count int
	err := m.db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count snapshots: %w", err)
	}
	return count, nil
}

// Clear deletes every stored snapshot.
func (m *Manager) Clear() error {
	_, err := m.db.Exec("DELETE FROM snapshots")
	if err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}
	return nil
}

func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

// parseStoredTime reads a stored timestamp, tolerating the RFC3339 form
// SQLite may hand back for DATETIME columns.
func parseStoredTime(value string) time.Time {
	if t, err := time.ParseInLocation(timeLayout, value, time.Local); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	return time.Time{}
}
