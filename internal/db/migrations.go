package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_reports_and_watch_tables",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_alliance_and_networth_to_reports",
		Up:      migrationV2,
	},
}

// RunMigrations applies all pending migrations in order.
func RunMigrations() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	for _, m := range migrations {
		applied, err := migrationApplied(db, m.Version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		if err := m.Up(db); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}

		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}

	return nil
}

func migrationApplied(db *sql.DB, version int) (bool, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check migration %d: %w", version, err)
	}
	return count > 0, nil
}

// migrationV1 creates the initial reports and watch tables.
func migrationV1(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS reports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			group_id TEXT NOT NULL,
			kingdom TEXT NOT NULL,
			defense_power INTEGER NOT NULL CHECK(defense_power >= 0),
			castles INTEGER NOT NULL CHECK(castles >= 0),
			captured_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_reports_group_kingdom_captured
		ON reports(group_id, kingdom, captured_at DESC);

		CREATE TABLE IF NOT EXISTS watch_channels (
			group_id TEXT NOT NULL,
			channel_id TEXT NOT NULL,
			watching INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (group_id, channel_id)
		);

		CREATE TABLE IF NOT EXISTS watch_groups (
			group_id TEXT PRIMARY KEY,
			watch_all INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`)
	return err
}

// migrationV2 adds the optional alliance and networth columns extracted
// from richer report text.
func migrationV2(db *sql.DB) error {
	if _, err := db.Exec("ALTER TABLE reports ADD COLUMN alliance TEXT"); err != nil {
		return err
	}
	_, err := db.Exec("ALTER TABLE reports ADD COLUMN networth INTEGER")
	return err
}
