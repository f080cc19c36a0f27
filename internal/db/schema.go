package db

// SchemaSQL is the complete modern schema for fresh recon installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All repository
// tests load it via GetSchemaSQL() instead of hardcoding CREATE TABLE
// statements, so drift between test and production schemas fails immediately
// with "no such column" instead of passing silently.
//
// When adding new columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Reports (captured reconnaissance records, immutable once inserted)
CREATE TABLE IF NOT EXISTS reports (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	group_id TEXT NOT NULL,
	kingdom TEXT NOT NULL,
	alliance TEXT,
	networth INTEGER,
	defense_power INTEGER NOT NULL CHECK(defense_power >= 0),
	castles INTEGER NOT NULL CHECK(castles >= 0),
	captured_at DATETIME NOT NULL
);

-- Supports dedup lookups, latest/history queries, and name resolution
CREATE INDEX IF NOT EXISTS idx_reports_group_kingdom_captured
ON reports(group_id, kingdom, captured_at DESC);

-- Watch flags (one row per group/channel pair, upsert semantics)
CREATE TABLE IF NOT EXISTS watch_channels (
	group_id TEXT NOT NULL,
	channel_id TEXT NOT NULL,
	watching INTEGER NOT NULL DEFAULT 0,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (group_id, channel_id)
);

-- Group defaults (governs auto-enrollment of newly created channels)
CREATE TABLE IF NOT EXISTS watch_groups (
	group_id TEXT PRIMARY KEY,
	watch_all INTEGER NOT NULL DEFAULT 0,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// schemaVersionMax is the highest migration version covered by SchemaSQL.
const schemaVersionMax = 2

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Fresh install - create modern schema directly and mark all
		// migrations as applied so they never re-run.
		if _, err = db.Exec(SchemaSQL); err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for i := 1; i <= schemaVersionMax; i++ {
			if _, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", i); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
