// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the SINGLE POINT where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema; drift shows up as "no such column" immediately.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/recon/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// MaxOpenConns is pinned to 1 because every new connection to ":memory:"
// gets its own empty database.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedReport inserts a report row with an explicit capture time and returns
// its ID. Used to place rows inside or outside the dedup window without
// clock injection.
func seedReport(t *testing.T, db *sql.DB, groupID, kingdom string, dp, castles int64, capturedAt time.Time) int64 {
	t.Helper()

	res, err := db.Exec(
		"INSERT INTO reports (group_id, kingdom, defense_power, castles, captured_at) VALUES (?, ?, ?, ?, ?)",
		groupID, kingdom, dp, castles, capturedAt.UTC(),
	)
	if err != nil {
		t.Fatalf("failed to seed report: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read seeded report ID: %v", err)
	}
	return id
}

// countReports returns the number of report rows for a group.
func countReports(t *testing.T, db *sql.DB, groupID string) int {
	t.Helper()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM reports WHERE group_id = ?", groupID).Scan(&count); err != nil {
		t.Fatalf("failed to count reports: %v", err)
	}
	return count
}
