// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/recon/internal/ports/secondary"
)

// ReportRepository implements secondary.ReportRepository with SQLite.
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new SQLite report repository.
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// InsertUnlessDuplicate persists a report unless an identical
// (group, kingdom, defense power, castles) row was captured within the
// dedup window. The window check and the insert run as one statement, so
// SQLite's writer serialization makes the check-then-act atomic: two
// concurrent identical reports cannot both land.
func (r *ReportRepository) InsertUnlessDuplicate(ctx context.Context, rec *secondary.ReportRecord) (int64, bool, error) {
	capturedAt := time.Now().UTC()
	cutoff := capturedAt.Add(-secondary.DedupWindow)

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO reports (group_id, kingdom, alliance, networth, defense_power, castles, captured_at)
		SELECT ?, ?, ?, ?, ?, ?, ?
		WHERE NOT EXISTS (
			SELECT 1 FROM reports
			WHERE group_id = ? AND kingdom = ? AND defense_power = ? AND castles = ?
				AND captured_at > ?
		)`,
		rec.GroupID, rec.Kingdom, nullString(rec.Alliance), nullInt64(rec.Networth, rec.HasNetworth),
		rec.DefensePower, rec.Castles, capturedAt,
		rec.GroupID, rec.Kingdom, rec.DefensePower, rec.Castles, cutoff,
	)
	if err != nil {
		return 0, false, fmt.Errorf("failed to insert report: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, false, fmt.Errorf("failed to read insert result: %w", err)
	}
	if affected == 0 {
		return 0, false, nil
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("failed to read report ID: %w", err)
	}

	rec.ID = id
	rec.CapturedAt = capturedAt
	return id, true, nil
}

const reportColumns = "id, group_id, kingdom, alliance, networth, defense_power, castles, captured_at"

// Latest retrieves the most recent report for the exact normalized kingdom name.
func (r *ReportRepository) Latest(ctx context.Context, groupID, kingdom string) (*secondary.ReportRecord, bool, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+reportColumns+" FROM reports WHERE group_id = ? AND kingdom = ? ORDER BY captured_at DESC LIMIT 1",
		groupID, kingdom,
	)

	rec, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get latest report: %w", err)
	}
	return rec, true, nil
}

// History retrieves reports for the exact normalized kingdom name, newest
// first, capped at limit.
func (r *ReportRepository) History(ctx context.Context, groupID, kingdom string, limit int) ([]*secondary.ReportRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+reportColumns+" FROM reports WHERE group_id = ? AND kingdom = ? ORDER BY captured_at DESC LIMIT ?",
		groupID, kingdom, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	return collectReports(rows)
}

// AllForExport retrieves every report for the exact normalized kingdom name,
// newest first.
func (r *ReportRepository) AllForExport(ctx context.Context, groupID, kingdom string) ([]*secondary.ReportRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+reportColumns+" FROM reports WHERE group_id = ? AND kingdom = ? ORDER BY captured_at DESC",
		groupID, kingdom,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports for export: %w", err)
	}
	defer rows.Close()

	return collectReports(rows)
}

// ResolveKingdom finds a stored kingdom name containing the normalized query
// as a substring. The tie-break is deterministic: an exact match wins, then
// the shortest matching name, then lexicographic order.
func (r *ReportRepository) ResolveKingdom(ctx context.Context, groupID, query string) (string, bool, error) {
	var kingdom string
	err := r.db.QueryRowContext(ctx, `
		SELECT kingdom FROM reports
		WHERE group_id = ? AND instr(kingdom, ?) > 0
		GROUP BY kingdom
		ORDER BY (kingdom = ?) DESC, LENGTH(kingdom) ASC, kingdom ASC
		LIMIT 1`,
		groupID, query, query,
	).Scan(&kingdom)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve kingdom: %w", err)
	}
	return kingdom, true, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanReport(s scanner) (*secondary.ReportRecord, error) {
	var (
		alliance sql.NullString
		networth sql.NullInt64
		captured time.Time
	)

	rec := &secondary.ReportRecord{}
	err := s.Scan(&rec.ID, &rec.GroupID, &rec.Kingdom, &alliance, &networth, &rec.DefensePower, &rec.Castles, &captured)
	if err != nil {
		return nil, err
	}

	rec.Alliance = alliance.String
	rec.Networth = networth.Int64
	rec.HasNetworth = networth.Valid
	rec.CapturedAt = captured.UTC()

	return rec, nil
}

func collectReports(rows *sql.Rows) ([]*secondary.ReportRecord, error) {
	var records []*secondary.ReportRecord
	for rows.Next() {
		rec, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}
	return records, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64(n int64, valid bool) sql.NullInt64 {
	return sql.NullInt64{Int64: n, Valid: valid}
}

// Ensure ReportRepository implements the interface.
var _ secondary.ReportRepository = (*ReportRepository)(nil)
