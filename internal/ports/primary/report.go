package primary

import (
	"context"
	"time"
)

// Report is a captured reconnaissance record as served to callers.
type Report struct {
	ID           int64
	GroupID      string
	Kingdom      string // normalized
	DefensePower int64
	Castles      int64
	Alliance     string // optional
	Networth     int64  // optional, meaningful only when HasNetworth
	HasNetworth  bool
	CapturedAt   time.Time
}

// ExportRow is one line of an export: the fixed
// (defense_power, castles, captured_at) triple.
type ExportRow struct {
	DefensePower int64
	Castles      int64
	CapturedAt   time.Time
}

// LatestResult is the outcome of a latest-report query.
// Found is false when the query resolved to no stored kingdom.
type LatestResult struct {
	Found   bool
	Kingdom string // resolved normalized name, empty when not found
	Report  *Report
}

// HistoryResult is the outcome of a history query.
type HistoryResult struct {
	Found   bool
	Kingdom string
	Reports []*Report // newest first
}

// ExportResult is the outcome of an export query.
type ExportResult struct {
	Found   bool
	Kingdom string
	Rows    []*ExportRow // newest first
}

// ReportService serves read-path queries. Every operation resolves the
// kingdom query through substring-fuzzy matching before touching the store.
type ReportService interface {
	// LatestReport returns the most recent report for the resolved kingdom.
	LatestReport(ctx context.Context, groupID, query string) (*LatestResult, error)

	// HistoryReports returns up to limit reports for the resolved kingdom,
	// newest first.
	HistoryReports(ctx context.Context, groupID, query string, limit int) (*HistoryResult, error)

	// ExportReports returns every report for the resolved kingdom as export
	// rows, newest first.
	ExportReports(ctx context.Context, groupID, query string) (*ExportResult, error)
}
