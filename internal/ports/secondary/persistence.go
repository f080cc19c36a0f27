// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"time"
)

// DedupWindow is the sliding window during which an exact-field-match
// report is suppressed as a repeat. Fixed, not configurable.
const DedupWindow = 10 * time.Minute

// ReportRepository defines the secondary port for report persistence.
type ReportRepository interface {
	// InsertUnlessDuplicate persists a new report unless a row with the same
	// (group, kingdom, defense power, castles) was captured within the dedup
	// window. The check and the insert are a single atomic operation with
	// respect to concurrent writers. Returns the new row ID and true when
	// inserted, false when suppressed as a duplicate.
	InsertUnlessDuplicate(ctx context.Context, rec *ReportRecord) (int64, bool, error)

	// Latest retrieves the most recent report for the exact normalized
	// kingdom name, or found=false when none exists.
	Latest(ctx context.Context, groupID, kingdom string) (*ReportRecord, bool, error)

	// History retrieves reports for the exact normalized kingdom name,
	// newest first, capped at limit.
	History(ctx context.Context, groupID, kingdom string, limit int) ([]*ReportRecord, error)

	// AllForExport retrieves every report for the exact normalized kingdom
	// name, newest first, unbounded.
	AllForExport(ctx context.Context, groupID, kingdom string) ([]*ReportRecord, error)

	// ResolveKingdom finds a stored kingdom name within the group containing
	// the normalized query as a substring. Tie-break is deterministic:
	// exact match, then shortest name, then lexicographic.
	// Returns found=false when nothing matches.
	ResolveKingdom(ctx context.Context, groupID, query string) (string, bool, error)
}

// ReportRecord represents a report as stored in persistence.
// Kingdom is always the normalized (trimmed, lowercased) form.
type ReportRecord struct {
	ID           int64
	GroupID      string
	Kingdom      string
	DefensePower int64
	Castles      int64
	Alliance     string // optional, empty when not extracted
	Networth     int64  // optional, meaningful only when HasNetworth
	HasNetworth  bool
	CapturedAt   time.Time // UTC
}

// WatchRepository defines the secondary port for watch-state persistence.
type WatchRepository interface {
	// SetChannel upserts the watch flag for a (group, channel) pair.
	// Idempotent; last write wins.
	SetChannel(ctx context.Context, groupID, channelID string, watching bool) error

	// IsWatching reports the watch flag for a (group, channel) pair.
	// A pair without a row is not watching.
	IsWatching(ctx context.Context, groupID, channelID string) (bool, error)

	// SetGroupDefault upserts the group's watch-all default.
	SetGroupDefault(ctx context.Context, groupID string, watchAll bool) error

	// IsWatchAll reports the group's watch-all default.
	// A group without a row defaults to false.
	IsWatchAll(ctx context.Context, groupID string) (bool, error)

	// ListChannels retrieves all watch rows for a group.
	ListChannels(ctx context.Context, groupID string) ([]*WatchChannelRecord, error)
}

// WatchChannelRecord represents a per-channel watch flag as stored.
type WatchChannelRecord struct {
	GroupID   string
	ChannelID string
	Watching  bool
}
