package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/recon/internal/ports/secondary"
)

// WatchRepository implements secondary.WatchRepository with SQLite.
type WatchRepository struct {
	db *sql.DB
}

// NewWatchRepository creates a new SQLite watch repository.
func NewWatchRepository(db *sql.DB) *WatchRepository {
	return &WatchRepository{db: db}
}

// SetChannel upserts the watch flag for a (group, channel) pair.
// The upsert makes concurrent writes for the same pair race-safe;
// last write wins.
func (r *WatchRepository) SetChannel(ctx context.Context, groupID, channelID string, watching bool) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO watch_channels (group_id, channel_id, watching, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(group_id, channel_id)
		DO UPDATE SET watching = excluded.watching, updated_at = CURRENT_TIMESTAMP`,
		groupID, channelID, boolToInt(watching),
	)
	if err != nil {
		return fmt.Errorf("failed to set watch flag: %w", err)
	}
	return nil
}

// IsWatching reports the watch flag for a (group, channel) pair.
// A pair without a row is not watching.
func (r *WatchRepository) IsWatching(ctx context.Context, groupID, channelID string) (bool, error) {
	var watching int
	err := r.db.QueryRowContext(ctx,
		"SELECT watching FROM watch_channels WHERE group_id = ? AND channel_id = ?",
		groupID, channelID,
	).Scan(&watching)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read watch flag: %w", err)
	}
	return watching == 1, nil
}

// SetGroupDefault upserts the group's watch-all default.
func (r *WatchRepository) SetGroupDefault(ctx context.Context, groupID string, watchAll bool) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO watch_groups (group_id, watch_all, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(group_id)
		DO UPDATE SET watch_all = excluded.watch_all, updated_at = CURRENT_TIMESTAMP`,
		groupID, boolToInt(watchAll),
	)
	if err != nil {
		return fmt.Errorf("failed to set watch-all default: %w", err)
	}
	return nil
}

// IsWatchAll reports the group's watch-all default.
// A group without a row defaults to false.
func (r *WatchRepository) IsWatchAll(ctx context.Context, groupID string) (bool, error) {
	var watchAll int
	err := r.db.QueryRowContext(ctx,
		"SELECT watch_all FROM watch_groups WHERE group_id = ?",
		groupID,
	).Scan(&watchAll)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read watch-all default: %w", err)
	}
	return watchAll == 1, nil
}

// ListChannels retrieves all watch rows for a group, ordered by channel ID.
func (r *WatchRepository) ListChannels(ctx context.Context, groupID string) ([]*secondary.WatchChannelRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT group_id, channel_id, watching FROM watch_channels WHERE group_id = ? ORDER BY channel_id",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list watch channels: %w", err)
	}
	defer rows.Close()

	var records []*secondary.WatchChannelRecord
	for rows.Next() {
		var watching int
		rec := &secondary.WatchChannelRecord{}
		if err := rows.Scan(&rec.GroupID, &rec.ChannelID, &watching); err != nil {
			return nil, fmt.Errorf("failed to scan watch channel: %w", err)
		}
		rec.Watching = watching == 1
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate watch channels: %w", err)
	}

	return records, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Ensure WatchRepository implements the interface.
var _ secondary.WatchRepository = (*WatchRepository)(nil)
