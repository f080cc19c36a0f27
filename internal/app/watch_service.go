package app

import (
	"context"
	"fmt"

	"github.com/example/recon/internal/ports/primary"
	"github.com/example/recon/internal/ports/secondary"
)

// WatchServiceImpl implements the WatchService interface.
type WatchServiceImpl struct {
	watchRepo secondary.WatchRepository
}

// NewWatchService creates a new WatchService with injected dependencies.
func NewWatchService(watchRepo secondary.WatchRepository) *WatchServiceImpl {
	return &WatchServiceImpl{
		watchRepo: watchRepo,
	}
}

// SetWatch enables or disables watching for one channel.
func (s *WatchServiceImpl) SetWatch(ctx context.Context, groupID, channelID string, watching bool) error {
	if err := s.watchRepo.SetChannel(ctx, groupID, channelID, watching); err != nil {
		return fmt.Errorf("failed to set watch: %w", err)
	}
	return nil
}

// IsWatching reports whether a channel is being watched.
func (s *WatchServiceImpl) IsWatching(ctx context.Context, groupID, channelID string) (bool, error) {
	return s.watchRepo.IsWatching(ctx, groupID, channelID)
}

// SetWatchAll sets the group default and fans the flag out to every known
// channel: those supplied by the dispatch collaborator plus those the
// registry already has rows for.
func (s *WatchServiceImpl) SetWatchAll(ctx context.Context, groupID string, enabled bool, knownChannels []string) error {
	if err := s.watchRepo.SetGroupDefault(ctx, groupID, enabled); err != nil {
		return fmt.Errorf("failed to set watch-all default: %w", err)
	}

	channels := make(map[string]bool, len(knownChannels))
	for _, c := range knownChannels {
		channels[c] = true
	}

	existing, err := s.watchRepo.ListChannels(ctx, groupID)
	if err != nil {
		return fmt.Errorf("failed to list watch channels: %w", err)
	}
	for _, rec := range existing {
		channels[rec.ChannelID] = true
	}

	for channelID := range channels {
		if err := s.watchRepo.SetChannel(ctx, groupID, channelID, enabled); err != nil {
			return fmt.Errorf("failed to set watch for channel %s: %w", channelID, err)
		}
	}

	return nil
}

// IsWatchAll reports the group's watch-all default.
func (s *WatchServiceImpl) IsWatchAll(ctx context.Context, groupID string) (bool, error) {
	return s.watchRepo.IsWatchAll(ctx, groupID)
}

// ListWatches returns the watch status of every known channel in the group.
func (s *WatchServiceImpl) ListWatches(ctx context.Context, groupID string) ([]*primary.WatchStatus, error) {
	records, err := s.watchRepo.ListChannels(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watches: %w", err)
	}

	statuses := make([]*primary.WatchStatus, len(records))
	for i, rec := range records {
		statuses[i] = &primary.WatchStatus{
			ChannelID: rec.ChannelID,
			Watching:  rec.Watching,
		}
	}
	return statuses, nil
}

// Ensure WatchServiceImpl implements the interface.
var _ primary.WatchService = (*WatchServiceImpl)(nil)
