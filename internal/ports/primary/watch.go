package primary

import "context"

// WatchStatus describes one channel's watch flag.
type WatchStatus struct {
	ChannelID string
	Watching  bool
}

// WatchService manages per-channel and per-group watch state.
type WatchService interface {
	// SetWatch enables or disables watching for one channel.
	SetWatch(ctx context.Context, groupID, channelID string, watching bool) error

	// IsWatching reports whether a channel is being watched.
	IsWatching(ctx context.Context, groupID, channelID string) (bool, error)

	// SetWatchAll sets the group default and fans the flag out to every
	// known channel: the ones supplied by the dispatch collaborator plus
	// the ones the registry already has rows for.
	SetWatchAll(ctx context.Context, groupID string, enabled bool, knownChannels []string) error

	// IsWatchAll reports the group's watch-all default.
	IsWatchAll(ctx context.Context, groupID string) (bool, error)

	// ListWatches returns the watch status of every known channel in the group.
	ListWatches(ctx context.Context, groupID string) ([]*WatchStatus, error)
}
