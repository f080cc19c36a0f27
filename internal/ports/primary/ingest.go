// Package primary defines the primary ports (driving adapters) for the
// application: the service interfaces consumed by the CLI and any other
// dispatch collaborator. Authorization happens in the collaborator; these
// operations assume already-authorized, already-parsed arguments.
package primary

import "context"

// MessageEvent is an inbound chat message delivered by the transport
// collaborator. The pipeline is a pure function of the event plus store
// state, so tests can drive it without a live transport.
type MessageEvent struct {
	GroupID     string
	ChannelID   string
	AuthorIsBot bool
	Text        string
}

// ChannelEvent is a channel-creation event delivered by the transport
// collaborator.
type ChannelEvent struct {
	GroupID   string
	ChannelID string
}

// IngestOutcome classifies what the pipeline did with an event.
// Every outcome short of a storage failure is a normal result, not an error.
type IngestOutcome string

const (
	// OutcomeIgnoredBot means the message came from an automated identity
	// and never entered the pipeline.
	OutcomeIgnoredBot IngestOutcome = "ignored_bot"
	// OutcomeNotWatching means the channel is not being watched.
	OutcomeNotWatching IngestOutcome = "not_watching"
	// OutcomeNoMatch means the text did not match the report pattern.
	OutcomeNoMatch IngestOutcome = "no_match"
	// OutcomeDuplicate means an identical report fell within the dedup window.
	OutcomeDuplicate IngestOutcome = "duplicate"
	// OutcomeCaptured means a new report was persisted.
	OutcomeCaptured IngestOutcome = "captured"
)

// IngestResult describes the pipeline outcome for one message event.
type IngestResult struct {
	Outcome  IngestOutcome
	Kingdom  string // normalized; set for duplicate and captured outcomes
	ReportID int64  // set for captured outcome
}

// IngestService is the ingestion pipeline entry point.
type IngestService interface {
	// HandleMessage runs watch gating, parsing, dedup, and persistence for
	// one inbound message. Only storage failures surface as errors.
	HandleMessage(ctx context.Context, event MessageEvent) (*IngestResult, error)

	// SaveReport parses and persists report text directly, bypassing the
	// watch gate (explicit capture command).
	SaveReport(ctx context.Context, groupID, text string) (*IngestResult, error)

	// HandleChannelCreated auto-enrolls a newly observed channel into
	// watching when the group's watch-all default is on. Returns true when
	// the channel was enrolled.
	HandleChannelCreated(ctx context.Context, event ChannelEvent) (bool, error)
}
