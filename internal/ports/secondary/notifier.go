package secondary

import "context"

// Notifier defines the secondary port for signaling captures back to the
// chat transport. The core never formats or sends transport payloads; it
// only reports the structured fact of a capture.
type Notifier interface {
	// ReportCaptured signals that a report was persisted from a watched
	// channel. kingdom is the normalized name.
	ReportCaptured(ctx context.Context, groupID, channelID, kingdom string, reportID int64) error
}
