// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/recon/internal/ports/secondary"
)

// Notifier implements secondary.Notifier by writing capture lines to an
// output stream. It stands in for the chat transport's "send to channel"
// callback.
type Notifier struct {
	out io.Writer
}

// NewNotifier creates a Notifier writing to the given output.
func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

// ReportCaptured renders a capture notification.
func (n *Notifier) ReportCaptured(ctx context.Context, groupID, channelID, kingdom string, reportID int64) error {
	_, err := fmt.Fprintf(n.out, "📥 Report for %s captured (ID %d) [%s/%s]\n", kingdom, reportID, groupID, channelID)
	return err
}

// Ensure Notifier implements the interface.
var _ secondary.Notifier = (*Notifier)(nil)
