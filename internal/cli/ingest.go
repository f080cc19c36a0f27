package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/recon/internal/ports/primary"
	"github.com/example/recon/internal/wire"
)

// messageEventJSON is the wire form of one message event on the events feed.
type messageEventJSON struct {
	GroupID     string `json:"group_id"`
	ChannelID   string `json:"channel_id"`
	AuthorIsBot bool   `json:"author_is_bot"`
	Text        string `json:"text"`
}

// IngestCmd returns the ingest command
func IngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Feed chat events into the report pipeline",
		Long:  `Feed message and channel events into the report pipeline, the way a chat transport would deliver them.`,
	}

	cmd.AddCommand(ingestEventsCmd())
	cmd.AddCommand(ingestChannelCmd())

	return cmd
}

func ingestEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events [file]",
		Short: "Ingest a JSON-lines feed of message events",
		Long: `Ingest message events, one JSON object per line, from a file or stdin.

Each line carries group_id, channel_id, author_is_bot, and text. Every
event runs through the full pipeline: bot filter, watch gate, report
pattern match, duplicate suppression, persistence.

Example line:
  {"group_id":"guild-1","channel_id":"war-room","author_is_bot":false,"text":"..."}

Examples:
  recon ingest events events.jsonl
  cat events.jsonl | recon ingest events`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open events file: %w", err)
				}
				defer f.Close()
				in = f
			}

			ctx := context.Background()
			service := wire.IngestService()

			counts := map[primary.IngestOutcome]int{}
			lineNo := 0

			scanner := bufio.NewScanner(in)
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for scanner.Scan() {
				lineNo++
				line := scanner.Bytes()
				if len(line) == 0 {
					continue
				}

				var ev messageEventJSON
				if err := json.Unmarshal(line, &ev); err != nil {
					return fmt.Errorf("line %d: invalid event: %w", lineNo, err)
				}

				result, err := service.HandleMessage(ctx, primary.MessageEvent{
					GroupID:     ev.GroupID,
					ChannelID:   ev.ChannelID,
					AuthorIsBot: ev.AuthorIsBot,
					Text:        ev.Text,
				})
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				counts[result.Outcome]++
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read events: %w", err)
			}

			fmt.Printf("\nProcessed %d events\n", lineNo)
			for _, outcome := range []primary.IngestOutcome{
				primary.OutcomeCaptured,
				primary.OutcomeDuplicate,
				primary.OutcomeNoMatch,
				primary.OutcomeNotWatching,
				primary.OutcomeIgnoredBot,
			} {
				if n := counts[outcome]; n > 0 {
					fmt.Printf("  %-13s %d\n", outcome, n)
				}
			}

			return nil
		},
	}
}

func ingestChannelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "channel [group] [channel]",
		Short: "Ingest a channel-creation event",
		Long: `Ingest a channel-creation event. When the group's watch-all default is
on, the new channel is enrolled into watching immediately.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, channelID := args[0], args[1]

			enrolled, err := wire.IngestService().HandleChannelCreated(context.Background(), primary.ChannelEvent{
				GroupID:   groupID,
				ChannelID: channelID,
			})
			if err != nil {
				return fmt.Errorf("failed to handle channel event: %w", err)
			}

			if enrolled {
				fmt.Printf("✓ Channel %s/%s enrolled (watch-all is on)\n", groupID, channelID)
			} else {
				fmt.Printf("Channel %s/%s not enrolled (watch-all is off)\n", groupID, channelID)
			}
			return nil
		},
	}
}
