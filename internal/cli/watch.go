package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/recon/internal/wire"
)

// WatchCmd returns the watch command
func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Manage channel watch state",
		Long:  `Enable, disable, and inspect which channels are scanned for reconnaissance reports.`,
	}

	cmd.AddCommand(watchSetCmd())
	cmd.AddCommand(watchAllCmd())
	cmd.AddCommand(watchStatusCmd())

	return cmd
}

// parseOnOff converts an on/off argument to a bool.
func parseOnOff(mode string) (bool, error) {
	switch strings.ToLower(mode) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid mode %q: expected on or off", mode)
	}
}

func watchSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [group] [channel] [on|off]",
		Short: "Start or stop watching one channel",
		Long: `Start or stop watching one channel for reconnaissance reports.

Examples:
  recon watch set guild-1 war-room on
  recon watch set guild-1 general off`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			groupID, channelID := args[0], args[1]

			watching, err := parseOnOff(args[2])
			if err != nil {
				return err
			}

			if err := wire.WatchService().SetWatch(ctx, groupID, channelID, watching); err != nil {
				return fmt.Errorf("failed to set watch: %w", err)
			}

			if watching {
				fmt.Printf("✓ Watching %s/%s\n", groupID, channelID)
			} else {
				fmt.Printf("✓ Stopped watching %s/%s\n", groupID, channelID)
			}
			return nil
		},
	}
}

func watchAllCmd() *cobra.Command {
	var channels []string

	cmd := &cobra.Command{
		Use:   "all [group] [on|off]",
		Short: "Set the group-wide watch default",
		Long: `Set the group's watch-all default and fan the flag out to known channels.

Newly created channels are auto-enrolled while the default is on.
The --channels flag supplies the group's current channel list, the way the
chat transport would.

Examples:
  recon watch all guild-1 on --channels war-room,recon-drops
  recon watch all guild-1 off`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			groupID := args[0]

			enabled, err := parseOnOff(args[1])
			if err != nil {
				return err
			}

			if err := wire.WatchService().SetWatchAll(ctx, groupID, enabled, channels); err != nil {
				return fmt.Errorf("failed to set watch-all: %w", err)
			}

			if enabled {
				fmt.Printf("✓ Watching all channels in %s\n", groupID)
			} else {
				fmt.Printf("✓ Stopped watching all channels in %s\n", groupID)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&channels, "channels", nil, "Known channel IDs to fan the flag out to")

	return cmd
}

func watchStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [group]",
		Short: "Show watch status for a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			groupID := args[0]

			watchAll, err := wire.WatchService().IsWatchAll(ctx, groupID)
			if err != nil {
				return fmt.Errorf("failed to read watch-all default: %w", err)
			}

			statuses, err := wire.WatchService().ListWatches(ctx, groupID)
			if err != nil {
				return fmt.Errorf("failed to list watches: %w", err)
			}

			fmt.Printf("Watch-all default: %s\n", onOff(watchAll))

			if len(statuses) == 0 {
				fmt.Println("No channels known")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CHANNEL\tWATCHING")
			fmt.Fprintln(w, "-------\t--------")
			for _, s := range statuses {
				fmt.Fprintf(w, "%s\t%s\n", s.ChannelID, onOff(s.Watching))
			}
			w.Flush()
			return nil
		},
	}
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
