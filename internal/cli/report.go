package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/recon/internal/ports/primary"
	"github.com/example/recon/internal/wire"
)

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Save and query reconnaissance reports",
	}

	cmd.AddCommand(reportSaveCmd())
	cmd.AddCommand(reportLatestCmd())
	cmd.AddCommand(reportHistoryCmd())
	cmd.AddCommand(reportExportCmd())

	return cmd
}

func reportSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save [group] [file]",
		Short: "Parse and store raw report text",
		Long: `Parse raw report text and store it, bypassing the watch gate.

Reads from the file when given, otherwise from stdin. Duplicate
suppression still applies.

Examples:
  recon report save guild-1 report.txt
  pbpaste | recon report save guild-1`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID := args[0]

			var in io.Reader = os.Stdin
			if len(args) == 2 {
				f, err := os.Open(args[1])
				if err != nil {
					return fmt.Errorf("failed to open report file: %w", err)
				}
				defer f.Close()
				in = f
			}

			text, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("failed to read report text: %w", err)
			}

			result, err := wire.IngestService().SaveReport(context.Background(), groupID, string(text))
			if err != nil {
				return fmt.Errorf("failed to save report: %w", err)
			}

			switch result.Outcome {
			case primary.OutcomeCaptured:
				fmt.Printf("✓ Report for %s saved (ID %d)\n", result.Kingdom, result.ReportID)
			case primary.OutcomeDuplicate:
				fmt.Printf("Duplicate report for %s within the dedup window, not saved\n", result.Kingdom)
			case primary.OutcomeNoMatch:
				return fmt.Errorf("text does not look like a reconnaissance report")
			}
			return nil
		},
	}
}

func reportLatestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latest [group] [query]",
		Short: "Show the most recent report for a kingdom",
		Long: `Show the most recent report for the kingdom matching the query.

The query matches case-insensitively as a substring of stored kingdom
names. Exact matches win; ties go to the shortest name.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Latest(context.Background(), args[0], args[1])
		},
	}
}

func reportHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [group] [query]",
		Short: "Show report history for a kingdom, newest first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().History(context.Background(), args[0], args[1], limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of reports to show")

	return cmd
}

func reportExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export [group] [query]",
		Short: "Export all reports for a kingdom as CSV",
		Long: `Export every stored report for the kingdom matching the query as CSV,
newest first. Columns: defense_power, castles, captured_at.

Writes to stdout unless --out names a file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, query := args[0], args[1]

			var out io.Writer = os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			kingdom, err := wire.ExportAdapter(out).Export(context.Background(), groupID, query)
			if err != nil {
				return err
			}

			if outPath != "" {
				fmt.Printf("✓ Exported reports for %s to %s\n", kingdom, outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write CSV to this file instead of stdout")

	return cmd
}
