package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/recon/internal/cli"
	"github.com/example/recon/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "recon",
		Short:   "recon - chat reconnaissance report pipeline",
		Version: version.String(),
		Long: `recon ingests chat messages, extracts reconnaissance reports on enemy
kingdoms, and answers queries over the stored history.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.WatchCmd())
	rootCmd.AddCommand(cli.IngestCmd())
	rootCmd.AddCommand(cli.ReportCmd())
	rootCmd.AddCommand(cli.PlanCmd())

	// Developer tools
	rootCmd.AddCommand(cli.DevCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
