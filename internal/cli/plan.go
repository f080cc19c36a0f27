package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/recon/internal/wire"
)

// PlanCmd returns the plan command
func PlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [group] [query]",
		Short: "Suggest troop counts against a kingdom's latest report",
		Long: `Compute attack-planning numbers from the latest report for the kingdom
matching the query.

Defense is scaled by the castle bonus (sqrt(castles)/100), then each
troop type gets the unit count needed to match the effective defense.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Plan(context.Background(), args[0], args[1])
		},
	}
}
