package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/example/recon/internal/core/plan"
	"github.com/example/recon/internal/ports/primary"
)

// ReportAdapter translates report queries into terminal output.
type ReportAdapter struct {
	service primary.ReportService
	out     io.Writer
}

// NewReportAdapter creates a new ReportAdapter with the given service.
func NewReportAdapter(service primary.ReportService, out io.Writer) *ReportAdapter {
	return &ReportAdapter{
		service: service,
		out:     out,
	}
}

// Latest displays the most recent report for the resolved kingdom.
func (a *ReportAdapter) Latest(ctx context.Context, groupID, query string) error {
	result, err := a.service.LatestReport(ctx, groupID, query)
	if err != nil {
		return fmt.Errorf("failed to get latest report: %w", err)
	}
	if !result.Found {
		fmt.Fprintf(a.out, "No reports found for %q\n", query)
		return nil
	}

	r := result.Report
	fmt.Fprintf(a.out, "\nReport #%d: %s\n", r.ID, r.Kingdom)
	if r.Alliance != "" {
		fmt.Fprintf(a.out, "Alliance:      %s\n", r.Alliance)
	}
	if r.HasNetworth {
		fmt.Fprintf(a.out, "Networth:      %d\n", r.Networth)
	}
	fmt.Fprintf(a.out, "Defense power: %d\n", r.DefensePower)
	fmt.Fprintf(a.out, "Castles:       %d\n", r.Castles)
	fmt.Fprintf(a.out, "Captured:      %s\n", r.CapturedAt.UTC().Format(time.RFC3339))
	fmt.Fprintln(a.out)

	return nil
}

// History displays up to limit reports for the resolved kingdom, newest first.
func (a *ReportAdapter) History(ctx context.Context, groupID, query string, limit int) error {
	result, err := a.service.HistoryReports(ctx, groupID, query, limit)
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}
	if !result.Found {
		fmt.Fprintf(a.out, "No reports found for %q\n", query)
		return nil
	}

	fmt.Fprintf(a.out, "\nHistory for %s (%d reports)\n", result.Kingdom, len(result.Reports))
	fmt.Fprintf(a.out, "%-8s %-14s %-8s %s\n", "ID", "DEFENSE", "CASTLES", "CAPTURED")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────")
	for _, r := range result.Reports {
		fmt.Fprintf(a.out, "%-8d %-14d %-8d %s\n", r.ID, r.DefensePower, r.Castles, r.CapturedAt.UTC().Format(time.RFC3339))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Plan displays attack-planning math derived from the latest report.
func (a *ReportAdapter) Plan(ctx context.Context, groupID, query string) error {
	result, err := a.service.LatestReport(ctx, groupID, query)
	if err != nil {
		return fmt.Errorf("failed to get latest report: %w", err)
	}
	if !result.Found {
		fmt.Fprintf(a.out, "No reports found for %q\n", query)
		return nil
	}

	r := result.Report
	effective := plan.EffectiveDefense(r.DefensePower, r.Castles)

	fmt.Fprintf(a.out, "\nAttack plan: %s (report #%d)\n", r.Kingdom, r.ID)
	fmt.Fprintf(a.out, "Base defense:      %d\n", r.DefensePower)
	fmt.Fprintf(a.out, "Castles:           %d (bonus %.2f%%)\n", r.Castles, plan.CastleBonus(r.Castles)*100)
	fmt.Fprintf(a.out, "Effective defense: %d\n", effective)
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "%-14s %s\n", "TROOP", "UNITS TO MATCH")
	fmt.Fprintln(a.out, "─────────────────────────────")
	for _, troop := range []string{"pikemen", "footmen", "archers", "crossbowmen", "heavy cavalry", "knights"} {
		fmt.Fprintf(a.out, "%-14s %d\n", troop, plan.SuggestedCount(troop, effective))
	}
	fmt.Fprintln(a.out)

	return nil
}
