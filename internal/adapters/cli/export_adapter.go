package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/example/recon/internal/ports/primary"
)

// exportHeader is the fixed three-column header of every export.
var exportHeader = []string{"defense_power", "castles", "captured_at"}

// ExportAdapter translates export queries into CSV output.
type ExportAdapter struct {
	service primary.ReportService
	out     io.Writer
}

// NewExportAdapter creates a new ExportAdapter with the given service.
func NewExportAdapter(service primary.ReportService, out io.Writer) *ExportAdapter {
	return &ExportAdapter{
		service: service,
		out:     out,
	}
}

// Export writes all reports for the resolved kingdom as CSV, newest first.
// Returns the resolved kingdom name.
func (a *ExportAdapter) Export(ctx context.Context, groupID, query string) (string, error) {
	result, err := a.service.ExportReports(ctx, groupID, query)
	if err != nil {
		return "", fmt.Errorf("failed to export reports: %w", err)
	}
	if !result.Found {
		return "", fmt.Errorf("no kingdom matching %q", query)
	}

	w := csv.NewWriter(a.out)
	if err := w.Write(exportHeader); err != nil {
		return "", fmt.Errorf("failed to write export header: %w", err)
	}
	for _, row := range result.Rows {
		record := []string{
			strconv.FormatInt(row.DefensePower, 10),
			strconv.FormatInt(row.Castles, 10),
			row.CapturedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write export row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush export: %w", err)
	}

	return result.Kingdom, nil
}
