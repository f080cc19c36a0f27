package app

import (
	"context"
	"fmt"

	"github.com/example/recon/internal/core/report"
	"github.com/example/recon/internal/ports/primary"
	"github.com/example/recon/internal/ports/secondary"
)

// ReportServiceImpl implements the ReportService interface. Every read
// resolves the kingdom query through the substring-fuzzy resolver before
// touching the store.
type ReportServiceImpl struct {
	reportRepo secondary.ReportRepository
}

// NewReportService creates a new ReportService with injected dependencies.
func NewReportService(reportRepo secondary.ReportRepository) *ReportServiceImpl {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
	}
}

// LatestReport returns the most recent report for the resolved kingdom.
func (s *ReportServiceImpl) LatestReport(ctx context.Context, groupID, query string) (*primary.LatestResult, error) {
	kingdom, found, err := s.resolve(ctx, groupID, query)
	if err != nil {
		return nil, err
	}
	if !found {
		return &primary.LatestResult{Found: false}, nil
	}

	rec, found, err := s.reportRepo.Latest(ctx, groupID, kingdom)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest report: %w", err)
	}
	if !found {
		// Resolution only returns names that exist, so this is unreachable
		// short of a concurrent purge; treat it as not found.
		return &primary.LatestResult{Found: false}, nil
	}

	return &primary.LatestResult{
		Found:   true,
		Kingdom: kingdom,
		Report:  recordToReport(rec),
	}, nil
}

// HistoryReports returns up to limit reports for the resolved kingdom,
// newest first.
func (s *ReportServiceImpl) HistoryReports(ctx context.Context, groupID, query string, limit int) (*primary.HistoryResult, error) {
	kingdom, found, err := s.resolve(ctx, groupID, query)
	if err != nil {
		return nil, err
	}
	if !found {
		return &primary.HistoryResult{Found: false}, nil
	}

	records, err := s.reportRepo.History(ctx, groupID, kingdom, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	reports := make([]*primary.Report, len(records))
	for i, rec := range records {
		reports[i] = recordToReport(rec)
	}

	return &primary.HistoryResult{
		Found:   true,
		Kingdom: kingdom,
		Reports: reports,
	}, nil
}

// ExportReports returns every report for the resolved kingdom as export
// rows, newest first.
func (s *ReportServiceImpl) ExportReports(ctx context.Context, groupID, query string) (*primary.ExportResult, error) {
	kingdom, found, err := s.resolve(ctx, groupID, query)
	if err != nil {
		return nil, err
	}
	if !found {
		return &primary.ExportResult{Found: false}, nil
	}

	records, err := s.reportRepo.AllForExport(ctx, groupID, kingdom)
	if err != nil {
		return nil, fmt.Errorf("failed to get reports for export: %w", err)
	}

	rows := make([]*primary.ExportRow, len(records))
	for i, rec := range records {
		rows[i] = &primary.ExportRow{
			DefensePower: rec.DefensePower,
			Castles:      rec.Castles,
			CapturedAt:   rec.CapturedAt,
		}
	}

	return &primary.ExportResult{
		Found:   true,
		Kingdom: kingdom,
		Rows:    rows,
	}, nil
}

// resolve normalizes the query and runs the substring-fuzzy resolver.
func (s *ReportServiceImpl) resolve(ctx context.Context, groupID, query string) (string, bool, error) {
	kingdom, found, err := s.reportRepo.ResolveKingdom(ctx, groupID, report.NormalizeKingdom(query))
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve kingdom: %w", err)
	}
	return kingdom, found, nil
}

func recordToReport(rec *secondary.ReportRecord) *primary.Report {
	return &primary.Report{
		ID:           rec.ID,
		GroupID:      rec.GroupID,
		Kingdom:      rec.Kingdom,
		DefensePower: rec.DefensePower,
		Castles:      rec.Castles,
		Alliance:     rec.Alliance,
		Networth:     rec.Networth,
		HasNetworth:  rec.HasNetworth,
		CapturedAt:   rec.CapturedAt,
	}
}

// Ensure ReportServiceImpl implements the interface.
var _ primary.ReportService = (*ReportServiceImpl)(nil)
