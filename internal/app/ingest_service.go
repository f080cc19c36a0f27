// Package app implements the primary port services. Services orchestrate
// core logic and repositories; they hold no state of their own.
package app

import (
	"context"
	"fmt"

	"github.com/example/recon/internal/core/report"
	"github.com/example/recon/internal/ports/primary"
	"github.com/example/recon/internal/ports/secondary"
)

// IngestServiceImpl implements the IngestService interface.
type IngestServiceImpl struct {
	reportRepo secondary.ReportRepository
	watchRepo  secondary.WatchRepository
	notifier   secondary.Notifier
}

// NewIngestService creates a new IngestService with injected dependencies.
func NewIngestService(reportRepo secondary.ReportRepository, watchRepo secondary.WatchRepository, notifier secondary.Notifier) *IngestServiceImpl {
	return &IngestServiceImpl{
		reportRepo: reportRepo,
		watchRepo:  watchRepo,
		notifier:   notifier,
	}
}

// HandleMessage runs the ingestion pipeline for one inbound message:
// bot gate, watch gate, parse, normalize, dedup-checked insert, notify.
func (s *IngestServiceImpl) HandleMessage(ctx context.Context, event primary.MessageEvent) (*primary.IngestResult, error) {
	// Self-authored and automated messages never enter the pipeline
	if event.AuthorIsBot {
		return &primary.IngestResult{Outcome: primary.OutcomeIgnoredBot}, nil
	}

	watching, err := s.watchRepo.IsWatching(ctx, event.GroupID, event.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to check watch state: %w", err)
	}
	if !watching {
		return &primary.IngestResult{Outcome: primary.OutcomeNotWatching}, nil
	}

	result, err := s.capture(ctx, event.GroupID, event.Text)
	if err != nil {
		return nil, err
	}

	if result.Outcome == primary.OutcomeCaptured {
		if err := s.notifier.ReportCaptured(ctx, event.GroupID, event.ChannelID, result.Kingdom, result.ReportID); err != nil {
			return nil, fmt.Errorf("failed to notify capture: %w", err)
		}
	}

	return result, nil
}

// SaveReport parses and persists report text directly, bypassing the watch
// gate. Used by the explicit save command.
func (s *IngestServiceImpl) SaveReport(ctx context.Context, groupID, text string) (*primary.IngestResult, error) {
	return s.capture(ctx, groupID, text)
}

// capture is the shared parse-normalize-insert tail of the pipeline.
func (s *IngestServiceImpl) capture(ctx context.Context, groupID, text string) (*primary.IngestResult, error) {
	candidate, ok := report.Parse(text)
	if !ok {
		return &primary.IngestResult{Outcome: primary.OutcomeNoMatch}, nil
	}

	rec := &secondary.ReportRecord{
		GroupID:      groupID,
		Kingdom:      report.NormalizeKingdom(candidate.Kingdom),
		DefensePower: candidate.DefensePower,
		Castles:      candidate.Castles,
		Alliance:     candidate.Alliance,
		Networth:     candidate.Networth,
		HasNetworth:  candidate.HasNetworth,
	}

	id, inserted, err := s.reportRepo.InsertUnlessDuplicate(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to insert report: %w", err)
	}
	if !inserted {
		return &primary.IngestResult{Outcome: primary.OutcomeDuplicate, Kingdom: rec.Kingdom}, nil
	}

	return &primary.IngestResult{
		Outcome:  primary.OutcomeCaptured,
		Kingdom:  rec.Kingdom,
		ReportID: id,
	}, nil
}

// HandleChannelCreated auto-enrolls a newly observed channel when the
// group's watch-all default is on. The underlying upsert keeps concurrent
// creation events for the same channel race-safe.
func (s *IngestServiceImpl) HandleChannelCreated(ctx context.Context, event primary.ChannelEvent) (bool, error) {
	watchAll, err := s.watchRepo.IsWatchAll(ctx, event.GroupID)
	if err != nil {
		return false, fmt.Errorf("failed to check watch-all default: %w", err)
	}
	if !watchAll {
		return false, nil
	}

	if err := s.watchRepo.SetChannel(ctx, event.GroupID, event.ChannelID, true); err != nil {
		return false, fmt.Errorf("failed to enroll channel: %w", err)
	}
	return true, nil
}

// Ensure IngestServiceImpl implements the interface.
var _ primary.IngestService = (*IngestServiceImpl)(nil)
