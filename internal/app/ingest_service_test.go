package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/recon/internal/ports/primary"
)

const validReportText = `Target: Stormhold
Approximate defensive power: 51,900
Number of Castles: 9`

func newTestIngestService() (*IngestServiceImpl, *mockReportRepository, *mockWatchRepository, *mockNotifier) {
	reportRepo := newMockReportRepository()
	watchRepo := newMockWatchRepository()
	notifier := &mockNotifier{}
	service := NewIngestService(reportRepo, watchRepo, notifier)
	return service, reportRepo, watchRepo, notifier
}

func watchedEvent(text string) primary.MessageEvent {
	return primary.MessageEvent{
		GroupID:   "g1",
		ChannelID: "c1",
		Text:      text,
	}
}

func TestHandleMessage_Captured(t *testing.T) {
	service, reportRepo, watchRepo, notifier := newTestIngestService()
	ctx := context.Background()
	watchRepo.channels[watchKey("g1", "c1")] = true

	result, err := service.HandleMessage(ctx, watchedEvent(validReportText))
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}

	if result.Outcome != primary.OutcomeCaptured {
		t.Fatalf("expected captured, got %s", result.Outcome)
	}
	if result.Kingdom != "stormhold" {
		t.Errorf("expected normalized kingdom stormhold, got %q", result.Kingdom)
	}
	if result.ReportID == 0 {
		t.Error("expected a report ID")
	}

	if len(reportRepo.records) != 1 {
		t.Fatalf("expected one stored record, got %d", len(reportRepo.records))
	}
	if reportRepo.records[0].Kingdom != "stormhold" {
		t.Errorf("expected stored kingdom normalized, got %q", reportRepo.records[0].Kingdom)
	}

	if len(notifier.captures) != 1 {
		t.Fatalf("expected one capture notification, got %d", len(notifier.captures))
	}
	if notifier.captures[0].kingdom != "stormhold" || notifier.captures[0].channelID != "c1" {
		t.Errorf("unexpected notification: %+v", notifier.captures[0])
	}
}

func TestHandleMessage_BotAuthorIgnored(t *testing.T) {
	service, reportRepo, watchRepo, _ := newTestIngestService()
	watchRepo.channels[watchKey("g1", "c1")] = true

	event := watchedEvent(validReportText)
	event.AuthorIsBot = true

	result, err := service.HandleMessage(context.Background(), event)
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if result.Outcome != primary.OutcomeIgnoredBot {
		t.Errorf("expected ignored_bot, got %s", result.Outcome)
	}
	if len(reportRepo.records) != 0 {
		t.Error("expected nothing persisted")
	}
}

func TestHandleMessage_NotWatching(t *testing.T) {
	service, reportRepo, _, _ := newTestIngestService()

	result, err := service.HandleMessage(context.Background(), watchedEvent(validReportText))
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if result.Outcome != primary.OutcomeNotWatching {
		t.Errorf("expected not_watching, got %s", result.Outcome)
	}
	if len(reportRepo.records) != 0 {
		t.Error("expected nothing persisted")
	}
}

func TestHandleMessage_NoMatch(t *testing.T) {
	service, reportRepo, watchRepo, notifier := newTestIngestService()
	watchRepo.channels[watchKey("g1", "c1")] = true

	result, err := service.HandleMessage(context.Background(), watchedEvent("gm everyone, raid at dawn"))
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if result.Outcome != primary.OutcomeNoMatch {
		t.Errorf("expected no_match, got %s", result.Outcome)
	}
	if len(reportRepo.records) != 0 {
		t.Error("expected nothing persisted")
	}
	if len(notifier.captures) != 0 {
		t.Error("expected no notification")
	}
}

func TestHandleMessage_DuplicateSuppressedSilently(t *testing.T) {
	service, reportRepo, watchRepo, notifier := newTestIngestService()
	watchRepo.channels[watchKey("g1", "c1")] = true
	reportRepo.duplicate = true

	result, err := service.HandleMessage(context.Background(), watchedEvent(validReportText))
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if result.Outcome != primary.OutcomeDuplicate {
		t.Errorf("expected duplicate, got %s", result.Outcome)
	}
	if result.Kingdom != "stormhold" {
		t.Errorf("expected kingdom on duplicate result, got %q", result.Kingdom)
	}
	// Duplicates emit nothing
	if len(notifier.captures) != 0 {
		t.Error("expected no notification for duplicate")
	}
}

func TestHandleMessage_StorageFailurePropagates(t *testing.T) {
	service, reportRepo, watchRepo, _ := newTestIngestService()
	watchRepo.channels[watchKey("g1", "c1")] = true
	reportRepo.insertErr = errors.New("disk full")

	if _, err := service.HandleMessage(context.Background(), watchedEvent(validReportText)); err == nil {
		t.Error("expected storage failure to propagate")
	}
}

func TestHandleMessage_WatchCheckFailurePropagates(t *testing.T) {
	service, _, watchRepo, _ := newTestIngestService()
	watchRepo.watchingErr = errors.New("db locked")

	if _, err := service.HandleMessage(context.Background(), watchedEvent(validReportText)); err == nil {
		t.Error("expected watch check failure to propagate")
	}
}

func TestSaveReport_BypassesWatchGate(t *testing.T) {
	service, reportRepo, _, _ := newTestIngestService()

	// No watch rows at all; direct save still captures
	result, err := service.SaveReport(context.Background(), "g1", validReportText)
	if err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}
	if result.Outcome != primary.OutcomeCaptured {
		t.Errorf("expected captured, got %s", result.Outcome)
	}
	if len(reportRepo.records) != 1 {
		t.Error("expected one stored record")
	}
}

func TestSaveReport_NoMatch(t *testing.T) {
	service, _, _, _ := newTestIngestService()

	result, err := service.SaveReport(context.Background(), "g1", "not a report")
	if err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}
	if result.Outcome != primary.OutcomeNoMatch {
		t.Errorf("expected no_match, got %s", result.Outcome)
	}
}

func TestHandleChannelCreated_AutoEnrolls(t *testing.T) {
	service, _, watchRepo, _ := newTestIngestService()
	ctx := context.Background()
	watchRepo.groups["g1"] = true

	enrolled, err := service.HandleChannelCreated(ctx, primary.ChannelEvent{GroupID: "g1", ChannelID: "new-channel"})
	if err != nil {
		t.Fatalf("HandleChannelCreated failed: %v", err)
	}
	if !enrolled {
		t.Error("expected channel to be enrolled")
	}

	watching, err := watchRepo.IsWatching(ctx, "g1", "new-channel")
	if err != nil {
		t.Fatalf("IsWatching failed: %v", err)
	}
	if !watching {
		t.Error("expected new channel to be watching")
	}
}

func TestHandleChannelCreated_WatchAllOff(t *testing.T) {
	service, _, watchRepo, _ := newTestIngestService()
	ctx := context.Background()

	enrolled, err := service.HandleChannelCreated(ctx, primary.ChannelEvent{GroupID: "g1", ChannelID: "new-channel"})
	if err != nil {
		t.Fatalf("HandleChannelCreated failed: %v", err)
	}
	if enrolled {
		t.Error("expected no enrollment when watch-all is off")
	}

	watching, _ := watchRepo.IsWatching(ctx, "g1", "new-channel")
	if watching {
		t.Error("expected new channel to stay unwatched")
	}
}
