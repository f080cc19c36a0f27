package app

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/example/recon/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockReportRepository implements secondary.ReportRepository for testing.
type mockReportRepository struct {
	records    []*secondary.ReportRecord
	nextID     int64
	duplicate  bool // force the duplicate-suppressed path
	insertErr  error
	latestErr  error
	historyErr error
	resolveErr error
}

func newMockReportRepository() *mockReportRepository {
	return &mockReportRepository{nextID: 1}
}

func (m *mockReportRepository) InsertUnlessDuplicate(ctx context.Context, rec *secondary.ReportRecord) (int64, bool, error) {
	if m.insertErr != nil {
		return 0, false, m.insertErr
	}
	if m.duplicate {
		return 0, false, nil
	}
	rec.ID = m.nextID
	rec.CapturedAt = time.Now().UTC()
	m.nextID++
	m.records = append(m.records, rec)
	return rec.ID, true, nil
}

func (m *mockReportRepository) Latest(ctx context.Context, groupID, kingdom string) (*secondary.ReportRecord, bool, error) {
	if m.latestErr != nil {
		return nil, false, m.latestErr
	}
	var latest *secondary.ReportRecord
	for _, rec := range m.records {
		if rec.GroupID != groupID || rec.Kingdom != kingdom {
			continue
		}
		if latest == nil || rec.CapturedAt.After(latest.CapturedAt) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, false, nil
	}
	return latest, true, nil
}

func (m *mockReportRepository) History(ctx context.Context, groupID, kingdom string, limit int) ([]*secondary.ReportRecord, error) {
	if m.historyErr != nil {
		return nil, m.historyErr
	}
	matches := m.matching(groupID, kingdom)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (m *mockReportRepository) AllForExport(ctx context.Context, groupID, kingdom string) ([]*secondary.ReportRecord, error) {
	return m.matching(groupID, kingdom), nil
}

func (m *mockReportRepository) matching(groupID, kingdom string) []*secondary.ReportRecord {
	var matches []*secondary.ReportRecord
	for _, rec := range m.records {
		if rec.GroupID == groupID && rec.Kingdom == kingdom {
			matches = append(matches, rec)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CapturedAt.After(matches[j].CapturedAt)
	})
	return matches
}

func (m *mockReportRepository) ResolveKingdom(ctx context.Context, groupID, query string) (string, bool, error) {
	if m.resolveErr != nil {
		return "", false, m.resolveErr
	}
	seen := map[string]bool{}
	var candidates []string
	for _, rec := range m.records {
		if rec.GroupID == groupID && strings.Contains(rec.Kingdom, query) && !seen[rec.Kingdom] {
			seen[rec.Kingdom] = true
			candidates = append(candidates, rec.Kingdom)
		}
	}
	if len(candidates) == 0 {
		return "", false, nil
	}
	// Same tie-break as the SQLite adapter: exact, shortest, lexicographic
	sort.Slice(candidates, func(i, j int) bool {
		if (candidates[i] == query) != (candidates[j] == query) {
			return candidates[i] == query
		}
		if len(candidates[i]) != len(candidates[j]) {
			return len(candidates[i]) < len(candidates[j])
		}
		return candidates[i] < candidates[j]
	})
	return candidates[0], true, nil
}

// mockWatchRepository implements secondary.WatchRepository for testing.
type mockWatchRepository struct {
	channels    map[string]bool // "group/channel" -> watching
	groups      map[string]bool // group -> watch_all
	setErr      error
	watchingErr error
}

func newMockWatchRepository() *mockWatchRepository {
	return &mockWatchRepository{
		channels: make(map[string]bool),
		groups:   make(map[string]bool),
	}
}

func watchKey(groupID, channelID string) string {
	return groupID + "/" + channelID
}

func (m *mockWatchRepository) SetChannel(ctx context.Context, groupID, channelID string, watching bool) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.channels[watchKey(groupID, channelID)] = watching
	return nil
}

func (m *mockWatchRepository) IsWatching(ctx context.Context, groupID, channelID string) (bool, error) {
	if m.watchingErr != nil {
		return false, m.watchingErr
	}
	return m.channels[watchKey(groupID, channelID)], nil
}

func (m *mockWatchRepository) SetGroupDefault(ctx context.Context, groupID string, watchAll bool) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.groups[groupID] = watchAll
	return nil
}

func (m *mockWatchRepository) IsWatchAll(ctx context.Context, groupID string) (bool, error) {
	return m.groups[groupID], nil
}

func (m *mockWatchRepository) ListChannels(ctx context.Context, groupID string) ([]*secondary.WatchChannelRecord, error) {
	var records []*secondary.WatchChannelRecord
	for key, watching := range m.channels {
		group, channel, _ := strings.Cut(key, "/")
		if group != groupID {
			continue
		}
		records = append(records, &secondary.WatchChannelRecord{
			GroupID:   group,
			ChannelID: channel,
			Watching:  watching,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ChannelID < records[j].ChannelID
	})
	return records, nil
}

// mockNotifier implements secondary.Notifier for testing.
type mockNotifier struct {
	captures []capturedNotification
	err      error
}

type capturedNotification struct {
	groupID   string
	channelID string
	kingdom   string
	reportID  int64
}

func (m *mockNotifier) ReportCaptured(ctx context.Context, groupID, channelID, kingdom string, reportID int64) error {
	if m.err != nil {
		return m.err
	}
	m.captures = append(m.captures, capturedNotification{groupID, channelID, kingdom, reportID})
	return nil
}
