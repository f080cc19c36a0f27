package app

import (
	"context"
	"errors"
	"testing"
)

func newTestWatchService() (*WatchServiceImpl, *mockWatchRepository) {
	watchRepo := newMockWatchRepository()
	service := NewWatchService(watchRepo)
	return service, watchRepo
}

func TestSetWatch_AndIsWatching(t *testing.T) {
	service, _ := newTestWatchService()
	ctx := context.Background()

	if err := service.SetWatch(ctx, "g1", "c1", true); err != nil {
		t.Fatalf("SetWatch failed: %v", err)
	}

	watching, err := service.IsWatching(ctx, "g1", "c1")
	if err != nil {
		t.Fatalf("IsWatching failed: %v", err)
	}
	if !watching {
		t.Error("expected channel to be watching")
	}

	// Idempotent: repeating the call changes nothing
	if err := service.SetWatch(ctx, "g1", "c1", true); err != nil {
		t.Fatalf("SetWatch failed: %v", err)
	}
	watching, _ = service.IsWatching(ctx, "g1", "c1")
	if !watching {
		t.Error("expected channel to stay watching")
	}
}

func TestIsWatching_DefaultOff(t *testing.T) {
	service, _ := newTestWatchService()

	watching, err := service.IsWatching(context.Background(), "g1", "never-set")
	if err != nil {
		t.Fatalf("IsWatching failed: %v", err)
	}
	if watching {
		t.Error("expected unknown channel to be not watching")
	}
}

func TestSetWatchAll_FansOutToKnownChannels(t *testing.T) {
	service, watchRepo := newTestWatchService()
	ctx := context.Background()

	// One channel already known to the registry, turned off
	watchRepo.channels[watchKey("g1", "old-channel")] = false

	err := service.SetWatchAll(ctx, "g1", true, []string{"war-room", "recon-drops"})
	if err != nil {
		t.Fatalf("SetWatchAll failed: %v", err)
	}

	if !watchRepo.groups["g1"] {
		t.Error("expected group default on")
	}
	for _, channel := range []string{"war-room", "recon-drops", "old-channel"} {
		watching, _ := service.IsWatching(ctx, "g1", channel)
		if !watching {
			t.Errorf("expected %s to be watching", channel)
		}
	}
}

func TestSetWatchAll_DisableFansOut(t *testing.T) {
	service, watchRepo := newTestWatchService()
	ctx := context.Background()

	watchRepo.channels[watchKey("g1", "war-room")] = true
	watchRepo.groups["g1"] = true

	if err := service.SetWatchAll(ctx, "g1", false, nil); err != nil {
		t.Fatalf("SetWatchAll failed: %v", err)
	}

	if watchRepo.groups["g1"] {
		t.Error("expected group default off")
	}
	watching, _ := service.IsWatching(ctx, "g1", "war-room")
	if watching {
		t.Error("expected war-room to be off")
	}
}

func TestSetWatchAll_RepoErrorPropagates(t *testing.T) {
	service, watchRepo := newTestWatchService()
	watchRepo.setErr = errors.New("db locked")

	if err := service.SetWatchAll(context.Background(), "g1", true, nil); err == nil {
		t.Error("expected error to propagate")
	}
}

func TestListWatches(t *testing.T) {
	service, watchRepo := newTestWatchService()
	watchRepo.channels[watchKey("g1", "war-room")] = true
	watchRepo.channels[watchKey("g1", "general")] = false
	watchRepo.channels[watchKey("g2", "other")] = true

	statuses, err := service.ListWatches(context.Background(), "g1")
	if err != nil {
		t.Fatalf("ListWatches failed: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if statuses[0].ChannelID != "general" || statuses[0].Watching {
		t.Errorf("unexpected first status: %+v", statuses[0])
	}
	if statuses[1].ChannelID != "war-room" || !statuses[1].Watching {
		t.Errorf("unexpected second status: %+v", statuses[1])
	}
}
