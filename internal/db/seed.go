package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with development fixtures.
// Uses realistic report data spread over time so latest/history/export
// and the dedup window can be exercised against a local database.
func SeedFixtures(database *sql.DB) error {
	now := time.Now().UTC()

	reports := []struct {
		group    string
		kingdom  string
		alliance string
		networth int64
		dp       int64
		castles  int64
		age      time.Duration
	}{
		{"guild-dev", "stormhold", "The Northern Pact", 1250000, 48210, 9, 26 * time.Hour},
		{"guild-dev", "stormhold", "The Northern Pact", 1262400, 51900, 9, 3 * time.Hour},
		{"guild-dev", "stormhold", "The Northern Pact", 1263100, 52300, 10, 20 * time.Minute},
		{"guild-dev", "ravenspire", "", 830500, 17040, 4, 6 * time.Hour},
		{"guild-dev", "duskmere keep", "Ashen Banner", 2044000, 96500, 14, 90 * time.Minute},
		{"guild-dev", "emberfall", "", 411200, 8350, 2, 45 * time.Minute},
	}

	for _, r := range reports {
		var alliance, networth any
		if r.alliance != "" {
			alliance = r.alliance
		}
		if r.networth > 0 {
			networth = r.networth
		}
		if _, err := database.Exec(
			"INSERT INTO reports (group_id, kingdom, alliance, networth, defense_power, castles, captured_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			r.group, r.kingdom, alliance, networth, r.dp, r.castles, now.Add(-r.age),
		); err != nil {
			return fmt.Errorf("seed reports: %w", err)
		}
	}

	watches := []struct {
		group    string
		channel  string
		watching int
	}{
		{"guild-dev", "recon-drops", 1},
		{"guild-dev", "war-room", 1},
		{"guild-dev", "general", 0},
	}
	for _, w := range watches {
		if _, err := database.Exec(
			"INSERT INTO watch_channels (group_id, channel_id, watching) VALUES (?, ?, ?)",
			w.group, w.channel, w.watching,
		); err != nil {
			return fmt.Errorf("seed watch channels: %w", err)
		}
	}

	if _, err := database.Exec(
		"INSERT INTO watch_groups (group_id, watch_all) VALUES (?, ?)",
		"guild-dev", 0,
	); err != nil {
		return fmt.Errorf("seed watch groups: %w", err)
	}

	return nil
}
