package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/recon/internal/config"
	"github.com/example/recon/internal/db"
	"github.com/example/recon/internal/version"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the recon environment",
		Long: `Environment health check for recon.

Validates:
- Database path resolution (RECON_DB_PATH, config, home default)
- Database file and schema version
- Watch configuration sanity

Examples:
  recon doctor           # Run full health check
  recon doctor --quiet   # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkDBPath(),
				checkDatabase(),
				checkWatchConfig(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Printf("recon %s\n", version.String())
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, colorStatus(r.Status))
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					color.Red("Issues found.")
				} else {
					color.Green("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

func colorStatus(status string) string {
	switch status {
	case "✓":
		return color.GreenString(status)
	case "⚠":
		return color.YellowString(status)
	default:
		return color.RedString(status)
	}
}

// checkDBPath validates that a database path resolves
func checkDBPath() CheckResult {
	dbPath, err := config.DBPath()
	if err != nil {
		return CheckResult{
			Name:    "DB Path",
			Status:  "✗",
			Details: "  " + err.Error(),
		}
	}

	source := "default (~/.recon/recon.db)"
	if os.Getenv(config.EnvDBPath) != "" {
		source = config.EnvDBPath
	} else if cwd, err := os.Getwd(); err == nil {
		if cfg, err := config.LoadConfig(cwd); err == nil && cfg.DBPath != "" {
			source = ".recon/config.json"
		}
	}

	return CheckResult{
		Name:    "DB Path",
		Status:  "✓",
		Details: fmt.Sprintf("  %s (via %s)", dbPath, source),
	}
}

// checkDatabase validates the database file and schema version
func checkDatabase() CheckResult {
	dbPath, err := config.DBPath()
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "  " + err.Error()}
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Database",
			Status:  "⚠",
			Details: fmt.Sprintf("  %s not found\n  Run: recon init", dbPath),
		}
	}

	database, err := db.GetDB()
	if err != nil {
		return CheckResult{
			Name:    "Database",
			Status:  "✗",
			Details: "  " + err.Error(),
		}
	}

	var schemaVersion int
	if err := database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&schemaVersion); err != nil {
		return CheckResult{
			Name:    "Database",
			Status:  "✗",
			Details: "  Cannot read schema version: " + err.Error(),
		}
	}

	return CheckResult{
		Name:    "Database",
		Status:  "✓",
		Details: fmt.Sprintf("  %s (schema v%d)", filepath.Base(dbPath), schemaVersion),
	}
}

// checkWatchConfig reports whether any channel is being watched
func checkWatchConfig() CheckResult {
	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Watch Config", Status: "✗", Details: "  " + err.Error()}
	}

	var watching int
	if err := database.QueryRow("SELECT COUNT(*) FROM watch_channels WHERE watching = 1").Scan(&watching); err != nil {
		return CheckResult{
			Name:    "Watch Config",
			Status:  "✗",
			Details: "  Cannot read watch_channels: " + err.Error(),
		}
	}

	var watchAll int
	if err := database.QueryRow("SELECT COUNT(*) FROM watch_groups WHERE watch_all = 1").Scan(&watchAll); err != nil {
		return CheckResult{
			Name:    "Watch Config",
			Status:  "✗",
			Details: "  Cannot read watch_groups: " + err.Error(),
		}
	}

	if watching == 0 && watchAll == 0 {
		return CheckResult{
			Name:    "Watch Config",
			Status:  "⚠",
			Details: "  No channels watched; ingested messages will be skipped\n  Run: recon watch set <group> <channel> on",
		}
	}

	return CheckResult{
		Name:    "Watch Config",
		Status:  "✓",
		Details: fmt.Sprintf("  %d channels watched, %d groups with watch-all", watching, watchAll),
	}
}
