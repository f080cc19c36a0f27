package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/recon/internal/config"
	"github.com/example/recon/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var groupID string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the recon database",
		Long: `Initialize the recon database with the required schema and write a
.recon/config.json to the current directory.

The database path resolves from RECON_DB_PATH, then .recon/config.json,
then ~/.recon/recon.db.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := config.DBPath()
			if err != nil {
				return fmt.Errorf("failed to resolve database path: %w", err)
			}

			fmt.Printf("Initializing recon database at %s\n", dbPath)

			if _, err := db.GetDB(); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			fmt.Println("✓ Database initialized")

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			// Keep an existing config rather than clobbering it
			if _, err := config.LoadConfig(cwd); err != nil {
				cfg := &config.Config{
					Version: "1",
					GroupID: groupID,
				}
				if err := config.SaveConfig(cwd, cfg); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}
				fmt.Println("✓ Config written to .recon/config.json")
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  recon watch set <group> <channel> on")
			fmt.Println("  recon ingest events < events.jsonl")

			return nil
		},
	}

	cmd.Flags().StringVar(&groupID, "group", "", "Default group ID for commands that omit it")

	return cmd
}
