package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/recon/internal/config"
	"github.com/example/recon/internal/db"
)

// DevCmd returns the dev command group for development utilities.
func DevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Development utilities",
		Long: `Development utilities for working with a throwaway recon database.

These commands require RECON_DB_PATH to be set so they cannot touch the
default database by accident.`,
	}

	cmd.AddCommand(devSeedCmd())
	cmd.AddCommand(devResetCmd())
	return cmd
}

func devSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the dev database with fixture reports",
		Long: `Seed fixture data into the database at RECON_DB_PATH.

Fixtures include several kingdoms with report history in the guild-dev
group plus watch configuration, so latest/history/export and the watch
commands can be exercised immediately.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv(config.EnvDBPath) == "" {
				return fmt.Errorf("%s not set\n\nThis safety check prevents seeding fixtures into your default database", config.EnvDBPath)
			}

			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}

			if err := db.SeedFixtures(database); err != nil {
				return fmt.Errorf("failed to seed fixtures: %w", err)
			}

			fmt.Println("✓ Seeded fixture data")
			fmt.Println("\nSeeded entities:")
			fmt.Println("  - 6 reports across 4 kingdoms (group guild-dev)")
			fmt.Println("  - 3 watch channel rows")
			fmt.Println("  - 1 watch group default")

			return nil
		},
	}
}

func devResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the dev database with fresh fixtures",
		Long: `Delete the database at RECON_DB_PATH and recreate it with fixtures.

This command:
1. Deletes the existing dev database file
2. Creates a fresh database with the current schema
3. Seeds fixture data`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath := os.Getenv(config.EnvDBPath)
			if dbPath == "" {
				return fmt.Errorf("%s not set\n\nThis safety check prevents resetting your default database", config.EnvDBPath)
			}

			if !force {
				fmt.Printf("This will delete and recreate: %s\n", dbPath)
				fmt.Print("Continue? [y/N] ")
				var response string
				fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			db.Close()

			if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to delete database: %w", err)
			}
			fmt.Printf("✓ Deleted %s\n", dbPath)

			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to create database: %w", err)
			}
			fmt.Println("✓ Created fresh database with schema")

			if err := db.SeedFixtures(database); err != nil {
				return fmt.Errorf("failed to seed fixtures: %w", err)
			}
			fmt.Println("✓ Seeded fixture data")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}
