package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/croft/internal/db"
)

// DevCmd returns the dev command group for development utilities.
func DevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Development utilities",
		Long: `Development utilities for working with a scratch croft database.

These commands require CROFT_DB_PATH to point at a non-production
database. Running without it set will error to prevent accidental
modification of the production database.`,
	}

	cmd.AddCommand(devResetCmd())
	return cmd
}

func devResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset dev database with fresh fixtures",
		Long: `Delete the dev database and recreate it with fixture data.

This command:
1. Deletes the existing dev database file
2. Creates a fresh database with the current schema
3. Seeds fixture data for development

Safety: This command requires CROFT_DB_PATH to be set to prevent
accidental reset of the production database.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Safety check: require CROFT_DB_PATH to be set
			dbPath := os.Getenv("CROFT_DB_PATH")
			if dbPath == "" {
				return fmt.Errorf("CROFT_DB_PATH not set\n\nThis safety check prevents accidental reset of your production database")
			}

			// Confirmation unless --force
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

			// Close any existing DB connection
			db.Close()

			// Delete existing database
			if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to delete database: %w", err)
			}
			fmt.Printf("✓ Deleted %s\n", dbPath)

			// Create fresh database with schema
			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to create database: %w", err)
			}
			fmt.Println("✓ Created fresh database with schema")

			// Seed fixtures
			if err := db.SeedFixtures(database); err != nil {
				return fmt.Errorf("failed to seed fixtures: %w", err)
			}
			fmt.Println("✓ Seeded fixture data")

			fmt.Println("\nDev database reset complete!")
			fmt.Println("\nSeeded entities:")
			fmt.Println("  - 10 goats across all breeds")
			fmt.Println("  - 4 vaccines, 4 diseases")
			fmt.Println("  - 3 workers")
			fmt.Println("  - 3 equipment items")
			fmt.Println("  - 3 sensors")
			fmt.Println("  - 3 spaces")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}
