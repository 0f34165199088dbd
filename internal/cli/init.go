package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/croft/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the croft database",
		Long:  `Initialize the croft database at ~/.croft/croft.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing croft database at %s\n", dbPath)

			if _, err := db.GetDB(); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  croft goat add \"Daisy\" --breed Beetal --gender Female")
			fmt.Println("  croft status")

			return nil
		},
	}
}
