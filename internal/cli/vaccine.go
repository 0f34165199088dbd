package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/croft/internal/wire"
)

var vaccineCmd = &cobra.Command{
	Use:   "vaccine",
	Short: "Manage the vaccine catalog",
	Long:  "Register, list and delete vaccines. Deleting a vaccine removes its links to goats but never the goats themselves.",
}

var vaccineAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Register a new vaccine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		entry, err := wire.CatalogService().AddVaccine(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to register vaccine: %w", err)
		}

		fmt.Printf("✓ Registered vaccine #%d: %s\n", entry.ID, entry.Name)
		return nil
	},
}

var vaccineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all vaccines with goat counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		entries, err := wire.CatalogService().ListVaccines(ctx)
		if err != nil {
			return fmt.Errorf("failed to list vaccines: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No vaccines found")
			return nil
		}

		fmt.Printf("Found %d vaccine(s):\n\n", len(entries))
		for _, entry := range entries {
			fmt.Printf("#%-4d %-20s %d goat(s)\n", entry.ID, entry.Name, entry.GoatCount)
		}
		return nil
	},
}

var vaccineDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a vaccine (removes its links to goats)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := wire.CatalogService().DeleteVaccine(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete vaccine: %w", err)
		}

		fmt.Printf("✓ Deleted vaccine: %s\n", args[0])
		return nil
	},
}

func init() {
	vaccineCmd.AddCommand(vaccineAddCmd)
	vaccineCmd.AddCommand(vaccineListCmd)
	vaccineCmd.AddCommand(vaccineDeleteCmd)
}

// VaccineCmd returns the vaccine command
func VaccineCmd() *cobra.Command {
	return vaccineCmd
}
