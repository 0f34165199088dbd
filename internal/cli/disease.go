package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/croft/internal/wire"
)

var diseaseCmd = &cobra.Command{
	Use:   "disease",
	Short: "Manage the disease catalog",
	Long:  "Register, list and delete diseases. Deleting a disease removes its links to goats but never the goats themselves.",
}

var diseaseAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Register a new disease",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		entry, err := wire.CatalogService().AddDisease(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to register disease: %w", err)
		}

		fmt.Printf("✓ Registered disease #%d: %s\n", entry.ID, entry.Name)
		return nil
	},
}

var diseaseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all diseases with goat counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		entries, err := wire.CatalogService().ListDiseases(ctx)
		if err != nil {
			return fmt.Errorf("failed to list diseases: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No diseases found")
			return nil
		}

		fmt.Printf("Found %d disease(s):\n\n", len(entries))
		for _, entry := range entries {
			fmt.Printf("#%-4d %-20s %d goat(s)\n", entry.ID, entry.Name, entry.GoatCount)
		}
		return nil
	},
}

var diseaseDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a disease (removes its links to goats)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := wire.CatalogService().DeleteDisease(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete disease: %w", err)
		}

		fmt.Printf("✓ Deleted disease: %s\n", args[0])
		return nil
	},
}

func init() {
	diseaseCmd.AddCommand(diseaseAddCmd)
	diseaseCmd.AddCommand(diseaseListCmd)
	diseaseCmd.AddCommand(diseaseDeleteCmd)
}

// DiseaseCmd returns the disease command
func DiseaseCmd() *cobra.Command {
	return diseaseCmd
}
