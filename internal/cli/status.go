package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/croft/internal/wire"
)

// StatusCmd returns the status command showing a farm-wide overview.
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show a farm-wide overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			goats, err := wire.GoatService().ListGoats(ctx)
			if err != nil {
				return fmt.Errorf("failed to list goats: %w", err)
			}
			vaccines, err := wire.CatalogService().ListVaccines(ctx)
			if err != nil {
				return fmt.Errorf("failed to list vaccines: %w", err)
			}
			diseases, err := wire.CatalogService().ListDiseases(ctx)
			if err != nil {
				return fmt.Errorf("failed to list diseases: %w", err)
			}
			workers, err := wire.FarmService().ListWorkers(ctx)
			if err != nil {
				return fmt.Errorf("failed to list workers: %w", err)
			}
			equipment, err := wire.FarmService().ListEquipment(ctx)
			if err != nil {
				return fmt.Errorf("failed to list equipment: %w", err)
			}
			sensors, err := wire.FarmService().ListSensors(ctx)
			if err != nil {
				return fmt.Errorf("failed to list sensors: %w", err)
			}
			spaces, err := wire.FarmService().ListSpaces(ctx)
			if err != nil {
				return fmt.Errorf("failed to list spaces: %w", err)
			}

			fmt.Println("Farm overview")
			fmt.Println("─────────────")
			fmt.Printf("Goats:     %d\n", len(goats))
			fmt.Printf("Vaccines:  %d\n", len(vaccines))
			fmt.Printf("Diseases:  %d\n", len(diseases))
			fmt.Printf("Workers:   %d\n", len(workers))
			fmt.Printf("Equipment: %d\n", len(equipment))
			fmt.Printf("Sensors:   %d\n", len(sensors))
			fmt.Printf("Spaces:    %d\n", len(spaces))

			// Highlight goats carrying a diagnosis
			sick := 0
			for _, goat := range goats {
				if len(goat.Diseases) > 0 {
					sick++
				}
			}
			if sick > 0 {
				fmt.Println()
				fmt.Println(color.New(color.FgRed).Sprintf("⚠ %d goat(s) with recorded diseases", sick))
				for _, goat := range goats {
					if len(goat.Diseases) > 0 {
						fmt.Printf("  #%d %s: %v\n", goat.ID, goat.Name, goat.Diseases)
					}
				}
			}

			return nil
		},
	}
}
