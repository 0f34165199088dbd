package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/croft/internal/core/space"
	"github.com/example/croft/internal/ports/primary"
	"github.com/example/croft/internal/wire"
)

var spaceCmd = &cobra.Command{
	Use:   "space",
	Short: "Manage farm spaces",
	Long:  "Register, list, update and delete spaces. Accepted types: " + strings.Join(space.Types, ", "),
}

var spaceAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Register a new space",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		sp, err := wire.FarmService().AddSpace(ctx, spaceRequestFromFlags(cmd, args[0]))
		if err != nil {
			return fmt.Errorf("failed to register space: %w", err)
		}

		fmt.Printf("✓ Registered space #%d: %s (%s)\n", sp.ID, sp.Name, sp.Type)
		return nil
	},
}

var spaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all spaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		spaces, err := wire.FarmService().ListSpaces(ctx)
		if err != nil {
			return fmt.Errorf("failed to list spaces: %w", err)
		}

		if len(spaces) == 0 {
			fmt.Println("No spaces found")
			return nil
		}

		fmt.Printf("Found %d space(s):\n\n", len(spaces))
		for _, sp := range spaces {
			fmt.Printf("#%-4d %-18s %-14s capacity %d", sp.ID, sp.Name, sp.Type, sp.Capacity)
			if sp.GrassCondition != "" {
				fmt.Printf(" grass: %s", sp.GrassCondition)
			}
			if sp.Health != "" {
				fmt.Printf(" [%s]", sp.Health)
			}
			fmt.Println()
		}
		return nil
	},
}

var spaceUpdateCmd = &cobra.Command{
	Use:   "update [id] [name]",
	Short: "Update a space",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		sp, err := wire.FarmService().UpdateSpace(ctx, id, spaceRequestFromFlags(cmd, args[1]))
		if err != nil {
			return fmt.Errorf("failed to update space: %w", err)
		}

		fmt.Printf("✓ Updated space #%d: %s\n", sp.ID, sp.Name)
		return nil
	},
}

var spaceDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a space",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.FarmService().DeleteSpace(ctx, id); err != nil {
			return fmt.Errorf("failed to delete space: %w", err)
		}

		fmt.Printf("✓ Deleted space #%d\n", id)
		return nil
	},
}

func spaceRequestFromFlags(cmd *cobra.Command, name string) primary.SpaceRequest {
	spaceType, _ := cmd.Flags().GetString("type")
	capacity, _ := cmd.Flags().GetInt("capacity")
	grass, _ := cmd.Flags().GetString("grass")
	health, _ := cmd.Flags().GetString("health")

	return primary.SpaceRequest{
		Name:           name,
		Type:           spaceType,
		Capacity:       capacity,
		GrassCondition: grass,
		Health:         health,
	}
}

func addSpaceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", "other", "Type: enclosure, grazing_field or other")
	cmd.Flags().Int("capacity", 0, "Goat capacity")
	cmd.Flags().String("grass", "", "Grass condition (grazing fields)")
	cmd.Flags().String("health", "", "Overall condition of the space")
}

func init() {
	addSpaceFlags(spaceAddCmd)
	addSpaceFlags(spaceUpdateCmd)

	spaceCmd.AddCommand(spaceAddCmd)
	spaceCmd.AddCommand(spaceListCmd)
	spaceCmd.AddCommand(spaceUpdateCmd)
	spaceCmd.AddCommand(spaceDeleteCmd)
}

// SpaceCmd returns the space command
func SpaceCmd() *cobra.Command {
	return spaceCmd
}
