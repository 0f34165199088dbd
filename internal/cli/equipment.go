package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/croft/internal/ports/primary"
	"github.com/example/croft/internal/wire"
)

var equipmentCmd = &cobra.Command{
	Use:   "equipment",
	Short: "Manage farm equipment",
	Long:  "Register, list, update and delete equipment",
}

var equipmentAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Register a new piece of equipment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		eq, err := wire.FarmService().AddEquipment(ctx, equipmentRequestFromFlags(cmd, args[0]))
		if err != nil {
			return fmt.Errorf("failed to register equipment: %w", err)
		}

		fmt.Printf("✓ Registered equipment #%d: %s\n", eq.ID, eq.Name)
		return nil
	},
}

var equipmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all equipment",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		items, err := wire.FarmService().ListEquipment(ctx)
		if err != nil {
			return fmt.Errorf("failed to list equipment: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("No equipment found")
			return nil
		}

		fmt.Printf("Found %d item(s):\n\n", len(items))
		for _, eq := range items {
			fmt.Printf("#%-4d %-20s", eq.ID, eq.Name)
			if eq.Condition != "" {
				fmt.Printf(" [%s]", eq.Condition)
			}
			if eq.LastMaintenance != "" {
				fmt.Printf(" maintained %s", eq.LastMaintenance)
			}
			fmt.Println()
		}
		return nil
	},
}

var equipmentUpdateCmd = &cobra.Command{
	Use:   "update [id] [name]",
	Short: "Update a piece of equipment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		eq, err := wire.FarmService().UpdateEquipment(ctx, id, equipmentRequestFromFlags(cmd, args[1]))
		if err != nil {
			return fmt.Errorf("failed to update equipment: %w", err)
		}

		fmt.Printf("✓ Updated equipment #%d: %s\n", eq.ID, eq.Name)
		return nil
	},
}

var equipmentDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a piece of equipment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.FarmService().DeleteEquipment(ctx, id); err != nil {
			return fmt.Errorf("failed to delete equipment: %w", err)
		}

		fmt.Printf("✓ Deleted equipment #%d\n", id)
		return nil
	},
}

func equipmentRequestFromFlags(cmd *cobra.Command, name string) primary.EquipmentRequest {
	description, _ := cmd.Flags().GetString("description")
	purchased, _ := cmd.Flags().GetString("purchased")
	condition, _ := cmd.Flags().GetString("condition")
	maintained, _ := cmd.Flags().GetString("maintained")

	return primary.EquipmentRequest{
		Name:            name,
		Description:     description,
		PurchaseDate:    purchased,
		Condition:       condition,
		LastMaintenance: maintained,
	}
}

func addEquipmentFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("description", "d", "", "Description")
	cmd.Flags().String("purchased", "", "Purchase date (ISO format)")
	cmd.Flags().String("condition", "", "Condition (e.g. good, needs service)")
	cmd.Flags().String("maintained", "", "Last maintenance date (ISO format)")
}

func init() {
	addEquipmentFlags(equipmentAddCmd)
	addEquipmentFlags(equipmentUpdateCmd)

	equipmentCmd.AddCommand(equipmentAddCmd)
	equipmentCmd.AddCommand(equipmentListCmd)
	equipmentCmd.AddCommand(equipmentUpdateCmd)
	equipmentCmd.AddCommand(equipmentDeleteCmd)
}

// EquipmentCmd returns the equipment command
func EquipmentCmd() *cobra.Command {
	return equipmentCmd
}
