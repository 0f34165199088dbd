package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/croft/internal/ports/primary"
	"github.com/example/croft/internal/wire"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Manage farm workers",
	Long:  "Register, list, update and delete workers",
}

var workerAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Register a new worker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		worker, err := wire.FarmService().AddWorker(ctx, workerRequestFromFlags(cmd, args[0]))
		if err != nil {
			return fmt.Errorf("failed to register worker: %w", err)
		}

		fmt.Printf("✓ Registered worker #%d: %s\n", worker.ID, worker.Name)
		if worker.Role != "" {
			fmt.Printf("  Role: %s\n", worker.Role)
		}
		return nil
	},
}

var workerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		workers, err := wire.FarmService().ListWorkers(ctx)
		if err != nil {
			return fmt.Errorf("failed to list workers: %w", err)
		}

		if len(workers) == 0 {
			fmt.Println("No workers found")
			return nil
		}

		fmt.Printf("Found %d worker(s):\n\n", len(workers))
		for _, worker := range workers {
			fmt.Printf("#%-4d %-15s %-12s %dh worked, %d leave(s)\n",
				worker.ID, worker.Name, worker.Role, worker.HoursWorked, worker.Leaves)
		}
		return nil
	},
}

var workerUpdateCmd = &cobra.Command{
	Use:   "update [id] [name]",
	Short: "Update a worker",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		worker, err := wire.FarmService().UpdateWorker(ctx, id, workerRequestFromFlags(cmd, args[1]))
		if err != nil {
			return fmt.Errorf("failed to update worker: %w", err)
		}

		fmt.Printf("✓ Updated worker #%d: %s\n", worker.ID, worker.Name)
		return nil
	},
}

var workerDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a worker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.FarmService().DeleteWorker(ctx, id); err != nil {
			return fmt.Errorf("failed to delete worker: %w", err)
		}

		fmt.Printf("✓ Deleted worker #%d\n", id)
		return nil
	},
}

func workerRequestFromFlags(cmd *cobra.Command, name string) primary.WorkerRequest {
	hours, _ := cmd.Flags().GetInt("hours")
	leaves, _ := cmd.Flags().GetInt("leaves")
	role, _ := cmd.Flags().GetString("role")
	contact, _ := cmd.Flags().GetString("contact")

	return primary.WorkerRequest{
		Name:        name,
		HoursWorked: hours,
		Leaves:      leaves,
		Role:        role,
		Contact:     contact,
	}
}

func addWorkerFlags(cmd *cobra.Command) {
	cmd.Flags().Int("hours", 0, "Hours worked")
	cmd.Flags().Int("leaves", 0, "Leave days taken")
	cmd.Flags().StringP("role", "r", "", "Role (e.g. herder, vet, milker)")
	cmd.Flags().StringP("contact", "c", "", "Contact details")
}

func init() {
	addWorkerFlags(workerAddCmd)
	addWorkerFlags(workerUpdateCmd)

	workerCmd.AddCommand(workerAddCmd)
	workerCmd.AddCommand(workerListCmd)
	workerCmd.AddCommand(workerUpdateCmd)
	workerCmd.AddCommand(workerDeleteCmd)
}

// WorkerCmd returns the worker command
func WorkerCmd() *cobra.Command {
	return workerCmd
}
