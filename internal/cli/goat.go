package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/croft/internal/ports/primary"
	"github.com/example/croft/internal/wire"
)

var goatCmd = &cobra.Command{
	Use:   "goat",
	Short: "Manage the goat herd",
	Long:  "Register, list, show, update and delete goats, and manage their vaccination and disease records",
}

var goatAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Register a new goat",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		req, err := goatRequestFromFlags(cmd, args[0])
		if err != nil {
			return err
		}

		goat, err := wire.GoatService().CreateGoat(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to register goat: %w", err)
		}

		fmt.Printf("✓ Registered goat #%d: %s (%s, %s)\n", goat.ID, goat.Name, goat.Breed, goat.Gender)
		if len(goat.Vaccinations) > 0 {
			fmt.Printf("  Vaccinations: %s\n", strings.Join(goat.Vaccinations, ", "))
		}
		if len(goat.Diseases) > 0 {
			fmt.Printf("  Diseases: %s\n", strings.Join(goat.Diseases, ", "))
		}
		return nil
	},
}

var goatListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all goats",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		goats, err := wire.GoatService().ListGoats(ctx)
		if err != nil {
			return fmt.Errorf("failed to list goats: %w", err)
		}

		if len(goats) == 0 {
			fmt.Println("No goats found")
			return nil
		}

		fmt.Printf("Found %d goat(s):\n\n", len(goats))
		for _, goat := range goats {
			health := ""
			if goat.HealthStatus != "" {
				health = " " + colorizeHealth(goat.HealthStatus)
			}
			fmt.Printf("#%-4d %-12s %-12s %-7s %.1fkg%s\n",
				goat.ID, goat.Name, goat.Breed, goat.Gender, goat.Weight, health)
		}
		return nil
	},
}

var goatShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show goat details with vaccination and disease records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		goat, err := wire.GoatService().GetGoat(ctx, id)
		if err != nil {
			return fmt.Errorf("goat not found: %w", err)
		}

		fmt.Printf("Goat #%d: %s\n", goat.ID, goat.Name)
		fmt.Printf("Breed: %s\n", goat.Breed)
		fmt.Printf("Gender: %s\n", goat.Gender)
		fmt.Printf("Offspring: %d\n", goat.Offspring)
		fmt.Printf("Cost: %.2f\n", goat.Cost)
		fmt.Printf("Weight: %.1fkg\n", goat.Weight)
		fmt.Printf("Current price: %.2f\n", goat.CurrentPrice)
		if goat.Diet != "" {
			fmt.Printf("Diet: %s\n", goat.Diet)
		}
		if goat.LastBred != "" {
			fmt.Printf("Last bred: %s\n", goat.LastBred)
		}
		if goat.HealthStatus != "" {
			fmt.Printf("Health: %s\n", colorizeHealth(goat.HealthStatus))
		}
		fmt.Printf("Registered: %s\n", goat.CreatedAt)
		fmt.Println()

		if len(goat.Vaccinations) == 0 {
			fmt.Println("No vaccinations recorded")
		} else {
			fmt.Printf("Vaccinations (%d): %s\n", len(goat.Vaccinations), strings.Join(goat.Vaccinations, ", "))
		}
		if len(goat.Diseases) == 0 {
			fmt.Println("No diseases recorded")
		} else {
			fmt.Printf("Diseases (%d): %s\n", len(goat.Diseases), strings.Join(goat.Diseases, ", "))
		}
		return nil
	},
}

var goatUpdateCmd = &cobra.Command{
	Use:   "update [id] [name]",
	Short: "Update a goat (full replacement, including links)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		req, err := goatRequestFromFlags(cmd, args[1])
		if err != nil {
			return err
		}

		goat, err := wire.GoatService().UpdateGoat(ctx, primary.UpdateGoatRequest{
			ID:                id,
			CreateGoatRequest: req,
		})
		if err != nil {
			return fmt.Errorf("failed to update goat: %w", err)
		}

		fmt.Printf("✓ Updated goat #%d: %s\n", goat.ID, goat.Name)
		return nil
	},
}

var goatDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a goat (removes its vaccination and disease records)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.GoatService().DeleteGoat(ctx, id); err != nil {
			return fmt.Errorf("failed to delete goat: %w", err)
		}

		fmt.Printf("✓ Deleted goat #%d\n", id)
		return nil
	},
}

var goatVaccinateCmd = &cobra.Command{
	Use:   "vaccinate [id] [vaccine]",
	Short: "Record a vaccination (registers the vaccine if new)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.GoatService().Vaccinate(ctx, id, args[1]); err != nil {
			return fmt.Errorf("failed to record vaccination: %w", err)
		}

		fmt.Printf("✓ Vaccinated goat #%d with %s\n", id, args[1])
		return nil
	},
}

var goatUnvaccinateCmd = &cobra.Command{
	Use:   "unvaccinate [id] [vaccine]",
	Short: "Remove a vaccination record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.GoatService().Unvaccinate(ctx, id, args[1]); err != nil {
			return fmt.Errorf("failed to remove vaccination: %w", err)
		}

		fmt.Printf("✓ Removed %s vaccination from goat #%d\n", args[1], id)
		return nil
	},
}

var goatDiagnoseCmd = &cobra.Command{
	Use:   "diagnose [id] [disease]",
	Short: "Record a diagnosis (registers the disease if new)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.GoatService().Diagnose(ctx, id, args[1]); err != nil {
			return fmt.Errorf("failed to record diagnosis: %w", err)
		}

		fmt.Printf("✓ Diagnosed goat #%d with %s\n", id, args[1])
		return nil
	},
}

var goatCureCmd = &cobra.Command{
	Use:   "cure [id] [disease]",
	Short: "Clear a diagnosis",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.GoatService().ClearDiagnosis(ctx, id, args[1]); err != nil {
			return fmt.Errorf("failed to clear diagnosis: %w", err)
		}

		fmt.Printf("✓ Cleared %s diagnosis for goat #%d\n", args[1], id)
		return nil
	},
}

// goatRequestFromFlags collects the shared add/update flag set.
func goatRequestFromFlags(cmd *cobra.Command, name string) (primary.CreateGoatRequest, error) {
	breed, _ := cmd.Flags().GetString("breed")
	gender, _ := cmd.Flags().GetString("gender")
	offspring, _ := cmd.Flags().GetInt("offspring")
	cost, _ := cmd.Flags().GetFloat64("cost")
	weight, _ := cmd.Flags().GetFloat64("weight")
	price, _ := cmd.Flags().GetFloat64("price")
	diet, _ := cmd.Flags().GetString("diet")
	lastBred, _ := cmd.Flags().GetString("last-bred")
	health, _ := cmd.Flags().GetString("health")
	vaccines, _ := cmd.Flags().GetStringSlice("vaccine")
	diseases, _ := cmd.Flags().GetStringSlice("disease")

	return primary.CreateGoatRequest{
		Breed:        breed,
		Name:         name,
		Gender:       gender,
		Offspring:    offspring,
		Cost:         cost,
		Weight:       weight,
		CurrentPrice: price,
		Diet:         diet,
		LastBred:     lastBred,
		HealthStatus: health,
		Vaccinations: vaccines,
		Diseases:     diseases,
	}, nil
}

// parseID parses a numeric id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: expected a number", arg)
	}
	return id, nil
}

// colorizeHealth renders a health status with a color cue.
func colorizeHealth(status string) string {
	switch strings.ToLower(status) {
	case "healthy":
		return color.New(color.FgGreen).Sprintf("[%s]", status)
	case "sick", "quarantined":
		return color.New(color.FgRed).Sprintf("[%s]", status)
	default:
		return color.New(color.FgYellow).Sprintf("[%s]", status)
	}
}

func addGoatFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("breed", "b", "", "Breed (e.g. Beetal, Barbari, Sirohi)")
	cmd.Flags().StringP("gender", "g", "", "Gender: Male or Female")
	cmd.Flags().Int("offspring", 0, "Number of offspring")
	cmd.Flags().Float64("cost", 0, "Purchase cost")
	cmd.Flags().Float64("weight", 0, "Weight in kg")
	cmd.Flags().Float64("price", 0, "Current market price")
	cmd.Flags().String("diet", "", "Diet (e.g. Hay, Pasture, Mixed)")
	cmd.Flags().String("last-bred", "", "Last breeding date (ISO format)")
	cmd.Flags().String("health", "", "Health status")
	cmd.Flags().StringSlice("vaccine", nil, "Vaccine name (repeatable)")
	cmd.Flags().StringSlice("disease", nil, "Disease name (repeatable)")
}

func init() {
	addGoatFlags(goatAddCmd)
	addGoatFlags(goatUpdateCmd)

	// Register subcommands
	goatCmd.AddCommand(goatAddCmd)
	goatCmd.AddCommand(goatListCmd)
	goatCmd.AddCommand(goatShowCmd)
	goatCmd.AddCommand(goatUpdateCmd)
	goatCmd.AddCommand(goatDeleteCmd)
	goatCmd.AddCommand(goatVaccinateCmd)
	goatCmd.AddCommand(goatUnvaccinateCmd)
	goatCmd.AddCommand(goatDiagnoseCmd)
	goatCmd.AddCommand(goatCureCmd)
}

// GoatCmd returns the goat command
func GoatCmd() *cobra.Command {
	return goatCmd
}
