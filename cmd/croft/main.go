package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/croft/internal/cli"
	"github.com/example/croft/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "croft",
		Short:   "croft - goat farm management",
		Version: version.String(),
		Long: `croft is a CLI tool for managing a goat farm.
It tracks the herd, its vaccination and disease records, and the
workers, equipment, sensors and spaces that keep the farm running.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.GoatCmd())
	rootCmd.AddCommand(cli.VaccineCmd())
	rootCmd.AddCommand(cli.DiseaseCmd())
	rootCmd.AddCommand(cli.WorkerCmd())
	rootCmd.AddCommand(cli.EquipmentCmd())
	rootCmd.AddCommand(cli.SensorCmd())
	rootCmd.AddCommand(cli.SpaceCmd())

	// Developer tools
	rootCmd.AddCommand(cli.DevCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
