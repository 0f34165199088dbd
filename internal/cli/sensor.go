package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/croft/internal/ports/primary"
	"github.com/example/croft/internal/wire"
)

var sensorCmd = &cobra.Command{
	Use:   "sensor",
	Short: "Manage farm sensors",
	Long:  "Register, list, update and delete sensors and record their readings",
}

var sensorAddCmd = &cobra.Command{
	Use:   "add [type]",
	Short: "Register a new sensor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		sensor, err := wire.FarmService().AddSensor(ctx, sensorRequestFromFlags(cmd, args[0]))
		if err != nil {
			return fmt.Errorf("failed to register sensor: %w", err)
		}

		fmt.Printf("✓ Registered %s sensor #%d", sensor.SensorType, sensor.ID)
		if sensor.Location != "" {
			fmt.Printf(" at %s", sensor.Location)
		}
		fmt.Println()
		return nil
	},
}

var sensorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sensors",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sensors, err := wire.FarmService().ListSensors(ctx)
		if err != nil {
			return fmt.Errorf("failed to list sensors: %w", err)
		}

		if len(sensors) == 0 {
			fmt.Println("No sensors found")
			return nil
		}

		fmt.Printf("Found %d sensor(s):\n\n", len(sensors))
		for _, sensor := range sensors {
			fmt.Printf("#%-4d %-14s %-15s", sensor.ID, sensor.SensorType, sensor.Location)
			if sensor.LastReadingAt != "" {
				fmt.Printf(" %.2f at %s", sensor.LastReading, sensor.LastReadingAt)
			} else {
				fmt.Print(" no readings yet")
			}
			if sensor.Status != "" {
				fmt.Printf(" [%s]", sensor.Status)
			}
			fmt.Println()
		}
		return nil
	},
}

var sensorUpdateCmd = &cobra.Command{
	Use:   "update [id] [type]",
	Short: "Update a sensor, including its latest reading",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		sensor, err := wire.FarmService().UpdateSensor(ctx, id, sensorRequestFromFlags(cmd, args[1]))
		if err != nil {
			return fmt.Errorf("failed to update sensor: %w", err)
		}

		fmt.Printf("✓ Updated sensor #%d\n", sensor.ID)
		return nil
	},
}

var sensorDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a sensor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.FarmService().DeleteSensor(ctx, id); err != nil {
			return fmt.Errorf("failed to delete sensor: %w", err)
		}

		fmt.Printf("✓ Deleted sensor #%d\n", id)
		return nil
	},
}

func sensorRequestFromFlags(cmd *cobra.Command, sensorType string) primary.SensorRequest {
	location, _ := cmd.Flags().GetString("location")
	reading, _ := cmd.Flags().GetFloat64("reading")
	readingAt, _ := cmd.Flags().GetString("reading-at")
	status, _ := cmd.Flags().GetString("status")

	return primary.SensorRequest{
		SensorType:    sensorType,
		Location:      location,
		LastReading:   reading,
		LastReadingAt: readingAt,
		Status:        status,
	}
}

func addSensorFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("location", "l", "", "Location (e.g. barn A, north field)")
	cmd.Flags().Float64("reading", 0, "Latest reading value")
	cmd.Flags().String("reading-at", "", "Latest reading timestamp (ISO format)")
	cmd.Flags().String("status", "", "Status (e.g. active, offline)")
}

func init() {
	addSensorFlags(sensorAddCmd)
	addSensorFlags(sensorUpdateCmd)

	sensorCmd.AddCommand(sensorAddCmd)
	sensorCmd.AddCommand(sensorListCmd)
	sensorCmd.AddCommand(sensorUpdateCmd)
	sensorCmd.AddCommand(sensorDeleteCmd)
}

// SensorCmd returns the sensor command
func SensorCmd() *cobra.Command {
	return sensorCmd
}
