// Package main: the vehicle subcommand — stepwise builder demonstration.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/construct/vehicle"
)

var vehicleCmd = &cobra.Command{
	Use:   "vehicle",
	Short: "Stepwise builder with a compile-time construction order",
	RunE:  func(_ *cobra.Command, _ []string) error { return demoVehicle() },
}

func demoVehicle() error {
	fmt.Println("=== Stepwise vehicle builder ===")

	// Each stage's return type exposes exactly one next operation; the
	// chain below is the only order that compiles.
	step, err := vehicle.New().OfType(vehicle.Crossover).WithWheels(18)
	if err != nil {
		return err
	}
	fmt.Printf("built: %+v\n", step.Build())

	// Wheel sizes are validated against the category chosen one stage
	// earlier; sedans cap out at 17 inches.
	if _, err = vehicle.New().OfType(vehicle.Sedan).WithWheels(18); err != nil {
		fmt.Println("rejected:", err)
	}
	fmt.Println()

	return nil
}
