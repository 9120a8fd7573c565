// Package main implements the construct demo CLI: a console tour of the
// five Builder variants, one subcommand per pattern, all five by default.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "construct",
	Short: "Console tour of the Builder pattern catalogue",
	Long: `construct walks the five Builder variants shipped by the library:
fluent markup, stepwise vehicle, recursive-generic person, functional
worker, and faceted member. Run a subcommand for one pattern, or no
subcommand for the whole tour.`,
	SilenceUsage: true,
	RunE:         runAll,
}

func init() {
	rootCmd.AddCommand(markupCmd, vehicleCmd, personCmd, workerCmd, memberCmd)
}

// runAll executes every pattern demo in catalogue order, stopping at the
// first failure.
func runAll(_ *cobra.Command, _ []string) error {
	for _, demo := range []func() error{
		demoMarkup,
		demoVehicle,
		demoPerson,
		demoWorker,
		demoMember,
	} {
		if err := demo(); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
