// Package main: the worker subcommand — functional builder demonstration.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/construct/worker"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Functional builder: deferred steps folded at Build time",
	RunE:  func(_ *cobra.Command, _ []string) error { return demoWorker() },
}

func demoWorker() error {
	fmt.Println("=== Functional worker builder ===")

	// Steps are recorded, not executed; Build folds them left to right.
	b := worker.NewBuilder().Called("sarah").WorksAsA("developer")

	// The vocabulary is open: any func(Worker) Worker slots into Do,
	// including ones defined right here at the call site.
	b.Do(func(w worker.Worker) worker.Worker {
		w.Name = strings.ToUpper(w.Name)

		return w
	})
	fmt.Printf("built: %+v\n", b.Build())
	fmt.Println()

	return nil
}
