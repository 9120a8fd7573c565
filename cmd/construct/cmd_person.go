// Package main: the person subcommand — recursive-generic builder demo.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/construct/person"
)

var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Recursive-generic builder: fluent chaining across stages",
	RunE:  func(_ *cobra.Command, _ []string) error { return demoPerson() },
}

func demoPerson() error {
	fmt.Println("=== Recursive-generic person builder ===")

	// Called lives on an ancestor stage, WorksAsA on a derived one; the
	// self-typed returns keep the whole vocabulary chainable either way.
	p := person.NewBuilder().Called("Dmitri").WorksAsA("quant").Build()
	fmt.Printf("built: %+v\n", p)

	q := person.NewBuilder().WorksAsA("quant").Called("Dmitri").Build()
	fmt.Printf("same either order: %v\n", p == q)
	fmt.Println()

	return nil
}
