// Package main: the member subcommand — faceted builder demonstration.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/construct/member"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Faceted builder: facades sharing one mutable record",
	RunE:  func(_ *cobra.Command, _ []string) error { return demoMember() },
}

func demoMember() error {
	fmt.Println("=== Faceted member builder ===")

	// Both facades write through the same record, so the chain can hop
	// between address and job concerns at will.
	m := member.NewBuilder().
		Lives().At("22B Baker Street").WithPostcode("NW1 6XE").In("London").
		Works().For("Acme").AsA("engineer").Earning(120000).
		Member()
	fmt.Printf("built: %+v\n", m)
	fmt.Println()

	return nil
}
