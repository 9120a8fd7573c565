// Package main: the markup subcommand — fluent builder demonstration.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/construct/markup"
)

var markupCmd = &cobra.Command{
	Use:   "markup",
	Short: "Fluent builder assembling an indented markup tree",
	RunE:  func(_ *cobra.Command, _ []string) error { return demoMarkup() },
}

func demoMarkup() error {
	fmt.Println("=== Fluent markup builder ===")

	// One chain, one tree: each AddChild returns the same builder.
	b := markup.New("ul").
		AddChild("li", "hello").
		AddChild("li", "world")
	fmt.Print(b)

	// Reset drops the children but keeps the root name.
	b.Reset()
	fmt.Println("after reset:")
	fmt.Print(b)

	// Pre-built subtrees attach via AddChildNode.
	em, err := markup.NewNode("em", "emphasis")
	if err != nil {
		return err
	}
	fmt.Println("with a pre-built child:")
	fmt.Print(b.AddChildNode(em))
	fmt.Println()

	return nil
}
