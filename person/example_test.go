package person_test

import (
	"fmt"

	"github.com/katalvlaran/construct/person"
)

// ExampleBuilder interleaves methods from both builder stages in one chain.
func ExampleBuilder() {
	p := person.NewBuilder().
		Called("Dmitri").
		WorksAsA("quant").
		Build()
	fmt.Printf("%s works as a %s\n", p.Name, p.Position)

	// Output:
	// Dmitri works as a quant
}
