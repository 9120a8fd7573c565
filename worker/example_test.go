package worker_test

import (
	"fmt"

	"github.com/katalvlaran/construct/worker"
)

// ExampleWorkerBuilder records steps fluently and folds them at Build time.
func ExampleWorkerBuilder() {
	w := worker.NewBuilder().
		Called("sarah").
		WorksAsA("developer").
		Build()
	fmt.Printf("%s is a %s\n", w.Name, w.Position)

	// Output:
	// sarah is a developer
}
