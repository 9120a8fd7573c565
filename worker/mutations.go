// SPDX-License-Identifier: MIT
// Package: construct/worker
//
// mutations.go — the open-ended step vocabulary.
//
// Anything matching Mutation can be passed to Do, so the vocabulary grows
// by adding functions here (or in caller code), without touching Builder.

package worker

// Named returns a step that sets the worker's name.
func Named(name string) Mutation {
	return func(w Worker) Worker {
		w.Name = name

		return w
	}
}

// Positioned returns a step that sets the worker's position.
func Positioned(position string) Mutation {
	return func(w Worker) Worker {
		w.Position = position

		return w
	}
}
