// SPDX-License-Identifier: MIT
// Package: construct/worker
//
// builder.go — deferred-mutation builder over the Worker record.
//
// Contract (strict):
//   - Do never executes a step; execution happens only inside Build.
//   - Build is repeatable: each call folds over a fresh zero Worker, so a
//     builder can stamp out many identical records.
//   - Steps run in insertion order, left to right; a nil step is a no-op.

package worker

// Worker is the flat value object assembled by the accumulated steps.
type Worker struct {
	// Name is the worker's display name.
	Name string

	// Position is the worker's role.
	Position string
}

// Mutation is a deferred mutation step: it receives the record built so far
// and returns the updated record.
type Mutation func(Worker) Worker

// Builder is the generic functional-builder core. T is the concrete builder
// closing the recursion; Do returns T so derived builders keep their own
// fluent type.
type Builder[T any] struct {
	steps []Mutation
	self  T
}

// Do appends a deferred step and returns the most-derived builder.
// Nil steps are ignored. Complexity: amortized O(1).
func (b *Builder[T]) Do(m Mutation) T {
	if m != nil {
		b.steps = append(b.steps, m)
	}

	return b.self
}

// Build folds all accumulated steps over a fresh zero Worker, in insertion
// order, and returns the result. Complexity: O(len(steps)).
func (b *Builder[T]) Build() Worker {
	var w Worker
	for _, step := range b.steps {
		w = step(w)
	}

	return w
}

// WorkerBuilder closes the recursion and adds a convenience vocabulary.
type WorkerBuilder struct {
	Builder[*WorkerBuilder]
}

// NewBuilder returns an empty WorkerBuilder ready to accumulate steps.
func NewBuilder() *WorkerBuilder {
	b := &WorkerBuilder{}
	b.self = b

	return b
}

// Called appends a step setting the worker's name.
func (b *WorkerBuilder) Called(name string) *WorkerBuilder {
	return b.Do(Named(name))
}

// WorksAsA appends a step setting the worker's position.
func (b *WorkerBuilder) WorksAsA(position string) *WorkerBuilder {
	return b.Do(Positioned(position))
}
