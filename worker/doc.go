// Package worker implements the functional Builder: instead of mutating a
// record immediately, the builder accumulates deferred mutation steps and
// folds them over a fresh record at Build time, in insertion order.
//
// The package offers the following key components:
//
//   - Mutation:      a deferred step, func(Worker) Worker.
//   - Builder[T]:    the generic core; Do appends a step and returns the
//     self-typed handle (same mechanism as package person), Build folds.
//   - WorkerBuilder: the concrete builder closing the recursion, with
//     Called and WorksAsA convenience steps.
//   - Named, Positioned: package-level Mutation constructors — vocabulary
//     grows by writing new functions and passing them to Do, no subclassing
//     and no edits to the builder itself.
//
// Fold semantics: Build starts from the zero Worker and applies steps left
// to right. The last write to a field wins; steps touching distinct fields
// commute.
package worker
