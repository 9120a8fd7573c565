// SPDX-License-Identifier: MIT
// Package: construct/person
//
// builder.go — the Person record and its staged generic builder chain.
//
// Contract (strict):
//   - Every fluent method returns T, the most-derived builder type, never
//     the declaring stage. New stages extend the chain by embedding the
//     previous stage and closing T at the end.
//   - Build reads the shared record by value; the chain stays usable after.

package person

// Person is the flat value object assembled by the builder chain.
type Person struct {
	// Name is set by Called.
	Name string

	// Position is set by WorksAsA.
	Position string
}

// Base is the root stage. It owns the record under construction and the
// self-typed handle every fluent method returns.
type Base[T any] struct {
	person *Person
	self   T
}

// Build returns a copy of the record accumulated so far.
func (b *Base[T]) Build() Person {
	return *b.person
}

// InfoBuilder extends Base with identity fields.
type InfoBuilder[T any] struct {
	Base[T]
}

// Called sets the person's name and returns the most-derived builder.
func (b *InfoBuilder[T]) Called(name string) T {
	b.person.Name = name

	return b.self
}

// JobBuilder extends InfoBuilder with employment fields.
type JobBuilder[T any] struct {
	InfoBuilder[T]
}

// WorksAsA sets the person's position and returns the most-derived builder.
func (b *JobBuilder[T]) WorksAsA(position string) T {
	b.person.Position = position

	return b.self
}

// Builder closes the recursion: it is the T every stage returns, so the
// whole ancestor vocabulary chains through it.
type Builder struct {
	JobBuilder[*Builder]
}

// NewBuilder returns a ready-to-chain Builder over a fresh Person.
func NewBuilder() *Builder {
	b := &Builder{}
	b.person = &Person{}
	b.self = b

	return b
}
