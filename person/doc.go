// Package person implements the recursive-generic Builder: a hierarchy of
// builder stages whose fluent methods always return the most-derived builder
// type, so calls from different stages interleave freely in one chain.
//
// The mechanic is a self-referential type parameter. Each stage is generic
// over T, the concrete builder closing the recursion, and every mutator
// returns the stored T rather than the stage that declares it:
//
//	Base[T]        — owns the record, exposes Build().
//	InfoBuilder[T] — embeds Base[T], adds Called(name) T.
//	JobBuilder[T]  — embeds InfoBuilder[T], adds WorksAsA(position) T.
//	Builder        — JobBuilder[*Builder]; NewBuilder wires self = the
//	                 builder itself, completing the loop.
//
// Because Called returns T (= *Builder), WorksAsA remains reachable after
// it, and vice versa: subclassing never loses access to ancestor methods'
// chaining. Field writes commute across distinct fields, so
// Called("X").WorksAsA("Y") and WorksAsA("Y").Called("X") build the same
// Person.
package person
