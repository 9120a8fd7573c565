// Package vehicle implements the stepwise (staged) Builder: construction
// proceeds through a fixed sequence of capability interfaces, each exposing
// only the next legal operation, so out-of-order calls do not compile.
//
// The stages:
//
//	CategoryStep.OfType(t)    — choose Sedan or Crossover, no validation.
//	WheelStep.WithWheels(n)   — validate n against the category's range
//	                            (Sedan 15–17, Crossover 17–20, inclusive);
//	                            out of range ⇒ error wrapping ErrWheelSize.
//	BuildStep.Build()         — return the finished Vehicle value.
//
// A single hidden struct satisfies all three interfaces; only the static
// type of the handle returned by the previous step restricts the caller.
// There is deliberately no runtime ordering check: the staging already makes
// "wheels before category" inexpressible.
//
// Guarantees:
//
//   - New is the only entry point and yields a CategoryStep.
//   - WithWheels validates after the category is known, so the range it
//     enforces is always the category-specific one.
//   - Build returns the Vehicle by value; the builder keeps no claim on it.
package vehicle
