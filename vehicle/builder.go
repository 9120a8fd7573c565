// SPDX-License-Identifier: MIT
// Package: construct/vehicle
//
// builder.go — capability interfaces and the single hidden implementation.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrWheelSize) to branch on semantics.
//   - Context (category, allowed range) is attached with %w at the call site,
//     never baked into the sentinel definition.

package vehicle

import (
	"errors"
	"fmt"
)

// ErrWheelSize indicates a wheel size outside the range allowed by the
// previously chosen category.
// Usage: if errors.Is(err, ErrWheelSize) { /* reject the size */ }.
var ErrWheelSize = errors.New("vehicle: wheel size out of range")

// CategoryStep is the entry capability: the only legal operation is
// choosing a category, which yields the next stage.
type CategoryStep interface {
	// OfType records the category and transitions to WheelStep.
	OfType(t CarType) WheelStep
}

// WheelStep is the second capability: the only legal operation is choosing
// a wheel size, validated against the category recorded at the prior stage.
type WheelStep interface {
	// WithWheels validates size against the category's range and, on
	// success, transitions to BuildStep. Out-of-range sizes yield an error
	// wrapping ErrWheelSize that names the offending category.
	WithWheels(size int) (BuildStep, error)
}

// BuildStep is the terminal capability.
type BuildStep interface {
	// Build returns the finished Vehicle by value.
	Build() Vehicle
}

// carBuilder satisfies all three capability interfaces; callers only ever
// see it through the interface returned by the previous stage.
type carBuilder struct {
	car Vehicle
}

// Compile-time checks that the hidden type covers every stage.
var (
	_ CategoryStep = (*carBuilder)(nil)
	_ WheelStep    = (*carBuilder)(nil)
	_ BuildStep    = (*carBuilder)(nil)
)

// New starts a staged construction and returns the first capability.
func New() CategoryStep {
	return &carBuilder{}
}

// OfType records the category. No validation: every CarType value is a
// legal choice at this stage.
func (b *carBuilder) OfType(t CarType) WheelStep {
	b.car.Type = t

	return b
}

// WithWheels validates size against the recorded category's bounds.
func (b *carBuilder) WithWheels(size int) (BuildStep, error) {
	lo, hi := wheelRange(b.car.Type)
	if size < lo || size > hi {
		return nil, fmt.Errorf("%s wheels must be %d..%d, got %d: %w",
			b.car.Type, lo, hi, size, ErrWheelSize)
	}
	b.car.WheelSize = size

	return b, nil
}

// Build hands out the finished value; the builder retains no reference.
func (b *carBuilder) Build() Vehicle {
	return b.car
}
