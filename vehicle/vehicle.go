// SPDX-License-Identifier: MIT
// Package: construct/vehicle
//
// vehicle.go — the Vehicle value, its category enum, and wheel-size ranges.

package vehicle

// CarType enumerates the supported vehicle categories.
type CarType int

const (
	// Sedan is the zero-value category.
	Sedan CarType = iota
	// Crossover allows larger wheels than Sedan.
	Crossover
)

// String returns the human-readable category name.
func (t CarType) String() string {
	switch t {
	case Sedan:
		return "sedan"
	case Crossover:
		return "crossover"
	default:
		return "unknown"
	}
}

// Category-specific wheel-size bounds, inclusive on both ends.
const (
	sedanMinWheels     = 15
	sedanMaxWheels     = 17
	crossoverMinWheels = 17
	crossoverMaxWheels = 20
)

// wheelRange returns the inclusive [lo, hi] wheel-size bounds for t.
// Unknown categories fall back to the Sedan bounds, matching the zero value.
func wheelRange(t CarType) (lo, hi int) {
	if t == Crossover {
		return crossoverMinWheels, crossoverMaxWheels
	}

	return sedanMinWheels, sedanMaxWheels
}

// Vehicle is the finished product of the staged builder.
type Vehicle struct {
	// Type is the category chosen at the first stage.
	Type CarType

	// WheelSize is the wheel diameter in inches, validated against Type.
	WheelSize int
}
