package vehicle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/construct/vehicle"
)

func TestStepwise_SedanInRange(t *testing.T) {
	t.Parallel()

	step, err := vehicle.New().OfType(vehicle.Sedan).WithWheels(16)
	require.NoError(t, err)
	require.Equal(t, vehicle.Vehicle{Type: vehicle.Sedan, WheelSize: 16}, step.Build())
}

func TestStepwise_CrossoverInRange(t *testing.T) {
	t.Parallel()

	step, err := vehicle.New().OfType(vehicle.Crossover).WithWheels(18)
	require.NoError(t, err)
	require.Equal(t, vehicle.Vehicle{Type: vehicle.Crossover, WheelSize: 18}, step.Build())
}

func TestStepwise_WheelBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		carT   vehicle.CarType
		wheels int
		ok     bool
	}{
		{"sedan lower bound", vehicle.Sedan, 15, true},
		{"sedan upper bound", vehicle.Sedan, 17, true},
		{"sedan below range", vehicle.Sedan, 14, false},
		{"sedan above range", vehicle.Sedan, 18, false},
		{"crossover lower bound", vehicle.Crossover, 17, true},
		{"crossover upper bound", vehicle.Crossover, 20, true},
		{"crossover below range", vehicle.Crossover, 10, false},
		{"crossover above range", vehicle.Crossover, 21, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			step, err := vehicle.New().OfType(tc.carT).WithWheels(tc.wheels)
			if !tc.ok {
				require.ErrorIs(t, err, vehicle.ErrWheelSize)
				require.Nil(t, step)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wheels, step.Build().WheelSize)
		})
	}
}

func TestStepwise_ErrorNamesCategory(t *testing.T) {
	t.Parallel()

	// The rejection message must name the offending category.
	_, err := vehicle.New().OfType(vehicle.Sedan).WithWheels(18)
	require.ErrorIs(t, err, vehicle.ErrWheelSize)
	require.Contains(t, err.Error(), "sedan")

	_, err = vehicle.New().OfType(vehicle.Crossover).WithWheels(10)
	require.ErrorIs(t, err, vehicle.ErrWheelSize)
	require.Contains(t, err.Error(), "crossover")
}

func TestCarType_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "sedan", vehicle.Sedan.String())
	require.Equal(t, "crossover", vehicle.Crossover.String())
	require.Equal(t, "unknown", vehicle.CarType(99).String())
}
