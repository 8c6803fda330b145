// Package precision measures how closely computed values reproduce a set of
// reference values, e.g. an interpolant evaluated back at its own nodes.
package precision

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/interpkit/interpkit/scalar"
)

// Stats aggregates the absolute error |want - have| over a set of values.
type Stats struct {
	Max    float64
	Min    float64
	Mean   float64
	Median float64
	Std    float64
}

// Measure returns error statistics between the reference values want and the
// computed values have. The two slices must be non-empty and of equal length.
func Measure[T scalar.Number](want, have []T) (Stats, error) {
	if len(want) != len(have) {
		return Stats{}, fmt.Errorf("cannot Measure: length mismatch %d != %d", len(want), len(have))
	}

	deltas := make([]float64, len(want))
	for i := range want {
		deltas[i] = scalar.Abs(want[i] - have[i])
	}

	var s Stats
	var err error
	if s.Max, err = stats.Max(deltas); err != nil {
		return Stats{}, err
	}
	if s.Min, err = stats.Min(deltas); err != nil {
		return Stats{}, err
	}
	if s.Mean, err = stats.Mean(deltas); err != nil {
		return Stats{}, err
	}
	if s.Median, err = stats.Median(deltas); err != nil {
		return Stats{}, err
	}
	if s.Std, err = stats.StandardDeviation(deltas); err != nil {
		return Stats{}, err
	}

	return s, nil
}

func (s Stats) String() string {
	return fmt.Sprintf("max=%.3e min=%.3e mean=%.3e median=%.3e std=%.3e",
		s.Max, s.Min, s.Mean, s.Median, s.Std)
}
