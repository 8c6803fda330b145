package precision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {

	t.Run("Float64", func(t *testing.T) {
		want := []float64{1, 2, 3, 4}
		have := []float64{1, 2.5, 3, 3}
		s, err := Measure(want, have)
		require.NoError(t, err)
		require.Equal(t, 1.0, s.Max)
		require.Equal(t, 0.0, s.Min)
		require.Equal(t, 0.375, s.Mean)
		require.Equal(t, 0.25, s.Median)
	})

	t.Run("Complex128", func(t *testing.T) {
		want := []complex128{3 + 4i}
		have := []complex128{0}
		s, err := Measure(want, have)
		require.NoError(t, err)
		require.Equal(t, 5.0, s.Max)
		require.Equal(t, 5.0, s.Median)
	})

	t.Run("Exact", func(t *testing.T) {
		v := []float64{0.5, -1, 7}
		s, err := Measure(v, v)
		require.NoError(t, err)
		require.Equal(t, 0.0, s.Max)
		require.Equal(t, 0.0, s.Std)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := Measure([]float64{1}, []float64{1, 2})
		require.Error(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Measure([]float64{}, []float64{})
		require.Error(t, err)
	})
}
