package scalar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAs(t *testing.T) {
	t.Run("RealToComplex", func(t *testing.T) {
		require.Equal(t, complex128(1.5), As[complex128](1.5))
		require.Equal(t, complex64(-2), As[complex64](float32(-2)))
	})

	t.Run("ComplexToReal", func(t *testing.T) {
		require.Equal(t, 3.25, As[float64](3.25+7i))
		require.Equal(t, float32(-1), As[float32](complex64(-1+2i)))
	})

	t.Run("Identity", func(t *testing.T) {
		require.Equal(t, 0.5, As[float64](0.5))
		require.Equal(t, 1-2i, As[complex128](1-2i))
	})

	t.Run("Widening", func(t *testing.T) {
		require.Equal(t, 0.5, As[float64](float32(0.5)))
		require.Equal(t, complex128(complex64(1+1i)), As[complex128](complex64(1+1i)))
	})
}

func TestFromInt(t *testing.T) {
	require.Equal(t, 7.0, FromInt[float64](7))
	require.Equal(t, complex128(-3), FromInt[complex128](-3))
	require.Equal(t, float32(0), FromInt[float32](0))
}

func TestAbs(t *testing.T) {
	require.Equal(t, 2.5, Abs(-2.5))
	require.Equal(t, 5.0, Abs(3-4i))
	require.Equal(t, 1.0, Abs(float32(-1)))
}

func TestIsZero(t *testing.T) {
	require.True(t, IsZero(0.0))
	require.True(t, IsZero(complex128(0)))
	require.False(t, IsZero(1e-300))
	require.False(t, IsZero(0+1e-9i))
}
