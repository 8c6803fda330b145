package poly

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {

	testCases := []struct {
		name   string
		coeffs []float64
		want   string
	}{
		{"Zero", nil, "0"},
		{"Constant", []float64{-3}, "-3"},
		{"Monic", []float64{0, 1}, "x"},
		{"LeadingMinus", []float64{-1, 1}, "-1 + x"},
		{"SkippedTerm", []float64{2, 0, -1}, "2 - x^2"},
		{"Quadratic", []float64{33, -34.5, 8.5}, "33 - 34.5x + 8.5x^2"},
		{"UnitCoefficientOmitted", []float64{0, 0, 1}, "x^2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, NewPolynomial(tc.coeffs).String())
		})
	}
}

func TestStringComplex(t *testing.T) {
	p := NewPolynomial([]complex128{4 + 2.5i, 3})
	require.Equal(t, "(4+2.5i) + 3x", p.String())

	q := NewPolynomial([]complex128{2, -1})
	require.Equal(t, "2 - x", q.String())
}
