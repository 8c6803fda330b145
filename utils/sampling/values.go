package sampling

import (
	"encoding/binary"
)

// Float64 returns a value drawn uniformly from [min, max) using the given
// source.
func Float64(prng PRNG, min, max float64) float64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	f := float64(binary.BigEndian.Uint64(b)) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// Complex128 returns a value whose real and imaginary parts are each drawn
// uniformly from [min, max).
func Complex128(prng PRNG, min, max float64) complex128 {
	return complex(Float64(prng, min, max), Float64(prng, min, max))
}

// Float64s returns n values drawn uniformly from [min, max).
func Float64s(prng PRNG, n int, min, max float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = Float64(prng, min, max)
	}
	return values
}

// DistinctFloat64s returns n pairwise distinct values in [min, max), suitable
// as interpolation nodes.
func DistinctFloat64s(prng PRNG, n int, min, max float64) []float64 {
	seen := make(map[float64]bool, n)
	values := make([]float64, 0, n)
	for len(values) < n {
		x := Float64(prng, min, max)
		if seen[x] {
			continue
		}
		seen[x] = true
		values = append(values, x)
	}
	return values
}
