// Package scalar defines the numeric types the interpkit packages are generic
// over, along with the few cross-type conversions that plain field operations
// cannot express.
package scalar

import (
	"math"
	"math/cmplx"
)

// Number is the set of scalar types accepted as polynomial coefficients and
// interpolation coordinates. The type set is kept concrete on purpose: the
// helpers below route values through type switches, which defined types with
// these underlying types would bypass.
type Number interface {
	float32 | float64 | complex64 | complex128
}

// As converts x to the scalar type T2, going through complex128. A real value
// embeds into a complex type with a zero imaginary part; converting a complex
// value to a real type keeps the real part and discards the imaginary part.
func As[T2, T1 Number](x T1) (y T2) {
	var c complex128
	switch x := any(x).(type) {
	case float32:
		c = complex(float64(x), 0)
	case float64:
		c = complex(x, 0)
	case complex64:
		c = complex128(x)
	case complex128:
		c = x
	}
	switch y := any(&y).(type) {
	case *float32:
		*y = float32(real(c))
	case *float64:
		*y = real(c)
	case *complex64:
		*y = complex64(c)
	case *complex128:
		*y = c
	}
	return
}

// FromInt returns the scalar of type T equal to the integer i. Go does not
// allow converting a non-constant int to a complex type parameter directly.
func FromInt[T Number](i int) T {
	return As[T](float64(i))
}

// Abs returns the modulus of x as a float64.
func Abs[T Number](x T) float64 {
	switch x := any(x).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	return 0
}

// IsZero reports whether x is exactly the additive identity of T.
func IsZero[T Number](x T) bool {
	return x == T(0)
}
