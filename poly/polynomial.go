// Package poly implements univariate polynomials with generic scalar
// coefficients. Values are kept in canonical form: trailing zero coefficients
// are stripped after every construction and arithmetic operation, and the
// empty coefficient sequence is the unique representation of the zero
// polynomial. Operations return new values; a Polynomial is never mutated
// once produced.
package poly

import (
	"github.com/google/go-cmp/cmp"

	"github.com/interpkit/interpkit/scalar"
)

// Polynomial represents f(x) = c0 + c1*x + ... + c(n-1)*x^(n-1), with the
// coefficient of x^i stored at index i.
type Polynomial[T scalar.Number] struct {
	coeffs []T
}

// NewPolynomial returns the polynomial whose coefficient of x^i is coeffs[i].
// The input slice is copied, then canonicalized.
func NewPolynomial[T scalar.Number](coeffs []T) Polynomial[T] {
	n := len(coeffs)
	for n > 0 && scalar.IsZero(coeffs[n-1]) {
		n--
	}
	if n == 0 {
		return Polynomial[T]{}
	}
	c := make([]T, n)
	copy(c, coeffs[:n])
	return Polynomial[T]{coeffs: c}
}

// Zero returns the zero polynomial.
func Zero[T scalar.Number]() Polynomial[T] {
	return Polynomial[T]{}
}

// One returns the constant polynomial 1, the multiplicative identity.
func One[T scalar.Number]() Polynomial[T] {
	return Polynomial[T]{coeffs: []T{1}}
}

// Degree returns the degree of the polynomial. The zero polynomial has no
// degree in the mathematical sense; Degree returns -1 for it.
func (p Polynomial[T]) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial[T]) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coefficients returns a copy of the canonical coefficient sequence.
func (p Polynomial[T]) Coefficients() []T {
	coeffs := make([]T, len(p.coeffs))
	copy(coeffs, p.coeffs)
	return coeffs
}

// Coefficient returns the coefficient of x^i, or 0 when the canonical form
// carries no term of that order.
func (p Polynomial[T]) Coefficient(i int) T {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Evaluate returns p(x), computed with Horner's scheme. The zero polynomial
// evaluates to 0 at every x.
func (p Polynomial[T]) Evaluate(x T) (y T) {
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}
	return
}

// Equal reports whether p and q have identical canonical coefficients.
func (p Polynomial[T]) Equal(q Polynomial[T]) bool {
	return cmp.Equal(p.coeffs, q.coeffs)
}

// As returns p with its coefficients converted to the scalar type T2. It is
// the bridge for mixed real/complex algebra, e.g. scaling a real polynomial
// by a complex factor: poly.As[complex128](p).MulScalar(z).
func As[T2, T1 scalar.Number](p Polynomial[T1]) Polynomial[T2] {
	coeffs := make([]T2, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = scalar.As[T2](c)
	}
	return NewPolynomial(coeffs)
}
