package poly

import (
	"github.com/interpkit/interpkit/scalar"
)

// Derivative returns dp/dx: the coefficient of x^i in p, for i >= 1, scaled
// by i and moved to position i-1. Constant and zero polynomials differentiate
// to the zero polynomial.
func (p Polynomial[T]) Derivative() Polynomial[T] {
	if len(p.coeffs) <= 1 {
		return Polynomial[T]{}
	}
	coeffs := make([]T, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		coeffs[i-1] = scalar.FromInt[T](i) * p.coeffs[i]
	}
	return NewPolynomial(coeffs)
}

// Integral returns the antiderivative of p whose constant term is c: the
// coefficient of x^i in p is divided by i+1 and moved to position i+1.
// Taking Derivative of the result reproduces p, up to floating-point
// rounding.
func (p Polynomial[T]) Integral(c T) Polynomial[T] {
	coeffs := make([]T, len(p.coeffs)+1)
	coeffs[0] = c
	for i, a := range p.coeffs {
		coeffs[i+1] = a / scalar.FromInt[T](i+1)
	}
	return NewPolynomial(coeffs)
}
