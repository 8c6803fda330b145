package poly

import (
	"fmt"

	"github.com/interpkit/interpkit/utils"
)

// Neg returns -p.
func (p Polynomial[T]) Neg() Polynomial[T] {
	coeffs := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = -c
	}
	return Polynomial[T]{coeffs: coeffs}
}

// Add returns p + q. Missing coefficients in the shorter operand count as
// zero, and the result is canonicalized since the top coefficients may cancel.
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	coeffs := make([]T, utils.Max(len(p.coeffs), len(q.coeffs)))
	for i := range coeffs {
		coeffs[i] = p.Coefficient(i) + q.Coefficient(i)
	}
	return NewPolynomial(coeffs)
}

// Sub returns p - q.
func (p Polynomial[T]) Sub(q Polynomial[T]) Polynomial[T] {
	coeffs := make([]T, utils.Max(len(p.coeffs), len(q.coeffs)))
	for i := range coeffs {
		coeffs[i] = p.Coefficient(i) - q.Coefficient(i)
	}
	return NewPolynomial(coeffs)
}

// Mul returns the product p*q by coefficient convolution. The zero polynomial
// absorbs in either operand order, a case handled up front since the a+b-1
// length formula is meaningless for empty coefficient sequences.
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {
	if p.IsZero() || q.IsZero() {
		return Polynomial[T]{}
	}
	coeffs := make([]T, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			coeffs[i+j] += a * b
		}
	}
	return NewPolynomial(coeffs)
}

// MulScalar returns p scaled coefficient-wise by c.
func (p Polynomial[T]) MulScalar(c T) Polynomial[T] {
	coeffs := make([]T, len(p.coeffs))
	for i, a := range p.coeffs {
		coeffs[i] = a * c
	}
	return NewPolynomial(coeffs)
}

// Pow returns p^k using square-and-multiply, costing O(log k) polynomial
// products. Pow(0) is the constant polynomial 1 for every base, the zero
// polynomial included, so that expansion code never special-cases degree-0
// terms. A negative exponent is a contract violation and panics.
func (p Polynomial[T]) Pow(k int) Polynomial[T] {
	if k < 0 {
		panic(fmt.Sprintf("cannot Pow: negative exponent %d", k))
	}
	out := One[T]()
	base := p
	for k > 0 {
		if k&1 == 1 {
			out = out.Mul(base)
		}
		if k >>= 1; k > 0 {
			base = base.Mul(base)
		}
	}
	return out
}
