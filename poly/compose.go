package poly

import (
	"github.com/interpkit/interpkit/scalar"
)

// Compose returns the polynomial h with h(x) = outer(inner(x)). Successive
// powers of inner are maintained with a single multiplication per term,
// which is algebraically identical to, but much cheaper than, calling Pow
// from scratch for every coefficient of outer.
func Compose[T scalar.Number](outer, inner Polynomial[T]) Polynomial[T] {
	sum := Zero[T]()
	pow := One[T]()
	for i, c := range outer.coeffs {
		if i > 0 {
			pow = pow.Mul(inner)
		}
		sum = sum.Add(pow.MulScalar(c))
	}
	return sum
}
