// Package lagrange builds the unique minimal-degree polynomial through a set
// of sample points with pairwise distinct x-coordinates, maintaining one
// Lagrange basis term per point incrementally as points are inserted.
package lagrange

import (
	"github.com/interpkit/interpkit/poly"
	"github.com/interpkit/interpkit/scalar"
)

// Point is one (x, y) sample. D is the scalar type of the independent
// variable, R the scalar type of the dependent variable; the two may differ,
// e.g. real x-coordinates with complex y-values.
type Point[D, R scalar.Number] struct {
	X D
	Y R
}

// record carries the Lagrange basis term attached to one inserted point:
// roots holds the x-coordinate of every other inserted point and denom the
// product of (X - root) over the same set, so that the term
// Π(x - root)/denom evaluates to 1 at X and to 0 at every other inserted x.
type record[D, R scalar.Number] struct {
	point Point[D, R]
	roots []D
	denom D
}

// Interpolator accumulates sample points one at a time and evaluates the
// interpolating polynomial through them, either directly per query (Calc) or
// by expanding it once into an explicit polynomial (Polynomial). It is not
// safe for concurrent use.
type Interpolator[D, R scalar.Number] struct {
	records []record[D, R]
}

// NewInterpolator returns an empty Interpolator.
func NewInterpolator[D, R scalar.Number]() *Interpolator[D, R] {
	return &Interpolator[D, R]{}
}

// Insert adds the sample (x, y) and reports whether it was accepted. An x
// equal to an already inserted x-coordinate is rejected with no mutation: a
// second y for the same x would be inconsistent, and even an identical y
// would later zero a denominator. On success every stored basis term is
// updated in O(n) — a new numerator root and a new denominator factor — so
// it keeps evaluating to 1 at its own x and to 0 everywhere else, the new x
// included, before the record for (x, y) is built from all prior
// x-coordinates and appended.
func (itp *Interpolator[D, R]) Insert(x D, y R) bool {
	for i := range itp.records {
		if itp.records[i].point.X == x {
			return false
		}
	}

	for i := range itp.records {
		r := &itp.records[i]
		r.roots = append(r.roots, x)
		r.denom *= r.point.X - x
	}

	rec := record[D, R]{point: Point[D, R]{X: x, Y: y}, denom: 1}
	for i := range itp.records {
		rec.roots = append(rec.roots, itp.records[i].point.X)
		rec.denom *= x - itp.records[i].point.X
	}
	itp.records = append(itp.records, rec)

	return true
}

// Calc evaluates the interpolant at x directly from the stored basis terms,
// without materializing a polynomial. Each query costs O(n^2) for n points,
// which wins when the interpolant is only evaluated a few times.
func (itp *Interpolator[D, R]) Calc(x D) (y R) {
	for i := range itp.records {
		r := &itp.records[i]
		product := D(1)
		for _, root := range r.roots {
			product *= x - root
		}
		y += scalar.As[R](product/r.denom) * r.point.Y
	}
	return
}

// Polynomial expands the weighted basis terms into the explicit interpolating
// polynomial: for each point, the product of the degree-1 factors (x - root)
// scaled by y/denom, summed over all points. Expansion costs O(n^2)
// polynomial products, after which every evaluation is a single Horner pass.
func (itp *Interpolator[D, R]) Polynomial() poly.Polynomial[R] {
	sum := poly.Zero[R]()
	for i := range itp.records {
		r := &itp.records[i]
		term := poly.One[R]()
		for _, root := range r.roots {
			term = term.Mul(poly.NewPolynomial([]R{scalar.As[R](-root), 1}))
		}
		sum = sum.Add(term.MulScalar(r.point.Y / scalar.As[R](r.denom)))
	}
	return sum
}

// Clear removes every stored point. The Interpolator behaves as newly
// constructed afterwards.
func (itp *Interpolator[D, R]) Clear() {
	itp.records = nil
}

// Len returns the number of stored points.
func (itp *Interpolator[D, R]) Len() int {
	return len(itp.records)
}

// Points returns a copy of the stored samples in insertion order.
func (itp *Interpolator[D, R]) Points() []Point[D, R] {
	points := make([]Point[D, R], len(itp.records))
	for i := range itp.records {
		points[i] = itp.records[i].point
	}
	return points
}
