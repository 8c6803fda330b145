package poly

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/interpkit/interpkit/scalar"
)

// String renders the polynomial in ascending order of powers, sign-aware,
// e.g. "33 - 34.5x + 8.5x^2". A bare coefficient of 1 is omitted before x,
// powers of 2 and above use ^k notation, zero coefficients are skipped, and
// the zero polynomial renders as "0". Complex coefficients with a nonzero
// imaginary part render parenthesized, e.g. "(4+2.5i)".
func (p Polynomial[T]) String() string {
	if p.IsZero() {
		return "0"
	}

	var sb strings.Builder
	first := true
	for k, c := range p.coeffs {
		if scalar.IsZero(c) {
			continue
		}

		mag, neg := formatScalar(c)
		switch {
		case first:
			if neg {
				sb.WriteString("-")
			}
			first = false
		case neg:
			sb.WriteString(" - ")
		default:
			sb.WriteString(" + ")
		}

		if k == 0 || mag != "1" {
			sb.WriteString(mag)
		}
		if k >= 1 {
			sb.WriteString("x")
			if k >= 2 {
				fmt.Fprintf(&sb, "^%d", k)
			}
		}
	}

	return sb.String()
}

// formatScalar returns the magnitude of c as a string along with whether its
// sign should be rendered as subtraction. Complex values with a nonzero
// imaginary part have no usable sign and are rendered whole.
func formatScalar[T scalar.Number](c T) (mag string, neg bool) {
	switch c := any(c).(type) {
	case float32:
		return strconv.FormatFloat(math.Abs(float64(c)), 'g', -1, 32), c < 0
	case float64:
		return strconv.FormatFloat(math.Abs(c), 'g', -1, 64), c < 0
	case complex64:
		if imag(c) == 0 {
			return strconv.FormatFloat(math.Abs(float64(real(c))), 'g', -1, 32), real(c) < 0
		}
		return fmt.Sprintf("%v", c), false
	case complex128:
		if imag(c) == 0 {
			return strconv.FormatFloat(math.Abs(real(c)), 'g', -1, 64), real(c) < 0
		}
		return fmt.Sprintf("%v", c), false
	}
	return "0", false
}
