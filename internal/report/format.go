// Package report renders derived polynomials as plain text.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"vieta/internal/quadratic"
)

// significantDigits matches the conventional default float-to-text width of
// six significant digits. Trailing zeros are dropped.
const significantDigits = 6

// FormatNumber renders v without locale-dependent separators. Negative zero
// prints as "0", NaN as "nan" and infinities as "inf" / "-inf".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		return "0"
	}
	return strconv.FormatFloat(v, 'g', significantDigits, 64)
}

// RenderPolynomial renders p as "x^2 [± |b|x] [± |c|] = 0". A zero term is
// omitted and p.A is never shown since it is always 1.
func RenderPolynomial(p quadratic.Polynomial) string {
	var b strings.Builder
	b.WriteString("x^2")
	writeTerm(&b, p.B, "x")
	writeTerm(&b, p.C, "")
	b.WriteString(" = 0")
	return b.String()
}

func writeTerm(b *strings.Builder, coef float64, suffix string) {
	if coef == 0 {
		return
	}
	if coef < 0 {
		b.WriteString(" - ")
	} else {
		b.WriteString(" + ")
	}
	b.WriteString(FormatNumber(math.Abs(coef)))
	b.WriteString(suffix)
}

// FormatEntry renders the body of an entry block: name, roots, coefficients
// and the polynomial line, each indented and newline-terminated.
func FormatEntry(name string, roots quadratic.RootPair, p quadratic.Polynomial) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  Name: %s\n", name)
	fmt.Fprintf(&b, "  Roots: [%s, %s]\n", FormatNumber(roots.R1), FormatNumber(roots.R2))
	fmt.Fprintf(&b, "  Coefficients (a=1): a=%s, b=%s, c=%s\n", FormatNumber(p.A), FormatNumber(p.B), FormatNumber(p.C))
	fmt.Fprintf(&b, "  Polynomial: %s\n", RenderPolynomial(p))
	return b.String()
}
