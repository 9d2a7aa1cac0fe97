package series

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultTerms is the number of terms String renders.
const DefaultTerms = 10

// String renders the first DefaultTerms terms followed by "+ ...".
func (s *Series) String() string {
	return Format(s, DefaultTerms)
}

// Format renders the first terms coefficients of s, for example
// "1 + 1x + 1x^2 + 0x^3 + ...". The constant term is printed bare and every
// later term carries an explicit sign. The trailing ellipsis is always
// appended, even when the series is a finite polynomial.
func Format(s *Series, terms int) string {
	if terms < 1 {
		terms = 1
	}
	var b strings.Builder
	b.WriteString(formatNumber(s.coeff(0)))
	for i := 1; i < terms; i++ {
		c := s.coeff(i)
		fmt.Fprintf(&b, " %s %s%s", sign(c), formatNumber(math.Abs(c)), monomial(i))
	}
	b.WriteString(" + ...")
	return b.String()
}

// FormatLaTeX renders the first terms coefficients of s as a LaTeX math
// expression ending in \cdots.
func FormatLaTeX(s *Series, terms int) string {
	if terms < 1 {
		terms = 1
	}
	var b strings.Builder
	b.WriteString(formatNumber(s.coeff(0)))
	for i := 1; i < terms; i++ {
		c := s.coeff(i)
		fmt.Fprintf(&b, " %s %s%s", sign(c), formatNumber(math.Abs(c)), monomialLaTeX(i))
	}
	b.WriteString(` + \cdots`)
	return b.String()
}

// sign treats zero as non-negative.
func sign(c float64) string {
	if c >= 0 {
		return "+"
	}
	return "-"
}

func monomial(i int) string {
	switch i {
	case 0:
		return ""
	case 1:
		return "x"
	default:
		return "x^" + strconv.Itoa(i)
	}
}

func monomialLaTeX(i int) string {
	switch i {
	case 0:
		return ""
	case 1:
		return "x"
	default:
		return fmt.Sprintf("x^{%d}", i)
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
