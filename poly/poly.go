// Package poly implements dense polynomial operations over GF(2^8), used by
// package rs to build generator polynomials and run the Reed-Solomon
// encode/decode pipeline. Coefficients are little-endian: index i holds the
// coefficient of x^i.
package poly

import (
	"errors"

	"codectoy/gf"
)

// Poly is a little-endian coefficient array: Poly[i] is the coefficient of
// x^i. The empty slice is never a valid polynomial; the zero polynomial is
// represented as Poly{0}.
type Poly []gf.Elem

// ErrEmptyPolynomial and ErrZeroLeadingCoefficient mark contract violations:
// every non-divmod operation tolerates trailing (high-index) zeros, but an
// empty slice or a divisor with a zero leading coefficient is a programming
// error, not a data error.
var (
	ErrEmptyPolynomial         = errors.New("poly: empty polynomial")
	ErrZeroLeadingCoefficient = errors.New("poly: divisor has zero leading coefficient")
)

// Degree returns the index of the highest nonzero coefficient, or -1 for the
// zero polynomial (including the empty slice).
func Degree(p Poly) int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// Normalize trims trailing zero coefficients, leaving at least one element.
func Normalize(p Poly) Poly {
	n := len(p)
	for n > 1 && p[n-1] == 0 {
		n--
	}
	return p[:n]
}

// Add returns a+b coefficientwise XOR; the result has length max(len(a),
// len(b)), missing coefficients on the shorter operand treated as zero.
func Add(a, b Poly) Poly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(Poly, n)
	for i := range a {
		out[i] ^= a[i]
	}
	for i := range b {
		out[i] ^= b[i]
	}
	return out
}

// Mul returns a*b by convolution. The result has length len(a)+len(b)-1
// unless either operand is empty, which is a contract violation.
func Mul(f gf.Field, a, b Poly) Poly {
	if len(a) == 0 || len(b) == 0 {
		panic(ErrEmptyPolynomial)
	}
	out := make(Poly, len(a)+len(b)-1)
	for i, ca := range a {
		if ca == 0 {
			continue
		}
		for j, cb := range b {
			out[i+j] = f.Add(out[i+j], f.Mul(ca, cb))
		}
	}
	return out
}

// Scale multiplies every coefficient by the scalar s.
func Scale(f gf.Field, p Poly, s gf.Elem) Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		out[i] = f.Mul(c, s)
	}
	return out
}

// Shift multiplies p by x^k: prepend k zero coefficients.
func Shift(p Poly, k int) Poly {
	out := make(Poly, len(p)+k)
	copy(out[k:], p)
	return out
}

// Eval evaluates p(x) via Horner's method.
func Eval(f gf.Field, p Poly, x gf.Elem) gf.Elem {
	if len(p) == 0 {
		return 0
	}
	result := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		result = f.Add(f.Mul(result, x), p[i])
	}
	return result
}

// DivMod performs polynomial long division, returning (quotient, remainder).
//
// divisor's leading (highest-index) coefficient MUST be nonzero; this is a
// contract violation, not a data error, and panics. If dividend's degree is
// less than divisor's degree, the quotient is Poly{0} and the remainder is
// the dividend unchanged. Otherwise the quotient has length
// len(dividend)-len(divisor)+1 and the remainder has length
// len(divisor)-1. An all-zero remainder is normalized to Poly{0}.
func DivMod(f gf.Field, dividend, divisor Poly) (quotient, remainder Poly) {
	if len(divisor) == 0 {
		panic(ErrEmptyPolynomial)
	}
	divisorDeg := len(divisor) - 1
	if divisor[divisorDeg] == 0 {
		panic(ErrZeroLeadingCoefficient)
	}

	dividendDeg := Degree(dividend)
	if dividendDeg < divisorDeg {
		return Poly{0}, append(Poly(nil), dividend...)
	}

	remWork := append(Poly(nil), dividend...)
	quotLen := len(dividend) - len(divisor) + 1
	quot := make(Poly, quotLen)
	leadInv := f.Inverse(divisor[divisorDeg])

	for deg := dividendDeg; deg >= divisorDeg; deg-- {
		lead := remWork[deg]
		if lead == 0 {
			continue
		}
		coeff := f.Mul(lead, leadInv)
		quot[deg-divisorDeg] = coeff
		for i, dc := range divisor {
			if dc == 0 {
				continue
			}
			remWork[deg-divisorDeg+i] = f.Add(remWork[deg-divisorDeg+i], f.Mul(coeff, dc))
		}
	}

	remLen := len(divisor) - 1
	if remLen == 0 {
		remLen = 1
	}
	rem := make(Poly, remLen)
	copy(rem, remWork[:min(len(remWork), remLen)])

	allZero := true
	for _, c := range rem {
		if c != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		rem = Poly{0}
	}

	return quot, rem
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
