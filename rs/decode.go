package rs

import (
	"codectoy/gf"
	"codectoy/poly"
)

// findErrorLocator runs Berlekamp-Massey over the syndrome sequence,
// producing the error locator polynomial L(x). State mirrors the classical
// presentation: C is the current locator, B the locator saved at the last
// length change, L the current degree, m the shift since that save, and b
// the discrepancy at that save.
func findErrorLocator(field gf.Field, syndromes poly.Poly, parity int) (poly.Poly, error) {
	locator := poly.Poly{1}
	oldLocator := poly.Poly{1}
	locatorDegree := 0
	m := 1
	oldDiscrepancy := gf.Elem(1)

	for n := 0; n < parity; n++ {
		discrepancy := syndromes[n]
		for i := 1; i <= locatorDegree; i++ {
			if i < len(locator) && i <= n {
				discrepancy = field.Add(discrepancy, field.Mul(locator[i], syndromes[n-i]))
			}
		}

		if discrepancy == 0 {
			m++
			continue
		}

		scale := field.Div(discrepancy, oldDiscrepancy)
		scaledOld := poly.Scale(field, oldLocator, scale)
		shiftedScaledOld := poly.Shift(scaledOld, m)

		if 2*locatorDegree <= n {
			locatorDegree = n + 1 - locatorDegree
			oldLocator = append(poly.Poly(nil), locator...)
			oldDiscrepancy = discrepancy
			m = 1
		} else {
			m++
		}

		locator = poly.Add(locator, shiftedScaledOld)
		locator = poly.Normalize(locator)
	}

	if locatorDegree > parity/2 {
		return nil, &TooManyErrorsError{LocatorDegree: locatorDegree, Parity: parity}
	}
	return locator, nil
}

// findErrorPositions runs the Chien search: L(x) has a root at alpha^-i
// exactly when position i is in error. More roots than the locator's degree
// indicates a miscorrection.
func findErrorPositions(field gf.Field, locator poly.Poly, dataLen, parity int) ([]int, error) {
	expectedErrors := len(locator) - 1
	var positions []int

	for i := 0; i < dataLen; i++ {
		alphaI := field.Exp(i)
		alphaInv := field.Inverse(alphaI)
		if poly.Eval(field, locator, alphaInv) == 0 {
			positions = append(positions, i)
		}
	}

	if len(positions) > expectedErrors {
		return nil, &TooManyErrorsError{LocatorDegree: expectedErrors, Parity: parity}
	}
	return positions, nil
}

// findErrorMagnitudes applies Forney's formula: Yi = Omega(Xi^-1) /
// L'(Xi^-1) * Xi, where Omega(x) = L(x)*S(x) mod x^parity and L' is the
// formal derivative of the locator.
func findErrorMagnitudes(field gf.Field, syndromes, locator poly.Poly, positions []int, parity int) poly.Poly {
	omega := poly.Mul(field, locator, syndromes)
	if len(omega) > parity {
		omega = omega[:parity]
	}
	derivative := formalDerivative(locator)

	magnitudes := make(poly.Poly, len(positions))
	for idx, pos := range positions {
		alphaI := field.Exp(pos)
		alphaInv := field.Inverse(alphaI)

		numerator := poly.Eval(field, omega, alphaInv)
		denominator := poly.Eval(field, derivative, alphaInv)

		magnitudes[idx] = field.Mul(field.Div(numerator, denominator), alphaI)
	}
	return magnitudes
}

// formalDerivative computes L'(x) in characteristic 2: the derivative of an
// even-degree term is always zero, so only odd-indexed coefficients survive,
// shifted down by one position.
func formalDerivative(p poly.Poly) poly.Poly {
	derivative := make(poly.Poly, len(p))
	for i := 1; i < len(p); i++ {
		if i%2 == 1 {
			derivative[i-1] = p[i]
		}
	}
	return poly.Normalize(derivative)
}

// correctErrors subtracts (XORs, in characteristic 2) each error magnitude
// at its position from the received codeword.
func correctErrors(field gf.Field, data poly.Poly, positions []int, magnitudes poly.Poly) poly.Poly {
	corrected := append(poly.Poly(nil), data...)
	for idx, pos := range positions {
		corrected[pos] = field.Sub(corrected[pos], magnitudes[idx])
	}
	return corrected
}
