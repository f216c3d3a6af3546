// Package rs implements a systematic Reed-Solomon codec over GF(2^8):
// construction of the generator polynomial, encoding by remainder, and
// decoding via syndromes, Berlekamp-Massey, Chien search and Forney's
// algorithm. The algorithm and variable names follow the classical
// presentation used by the original reference decoder this package was
// ported from.
package rs

import (
	"fmt"

	"codectoy/gf"
	"codectoy/poly"
)

// Codec encodes and decodes RS codewords for a fixed parity count. The
// generator polynomial is built once at construction and never mutated.
type Codec struct {
	parity int
	field  gf.Field
	gen    poly.Poly
}

// NewCodec builds a Codec for the given parity count, in [1, 255]. An
// out-of-range parity count is a contract violation and panics immediately.
func NewCodec(parity int) *Codec {
	if parity < 1 || parity > 255 {
		panic(fmt.Sprintf("rs: parity_count out of range: %d (want 1..255)", parity))
	}
	field := gf.NewTable()
	return &Codec{
		parity: parity,
		field:  field,
		gen:    buildGeneratorPoly(field, parity),
	}
}

// Parity returns the codec's parity symbol count.
func (c *Codec) Parity() int { return c.parity }

// buildGeneratorPoly constructs g(x) = prod_{i=0}^{p-1} (x + alpha^i) by
// repeated multiply-and-add: at each step, multiply the running polynomial
// by x (shift) and separately by the scalar alpha^i, then XOR the two.
func buildGeneratorPoly(field gf.Field, parity int) poly.Poly {
	gen := poly.Poly{1}
	for i := 0; i < parity; i++ {
		shifted := poly.Shift(gen, 1)
		alphaI := field.Exp(i)
		gen = poly.Mul(field, gen, poly.Poly{alphaI})
		gen = poly.Add(gen, shifted)
	}
	return gen
}

// Encode appends c.parity parity bytes to message, returning a systematic
// codeword of length len(message)+c.parity. len(message)+c.parity exceeding
// 255 is a contract violation and panics.
func (c *Codec) Encode(message []byte) []byte {
	if len(message)+c.parity > 255 {
		panic(fmt.Sprintf("rs: message too long: %d bytes + %d parity exceeds 255", len(message), c.parity))
	}

	data := bytesToPoly(message)
	shifted := poly.Shift(data, c.parity)
	_, remainder := poly.DivMod(c.field, shifted, c.gen)

	codeword := make([]byte, len(shifted))
	copy(codeword[c.parity:], message)
	for i, r := range remainder {
		if i >= c.parity {
			break
		}
		codeword[i] = byte(r)
	}
	return codeword
}

// Decode recovers the message from a received word, correcting up to
// floor(parity/2) erroneous symbols. len(word) > 255 is reported as a typed
// ErrMessageTooLong rather than a panic, since decode operates on
// potentially corrupted external input.
func (c *Codec) Decode(word []byte) ([]byte, error) {
	if len(word) > 255 {
		return nil, ErrMessageTooLong
	}
	if len(word) < c.parity {
		panic(fmt.Sprintf("rs: received word shorter than parity count: %d < %d", len(word), c.parity))
	}

	data := bytesToPoly(word)
	syndromes := computeSyndromes(c.field, data, c.parity)
	if allZero(syndromes) {
		return append([]byte(nil), word[c.parity:]...), nil
	}

	locator, err := findErrorLocator(c.field, syndromes, c.parity)
	if err != nil {
		return nil, err
	}

	positions, err := findErrorPositions(c.field, locator, len(word), c.parity)
	if err != nil {
		return nil, err
	}

	magnitudes := findErrorMagnitudes(c.field, syndromes, locator, positions, c.parity)
	corrected := correctErrors(c.field, data, positions, magnitudes)

	after := computeSyndromes(c.field, corrected, c.parity)
	if !allZero(after) {
		return nil, ErrUncorrectable
	}

	return polyToBytes(corrected[c.parity:]), nil
}

func computeSyndromes(field gf.Field, data poly.Poly, parity int) poly.Poly {
	syndromes := make(poly.Poly, parity)
	for i := 0; i < parity; i++ {
		syndromes[i] = poly.Eval(field, data, field.Exp(i))
	}
	return syndromes
}

func allZero(p poly.Poly) bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

func bytesToPoly(b []byte) poly.Poly {
	p := make(poly.Poly, len(b))
	for i, v := range b {
		p[i] = gf.Elem(v)
	}
	return p
}

func polyToBytes(p poly.Poly) []byte {
	b := make([]byte, len(p))
	for i, v := range p {
		b[i] = byte(v)
	}
	return b
}
