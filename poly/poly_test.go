package poly

import (
	"reflect"
	"testing"

	"codectoy/gf"
)

func TestAdd(t *testing.T) {
	a := Poly{1, 2, 3}
	b := Poly{4, 5}
	got := Add(a, b)
	want := Poly{1 ^ 4, 2 ^ 5, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Add = %v, want %v", got, want)
	}
}

func TestShift(t *testing.T) {
	got := Shift(Poly{1, 2}, 3)
	want := Poly{0, 0, 0, 1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Shift = %v, want %v", got, want)
	}
}

func TestMulMatchesDegree(t *testing.T) {
	f := gf.NewTable()
	a := Poly{1, 1}
	b := Poly{1, 1, 1}
	got := Mul(f, a, b)
	if len(got) != len(a)+len(b)-1 {
		t.Fatalf("Mul result length = %d, want %d", len(got), len(a)+len(b)-1)
	}
}

func TestEvalHorner(t *testing.T) {
	f := gf.NewTable()
	// p(x) = 1 + x, evaluated at x=1 should be 1 XOR 1 = 0.
	p := Poly{1, 1}
	if got := Eval(f, p, 1); got != 0 {
		t.Fatalf("Eval = %d, want 0", got)
	}
}

func TestDivModExactDivision(t *testing.T) {
	f := gf.NewTable()
	// (x+1)(x+2) = x^2 + (1+2)x + 2 = x^2 + 3x + 2, little-endian [2,3,1].
	divisor := Poly{1, 1} // (x+1)
	product := Mul(f, divisor, Poly{f.Mul(2, 1), 1})
	quotient, remainder := DivMod(f, product, divisor)
	if !reflect.DeepEqual(remainder, Poly{0}) {
		t.Fatalf("remainder = %v, want zero", remainder)
	}
	back := Mul(f, quotient, divisor)
	if !reflect.DeepEqual(Normalize(back), Normalize(product)) {
		t.Fatalf("quotient*divisor = %v, want %v", back, product)
	}
}

func TestDivModDividendSmallerThanDivisor(t *testing.T) {
	f := gf.NewTable()
	dividend := Poly{5}
	divisor := Poly{1, 1, 1}
	quotient, remainder := DivMod(f, dividend, divisor)
	if !reflect.DeepEqual(quotient, Poly{0}) {
		t.Fatalf("quotient = %v, want [0]", quotient)
	}
	if !reflect.DeepEqual(remainder, dividend) {
		t.Fatalf("remainder = %v, want dividend %v", remainder, dividend)
	}
}

func TestDivModContractViolation(t *testing.T) {
	f := gf.NewTable()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero leading coefficient")
		}
	}()
	DivMod(f, Poly{1, 2, 3}, Poly{1, 0})
}

func TestDegree(t *testing.T) {
	if Degree(Poly{0, 0, 0}) != -1 {
		t.Fatal("zero polynomial should have degree -1")
	}
	if Degree(Poly{1, 0, 3, 0}) != 2 {
		t.Fatal("expected degree 2")
	}
}
