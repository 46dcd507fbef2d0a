package gf2poly

import "testing"

func TestAddIsXor(t *testing.T) {
	a := FromInt(0b1011)
	b := FromInt(0b0110)
	if got, want := a.Add(b).Int(), uint64(0b1101); got != want {
		t.Fatalf("Add = %b, want %b", got, want)
	}
}

func TestMulDivModRoundTrip(t *testing.T) {
	a := FromInt(0b1101) // z^3+z^2+1
	b := FromInt(0b11)   // z+1
	prod := a.Mul(b)
	q, r := prod.DivMod(b)
	if q.Mul(b).Add(r) != prod {
		t.Fatal("q*b + r must reconstruct the product")
	}
}

func TestIsIrreducibleKnownPrimitive(t *testing.T) {
	// x^4+x+1, a textbook primitive polynomial over GF(2).
	f := FromInt(0b10011)
	if !IsIrreducible(f) {
		t.Fatal("x^4+x+1 must be irreducible")
	}
	if !IsPrimitive(f) {
		t.Fatal("x^4+x+1 must be primitive")
	}
}

func TestIsIrreducibleReducibleCase(t *testing.T) {
	// (x+1)^2 = x^2+1, reducible.
	f := FromInt(0b101)
	if IsIrreducible(f) {
		t.Fatal("x^2+1 = (x+1)^2 must not be irreducible")
	}
}

func TestFactorDistinctIrreducibles(t *testing.T) {
	// (x+1)*(x^2+x+1) = x^3+1
	f := FromInt(0b1001)
	factors := Factor(f)
	if len(factors) != 2 {
		t.Fatalf("Factor(x^3+1) found %d distinct factors, want 2", len(factors))
	}
}

func TestFindPrimitiveReturnsPrimitive(t *testing.T) {
	p, err := FindPrimitive(5)
	if err != nil {
		t.Fatalf("FindPrimitive(5): %v", err)
	}
	if !IsPrimitive(p) {
		t.Fatalf("FindPrimitive(5) = %v is not primitive", p)
	}
	if p.Deg() != 5 {
		t.Fatalf("FindPrimitive(5) has degree %d, want 5", p.Deg())
	}
}
