package sizeparam

import (
	"testing"

	"latbuilder-go/gf2poly"
)

func TestNewIntegerRejectsZero(t *testing.T) {
	if _, err := NewInteger(0); err == nil {
		t.Fatal("NewInteger(0) must be rejected as BadSize")
	}
}

func TestEmbeddedIntegerLevelSize(t *testing.T) {
	p, err := NewEmbeddedInteger(2, 4)
	if err != nil {
		t.Fatalf("NewEmbeddedInteger: %v", err)
	}
	if got, want := p.LevelSize(0), uint64(1); got != want {
		t.Fatalf("LevelSize(0) = %d, want %d", got, want)
	}
	if got, want := p.LevelSize(4), uint64(16); got != want {
		t.Fatalf("LevelSize(4) = %d, want %d", got, want)
	}
	if got, want := p.NumPoints(), uint64(16); got != want {
		t.Fatalf("NumPoints() = %d, want %d", got, want)
	}
}

func TestDistinctPrimeFactorCountInteger(t *testing.T) {
	p, err := NewInteger(60) // 60 = 2^2*3*5
	if err != nil {
		t.Fatalf("NewInteger: %v", err)
	}
	if got := p.DistinctPrimeFactorCount(); got != 3 {
		t.Fatalf("DistinctPrimeFactorCount(60) = %d, want 3", got)
	}
}

func TestDistinctPrimeFactorCountPolynomial(t *testing.T) {
	// x^3+1 = (x+1)(x^2+x+1): two distinct irreducible factors.
	mod := gf2poly.FromInt(0b1001)
	p, err := NewPolynomial(mod)
	if err != nil {
		t.Fatalf("NewPolynomial: %v", err)
	}
	if got := p.DistinctPrimeFactorCount(); got != 2 {
		t.Fatalf("DistinctPrimeFactorCount(x^3+1) = %d, want 2", got)
	}
}
