// Package sizeparam implements SizeParam (spec.md §3): either an ordinary
// integer modulus n >= 2, or a polynomial modulus over GF(2), with an
// optional embedding flag for nested (multilevel) point sets.
package sizeparam

import (
	"fmt"
	"math/bits"

	"latbuilder-go/gf2poly"
)

// Kind distinguishes the two lattice families spec.md §1 describes.
type Kind int

const (
	Integer Kind = iota
	Polynomial
)

func (k Kind) String() string {
	if k == Integer {
		return "integer"
	}
	return "polynomial"
}

// Param is a SizeParam value: either Kind==Integer (N is the modulus) or
// Kind==Polynomial (Mod is the GF(2) modulus polynomial, N = 2^deg(Mod)).
// When Embedded is true, N = Base^MaxLevel and the point set is viewed as a
// nested family with MaxLevel+1 levels (level l has Base^l points).
type Param struct {
	Kind     Kind
	N        uint64
	Mod      gf2poly.Poly
	Embedded bool
	Base     int
	MaxLevel int
}

// NewInteger builds an ordinary (non-embedded) integer SizeParam.
func NewInteger(n uint64) (Param, error) {
	if n < 2 {
		return Param{}, fmt.Errorf("sizeparam: BadSize: n must be >= 2, got %d", n)
	}
	return Param{Kind: Integer, N: n}, nil
}

// NewEmbeddedInteger builds an embedded integer SizeParam n = base^maxLevel.
func NewEmbeddedInteger(base uint64, maxLevel int) (Param, error) {
	if base < 2 || maxLevel < 0 {
		return Param{}, fmt.Errorf("sizeparam: BadSize: invalid embedded params base=%d maxLevel=%d", base, maxLevel)
	}
	n := uint64(1)
	for i := 0; i < maxLevel; i++ {
		n *= base
	}
	return Param{Kind: Integer, N: n, Embedded: true, Base: int(base), MaxLevel: maxLevel}, nil
}

// NewPolynomial builds a (non-embedded) polynomial SizeParam from a GF(2)
// modulus; the modulus must have positive degree.
func NewPolynomial(mod gf2poly.Poly) (Param, error) {
	if mod.Deg() <= 0 {
		return Param{}, fmt.Errorf("sizeparam: BadSize: polynomial modulus must have degree >= 1")
	}
	return Param{Kind: Polynomial, Mod: mod, N: uint64(1) << uint(mod.Deg())}, nil
}

// NewEmbeddedPolynomial builds an embedded polynomial SizeParam: mod must
// have degree == maxLevel, viewed as base-2 nested levels of z^l points.
func NewEmbeddedPolynomial(mod gf2poly.Poly, maxLevel int) (Param, error) {
	p, err := NewPolynomial(mod)
	if err != nil {
		return Param{}, err
	}
	if mod.Deg() != maxLevel {
		return Param{}, fmt.Errorf("sizeparam: BadSize: embedded polynomial modulus degree %d != maxLevel %d", mod.Deg(), maxLevel)
	}
	p.Embedded = true
	p.Base = 2
	p.MaxLevel = maxLevel
	return p, nil
}

// NumPoints returns n, the total number of points.
func (p Param) NumPoints() uint64 { return p.N }

// LevelSize returns the number of points at level l (0 <= l <= MaxLevel) of
// an embedded SizeParam.
func (p Param) LevelSize(l int) uint64 {
	if !p.Embedded {
		panic("sizeparam: LevelSize called on non-embedded SizeParam")
	}
	n := uint64(1)
	for i := 0; i < l; i++ {
		n *= uint64(p.Base)
	}
	return n
}

// DistinctPrimeFactorCount returns, for an integer SizeParam, the number of
// distinct prime factors of n; for a polynomial SizeParam, the number of
// distinct irreducible factors of the modulus. This is the "kappa" quantity
// PAlphaDPW08's 2^(kappa+1) prefactor uses (SPEC_FULL.md §9 resolution).
func (p Param) DistinctPrimeFactorCount() int {
	if p.Kind == Polynomial {
		return len(gf2poly.Factor(p.Mod))
	}
	n := p.N
	count := 0
	for f := uint64(2); f*f <= n; f++ {
		if n%f == 0 {
			count++
			for n%f == 0 {
				n /= f
			}
		}
	}
	if n > 1 {
		count++
	}
	return count
}

// BitLen returns ceil(log2(n)), used to size GenMatrix column counts derived
// from a SizeParam.
func (p Param) BitLen() int { return bits.Len64(p.N - 1) }

func (p Param) String() string {
	if p.Kind == Integer {
		return fmt.Sprintf("n=%d", p.N)
	}
	return fmt.Sprintf("poly(%s)", p.Mod)
}
