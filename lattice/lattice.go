// Package lattice implements Lattice (spec.md §3, §4.1): the point set
// produced by a generating vector over an ordinary (integer) or polynomial
// size parameter. Only the representation and point-evaluation logic live
// here; the figure-of-merit machinery that picks a generating vector lives
// in innerproduct/coorduniform/projtree.
package lattice

import (
	"fmt"

	"latbuilder-go/coorduniform"
	"latbuilder-go/gf2poly"
	"latbuilder-go/sizeparam"
)

// Lattice is a rank-1 lattice rule: a size parameter plus one generator
// value per coordinate.
type Lattice struct {
	Param sizeparam.Param
	Gen   []coorduniform.GenValue
}

// New builds a Lattice, validating that every generator value matches the
// size parameter's kind (BadLattice, spec.md §7).
func New(param sizeparam.Param, gen []coorduniform.GenValue) (*Lattice, error) {
	for idx, g := range gen {
		if g.IsPoly != (param.Kind == sizeparam.Polynomial) {
			return nil, fmt.Errorf("lattice: BadLattice: generator %d kind mismatch with size parameter", idx)
		}
	}
	return &Lattice{Param: param, Gen: gen}, nil
}

// Dimension returns the number of coordinates.
func (l *Lattice) Dimension() int { return len(l.Gen) }

// Point returns the real-valued coordinates of point i, 0 <= i < NumPoints.
func (l *Lattice) Point(i int) []float64 {
	out := make([]float64, len(l.Gen))
	if l.Param.Kind == sizeparam.Integer {
		n := l.Param.N
		for j, g := range l.Gen {
			idx := (uint64(i) * g.Int) % n
			out[j] = float64(idx) / float64(n)
		}
		return out
	}
	deg := l.Param.Mod.Deg()
	for j, g := range l.Gen {
		idx := gf2poly.MulMod(gf2poly.Poly(i), g.Poly, l.Param.Mod)
		var x float64
		scale := 0.5
		for b := deg - 1; b >= 0; b-- {
			if (idx>>uint(b))&1 == 1 {
				x += scale
			}
			scale /= 2
		}
		out[j] = x
	}
	return out
}

// String renders the generating vector in the conventional "(g_1,...,g_s)"
// form.
func (l *Lattice) String() string {
	s := "("
	for i, g := range l.Gen {
		if i > 0 {
			s += ","
		}
		if g.IsPoly {
			s += g.Poly.String()
		} else {
			s += fmt.Sprintf("%d", g.Int)
		}
	}
	return s + ")"
}
