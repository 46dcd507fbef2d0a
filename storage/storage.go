// Package storage implements Storage (spec.md §4.1): the vector of kernel
// values omega(i/n), optionally halved by symmetric compression, and laid
// out per-level for embedded (multilevel) point sets.
package storage

import (
	"fmt"

	"latbuilder-go/gf2poly"
	"latbuilder-go/sizeparam"
)

// Compression controls whether omega(x) = omega(1-x) pairs are folded into a
// single storage slot.
type Compression int

const (
	None Compression = iota
	Symmetric
)

// MeritValue is a scalar (unilevel) or per-level vector (multilevel) merit,
// per spec.md glossary.
type MeritValue struct {
	// Levels holds the per-level value; a unilevel MeritValue has len==1.
	Levels []float64
}

// Scalar builds a unilevel MeritValue.
func Scalar(v float64) MeritValue { return MeritValue{Levels: []float64{v}} }

// IsUnilevel reports whether this value has exactly one level.
func (m MeritValue) IsUnilevel() bool { return len(m.Levels) == 1 }

// Value returns the single scalar value; panics if not unilevel.
func (m MeritValue) Value() float64 {
	if !m.IsUnilevel() {
		panic("storage: Value() called on a multilevel MeritValue")
	}
	return m.Levels[0]
}

// Add returns the element-wise sum of two same-shaped MeritValues.
func (m MeritValue) Add(other MeritValue) MeritValue {
	if len(m.Levels) != len(other.Levels) {
		panic("storage: MeritValue shape mismatch in Add")
	}
	out := make([]float64, len(m.Levels))
	for i := range out {
		out[i] = m.Levels[i] + other.Levels[i]
	}
	return MeritValue{Levels: out}
}

// Storage holds a dense vector of kernel values with a declared compression
// and the embedding (level layout) inherited from the SizeParam.
type Storage struct {
	Param       sizeparam.Param
	Compression Compression
}

// New builds a Storage for the given SizeParam and compression mode.
func New(param sizeparam.Param, compression Compression) *Storage {
	return &Storage{Param: param, Compression: compression}
}

// Size returns the number of stored slots: n if uncompressed, or the number
// of symmetric-compression classes of {0,...,n-1} under i <-> n-i mod n
// otherwise.
func (s *Storage) Size() int {
	n := int(s.Param.N)
	if s.Compression == None {
		return n
	}
	// classes: {0}, {i, n-i} for i=1..n/2-1 (or n/2 if n even, a fixed point
	// since n/2 == n-n/2), plus {n/2} when n is even.
	if n%2 == 0 {
		return n/2 + 1
	}
	return (n + 1) / 2
}

// CanonicalIndex maps a raw index i in [0,n) to its storage slot under the
// active compression.
func (s *Storage) CanonicalIndex(i int) int {
	n := int(s.Param.N)
	if s.Compression == None {
		return i
	}
	if i > n-i {
		i = n - i
	}
	return i
}

// IsMultilevel reports whether the underlying SizeParam is embedded.
func (s *Storage) IsMultilevel() bool { return s.Param.Embedded }

// ValuesVector fills a dense vector of length Size() with omega evaluated
// at each canonical point, using eval(i) to compute omega(i/n) (integer
// case) or omega at the polynomial-indexed point (polynomial case). This
// generalises Kernel::valuesVector(storage) from spec.md §4.1: the kernel
// supplies eval, storage supplies the canonical index set.
func (s *Storage) ValuesVector(eval func(i int) float64) []float64 {
	size := s.Size()
	out := make([]float64, size)
	n := int(s.Param.N)
	if s.Compression == None {
		for i := 0; i < n; i++ {
			out[i] = eval(i)
		}
		return out
	}
	out[0] = eval(0)
	for i := 1; i*2 < n; i++ {
		out[i] = eval(i)
	}
	if n%2 == 0 {
		out[n/2] = eval(n / 2)
	}
	return out
}

// StridedView is a lazy view index i -> values[canonical(gen*i mod n)] for
// integer lattices, or index i -> values[canonical(pi_gen(i))] for
// polynomial lattices (pi_gen being multiplication-by-gen modulo the
// polynomial modulus). Storage::strided from spec.md §4.1.
type StridedView struct {
	s      *Storage
	values []float64
	gen    uint64
	modGen gf2poly.Poly
}

// Strided builds a StridedView for an integer-lattice generator value.
func (s *Storage) Strided(values []float64, gen uint64) StridedView {
	if s.Param.Kind != sizeparam.Integer {
		panic("storage: Strided(uint64) called on a polynomial SizeParam")
	}
	return StridedView{s: s, values: values, gen: gen % s.Param.N}
}

// StridedPoly builds a StridedView for a polynomial-lattice generator value.
func (s *Storage) StridedPoly(values []float64, gen gf2poly.Poly) StridedView {
	if s.Param.Kind != sizeparam.Polynomial {
		panic("storage: StridedPoly called on an integer SizeParam")
	}
	return StridedView{s: s, values: values, modGen: gen.Mod(s.Param.Mod)}
}

// At returns the i-th element of the strided view, 0 <= i < n.
func (v StridedView) At(i int) float64 {
	if v.s.Param.Kind == sizeparam.Integer {
		n := int(v.s.Param.N)
		idx := (i * int(v.gen)) % n
		return v.values[v.s.CanonicalIndex(idx)]
	}
	// Polynomial case: i indexes the coefficient vector of a GF(2)
	// polynomial of degree < deg(modulus); multiplying by gen modulo the
	// modulus and reading back the integer bit-pattern is exactly
	// gf2poly.MulMod, since Poly IS that bit-pattern.
	idx := int(gf2poly.MulMod(gf2poly.Poly(i), v.modGen, v.s.Param.Mod))
	return v.values[v.s.CanonicalIndex(idx)]
}

// CompressedSum aggregates a strided product back into a MeritValue. For a
// unilevel Storage this is a plain dot product q . strided(values, gen)
// (scaled by 1/n, matching the kernel normalisation convention). For a
// multilevel Storage, it returns one partial sum per level, level l
// accumulating over indices [0, Base^l).
func (s *Storage) CompressedSum(q []float64, v StridedView) MeritValue {
	n := int(s.Param.N)
	if !s.Param.Embedded {
		var sum float64
		for i := 0; i < n; i++ {
			sum += q[s.CanonicalIndex(i)] * v.At(i)
		}
		return Scalar(sum / float64(n))
	}
	levels := make([]float64, s.Param.MaxLevel+1)
	var running float64
	prevBound := 0
	for l := 0; l <= s.Param.MaxLevel; l++ {
		bound := int(s.Param.LevelSize(l))
		for i := prevBound; i < bound; i++ {
			running += q[s.CanonicalIndex(i)] * v.At(i)
		}
		levels[l] = running / float64(bound)
		prevBound = bound
	}
	return MeritValue{Levels: levels}
}

// ValidateKernelShape returns an error if valueLen doesn't match Size(); a
// defensive check used when wiring a user-selected Kernel to a Storage
// (BadFigure, spec.md §7: "figure incompatible with the kernel's embedding").
func (s *Storage) ValidateKernelShape(valueLen int) error {
	if valueLen != s.Size() {
		return fmt.Errorf("storage: BadFigure: kernel produced %d values, storage expects %d", valueLen, s.Size())
	}
	return nil
}
