// Package innerproduct implements InnerProduct and CoordUniformCBC (spec.md
// §4.3): the per-candidate merit evaluation that scores a generator value
// against the current CoordUniformState, and the CBC search loop that picks
// the best candidate one coordinate at a time.
package innerproduct

import (
	"latbuilder-go/coorduniform"
	"latbuilder-go/gf2poly"
	"latbuilder-go/kernel"
	"latbuilder-go/sizeparam"
	"latbuilder-go/storage"
)

// InnerProduct evaluates <q, omega_gen> for every candidate generator value
// at a fixed dimension, given the current weighted state q and this
// dimension's raw kernel values.
type InnerProduct struct {
	Storage      *storage.Storage
	KernelValues []float64
}

// New builds an InnerProduct from a kernel and storage, materializing the
// kernel's raw values vector once per dimension (Kernel::valuesVector,
// spec.md §4.1).
func New(s *storage.Storage, k kernel.Kernel) *InnerProduct {
	var values []float64
	if s.Param.Kind == sizeparam.Integer {
		values = s.ValuesVector(func(i int) float64 { return k.Eval(i, s.Param.N) })
	} else {
		bitWidth := s.Param.Mod.Deg()
		values = s.ValuesVector(func(i int) float64 {
			return k.EvalBits(bitsMSBFirst(i, bitWidth))
		})
	}
	return &InnerProduct{Storage: s, KernelValues: values}
}

func bitsMSBFirst(i, width int) []uint8 {
	out := make([]uint8, width)
	for b := 0; b < width; b++ {
		out[b] = uint8((i >> uint(width-1-b)) & 1)
	}
	return out
}

// Eval returns the merit contribution of integer generator value gen under
// weighted state q: <q, strided(KernelValues, gen)>.
func (ip *InnerProduct) Eval(q []float64, gen uint64) storage.MeritValue {
	view := ip.Storage.Strided(ip.KernelValues, gen)
	return ip.Storage.CompressedSum(q, view)
}

// EvalPoly is the polynomial-lattice analogue of Eval.
func (ip *InnerProduct) EvalPoly(q []float64, gen gf2poly.Poly) storage.MeritValue {
	view := ip.Storage.StridedPoly(ip.KernelValues, gen)
	return ip.Storage.CompressedSum(q, view)
}

// ProdSeq enumerates candidate generator values for a size parameter: every
// integer coprime to n in [1,n) for Integer, or every nonzero polynomial of
// degree < deg(modulus) for Polynomial (spec.md §4.3 "the candidate pool for
// dimension s+1 is fixed ahead of time by the size parameter").
func ProdSeq(p sizeparam.Param) []coorduniform.GenValue {
	if p.Kind == sizeparam.Integer {
		var out []coorduniform.GenValue
		n := p.N
		for g := uint64(1); g < n; g++ {
			if gcd(g, n) == 1 {
				out = append(out, coorduniform.Int(g))
			}
		}
		return out
	}
	var out []coorduniform.GenValue
	deg := p.Mod.Deg()
	limit := uint64(1) << uint(deg)
	for v := uint64(1); v < limit; v++ {
		out = append(out, coorduniform.FromPoly(gf2poly.Poly(v)))
	}
	return out
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Candidate is one scored candidate from a CBC round.
type Candidate struct {
	Gen   coorduniform.GenValue
	Merit storage.MeritValue
}

// ScalarOf extracts the unilevel (or last-level, as a conservative total
// for multilevel ranking) scalar used to rank candidates.
func ScalarOf(m storage.MeritValue) float64 {
	if m.IsUnilevel() {
		return m.Value()
	}
	return m.Levels[len(m.Levels)-1]
}

// MeritSeq scores every candidate generator value in the pool against the
// weighted state q, returning one Candidate per pool entry in pool order
// (spec.md §4.3 "meritSeq").
func MeritSeq(ip *InnerProduct, q []float64, pool []coorduniform.GenValue) []Candidate {
	out := make([]Candidate, len(pool))
	for i, g := range pool {
		var m storage.MeritValue
		if g.IsPoly {
			m = ip.EvalPoly(q, g.Poly)
		} else {
			m = ip.Eval(q, g.Int)
		}
		out[i] = Candidate{Gen: g, Merit: m}
	}
	return out
}

// Select returns the index of the lowest-merit candidate in cands
// (spec.md §4.3 "select: argmin over the pool"); ties keep the first.
func Select(cands []Candidate) int {
	best := 0
	bestVal := ScalarOf(cands[0].Merit)
	for i := 1; i < len(cands); i++ {
		v := ScalarOf(cands[i].Merit)
		if v < bestVal {
			bestVal = v
			best = i
		}
	}
	return best
}

// CoordUniformCBC drives a full component-by-component search over all
// dimensions, one State/InnerProduct pair per coordinate position (spec.md
// §4.3).
type CoordUniformCBC struct {
	Storage    *storage.Storage
	InnerProd  *InnerProduct
	State      coorduniform.State
	Dimension  int
	onProgress func(dim int, gen coorduniform.GenValue, merit storage.MeritValue)
}

// NewCoordUniformCBC builds a CBC driver for the given dimension.
func NewCoordUniformCBC(s *storage.Storage, ip *InnerProduct, st coorduniform.State, dimension int) *CoordUniformCBC {
	return &CoordUniformCBC{Storage: s, InnerProd: ip, State: st, Dimension: dimension}
}

// OnProgress registers a callback invoked after each accepted coordinate.
func (c *CoordUniformCBC) OnProgress(fn func(dim int, gen coorduniform.GenValue, merit storage.MeritValue)) {
	c.onProgress = fn
}

// Run performs the full search, returning the generating vector (one
// GenValue per dimension; the first coordinate is chosen by the same
// minimum-merit selection as the others) and the final merit value, the sum
// of the accepted coordinates' merit increments.
func (c *CoordUniformCBC) Run(pool []coorduniform.GenValue) ([]coorduniform.GenValue, storage.MeritValue) {
	c.State.Reset()
	gens := make([]coorduniform.GenValue, 0, c.Dimension)
	var last storage.MeritValue
	for d := 0; d < c.Dimension; d++ {
		q := c.State.WeightedState()
		cands := MeritSeq(c.InnerProd, q, pool)
		best := Select(cands)
		gen := cands[best].Gen
		if d == 0 {
			last = cands[best].Merit
		} else {
			last = last.Add(cands[best].Merit)
		}
		c.State.Update(c.InnerProd.KernelValues, gen)
		gens = append(gens, gen)
		if c.onProgress != nil {
			c.onProgress(d, gen, last)
		}
	}
	return gens, last
}
