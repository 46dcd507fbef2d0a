// Package coorduniform implements CoordUniformState (spec.md §3, §4.2): the
// per-weight-family incremental state that expresses a coordinate-uniform
// figure of merit's recurrence, so that appending one coordinate costs
// O(storage size) instead of re-summing over every projection from scratch.
//
// Six variants are provided, one per spec.md §4.2 recurrence (Product,
// OrderDependent, POD, ProjectionDependent, InterlacedPOD, Combined), all
// satisfying the common State interface -- the Go rendering of the design
// note "translate to a tagged sum ... a dispatch<F> pattern becomes a
// match-on-tag" (see NewState's type switch).
package coorduniform

import (
	"latbuilder-go/gf2poly"
	"latbuilder-go/projection"
	"latbuilder-go/storage"
	"latbuilder-go/weights"
)

// GenValue is the generator value broadcast to every state on an accepted
// CBC step: either an integer (ordinary lattice) or a GF(2) polynomial
// (polynomial lattice).
type GenValue struct {
	IsPoly bool
	Int    uint64
	Poly   gf2poly.Poly
}

// Int builds an integer GenValue.
func Int(v uint64) GenValue { return GenValue{Int: v} }

// FromPoly builds a polynomial GenValue.
func FromPoly(p gf2poly.Poly) GenValue { return GenValue{IsPoly: true, Poly: p} }

// State is the common interface for every CoordUniformState variant.
type State interface {
	// Reset returns the state to dimension 0.
	Reset()
	// Update advances the dimension counter by 1, incorporating the new
	// coordinate's kernel values (un-strided, as returned by
	// Kernel.ValuesVector) via the generator value gen.
	Update(kernelValues []float64, gen GenValue)
	// WeightedState returns q_{s+1}, the vector InnerProduct consumes.
	WeightedState() []float64
	// Dimension returns the number of coordinates incorporated so far.
	Dimension() int
}

// strided materializes omega_s, the new coordinate's kernel-value vector
// broadcast through the generator and folded into storage slots, matching
// Storage::strided(values, gen) consumed by the CoordUniformState recurrence
// (spec.md §4.1, §4.2).
func strided(s *storage.Storage, kernelValues []float64, gen GenValue) []float64 {
	var view storage.StridedView
	if gen.IsPoly {
		view = s.StridedPoly(kernelValues, gen.Poly)
	} else {
		view = s.Strided(kernelValues, gen.Int)
	}
	n := s.Size()
	out := make([]float64, n)
	seen := make([]bool, n)
	full := int(s.Param.N)
	count := 0
	for i := 0; i < full && count < n; i++ {
		slot := s.CanonicalIndex(i)
		if !seen[slot] {
			out[slot] = view.At(i)
			seen[slot] = true
			count++
		}
	}
	return out
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

func mulInto(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// ---- Product ----

// Product implements the recurrence of spec.md §4.2 "Product":
// p_0 = 1, p_s = (1 + gamma_s * omega_s) . p_{s-1}; q_s = gamma_{s+1} p_s.
type Product struct {
	storage *storage.Storage
	w       *weights.Product
	p       []float64
	dim     int
}

// NewProduct builds a Product state over the given storage and weights.
func NewProduct(s *storage.Storage, w *weights.Product) *Product {
	st := &Product{storage: s, w: w}
	st.Reset()
	return st
}

// Reset implements State.
func (s *Product) Reset() { s.p = ones(s.storage.Size()); s.dim = 0 }

// Dimension implements State.
func (s *Product) Dimension() int { return s.dim }

// Update implements State.
func (s *Product) Update(kernelValues []float64, gen GenValue) {
	omega := strided(s.storage, kernelValues, gen)
	gamma := s.w.GetWeight(projection.New(s.dim))
	next := make([]float64, len(s.p))
	for i := range next {
		next[i] = (1 + gamma*omega[i]) * s.p[i]
	}
	s.p = next
	s.dim++
}

// WeightedState implements State.
func (s *Product) WeightedState() []float64 {
	gamma := s.w.GetWeight(projection.New(s.dim))
	out := make([]float64, len(s.p))
	for i := range out {
		out[i] = gamma * s.p[i]
	}
	return out
}

// ---- OrderDependent ----

// OrderDependent implements the recurrence of spec.md §4.2
// "Order-dependent": p_{s,l} = p_{s-1,l} + omega_s . p_{s-1,l-1};
// q_s = sum_l Gamma_{l+1} p_{s-1,l}.
type OrderDependent struct {
	storage *storage.Storage
	w       *weights.OrderDependent
	p       [][]float64 // p[l], l=0..dim
	dim     int
}

// NewOrderDependent builds an OrderDependent state.
func NewOrderDependent(s *storage.Storage, w *weights.OrderDependent) *OrderDependent {
	st := &OrderDependent{storage: s, w: w}
	st.Reset()
	return st
}

// Reset implements State.
func (s *OrderDependent) Reset() {
	s.p = [][]float64{ones(s.storage.Size())}
	s.dim = 0
}

// Dimension implements State.
func (s *OrderDependent) Dimension() int { return s.dim }

// Update implements State.
func (s *OrderDependent) Update(kernelValues []float64, gen GenValue) {
	s.updateWith(strided(s.storage, kernelValues, gen))
}

// updateWith performs the OD recurrence given an already-strided omega
// vector; POD reuses this with a gamma-scaled omega.
func (s *OrderDependent) updateWith(omega []float64) {
	n := s.storage.Size()
	next := make([][]float64, len(s.p)+1)
	next[0] = s.p[0]
	for l := 1; l < len(s.p); l++ {
		v := make([]float64, n)
		for i := 0; i < n; i++ {
			v[i] = s.p[l][i] + omega[i]*s.p[l-1][i]
		}
		next[l] = v
	}
	top := make([]float64, n)
	mulInto(top, omega, s.p[len(s.p)-1])
	next[len(s.p)] = top
	s.p = next
	s.dim++
}

// WeightedState implements State.
func (s *OrderDependent) WeightedState() []float64 {
	n := s.storage.Size()
	out := make([]float64, n)
	for l := 0; l < len(s.p); l++ {
		gamma := s.w.GetWeight(orderProjection(l + 1))
		for i := 0; i < n; i++ {
			out[i] += gamma * s.p[l][i]
		}
	}
	return out
}

// orderProjection builds a dummy cardinality-l projection {0,...,l-1} so
// that weights.OrderDependent.GetWeight (which only looks at Card()) can be
// queried without constructing a fresh API just for this lookup.
func orderProjection(l int) projection.Set {
	coords := make([]int, l)
	for i := range coords {
		coords[i] = i
	}
	return projection.New(coords...)
}

// ---- POD ----

// POD implements "POD": the OD recurrence with omega_s replaced by
// gamma_s * omega_s (spec.md §4.2).
type POD struct {
	storage *storage.Storage
	w       *weights.POD
	od      *OrderDependent
	dim     int
}

// NewPOD builds a POD state.
func NewPOD(s *storage.Storage, w *weights.POD) *POD {
	od := &OrderDependent{storage: s, w: &w.OD}
	od.Reset()
	return &POD{storage: s, w: w, od: od}
}

// Reset implements State.
func (s *POD) Reset() { s.od.Reset(); s.dim = 0 }

// Dimension implements State.
func (s *POD) Dimension() int { return s.dim }

// Update implements State.
func (s *POD) Update(kernelValues []float64, gen GenValue) {
	omega := strided(s.storage, kernelValues, gen)
	gamma := s.w.Prod.GetWeight(projection.New(s.dim))
	scaled := make([]float64, len(omega))
	for i := range scaled {
		scaled[i] = gamma * omega[i]
	}
	s.od.updateWith(scaled)
	s.dim++
}

// WeightedState implements State.
func (s *POD) WeightedState() []float64 { return s.od.WeightedState() }

// ---- ProjectionDependent ----

// ProjectionDependent implements "Projection-dependent" (spec.md §4.2): a
// map projection -> vector p_u, created lazily on first use. Correctness
// here assumes Default==0: any projection not a prefix of some explicitly
// declared one only ever contributes 0 to every future WeightedState call,
// so pruning it is safe (recorded in DESIGN.md). A non-zero Default falls
// back to tracking the full power set, which is only practical for small
// dimension.
type ProjectionDependent struct {
	storage *storage.Storage
	w       *weights.ProjectionDependent
	tracked map[string][]float64 // key -> p_u
	keys    map[string]projection.Set
	needed  map[string]bool // precomputed prefixes worth tracking
	dim     int
	full    bool // Default != 0: track the full power set instead
}

// NewProjectionDependent builds a ProjectionDependent state for the given
// declared weights and an upper bound on dimension (used to precompute the
// needed-prefix set).
func NewProjectionDependent(s *storage.Storage, w *weights.ProjectionDependent, maxDimension int) *ProjectionDependent {
	st := &ProjectionDependent{storage: s, w: w}
	st.full = w.Default != 0
	if !st.full {
		st.needed = make(map[string]bool)
		for c := 0; c < maxDimension; c++ {
			for _, u := range w.ProjectionsWithMaxCoord(c) {
				markPrefixes(u, st.needed)
			}
		}
	}
	st.Reset()
	return st
}

func markPrefixes(u projection.Set, needed map[string]bool) {
	coords := u.Coords()
	cur := projection.New()
	needed[cur.Key()] = true
	for _, c := range coords {
		cur = cur.With(c)
		needed[cur.Key()] = true
	}
}

// Reset implements State.
func (s *ProjectionDependent) Reset() {
	empty := projection.New()
	s.tracked = map[string][]float64{empty.Key(): ones(s.storage.Size())}
	s.keys = map[string]projection.Set{empty.Key(): empty}
	s.dim = 0
}

// Dimension implements State.
func (s *ProjectionDependent) Dimension() int { return s.dim }

// Update implements State.
func (s *ProjectionDependent) Update(kernelValues []float64, gen GenValue) {
	omega := strided(s.storage, kernelValues, gen)
	newTracked := make(map[string][]float64, len(s.tracked))
	newKeys := make(map[string]projection.Set, len(s.keys))
	for k, v := range s.tracked {
		newTracked[k] = v
		newKeys[k] = s.keys[k]
	}
	for k, u := range s.keys {
		if u.Max() >= s.dim && !u.Empty() {
			continue // already contains a coordinate >= current dim; shouldn't happen
		}
		child := u.With(s.dim)
		ck := child.Key()
		if _, exists := newTracked[ck]; exists {
			continue
		}
		if !s.full && !s.needed[ck] {
			continue
		}
		vec := make([]float64, len(omega))
		mulInto(vec, omega, s.tracked[k])
		newTracked[ck] = vec
		newKeys[ck] = child
	}
	s.tracked = newTracked
	s.keys = newKeys
	s.dim++
}

// WeightedState implements State.
func (s *ProjectionDependent) WeightedState() []float64 {
	n := s.storage.Size()
	out := make([]float64, n)
	for _, u := range s.w.ProjectionsWithMaxCoord(s.dim) {
		prefix := u.Without(s.dim)
		vec, ok := s.tracked[prefix.Key()]
		if !ok {
			continue
		}
		gamma := s.w.GetWeight(u)
		for i := 0; i < n; i++ {
			out[i] += gamma * vec[i]
		}
	}
	return out
}

// ---- InterlacedPOD ----

// InterlacedPOD implements the IA_alpha/IB/IC_alpha recurrence (spec.md §3,
// §8 scenario S6): the POD recurrence, with WeightedState's per-order term
// additionally scaled by the interlacing correction (1/2)^(l(l+1)/2).
type InterlacedPOD struct {
	storage *storage.Storage
	w       *weights.InterlacedPOD
	pod     *POD
}

// NewInterlacedPOD builds an InterlacedPOD state.
func NewInterlacedPOD(s *storage.Storage, w *weights.InterlacedPOD) *InterlacedPOD {
	pod := NewPOD(s, &w.Base)
	return &InterlacedPOD{storage: s, w: w, pod: pod}
}

// Reset implements State.
func (s *InterlacedPOD) Reset() { s.pod.Reset() }

// Dimension implements State.
func (s *InterlacedPOD) Dimension() int { return s.pod.Dimension() }

// Update implements State.
func (s *InterlacedPOD) Update(kernelValues []float64, gen GenValue) {
	s.pod.Update(kernelValues, gen)
}

// WeightedState implements State.
func (s *InterlacedPOD) WeightedState() []float64 {
	n := s.storage.Size()
	out := make([]float64, n)
	for l := 0; l < len(s.pod.od.p); l++ {
		gamma := s.w.Base.OD.GetWeight(orderProjection(l+1)) * interlaceCorrection(l+1)
		p := s.pod.od.p[l]
		for i := 0; i < n; i++ {
			out[i] += gamma * p[i]
		}
	}
	return out
}

// interlaceCorrection computes prod_{i=1}^{k} (1/2)^i = (1/2)^(k(k+1)/2),
// mirroring weights.InterlacedPOD's correction but applied directly to the
// per-order state term rather than to a finished projection weight.
func interlaceCorrection(k int) float64 {
	exp := k * (k + 1) / 2
	val := 1.0
	for i := 0; i < exp; i++ {
		val *= 0.5
	}
	return val
}

// ---- Combined ----

// Combined sums the weighted-state contributions of a list of sub-states
// (spec.md §4.2 "Combined").
type Combined struct {
	states []State
}

// NewCombined builds a Combined state from sub-states.
func NewCombined(states ...State) *Combined { return &Combined{states: states} }

// Reset implements State.
func (c *Combined) Reset() {
	for _, s := range c.states {
		s.Reset()
	}
}

// Dimension implements State.
func (c *Combined) Dimension() int {
	if len(c.states) == 0 {
		return 0
	}
	return c.states[0].Dimension()
}

// Update implements State.
func (c *Combined) Update(kernelValues []float64, gen GenValue) {
	for _, s := range c.states {
		s.Update(kernelValues, gen)
	}
}

// WeightedState implements State.
func (c *Combined) WeightedState() []float64 {
	if len(c.states) == 0 {
		return nil
	}
	out := append([]float64(nil), c.states[0].WeightedState()...)
	for _, s := range c.states[1:] {
		q := s.WeightedState()
		for i := range out {
			out[i] += q[i]
		}
	}
	return out
}

// NewState dispatches on the concrete Weights type to build the matching
// CoordUniformState variant, the Go rendering of the design note "translate
// to a tagged sum ... a dispatch<F> pattern becomes a match-on-tag".
// maxDimension bounds ProjectionDependent's prefix precomputation.
func NewState(s *storage.Storage, w weights.Weights, maxDimension int) State {
	switch t := w.(type) {
	case *weights.Product:
		return NewProduct(s, t)
	case *weights.OrderDependent:
		return NewOrderDependent(s, t)
	case *weights.POD:
		return NewPOD(s, t)
	case *weights.ProjectionDependent:
		return NewProjectionDependent(s, t, maxDimension)
	case *weights.InterlacedPOD:
		return NewInterlacedPOD(s, t)
	case *weights.Combined:
		sub := make([]State, len(t.List))
		for i, w2 := range t.List {
			sub[i] = NewState(s, w2, maxDimension)
		}
		return NewCombined(sub...)
	default:
		panic("coorduniform: unsupported Weights type")
	}
}
