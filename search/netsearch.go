// Digital-net CBC search (spec.md §4.8 scenarios S3/S4): the same
// one-coordinate-at-a-time component-by-component search as Driver, but
// over Sobol direction-number table entries scored by a t-value-derived
// figure instead of over lattice generator components scored by
// innerproduct.InnerProduct.
package search

import (
	"fmt"

	"latbuilder-go/bitmatrix"
	"latbuilder-go/innerproduct"
	"latbuilder-go/net"
	"latbuilder-go/projection"
	"latbuilder-go/projtree"
	"latbuilder-go/storage"
	"latbuilder-go/tvalue"
	"latbuilder-go/weights"
)

// NetCandidate is one pool entry a NetExplorer may propose for a new
// coordinate: an index into the Sobol direction-number table.
type NetCandidate struct {
	TableIndex int
}

// NetExplorer decides which table indices get scored at a given dimension,
// mirroring Explorer for the coordinate-uniform dialect.
type NetExplorer interface {
	Candidates(dim int, pool []NetCandidate) []NetCandidate
}

// FullNetExplorer scores the entire candidate pool at every dimension.
type FullNetExplorer struct{}

// Candidates implements NetExplorer.
func (FullNetExplorer) Candidates(dim int, pool []NetCandidate) []NetCandidate { return pool }

// RandomNetExplorer samples a fixed-size subset of the pool per dimension,
// using the same seeded LFSR RandomExplorer draws from so that a net search
// and a lattice search sharing a seed are both reproducible the same way.
type RandomNetExplorer struct {
	SampleSize int
	rng        *lfsr
}

// NewRandomNetExplorer builds a RandomNetExplorer with the given sample size
// and seed.
func NewRandomNetExplorer(sampleSize int, seed uint64) *RandomNetExplorer {
	return &RandomNetExplorer{SampleSize: sampleSize, rng: newLFSR(seed)}
}

// Candidates implements NetExplorer: a Fisher-Yates partial shuffle drawing
// min(SampleSize, len(pool)) distinct entries.
func (r *RandomNetExplorer) Candidates(dim int, pool []NetCandidate) []NetCandidate {
	n := len(pool)
	k := r.SampleSize
	if k > n {
		k = n
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.rng.intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	out := make([]NetCandidate, k)
	for i := 0; i < k; i++ {
		out[i] = pool[idx[i]]
	}
	return out
}

// NetPool returns the full candidate pool: every tabulated Sobol table
// entry, 0 (the identity/van der Corput matrix) included.
func NetPool() []NetCandidate {
	out := make([]NetCandidate, net.MaxSobolDim)
	for i := range out {
		out[i] = NetCandidate{TableIndex: i}
	}
	return out
}

// NetFigure scores a candidate matrix appended as the next coordinate of the
// net built from accepted so far.
type NetFigure interface {
	Score(accepted []*bitmatrix.Matrix, cand *bitmatrix.Matrix, dim, m int) storage.MeritValue
}

// UnilevelTValueFigure is the plain t-value figure (spec.md §4.5, scenario
// S3): unweighted, one global t-value per trial net. CrossCheck, if set,
// additionally runs Schmid and panics if it disagrees with Gauss -- spec.md
// §8 property 3 ("the three algorithms must agree") exercised on every
// scored candidate, not just in tvalue's own tests.
type UnilevelTValueFigure struct {
	CrossCheck bool
}

// Score implements NetFigure.
func (f UnilevelTValueFigure) Score(accepted []*bitmatrix.Matrix, cand *bitmatrix.Matrix, dim, m int) storage.MeritValue {
	mats := make([]*bitmatrix.Matrix, 0, len(accepted)+1)
	mats = append(mats, accepted...)
	mats = append(mats, cand)
	t := tvalue.Gauss(mats, m, 0)
	if f.CrossCheck {
		if s := tvalue.Schmid(mats, m, 0); s != t {
			panic(fmt.Sprintf("tvalue: Gauss/Schmid disagree on a %d-dimension net (m=%d): %d vs %d", len(mats), m, t, s))
		}
	}
	return storage.Scalar(float64(t))
}

// WeightedTValueProjFigure is the weighted TValueProjMerit figure (spec.md
// §4.6, scenario S4): sum over every tracked projection u of
// weight(u) * t-value(net restricted to u), via projtree.Tree.
type WeightedTValueProjFigure struct {
	Weights  weights.Weights
	MaxOrder int
}

// Score implements NetFigure. It builds a fresh projtree.Tree per candidate
// trial (the net differs per candidate, so the tree cannot be reused across
// them) and wires projtree's mother bookkeeping into tvalue's maxSubProj: a
// projection's t-value is never lower than any of its mothers', so the
// largest already-computed mother t-value is a valid starting point for the
// composition search, skipping compositions that cannot improve the bound.
func (f WeightedTValueProjFigure) Score(accepted []*bitmatrix.Matrix, cand *bitmatrix.Matrix, dim, m int) storage.MeritValue {
	mats := make([]*bitmatrix.Matrix, 0, len(accepted)+1)
	mats = append(mats, accepted...)
	mats = append(mats, cand)

	var tree *projtree.Tree
	eval := func(u projection.Set) float64 {
		maxSub := 0
		for _, e := range u.Coords() {
			if idx, ok := tree.IndexOf(u.Without(e)); ok {
				if v := int(tree.Node(idx).Value); v > maxSub {
					maxSub = v
				}
			}
		}
		subMats := make([]*bitmatrix.Matrix, 0, u.Card())
		for _, c := range u.Coords() {
			subMats = append(subMats, mats[c])
		}
		return float64(tvalue.Gauss(subMats, m, maxSub))
	}
	tree = projtree.New(f.Weights, eval, f.MaxOrder)
	tree.ExtendUpToDimension(dim + 1)
	return storage.Scalar(tree.TotalMerit())
}

// NetDriver runs a component-by-component search over Sobol table entries
// (spec.md §5 "SearchDriver", applied to the digital-net dialect).
type NetDriver struct {
	M         int
	Dimension int
	Explorer  NetExplorer
	Figure    NetFigure

	onProgress func(dim int, cand NetCandidate, merit storage.MeritValue)
	onAbort    func() bool
}

// NewNetDriver builds a NetDriver.
func NewNetDriver(m, dimension int, exp NetExplorer, figure NetFigure) *NetDriver {
	return &NetDriver{M: m, Dimension: dimension, Explorer: exp, Figure: figure}
}

// OnProgress registers a callback invoked after each accepted coordinate.
func (d *NetDriver) OnProgress(fn func(dim int, cand NetCandidate, merit storage.MeritValue)) {
	d.onProgress = fn
}

// OnAbort registers a callback polled after each accepted coordinate; if it
// returns true the search stops early, returning the net built so far.
func (d *NetDriver) OnAbort(fn func() bool) { d.onAbort = fn }

// Run performs the full dimension-by-dimension search against the given
// full candidate pool (each Explorer call narrows it per dimension),
// returning the constructed net and its final merit.
func (d *NetDriver) Run(fullPool []NetCandidate) (*net.Net, storage.MeritValue, error) {
	accepted := make([]*bitmatrix.Matrix, 0, d.Dimension)
	var last storage.MeritValue
	for dim := 0; dim < d.Dimension; dim++ {
		cands := d.Explorer.Candidates(dim, fullPool)
		if len(cands) == 0 {
			return nil, last, fmt.Errorf("search: net CBC round %d had an empty candidate pool", dim)
		}
		bestIdx := 0
		bestMat, err := net.CandidateMatrix(cands[0].TableIndex, d.M)
		if err != nil {
			return nil, last, err
		}
		bestMerit := d.Figure.Score(accepted, bestMat, dim, d.M)
		for i := 1; i < len(cands); i++ {
			mat, err := net.CandidateMatrix(cands[i].TableIndex, d.M)
			if err != nil {
				return nil, last, err
			}
			merit := d.Figure.Score(accepted, mat, dim, d.M)
			if innerproduct.ScalarOf(merit) < innerproduct.ScalarOf(bestMerit) {
				bestIdx, bestMat, bestMerit = i, mat, merit
			}
		}
		accepted = append(accepted, bestMat)
		last = bestMerit
		if d.onProgress != nil {
			d.onProgress(dim, cands[bestIdx], last)
		}
		if d.onAbort != nil && d.onAbort() {
			break
		}
	}
	return &net.Net{M: d.M, S: len(accepted), Mats: accepted}, last, nil
}
