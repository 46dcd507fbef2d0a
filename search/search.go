// Package search implements SearchDriver and its CBC exploration strategies
// (spec.md §5): Full (exhaustive), Random (a fixed-size random sample per
// dimension) and Mixed (exhaustive up to a dimension threshold, random
// beyond it). Random sampling uses a seeded LFSR whose seed is expanded via
// SHA-3 (golang.org/x/crypto/sha3), following the teacher's practice of
// deriving deterministic pseudorandom streams from a single numeric seed
// rather than reading system entropy.
package search

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"latbuilder-go/coorduniform"
	"latbuilder-go/innerproduct"
	"latbuilder-go/storage"
)

// Explorer decides which candidates from the full pool get scored at a
// given dimension.
type Explorer interface {
	Candidates(dim int, pool []coorduniform.GenValue) []coorduniform.GenValue
}

// FullExplorer scores the entire candidate pool at every dimension,
// matching a classical full CBC search.
type FullExplorer struct{}

// Candidates implements Explorer.
func (FullExplorer) Candidates(dim int, pool []coorduniform.GenValue) []coorduniform.GenValue {
	return pool
}

// lfsr is a 64-bit xorshift generator seeded from a SHA3-256 expansion of a
// numeric seed, giving SearchDriver a reproducible, easily re-seedable
// pseudorandom stream without depending on math/rand's process-global state.
type lfsr struct {
	state uint64
}

func newLFSR(seed uint64) *lfsr {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	digest := sha3.Sum256(buf[:])
	s := binary.LittleEndian.Uint64(digest[:8])
	if s == 0 {
		s = 0x9e3779b97f4a7c15
	}
	return &lfsr{state: s}
}

func (r *lfsr) next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// intn returns a uniform value in [0,n).
func (r *lfsr) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n))
}

// RandomExplorer scores a fixed-size random sample of the pool (without
// replacement) at every dimension, trading search quality for speed on
// large candidate pools.
type RandomExplorer struct {
	SampleSize int
	rng        *lfsr
}

// NewRandomExplorer builds a RandomExplorer with the given sample size and
// seed.
func NewRandomExplorer(sampleSize int, seed uint64) *RandomExplorer {
	return &RandomExplorer{SampleSize: sampleSize, rng: newLFSR(seed)}
}

// Candidates implements Explorer: a Fisher-Yates partial shuffle drawing
// min(SampleSize, len(pool)) distinct entries.
func (r *RandomExplorer) Candidates(dim int, pool []coorduniform.GenValue) []coorduniform.GenValue {
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
	out := make([]coorduniform.GenValue, k)
	for i := 0; i < k; i++ {
		out[i] = pool[idx[i]]
	}
	return out
}

// MixedExplorer is exhaustive up to (and including) dimension Threshold,
// then delegates to Random beyond it -- the common "pad the low, cheap
// dimensions exactly, sample the rest" strategy (spec.md §5).
type MixedExplorer struct {
	Threshold int
	Random    *RandomExplorer
}

// Candidates implements Explorer.
func (m *MixedExplorer) Candidates(dim int, pool []coorduniform.GenValue) []coorduniform.GenValue {
	if dim <= m.Threshold {
		return pool
	}
	return m.Random.Candidates(dim, pool)
}

// MinObserver tracks the best (lowest-scalar) candidate merit seen across a
// search, for reporting or for feeding LowPass thresholds in later rounds.
type MinObserver struct {
	Best    storage.MeritValue
	BestGen coorduniform.GenValue
	Dim     int
	has     bool
}

// Observe records a candidate if it improves on the current best.
func (o *MinObserver) Observe(dim int, gen coorduniform.GenValue, m storage.MeritValue) {
	if !o.has || innerproduct.ScalarOf(m) < innerproduct.ScalarOf(o.Best) {
		o.Best = m
		o.BestGen = gen
		o.Dim = dim
		o.has = true
	}
}

// HasResult reports whether Observe has been called at least once.
func (o *MinObserver) HasResult() bool { return o.has }

// Driver runs a component-by-component search using an Explorer-supplied
// candidate pool at each dimension (spec.md §5 "SearchDriver").
type Driver struct {
	InnerProd *innerproduct.InnerProduct
	State     coorduniform.State
	Dimension int
	Explorer  Explorer

	onProgress func(dim int, gen coorduniform.GenValue, merit storage.MeritValue)
	onAbort    func() bool
}

// NewDriver builds a search Driver.
func NewDriver(ip *innerproduct.InnerProduct, st coorduniform.State, dimension int, exp Explorer) *Driver {
	return &Driver{InnerProd: ip, State: st, Dimension: dimension, Explorer: exp}
}

// OnProgress registers a callback invoked after each accepted coordinate.
func (d *Driver) OnProgress(fn func(dim int, gen coorduniform.GenValue, merit storage.MeritValue)) {
	d.onProgress = fn
}

// OnAbort registers a callback polled after each accepted coordinate; if it
// returns true the search stops early, returning the generating vector
// built so far.
func (d *Driver) OnAbort(fn func() bool) { d.onAbort = fn }

// Run performs the full dimension-by-dimension search against the given
// full candidate pool (each Explorer call narrows it per dimension).
func (d *Driver) Run(fullPool []coorduniform.GenValue) ([]coorduniform.GenValue, storage.MeritValue) {
	d.State.Reset()
	gens := make([]coorduniform.GenValue, 0, d.Dimension)
	var last storage.MeritValue
	for dim := 0; dim < d.Dimension; dim++ {
		pool := d.Explorer.Candidates(dim, fullPool)
		q := d.State.WeightedState()
		cands := innerproduct.MeritSeq(d.InnerProd, q, pool)
		best := innerproduct.Select(cands)
		gen := cands[best].Gen
		if dim == 0 {
			last = cands[best].Merit
		} else {
			last = last.Add(cands[best].Merit)
		}
		d.State.Update(d.InnerProd.KernelValues, gen)
		gens = append(gens, gen)
		if d.onProgress != nil {
			d.onProgress(dim, gen, last)
		}
		if d.onAbort != nil && d.onAbort() {
			break
		}
	}
	return gens, last
}
