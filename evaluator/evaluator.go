// Package evaluator implements FigureEvaluator (spec.md §4.6): the two
// dialects a figure of merit can be computed with -- the coordinate-uniform
// incremental recurrence (innerproduct.CoordUniformCBC's per-step merit,
// replayed against a fixed generating vector instead of searched) and the
// weighted dialect (projtree.Tree, a direct sum over explicitly enumerated
// projections, used for figures with no known coordinate-uniform
// recurrence or as a cross-check of the former).
package evaluator

import (
	"latbuilder-go/coorduniform"
	"latbuilder-go/filter"
	"latbuilder-go/innerproduct"
	"latbuilder-go/projtree"
	"latbuilder-go/storage"
)

// Evaluator computes a figure of merit for a fixed generating vector or net,
// applying an optional Filter chain (normalisation, low-pass, combiner) to
// the raw result.
type Evaluator struct {
	Filters filter.Chain

	// StrictMotherBound resolves the multilevel t-value short-circuit open
	// question (SPEC_FULL.md): false (the default) preserves the original's
	// completeness behaviour -- EvaluateWeighted always visits every tracked
	// projection. true enables the mother-merit pruning optimisation: once the
	// running sum of node contributions already meets or exceeds the supplied
	// bound, EvaluateWeightedBounded treats that as proof the remaining
	// (non-negative) contributions cannot lower the total below the bound
	// and stops early with the partial sum -- a valid lower bound, not the
	// exact total, appropriate only when the caller only needs a
	// does-this-beat-the-incumbent decision (e.g. random/mixed CBC search).
	StrictMotherBound bool

	onProgress func(dim int, merit storage.MeritValue)
	onAbort    func() bool
}

// New builds an Evaluator.
func New(filters filter.Chain) *Evaluator {
	return &Evaluator{Filters: filters}
}

// OnProgress registers a progress callback invoked after each coordinate.
func (e *Evaluator) OnProgress(fn func(dim int, merit storage.MeritValue)) { e.onProgress = fn }

// OnAbort registers a callback polled after each coordinate; if it returns
// true, evaluation stops early and returns the merit accumulated so far.
func (e *Evaluator) OnAbort(fn func() bool) { e.onAbort = fn }

// EvaluateCoordUniform replays the CoordUniformState recurrence against a
// fixed generating vector (rather than searching), returning the final
// merit after the filter chain.
func (e *Evaluator) EvaluateCoordUniform(ip *innerproduct.InnerProduct, st coorduniform.State, gens []coorduniform.GenValue) storage.MeritValue {
	st.Reset()
	var last storage.MeritValue
	for d, g := range gens {
		q := st.WeightedState()
		var inc storage.MeritValue
		if g.IsPoly {
			inc = ip.EvalPoly(q, g.Poly)
		} else {
			inc = ip.Eval(q, g.Int)
		}
		if d == 0 {
			last = inc
		} else {
			last = last.Add(inc)
		}
		st.Update(ip.KernelValues, g)
		if e.onProgress != nil {
			e.onProgress(d, last)
		}
		if e.onAbort != nil && e.onAbort() {
			break
		}
	}
	if e.Filters != nil {
		last = e.Filters.Apply(last)
	}
	return last
}

// EvaluateWeighted sums the weighted dialect's figure of merit over every
// projection tracked by tree, after extending it to cover `dim` dimensions.
func (e *Evaluator) EvaluateWeighted(tree *projtree.Tree, dim int) storage.MeritValue {
	tree.ExtendUpToDimension(dim)
	m := storage.Scalar(tree.TotalMerit())
	if e.Filters != nil {
		m = e.Filters.Apply(m)
	}
	return m
}

// EvaluateWeightedBounded is EvaluateWeighted's pruning variant (see
// StrictMotherBound): if enabled, it stops accumulating and returns early
// once the running sum already reaches bound, since every remaining
// contribution is assumed non-negative (true for every Weights/PerProjection
// pairing in this module) and can therefore only grow the total further.
func (e *Evaluator) EvaluateWeightedBounded(tree *projtree.Tree, dim int, bound float64) storage.MeritValue {
	tree.ExtendUpToDimension(dim)
	if !e.StrictMotherBound {
		return e.EvaluateWeighted(tree, dim)
	}
	var sum float64
	for i, node := range tree.Nodes() {
		if i == 0 {
			continue
		}
		sum += node.Weighted
		if sum >= bound {
			break
		}
	}
	m := storage.Scalar(sum)
	if e.Filters != nil {
		m = e.Filters.Apply(m)
	}
	return m
}
