// Package projtree implements ProjectionTree (spec.md §4.6): the weighted
// dialect's figure-of-merit accumulator, built from a per-projection value
// (e.g. a t-value or Walsh-kernel discrepancy contribution) combined with
// the active Weights.
//
// The design note "Cyclic graph -> arena + indices" is rendered literally:
// nodes live in a flat slice (the arena) and reference each other by index,
// not by pointer/Rc, since Go has no borrow checker forcing that
// restructuring but the arena form is simpler to extend incrementally
// regardless (ExtendUpToDimension only ever appends).
package projtree

import (
	"latbuilder-go/projection"
	"latbuilder-go/weights"
)

// PerProjection computes the raw figure-of-merit contribution of a single
// projection (before weighting), e.g. a t-value-derived term or a
// coordinate-uniform kernel sum restricted to that projection's coordinates.
type PerProjection func(u projection.Set) float64

// Node is one projection's entry in the arena. Mothers holds, for a
// projection w = {i_1,...,i_k}, the arena index of every w\{i_j} (spec.md
// §4.6 steps 1-2, §3's "list-of-parent-nodes") -- not a single insertion
// parent, since the figure-of-merit recurrence needs the max over ALL of a
// projection's mothers, not just the one it happened to be built from.
type Node struct {
	Proj     projection.Set
	Value    float64 // PerProjection(Proj)
	Weighted float64 // weights.GetWeight(Proj) * Value
	Mothers  []int
	Children []int
}

// Tree is the arena-backed projection tree.
type Tree struct {
	arena     []Node
	index     map[string]int // Proj.Key() -> arena index, used to resolve mothers
	weights   weights.Weights
	eval      PerProjection
	maxOrder  int // 0 = unbounded; otherwise prunes nodes with Card() > maxOrder
	dimension int
}

// New builds an empty Tree rooted at the empty projection. maxOrder caps the
// cardinality of tracked projections (0 disables the cap), matching the
// practical truncation every POD/order-dependent figure relies on to keep
// the tree polynomial in dimension.
func New(w weights.Weights, eval PerProjection, maxOrder int) *Tree {
	root := projection.New()
	return &Tree{
		weights:  w,
		eval:     eval,
		maxOrder: maxOrder,
		arena:    []Node{{Proj: root}},
		index:    map[string]int{root.Key(): 0},
	}
}

// Dimension returns the highest dimension the tree has been extended to.
func (t *Tree) Dimension() int { return t.dimension }

// NumNodes returns the arena size, including the empty-projection root.
func (t *Tree) NumNodes() int { return len(t.arena) }

// ExtendUpToDimension grows the tree to cover coordinates up to d-1: for
// every coordinate c in [currentDimension, d), every existing node whose
// projection does not yet contain c gains a daughter node for Proj u{c},
// unless maxOrder caps it out.
func (t *Tree) ExtendUpToDimension(d int) {
	for c := t.dimension; c < d; c++ {
		n := len(t.arena)
		for i := 0; i < n; i++ {
			proj := t.arena[i].Proj
			if proj.Max() >= c {
				continue
			}
			if t.maxOrder > 0 && proj.Card() >= t.maxOrder {
				continue
			}
			daughter := proj.With(c)
			val := t.eval(daughter)
			idx := len(t.arena)
			mothers := make([]int, 0, daughter.Card())
			for _, e := range daughter.Coords() {
				if mi, ok := t.index[daughter.Without(e).Key()]; ok {
					mothers = append(mothers, mi)
				}
			}
			// append may reallocate t.arena, invalidating any pointer taken
			// into it before this point -- index into it fresh afterwards.
			t.arena = append(t.arena, Node{
				Proj:     daughter,
				Value:    val,
				Weighted: t.weights.GetWeight(daughter) * val,
				Mothers:  mothers,
			})
			t.index[daughter.Key()] = idx
			t.arena[i].Children = append(t.arena[i].Children, idx)
		}
	}
	t.dimension = d
}

// TotalMerit sums weight(u)*value(u) over every tracked non-empty
// projection (spec.md §4.6's weighted figure of merit).
func (t *Tree) TotalMerit() float64 {
	var sum float64
	for i := 1; i < len(t.arena); i++ {
		sum += t.arena[i].Weighted
	}
	return sum
}

// MaxMotherMerit returns the largest Weighted value among node i's mothers
// (spec.md §4.6 steps 1-2: for w = {i_1,...,i_k}, the max over every
// w\{i_j}'s stored merit), the quantity a branch-and-bound search can
// compare against a running best to decide whether descending into node i's
// daughters can possibly help. The root has no mothers and returns 0. This
// package exposes the value; the decision of whether to prune a subtree is
// left to the caller (evaluator/search), since what counts as "possibly
// helping" depends on the active Kernel's sign convention and CUPower --
// documented as a deliberate narrowing of scope in DESIGN.md.
func (t *Tree) MaxMotherMerit(i int) float64 {
	mothers := t.arena[i].Mothers
	if len(mothers) == 0 {
		return 0
	}
	max := t.arena[mothers[0]].Weighted
	for _, mi := range mothers[1:] {
		if w := t.arena[mi].Weighted; w > max {
			max = w
		}
	}
	return max
}

// Node returns the arena entry at index i.
func (t *Tree) Node(i int) Node { return t.arena[i] }

// Nodes returns every tracked projection's node, root included.
func (t *Tree) Nodes() []Node { return t.arena }

// IndexOf returns the arena index of projection u, if tracked. A
// PerProjection closure that needs a lower bound from already-computed
// sub-projections (e.g. tvalue's maxSubProj, a valid bound since a
// projection's t-value is never smaller than any of its mothers') can use
// this to look up those mothers' raw Value before this node itself exists,
// since ExtendUpToDimension always builds every subset of a projection
// before the projection itself (subsets are enumerated in binary-counting
// order, so every subset precedes its supersets in the arena).
func (t *Tree) IndexOf(u projection.Set) (int, bool) {
	i, ok := t.index[u.Key()]
	return i, ok
}
