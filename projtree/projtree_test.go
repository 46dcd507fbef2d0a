package projtree

import (
	"math"
	"testing"

	"latbuilder-go/projection"
	"latbuilder-go/weights"
)

func TestExtendUpToDimensionGrowsArena(t *testing.T) {
	w := &weights.Product{Default: 1}
	tree := New(w, func(u projection.Set) float64 { return 1 }, 0)
	if tree.NumNodes() != 1 {
		t.Fatalf("fresh tree has %d nodes, want 1 (root)", tree.NumNodes())
	}
	tree.ExtendUpToDimension(1)
	if tree.NumNodes() != 2 {
		t.Fatalf("after extending to dim 1, NumNodes() = %d, want 2", tree.NumNodes())
	}
	tree.ExtendUpToDimension(2)
	// root, {0}, {1}, {0,1}: 4 nodes.
	if tree.NumNodes() != 4 {
		t.Fatalf("after extending to dim 2, NumNodes() = %d, want 4", tree.NumNodes())
	}
}

func TestMaxOrderCapsCardinality(t *testing.T) {
	w := &weights.Product{Default: 1}
	tree := New(w, func(u projection.Set) float64 { return 1 }, 1)
	tree.ExtendUpToDimension(3)
	for _, n := range tree.Nodes() {
		if n.Proj.Card() > 1 {
			t.Fatalf("maxOrder=1 must cap every tracked projection's cardinality, found %v", n.Proj)
		}
	}
}

func TestTotalMeritSumsWeightedValues(t *testing.T) {
	w := &weights.Product{Default: 1, Coord: []float64{0.5, 0.5}}
	tree := New(w, func(u projection.Set) float64 { return 2 }, 0)
	tree.ExtendUpToDimension(2)
	var want float64
	for _, n := range tree.Nodes()[1:] {
		want += w.GetWeight(n.Proj) * 2
	}
	if got := tree.TotalMerit(); math.Abs(got-want) > 1e-12 {
		t.Fatalf("TotalMerit() = %v, want %v", got, want)
	}
}

func TestMaxMotherMeritOfRootIsZero(t *testing.T) {
	w := &weights.Product{Default: 1}
	tree := New(w, func(u projection.Set) float64 { return 3 }, 0)
	if got := tree.MaxMotherMerit(0); got != 0 {
		t.Fatalf("MaxMotherMerit(root) = %v, want 0 (root has no mothers)", got)
	}
}

// TestMaxMotherMeritIsMaxOverAllMothers builds {0,1}, whose two mothers are
// {0} and {1} (spec.md §4.6 steps 1-2), with an eval function that gives
// them different values, and checks MaxMotherMerit({0,1}) is their max, not
// just the value of whichever node happened to build {0,1} as a daughter.
func TestMaxMotherMeritIsMaxOverAllMothers(t *testing.T) {
	w := &weights.Product{Default: 1}
	tree := New(w, func(u projection.Set) float64 { return float64(u.Max() + 1) }, 0)
	tree.ExtendUpToDimension(2)

	var idx01 int
	for i, n := range tree.Nodes() {
		if n.Proj.Card() == 2 {
			idx01 = i
		}
	}
	if idx01 == 0 {
		t.Fatal("expected a tracked {0,1} node")
	}

	var idx0, idx1 int
	for i, n := range tree.Nodes() {
		switch {
		case n.Proj.Card() == 1 && n.Proj.Coords()[0] == 0:
			idx0 = i
		case n.Proj.Card() == 1 && n.Proj.Coords()[0] == 1:
			idx1 = i
		}
	}

	want := tree.Node(idx0).Weighted
	if w1 := tree.Node(idx1).Weighted; w1 > want {
		want = w1
	}
	if got := tree.MaxMotherMerit(idx01); got != want {
		t.Fatalf("MaxMotherMerit({0,1}) = %v, want max(Weighted({0}), Weighted({1})) = %v", got, want)
	}
}
