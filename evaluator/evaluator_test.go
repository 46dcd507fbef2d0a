package evaluator

import (
	"math"
	"testing"

	"latbuilder-go/coorduniform"
	"latbuilder-go/filter"
	"latbuilder-go/innerproduct"
	"latbuilder-go/kernel"
	"latbuilder-go/projection"
	"latbuilder-go/projtree"
	"latbuilder-go/sizeparam"
	"latbuilder-go/storage"
	"latbuilder-go/weights"
)

func TestEvaluateCoordUniformAppliesFilters(t *testing.T) {
	p, _ := sizeparam.NewInteger(7)
	s := storage.New(p, storage.Symmetric)
	ip := innerproduct.New(s, kernel.PAlpha{Alpha: 2})
	w := &weights.Product{Default: 1}
	st := coorduniform.NewProduct(s, w)

	plain := New(nil).EvaluateCoordUniform(ip, st, []coorduniform.GenValue{coorduniform.Int(1), coorduniform.Int(2)})

	st.Reset()
	scaled := New(filter.Chain{filter.Normaliser{BoundAtLevel: func(int) float64 { return 2 }}}).
		EvaluateCoordUniform(ip, st, []coorduniform.GenValue{coorduniform.Int(1), coorduniform.Int(2)})

	if math.Abs(scaled.Value()-plain.Value()/2) > 1e-12 {
		t.Fatalf("filtered merit = %v, want %v", scaled.Value(), plain.Value()/2)
	}
}

func TestEvaluateWeightedSumsTree(t *testing.T) {
	w := &weights.Product{Default: 1}
	tree := projtree.New(w, func(u projection.Set) float64 { return 1 }, 0)
	ev := New(nil)
	m := ev.EvaluateWeighted(tree, 2)
	if m.Value() != tree.TotalMerit() {
		t.Fatalf("EvaluateWeighted = %v, want TotalMerit() = %v", m.Value(), tree.TotalMerit())
	}
}

func TestEvaluateWeightedBoundedStopsEarlyWhenStrict(t *testing.T) {
	w := &weights.Product{Default: 1}
	tree := projtree.New(w, func(u projection.Set) float64 { return 1 }, 0)
	ev := New(nil)
	ev.StrictMotherBound = true
	m := ev.EvaluateWeightedBounded(tree, 3, 0.5)
	if m.Value() < 0.5 {
		t.Fatalf("EvaluateWeightedBounded must stop at or above the bound, got %v", m.Value())
	}
}

func TestEvaluateWeightedBoundedFullSumWhenNotStrict(t *testing.T) {
	w := &weights.Product{Default: 1}
	tree := projtree.New(w, func(u projection.Set) float64 { return 1 }, 0)
	ev := New(nil)
	full := ev.EvaluateWeightedBounded(tree, 2, 0.1)
	if full.Value() != tree.TotalMerit() {
		t.Fatalf("non-strict EvaluateWeightedBounded = %v, want full TotalMerit() = %v", full.Value(), tree.TotalMerit())
	}
}
