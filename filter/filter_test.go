package filter

import (
	"math"
	"testing"

	"latbuilder-go/storage"
)

func TestBrentMinimizeFindsKnownMinimum(t *testing.T) {
	f := func(x float64) float64 { return (x - 0.3) * (x - 0.3) }
	x, fx := brentMinimize(f, 0, 1)
	if math.Abs(x-0.3) > 1e-4 {
		t.Fatalf("brentMinimize found x=%v, want close to 0.3", x)
	}
	if fx > 1e-6 {
		t.Fatalf("brentMinimize found fx=%v, want close to 0", fx)
	}
}

func TestNormalizerPAlphaDPW08BoundIsPositive(t *testing.T) {
	n := NormalizerPAlphaDPW08{Alpha: 2, Gamma: []float64{0.5, 0.25}, N: 101, Kappa: 1}
	b := n.Bound()
	if b <= 0 {
		t.Fatalf("Bound() = %v, want positive", b)
	}
}

func TestNormaliserDividesByBound(t *testing.T) {
	n := Normaliser{BoundAtLevel: func(level int) float64 { return 2.0 }}
	got := n.Apply(storage.Scalar(10))
	if got.Value() != 5 {
		t.Fatalf("Normaliser.Apply(10)/2 = %v, want 5", got.Value())
	}
}

func TestNormaliserSkipsZeroBound(t *testing.T) {
	n := Normaliser{BoundAtLevel: func(level int) float64 { return 0 }}
	got := n.Apply(storage.Scalar(10))
	if got.Value() != 10 {
		t.Fatalf("Normaliser.Apply with zero bound must pass the value through unchanged, got %v", got.Value())
	}
}

func TestLowPassPrunesAboveThreshold(t *testing.T) {
	lp := LowPass{Threshold: 1.0, ScalarOf: func(m storage.MeritValue) float64 { return m.Value() }}
	got := lp.Apply(storage.Scalar(2.0))
	if !math.IsInf(got.Value(), 1) {
		t.Fatalf("LowPass must map an over-threshold merit to +Inf, got %v", got.Value())
	}
	passthrough := lp.Apply(storage.Scalar(0.5))
	if passthrough.Value() != 0.5 {
		t.Fatalf("LowPass must pass through an under-threshold merit unchanged, got %v", passthrough.Value())
	}
}

func TestMaxCombinerPicksLargestLevel(t *testing.T) {
	m := storage.MeritValue{Levels: []float64{0.1, 0.9, 0.4}}
	got := MaxCombiner().Apply(m)
	if got.Value() != 0.9 {
		t.Fatalf("MaxCombiner.Apply = %v, want 0.9", got.Value())
	}
}

func TestSumCombinerWeightsLevels(t *testing.T) {
	m := storage.MeritValue{Levels: []float64{1, 2, 3}}
	got := SumCombiner([]float64{1, 0, 1}).Apply(m)
	if got.Value() != 4 {
		t.Fatalf("SumCombiner.Apply = %v, want 4", got.Value())
	}
}

func TestChainAppliesInOrder(t *testing.T) {
	chain := Chain{
		Normaliser{BoundAtLevel: func(level int) float64 { return 2 }},
		LevelCombiner{Combine: func(levels []float64) float64 { return levels[0] + 1 }},
	}
	got := chain.Apply(storage.Scalar(10))
	if got.Value() != 6 { // 10/2 = 5, then +1 = 6
		t.Fatalf("Chain.Apply = %v, want 6", got.Value())
	}
}
