package search

import (
	"testing"

	"latbuilder-go/net"
	"latbuilder-go/weights"
)

func TestNetPoolCoversFullTable(t *testing.T) {
	pool := NetPool()
	if len(pool) != net.MaxSobolDim {
		t.Fatalf("NetPool() length = %d, want %d", len(pool), net.MaxSobolDim)
	}
	for i, c := range pool {
		if c.TableIndex != i {
			t.Fatalf("NetPool()[%d].TableIndex = %d, want %d", i, c.TableIndex, i)
		}
	}
}

func netPool(n int) []NetCandidate {
	out := make([]NetCandidate, n)
	for i := range out {
		out[i] = NetCandidate{TableIndex: i}
	}
	return out
}

func TestFullNetExplorerReturnsEntirePool(t *testing.T) {
	pool := netPool(5)
	if got := len(FullNetExplorer{}.Candidates(2, pool)); got != 5 {
		t.Fatalf("FullNetExplorer.Candidates length = %d, want 5", got)
	}
}

func TestRandomNetExplorerSampleSizeAndDistinctness(t *testing.T) {
	pool := netPool(10)
	exp := NewRandomNetExplorer(4, 42)
	got := exp.Candidates(0, pool)
	if len(got) != 4 {
		t.Fatalf("RandomNetExplorer sample size = %d, want 4", len(got))
	}
	seen := make(map[int]bool)
	for _, c := range got {
		if seen[c.TableIndex] {
			t.Fatalf("RandomNetExplorer returned a duplicate candidate %d", c.TableIndex)
		}
		seen[c.TableIndex] = true
	}
}

// TestUnilevelTValueFigureIdentityIsZero: a lone identity generating matrix
// (table index 0) has every top-k submatrix full rank for every k, so its
// unilevel t-value is 0 (tvalue.Gauss's terminal case).
func TestUnilevelTValueFigureIdentityIsZero(t *testing.T) {
	mat, err := net.CandidateMatrix(0, 3)
	if err != nil {
		t.Fatalf("CandidateMatrix: %v", err)
	}
	got := UnilevelTValueFigure{CrossCheck: true}.Score(nil, mat, 0, 3)
	if got.Value() != 0 {
		t.Fatalf("Score() = %v, want 0", got.Value())
	}
}

// TestWeightedTValueProjFigureMatchesSingleProjection checks the dim=0 case,
// where the only tracked projection is {0} and its weight is Product's
// Default (1 here, no per-coordinate override).
func TestWeightedTValueProjFigureMatchesSingleProjection(t *testing.T) {
	mat, err := net.CandidateMatrix(0, 2)
	if err != nil {
		t.Fatalf("CandidateMatrix: %v", err)
	}
	f := WeightedTValueProjFigure{Weights: &weights.Product{Default: 1}, MaxOrder: 0}
	got := f.Score(nil, mat, 0, 2)
	if got.Value() != 0 {
		t.Fatalf("Score() = %v, want 0 (identity matrix's t-value is 0, weight is 1)", got.Value())
	}
}

func TestNetDriverRunProducesNetOfRequestedDimension(t *testing.T) {
	d := NewNetDriver(3, 2, FullNetExplorer{}, UnilevelTValueFigure{})
	n, _, err := d.Run(netPool(4))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n.S != 2 {
		t.Fatalf("Run() built a net with S=%d, want 2", n.S)
	}
}

func TestNetDriverRejectsOutOfRangeTableIndex(t *testing.T) {
	d := NewNetDriver(3, 1, FullNetExplorer{}, UnilevelTValueFigure{})
	bad := []NetCandidate{{TableIndex: net.MaxSobolDim + 5}}
	if _, _, err := d.Run(bad); err == nil {
		t.Fatal("Run with an out-of-range table index must return an error, not panic or wrap around")
	}
}

func TestNetDriverOnAbortStopsEarly(t *testing.T) {
	d := NewNetDriver(3, 5, FullNetExplorer{}, UnilevelTValueFigure{})
	count := 0
	d.OnAbort(func() bool {
		count++
		return count >= 2
	})
	n, _, err := d.Run(netPool(4))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n.S != 2 {
		t.Fatalf("Run with OnAbort after 2 steps built S=%d, want 2", n.S)
	}
}
