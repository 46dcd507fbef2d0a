package coorduniform

import (
	"math"
	"testing"

	"latbuilder-go/sizeparam"
	"latbuilder-go/storage"
	"latbuilder-go/weights"
)

func newUncompressedStorage(t *testing.T, n uint64) *storage.Storage {
	t.Helper()
	p, err := sizeparam.NewInteger(n)
	if err != nil {
		t.Fatalf("NewInteger: %v", err)
	}
	return storage.New(p, storage.None)
}

func TestProductStateMatchesRecurrence(t *testing.T) {
	s := newUncompressedStorage(t, 4)
	gamma := 0.4
	w := &weights.Product{Default: gamma}
	st := NewProduct(s, w)

	omega0 := []float64{1, 2, 3, 4}
	st.Update(omega0, Int(1))
	if st.Dimension() != 1 {
		t.Fatalf("Dimension() after one update = %d, want 1", st.Dimension())
	}
	got := st.WeightedState()
	for i := range got {
		want := gamma * (1 + gamma*omega0[i])
		if math.Abs(got[i]-want) > 1e-12 {
			t.Fatalf("WeightedState[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestOrderDependentStateMatchesRecurrence(t *testing.T) {
	s := newUncompressedStorage(t, 3)
	w := &weights.OrderDependent{Default: 0, ByOrder: []float64{1, 0.5}}
	st := NewOrderDependent(s, w)

	omega0 := []float64{1, 2, 3}
	st.Update(omega0, Int(1))

	n := s.Size()
	// p[0] stays all-ones, p[1] = omega0 * ones.
	for i := 0; i < n; i++ {
		if st.p[0][i] != 1 {
			t.Fatalf("p[0][%d] = %v, want 1", i, st.p[0][i])
		}
		if math.Abs(st.p[1][i]-omega0[i]) > 1e-12 {
			t.Fatalf("p[1][%d] = %v, want %v", i, st.p[1][i], omega0[i])
		}
	}
	got := st.WeightedState()
	for i := 0; i < n; i++ {
		want := w.ByOrder[0]*1 + w.ByOrder[1]*omega0[i]
		if math.Abs(got[i]-want) > 1e-12 {
			t.Fatalf("WeightedState[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestCombinedSumsSubStates(t *testing.T) {
	s := newUncompressedStorage(t, 3)
	wa := &weights.Product{Default: 0.5}
	wb := &weights.Product{Default: 0.25}
	a := NewProduct(s, wa)
	b := NewProduct(s, wb)
	c := NewCombined(a, b)

	omega0 := []float64{1, 1, 1}
	c.Update(omega0, Int(1))
	got := c.WeightedState()
	wantA := a.WeightedState()
	wantB := b.WeightedState()
	for i := range got {
		if math.Abs(got[i]-(wantA[i]+wantB[i])) > 1e-12 {
			t.Fatalf("Combined.WeightedState[%d] = %v, want sum %v", i, got[i], wantA[i]+wantB[i])
		}
	}
}

func TestNewStateDispatchesByWeightsType(t *testing.T) {
	s := newUncompressedStorage(t, 4)
	if _, ok := NewState(s, &weights.Product{Default: 1}, 4).(*Product); !ok {
		t.Fatal("NewState(Product weights) must return a *Product state")
	}
	if _, ok := NewState(s, &weights.OrderDependent{Default: 1}, 4).(*OrderDependent); !ok {
		t.Fatal("NewState(OrderDependent weights) must return an *OrderDependent state")
	}
	combined := &weights.Combined{List: []weights.Weights{&weights.Product{Default: 1}, &weights.Product{Default: 1}}}
	if _, ok := NewState(s, combined, 4).(*Combined); !ok {
		t.Fatal("NewState(Combined weights) must return a *Combined state")
	}
}
