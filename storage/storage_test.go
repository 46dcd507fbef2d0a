package storage

import (
	"math"
	"testing"

	"latbuilder-go/sizeparam"
)

func TestSizeUncompressed(t *testing.T) {
	p, _ := sizeparam.NewInteger(7)
	s := New(p, None)
	if s.Size() != 7 {
		t.Fatalf("Size() = %d, want 7", s.Size())
	}
}

func TestSizeSymmetricOddEven(t *testing.T) {
	podd, _ := sizeparam.NewInteger(7)
	if got := New(podd, Symmetric).Size(); got != 4 {
		t.Fatalf("Size() odd n=7 symmetric = %d, want 4", got)
	}
	peven, _ := sizeparam.NewInteger(8)
	if got := New(peven, Symmetric).Size(); got != 5 {
		t.Fatalf("Size() even n=8 symmetric = %d, want 5", got)
	}
}

func TestValuesVectorSymmetricFolding(t *testing.T) {
	p, _ := sizeparam.NewInteger(6)
	s := New(p, Symmetric)
	vals := s.ValuesVector(func(i int) float64 { return float64(i) })
	if len(vals) != s.Size() {
		t.Fatalf("ValuesVector length = %d, want %d", len(vals), s.Size())
	}
}

func TestStridedAndCompressedSumUnilevel(t *testing.T) {
	p, _ := sizeparam.NewInteger(5)
	s := New(p, None)
	values := []float64{0, 1, 2, 3, 4}
	view := s.Strided(values, 1)
	q := []float64{1, 1, 1, 1, 1}
	m := s.CompressedSum(q, view)
	if !m.IsUnilevel() {
		t.Fatal("non-embedded Storage must produce a unilevel MeritValue")
	}
	want := (0.0 + 1 + 2 + 3 + 4) / 5
	if math.Abs(m.Value()-want) > 1e-12 {
		t.Fatalf("CompressedSum = %v, want %v", m.Value(), want)
	}
}

func TestValidateKernelShape(t *testing.T) {
	p, _ := sizeparam.NewInteger(6)
	s := New(p, Symmetric)
	if err := s.ValidateKernelShape(s.Size()); err != nil {
		t.Fatalf("ValidateKernelShape(correct) returned error: %v", err)
	}
	if err := s.ValidateKernelShape(s.Size() + 1); err == nil {
		t.Fatal("ValidateKernelShape(wrong) must error")
	}
}
