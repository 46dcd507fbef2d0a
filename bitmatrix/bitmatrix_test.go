package bitmatrix

import "testing"

func TestGetSetRoundTrip(t *testing.T) {
	m := New(4, 4)
	m.Set(1, 2, 1)
	if m.Get(1, 2) != 1 {
		t.Fatalf("Get(1,2) = %d, want 1", m.Get(1, 2))
	}
	if m.Get(0, 0) != 0 {
		t.Fatalf("Get(0,0) = %d, want 0", m.Get(0, 0))
	}
}

func TestTransposeInvolution(t *testing.T) {
	m := FromRows([][]byte{{1, 0, 1}, {0, 1, 0}})
	tt := m.Transpose().Transpose()
	if !m.Equal(tt) {
		t.Fatal("Transpose applied twice must return the original matrix")
	}
}

func TestMulGF2Identity(t *testing.T) {
	id := New(3, 3)
	for i := 0; i < 3; i++ {
		id.Set(i, i, 1)
	}
	m := FromRows([][]byte{{1, 1, 0}, {0, 1, 1}, {1, 0, 1}})
	prod := MulGF2(m, id)
	if !m.Equal(prod) {
		t.Fatal("multiplying by the identity must be a no-op")
	}
}

func TestSubMatrixNoAliasing(t *testing.T) {
	m := FromRows([][]byte{{1, 1}, {0, 1}})
	sub := m.SubMatrix(0, 1, 0, 1)
	sub.Set(0, 0, 0)
	if m.Get(0, 0) != 1 {
		t.Fatal("SubMatrix must copy by value, not alias the parent matrix")
	}
}

func TestRowIsZero(t *testing.T) {
	row := make([]uint64, 1)
	if !RowIsZero(row, 10) {
		t.Fatal("all-zero row must report zero")
	}
	row[0] = 1
	if RowIsZero(row, 10) {
		t.Fatal("row with a set bit must not report zero")
	}
}
