package tvalue

import (
	"testing"

	"latbuilder-go/bitmatrix"
)

func identityMat(m int) *bitmatrix.Matrix {
	mat := bitmatrix.New(m, m)
	for i := 0; i < m; i++ {
		mat.Set(i, i, 1)
	}
	return mat
}

func TestGaussDuplicatedIdentityNetIsTMMinusOne(t *testing.T) {
	m := 4
	// Both coordinates use the identity matrix, so every point lies on the
	// diagonal: the composition (1,1) stacks row 0 twice, k=1 is the largest
	// size whose compositions are all full rank, and t = m-1.
	mats := []*bitmatrix.Matrix{identityMat(m), identityMat(m)}
	if got := Gauss(mats, m, 0); got != m-1 {
		t.Fatalf("Gauss(duplicated identity net) = %d, want %d", got, m-1)
	}
}

func TestGaussSchmidPirsicAgree(t *testing.T) {
	m := 4
	// A degenerate net: the second matrix duplicates the first row of the
	// first, forcing a nonzero t-value.
	a := identityMat(m)
	b := bitmatrix.New(m, m)
	for i := 0; i < m; i++ {
		b.Set(0, i, a.Get(0, i))
		if i > 0 {
			b.Set(i, i, 1)
		}
	}
	mats := []*bitmatrix.Matrix{a, b}
	g := Gauss(mats, m, 0)
	s := Schmid(mats, m, 0)
	p := PirsicSchmid(mats, m, 0)
	if g != s || s != p {
		t.Fatalf("Gauss=%d Schmid=%d PirsicSchmid=%d must agree", g, s, p)
	}
}

func TestPerLevelLengthAndFinalMatchesPirsicSchmid(t *testing.T) {
	m := 4
	mats := []*bitmatrix.Matrix{identityMat(m), identityMat(m)}
	levels := PerLevel(mats, m, 0)
	if len(levels) != m {
		t.Fatalf("PerLevel length = %d, want %d", len(levels), m)
	}
	if levels[m-1] != PirsicSchmid(mats, m, 0) {
		t.Fatalf("PerLevel last entry = %d, want PirsicSchmid = %d", levels[m-1], PirsicSchmid(mats, m, 0))
	}
}
