// Package net implements Net (spec.md §3, §4.1): a digital net in base 2,
// represented as one m x m binary generating matrix per coordinate, plus
// the Sobol family's direction-number recurrence (Joe & Kuo, "Constructing
// Sobol Sequences with Better Two-Dimensional Projections", 2008) used to
// build those matrices. A precomputed primitive-polynomial/direction-number
// table (sobol_directions.go) stands in for the real, far larger Joe-Kuo
// tables an industrial implementation would ship; see SPEC_FULL.md.
package net

import (
	"fmt"

	"latbuilder-go/bitmatrix"
)

// Net is a digital net in base 2: s coordinates, each an m x m binary
// generating matrix (m = log2 of the point count for a non-embedded net, or
// the maximum level's resolution for an embedded one).
type Net struct {
	M    int
	S    int
	Mats []*bitmatrix.Matrix
}

// NumPoints returns 2^M.
func (n *Net) NumPoints() uint64 { return uint64(1) << uint(n.M) }

// directionNumbers computes v_1..v_m (each an m-bit integer, MSB-aligned)
// for one Sobol dimension via the Joe-Kuo recurrence:
//
//	v_i = m_i << (m-i)                                          for i<=d
//	v_i = XOR_{k=1}^{d-1} a_k v_{i-k}  XOR  v_{i-d} XOR (v_{i-d} >> d)   for i>d
//
// where a_1..a_{d-1} are the middle coefficients of the degree-d primitive
// polynomial (bit k of entry.Poly, for k=1..d-1; bit 0 and bit d are always
// 1 for a primitive polynomial and are not separate free coefficients).
func directionNumbers(entry SobolEntry, m int) []uint64 {
	d := entry.Degree
	v := make([]uint64, m+1) // 1-indexed; v[0] unused
	for i := 1; i <= d && i <= m; i++ {
		v[i] = entry.M[i-1] << uint(m-i)
	}
	for i := d + 1; i <= m; i++ {
		val := v[i-d] ^ (v[i-d] >> uint(d))
		for k := 1; k < d; k++ {
			if entry.Poly&(1<<uint(k)) != 0 {
				val ^= v[i-k]
			}
		}
		v[i] = val
	}
	return v[1:]
}

// sobolMatrix builds the m x m generating matrix for Sobol dimension dim
// (0-based, dim < MaxSobolDim: callers must bounds-check before calling).
// dim 0 is the van der Corput sequence (identity matrix); dim>=1 draws
// degree/poly/m from sobolTable[dim].
func sobolMatrix(dim, m int) *bitmatrix.Matrix {
	mat := bitmatrix.New(m, m)
	if dim == 0 {
		for r := 0; r < m; r++ {
			mat.Set(r, r, 1)
		}
		return mat
	}
	entry := sobolTable[dim]
	if entry.Degree == 1 {
		for r := 0; r < m; r++ {
			mat.Set(r, r, 1)
		}
		return mat
	}
	v := directionNumbers(entry, m)
	for c := 0; c < m; c++ {
		vc := v[c]
		for r := 0; r < m; r++ {
			bit := (vc >> uint(m-1-r)) & 1
			if bit == 1 {
				mat.Set(r, c, 1)
			}
		}
	}
	return mat
}

// CandidateMatrix builds the m x m generating matrix for Sobol table entry
// tableIndex (0-based, 0 is the identity/van der Corput matrix). A
// digital-net CBC search (spec.md §4.8 scenarios S3/S4) calls this once per
// pool entry per dimension, scoring each candidate before committing to one,
// exactly as net.NewSobol builds its own coordinates from the same table.
func CandidateMatrix(tableIndex, m int) (*bitmatrix.Matrix, error) {
	if tableIndex < 0 || tableIndex >= MaxSobolDim {
		return nil, fmt.Errorf("net: BadSize: table index %d out of range [0,%d)", tableIndex, MaxSobolDim)
	}
	return sobolMatrix(tableIndex, m), nil
}

// NewSobol builds an s-dimensional, m-bit-resolution Sobol net.
func NewSobol(s, m int) (*Net, error) {
	if s <= 0 || m <= 0 {
		return nil, fmt.Errorf("net: BadSize: dimension and resolution must be positive, got s=%d m=%d", s, m)
	}
	if s > MaxSobolDim {
		return nil, fmt.Errorf("net: BadSize: requested %d dimensions but only %d are tabulated", s, MaxSobolDim)
	}
	mats := make([]*bitmatrix.Matrix, s)
	for j := 0; j < s; j++ {
		mats[j] = sobolMatrix(j, m)
	}
	return &Net{M: m, S: s, Mats: mats}, nil
}

// PointBits returns the m binary digits (MSB first) of coordinate j at
// point index i (0 <= i < 2^M): C_j * digits(i), the standard digital-net
// point construction (spec.md §4.1).
func (n *Net) PointBits(j, i int) []uint8 {
	out := make([]uint8, n.M)
	for r := 0; r < n.M; r++ {
		var acc uint8
		for c := 0; c < n.M; c++ {
			if (i>>uint(n.M-1-c))&1 == 1 {
				acc ^= n.Mats[j].Get(r, c)
			}
		}
		out[r] = acc
	}
	return out
}

// Point returns the real-valued coordinates of point i across all s
// dimensions (bits interpreted as a base-2 fraction, MSB first).
func (n *Net) Point(i int) []float64 {
	out := make([]float64, n.S)
	for j := 0; j < n.S; j++ {
		bits := n.PointBits(j, i)
		var x float64
		scale := 0.5
		for _, b := range bits {
			if b == 1 {
				x += scale
			}
			scale /= 2
		}
		out[j] = x
	}
	return out
}

// Truncate returns a copy of the net restricted to its first d dimensions,
// used when evaluating a projection's sub-net (spec.md §4.5 t-value
// algorithms operate on exactly this kind of per-projection matrix list).
func (n *Net) Truncate(d int) *Net {
	return &Net{M: n.M, S: d, Mats: append([]*bitmatrix.Matrix(nil), n.Mats[:d]...)}
}
