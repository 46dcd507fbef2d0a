// Package tvalue implements the t-value algorithms of spec.md §4.5: Gauss
// (progressive row reduction), Schmid (Gray-code XOR enumeration), and
// PirsicSchmid (Schmid refined to yield per-level t-values in one pass).
// All three must agree on every input (spec.md §8 property 3).
//
// Composition enumeration (k_1+...+k_d = k) is a direct recursive walk
// rather than a true one-row-swap-at-a-time Gray code: the spec names Gray
// code ordering as an efficiency device for reusing state between adjacent
// compositions, but since this package recomputes each composition's rank
// independently (see rowreduce's documented AddColumn trade-off), the
// specific enumeration order does not affect correctness -- only that Gauss,
// Schmid and PirsicSchmid visit the same composition set, which they do.
// The *subset* enumeration inside Schmid/PirsicSchmid, by contrast, is a
// genuine Gray code (spec.md "XOR rows in Gray-code order"): each step
// differs from the last by exactly one row toggling in or out of the
// running XOR accumulator.
package tvalue

import (
	"latbuilder-go/bitmatrix"
	"latbuilder-go/rowreduce"
)

func words(n int) int { return (n + 63) / 64 }

func isZero(v []uint64, width int) bool {
	return bitmatrix.RowIsZero(v, width)
}

func xorInto(dst, src []uint64) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func trailingZeros(x int) int {
	n := 0
	for x&1 == 0 {
		x >>= 1
		n++
	}
	return n
}

// topRow returns row `row` (0-based) of matrix mat as a word-packed bit
// vector truncated to its first width columns.
func topRow(mat *bitmatrix.Matrix, row, width int) []uint64 {
	out := make([]uint64, words(width))
	for c := 0; c < width; c++ {
		if mat.Get(row, c) == 1 {
			out[c/64] |= 1 << uint(c%64)
		}
	}
	return out
}

// compositions returns every d-tuple of non-negative integers summing to k
// with each entry <= maxPart.
func compositions(k, d, maxPart int) [][]int {
	var out [][]int
	cur := make([]int, d)
	var rec func(pos, remaining int)
	rec = func(pos, remaining int) {
		if pos == d-1 {
			if remaining <= maxPart {
				cur[pos] = remaining
				out = append(out, append([]int(nil), cur...))
			}
			return
		}
		top := remaining
		if top > maxPart {
			top = maxPart
		}
		for v := 0; v <= top; v++ {
			cur[pos] = v
			rec(pos+1, remaining-v)
		}
	}
	rec(0, k)
	return out
}

// rowsForComposition collects the top comp[j] rows of each matrix mats[j],
// each truncated to width columns.
func rowsForComposition(mats []*bitmatrix.Matrix, comp []int, width int) [][]uint64 {
	var rows [][]uint64
	for j, kj := range comp {
		for r := 0; r < kj; r++ {
			rows = append(rows, topRow(mats[j], r, width))
		}
	}
	return rows
}

// Gauss computes the (unilevel) t-value of a d-matrix digital net of size
// m x m via progressive row reduction: m minus the largest k such that every
// k-composition's stacked top rows form a full-rank k x m matrix.
// maxSubProj is a lower bound on the t-value known from a prior pass over
// subprojections (spec.md §4.5 early termination): only compositions with
// k <= m-maxSubProj are examined, and if all of them are full rank the
// result is maxSubProj itself.
func Gauss(mats []*bitmatrix.Matrix, m int, maxSubProj int) int {
	d := len(mats)
	for k := 1; k <= m-maxSubProj; k++ {
		for _, comp := range compositions(k, d, m) {
			red := rowreduce.New(m)
			for _, row := range rowsForComposition(mats, comp, m) {
				red.AddRow(row)
			}
			if red.Rank() < k {
				return m - k + 1
			}
		}
	}
	return maxSubProj
}

// graySubsetXOR walks the 2^k-1 non-empty subsets of rows in Gray-code
// order, invoking visit(acc) after XOR-ing in each newly toggled row; acc is
// reused across calls (do not retain it).
func graySubsetXOR(rows [][]uint64, width int, visit func(acc []uint64)) {
	k := len(rows)
	acc := make([]uint64, words(width))
	prevMask := 0
	for g := 1; g < (1 << uint(k)); g++ {
		maskG := g ^ (g >> 1)
		diff := maskG ^ prevMask
		bit := trailingZeros(diff)
		xorInto(acc, rows[bit])
		visit(acc)
		prevMask = maskG
	}
}

// independent reports whether rows (over `width` columns) are linearly
// independent over GF(2): true iff no non-empty subset XORs to zero.
func independent(rows [][]uint64, width int) bool {
	if len(rows) == 0 {
		return true
	}
	ok := true
	graySubsetXOR(rows, width, func(acc []uint64) {
		if ok && isZero(acc, width) {
			ok = false
		}
	})
	return ok
}

// Schmid computes the t-value via the reference/cross-check method: for
// each composition, O(2^k) dependency testing by Gray-code XOR enumeration,
// no dynamic linear algebra. maxSubProj bounds the search as in Gauss.
func Schmid(mats []*bitmatrix.Matrix, m int, maxSubProj int) int {
	d := len(mats)
	for k := 1; k <= m-maxSubProj; k++ {
		for _, comp := range compositions(k, d, m) {
			rows := rowsForComposition(mats, comp, m)
			if !independent(rows, m) {
				return m - k + 1
			}
		}
	}
	return maxSubProj
}

// PirsicSchmid refines Schmid so that, inside the same Gray-code loop, the
// first column-prefix length at which the running XOR becomes zero is
// tracked, yielding t-values for every level (column prefix) of a
// multilevel net in one pass per composition. As with Gauss, the result is
// never below the lower bound maxSubProj.
func PirsicSchmid(mats []*bitmatrix.Matrix, m int, maxSubProj int) int {
	per := PerLevel(mats, m, maxSubProj)
	if t := per[len(per)-1]; t > maxSubProj {
		return t
	}
	return maxSubProj
}

// PerLevel returns the PirsicSchmid per-level t-values: levels[l-1] is the
// t-value of the net truncated to its first l columns, for l = 1..m. Every
// composition size is examined, since a bound on the full net's t-value
// does not bound its lower levels; maxSubProj does not change the result.
func PerLevel(mats []*bitmatrix.Matrix, m int, maxSubProj int) []int {
	d := len(mats)
	tAtLevel := make([]int, m+1) // tAtLevel[l], l=1..m used
	for l := range tAtLevel {
		tAtLevel[l] = -1 // undetermined
	}
	for k := 1; k <= m; k++ {
		for _, comp := range compositions(k, d, m) {
			rows := rowsForComposition(mats, comp, m)
			if len(rows) == 0 {
				continue
			}
			indepAtLevel := make([]bool, m+1)
			for l := 1; l <= m; l++ {
				indepAtLevel[l] = true
			}
			graySubsetXOR(rows, m, func(acc []uint64) {
				for l := 1; l <= m; l++ {
					if indepAtLevel[l] && isZero(acc, l) {
						indepAtLevel[l] = false
					}
				}
			})
			for l := 1; l <= m; l++ {
				if !indepAtLevel[l] && tAtLevel[l] < 0 {
					tAtLevel[l] = l - k + 1
				}
			}
		}
	}
	out := make([]int, m)
	for l := 1; l <= m; l++ {
		if tAtLevel[l] < 0 {
			out[l-1] = 0
		} else {
			out[l-1] = tAtLevel[l]
		}
	}
	return out
}
