// SPDX-License-Identifier: MIT
package fastcount

import "github.com/katalvlaran/mazegrid/bigint"

// tri is the nth triangular number: the count of cells needed to store the
// lower triangle (including the diagonal) of an n×n symmetric matrix.
func tri(n int) int {
	return n * (n + 1) / 2
}

// msb returns the largest power of two less than or equal to n (0 if n<=0).
func msb(n int) int {
	p := 1
	for p <= n {
		p <<= 1
	}
	return p >> 1
}

// arena is a dense, symmetric n×n matrix of BigInt cells, stored as a flat
// triangular array: the (i,j)th entry for i>=j lives at index tri(i)+j.
type arena struct {
	n     int
	cells []*bigint.Int
}

// newArena allocates an n×n all-zero symmetric matrix.
func newArena(n int) *arena {
	cells := make([]*bigint.Int, tri(n))
	for i := range cells {
		cells[i] = bigint.New()
	}
	return &arena{n: n, cells: cells}
}

// at returns the (i,j)th entry, transparently reordering so callers need
// not ensure i >= j.
func (a *arena) at(i, j int) *bigint.Int {
	if i < j {
		i, j = j, i
	}
	return a.cells[tri(i)+j]
}

// setFrom copies src's entries into a (a := src).
func (a *arena) setFrom(src *arena) {
	for i := range a.cells {
		a.cells[i].Set(src.cells[i])
	}
}

// sub subtracts other from a in place (a := a - other).
func (a *arena) sub(other *arena) {
	for i := range a.cells {
		a.cells[i].Sub(a.cells[i], other.cells[i])
	}
}

// mul sets dest := ma * mb via the standard triple loop, accumulating each
// cell with a fused multiply-add so no intermediate products are
// separately allocated.
func mul(dest, ma, mb *arena) {
	n := dest.n
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			cell := dest.at(i, j)
			cell.SetZero()
			for k := 0; k < n; k++ {
				cell.AddMul(ma.at(i, k), mb.at(k, j))
			}
		}
	}
}

// mulMobfi sets dest := src * M, where M is the tridiagonal matrix with 4
// on the main diagonal and -1 immediately above/below ("minus-one-bordered
// four-times-identity"). Computed directly rather than via mul, since M's
// structure lets each cell be written as a three-term combination of src's
// neighbouring entries. dest must not alias src.
func mulMobfi(dest, src *arena) {
	n := dest.n
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			cell := dest.at(i, j)
			cell.SetInt64(4)
			cell.Mul(cell, src.at(i, j))
			if i > 0 {
				cell.Sub(cell, src.at(i-1, j))
			}
			if i < n-1 {
				cell.Sub(cell, src.at(i+1, j))
			}
		}
	}
}

// bareissDense runs unbanded fraction-free Gaussian elimination over the
// full n×n arena, leaving the determinant in at(n-1, n-1). Used only on
// the small (W−1)×(W−1) matrices fastcount produces, where the band
// optimisation bareiss.Rebuild relies on would not pay for itself.
func bareissDense(m *arena) {
	n := m.n
	var mkkPrev *bigint.Int
	for k := 0; k < n; k++ {
		mkk := m.at(k, k)
		for i := k + 1; i < n; i++ {
			mik := m.at(i, k)
			for j := k + 1; j <= i; j++ {
				mjk := m.at(j, k)
				mij := m.at(i, j)
				mij.Mul(mij, mkk)
				mij.SubMul(mik, mjk)
				if mkkPrev != nil {
					mij.DivExact(mij, mkkPrev)
				}
			}
		}
		mkkPrev = mkk
	}
}
