// SPDX-License-Identifier: MIT
package bareiss

import (
	"github.com/katalvlaran/mazegrid/bandmatrix"
	"github.com/katalvlaran/mazegrid/bigint"
	"github.com/samber/lo"
)

// Rebuild copies ov to bv for every stored cell of the active nr×nr
// submatrix, then runs the band-aware Bareiss sweep from m.DetStart() to
// nr−1. After it returns, Det(m) holds det(ov[det_start..nr, det_start..nr]).
//
// Complexity: O(nr·w²), where w = m.W().
func Rebuild(m *bandmatrix.Matrix) {
	nr := m.NR()
	for i := 0; i < nr; i++ {
		_, cells := m.Row(i)
		for idx := range cells {
			cells[idx].BV.Set(cells[idx].OV)
		}
	}

	w := m.W()
	var mkkPrev *bandmatrix.Cell
	for k := m.DetStart(); k < nr-1; k++ {
		mkk := m.Get(k, k)

		iUpper := lo.Min(nr, k+w)
		for i := k + 1; i < iUpper; i++ {
			jStart := lo.Max(k+1, m.RowOffset(i))
			mik := m.Get(i, k)
			for j := jStart; j <= i; j++ {
				mjk := m.Get(j, k)
				mij := m.Get(i, j)
				mij.BV.Mul(mij.BV, mkk.BV)
				mij.BV.SubMul(mik.BV, mjk.BV)
				if mkkPrev != nil {
					mij.BV.DivExact(mij.BV, mkkPrev.BV)
				}
			}
		}

		// Boundary row: i = k+w sits one step outside the band relative
		// to pivot k (its (i,k) entry is exactly zero, unstored), so it
		// only needs the fraction-free rescale, never the subtraction —
		// rows further out are picked up by later pivots instead.
		if i := k + w; i < nr {
			jStart := lo.Max(k+1, m.RowOffset(i))
			for j := jStart; j <= i; j++ {
				mij := m.Get(i, j)
				mij.BV.Mul(mij.BV, mkk.BV)
			}
		}

		mkkPrev = mkk
	}
	m.ResetMinChanged()
}

// MarkChanged records that ov(i,j) (and, by symmetry, ov(j,i)) may have
// changed since the last Rebuild/Update.
func MarkChanged(m *bandmatrix.Matrix, i, j int) {
	m.MarkChangedFrom(lo.Min(i, j))
}

// Update performs the minimal recomputation needed to restore the Bareiss
// invariant for the current nr and any ov edits recorded via MarkChanged
// since the last Rebuild/Update. It reconsiders only pivots
// k >= max(det_start, min_changed-w) and rows/columns >= min_changed,
// which is what makes rank-descent's per-edge cost sublinear in the grid
// size instead of re-running a full O(nr·w²) rebuild for every edge.
func Update(m *bandmatrix.Matrix) {
	minChanged := m.MinChanged()
	nr := m.NR()
	w := m.W()

	// Restore bv = ov for every cell whose row and column are both >= minChanged.
	for i := minChanged; i < nr; i++ {
		for j := minChanged; j <= i; j++ {
			cell := m.Get(i, j)
			cell.BV.Set(cell.OV)
		}
	}

	var mkkPrev *bandmatrix.Cell
	if minChanged-w >= m.DetStart() {
		k := minChanged - w
		mkk := m.Get(k, k)
		for i := minChanged; i < nr; i++ {
			for j := minChanged; j <= i; j++ {
				cell := m.Get(i, j)
				cell.BV.Mul(cell.BV, mkk.BV)
			}
		}
		mkkPrev = mkk
	}

	for k := lo.Max(m.DetStart(), minChanged-w); k < nr-1; k++ {
		mkk := m.Get(k, k)
		for i := lo.Max(minChanged, k+1); i < nr; i++ {
			mik := m.Get(i, k)
			for j := lo.Max(minChanged, k+1); j <= i; j++ {
				mjk := m.Get(j, k)
				mij := m.Get(i, j)
				mij.BV.Mul(mij.BV, mkk.BV)
				mij.BV.SubMul(mik.BV, mjk.BV)
				if mkkPrev != nil {
					mij.BV.DivExact(mij.BV, mkkPrev.BV)
				}
			}
		}
		mkkPrev = mkk
	}

	m.ResetMinChanged()
}

// Det returns the determinant computed by the most recent Rebuild/Update:
// bv(nr-1, nr-1), the determinant of the active submatrix (spec §4.3).
func Det(m *bandmatrix.Matrix) *bigint.Int {
	return m.Get(m.NR()-1, m.NR()-1).BV
}
