// SPDX-License-Identifier: MIT
package fastcount

import "github.com/katalvlaran/mazegrid/bigint"

// dmf ("determinant of the matrix factor") computes the determinant of the
// block matrix representing the planar dual of the width×height grid,
// before that determinant has itself been extracted by Bareiss elimination
// — i.e. it returns the matrix b such that Count's caller still needs to
// run bareissDense(b) and read off b.at(n-1,n-1).
//
// The block-tridiagonal Laplacian's determinant satisfies a Chebyshev-like
// recurrence; scanning height's bits from MSB to LSB and squaring at each
// step ("doubling") computes height steps of that recurrence in O(log
// height) matrix multiplies instead of O(height).
func dmf(width, height int) *arena {
	n := width - 1

	a := newArena(n)
	b := newArena(n)
	c := newArena(n)
	newA := newArena(n)
	newB := newArena(n)
	temp := newArena(n)

	for i := 0; i < n; i++ {
		a.at(i, i).SetInt64(-1)
		c.at(i, i).SetInt64(1)
	}

	for bit := msb(height); bit > 0; bit >>= 1 {
		// Square step: a, b := b²-a², bc-ab.
		mul(newA, b, b)
		mul(temp, a, a)
		newA.sub(temp)

		mul(newB, b, c)
		mul(temp, a, b)
		newB.sub(temp)

		a, newA = newA, a
		b, newB = newB, b

		if height&bit != 0 {
			// Advance-by-one step: a, b := b, bM-a.
			newA.setFrom(b)
			mulMobfi(newB, b)
			newB.sub(a)
			a, newA = newA, a
			b, newB = newB, b
		}

		// c := bM - a, always.
		mulMobfi(c, b)
		c.sub(a)
	}

	return b
}

// Count returns the exact number of spanning trees (mazes) of a
// width×height grid graph, computed without ever building the full
// width*height Laplacian (spec §4.5). Preconditions: width,height >= 1.
//
// Complexity: O(log(height) · width³) time, O(width²) memory.
func Count(width, height int) *bigint.Int {
	if width == 1 {
		// The (width-1)x(width-1) = 0x0 matrix's determinant is 1 by the
		// standard empty-matrix convention: a 1-wide grid is already a
		// tree (a single path of `height` cells), so it has exactly one
		// spanning tree, matching the known seed count(1,H)=1.
		return bigint.New().SetInt64(1)
	}

	m := dmf(width, height)
	bareissDense(m)
	return m.at(m.n-1, m.n-1)
}
