// SPDX-License-Identifier: MIT
package rankdescent

import (
	"github.com/katalvlaran/mazegrid/bandmatrix"
	"github.com/katalvlaran/mazegrid/bareiss"
	"github.com/katalvlaran/mazegrid/bigint"
	"github.com/katalvlaran/mazegrid/chain"
	"github.com/katalvlaran/mazegrid/gridlaplacian"
	"github.com/katalvlaran/mazegrid/maze"
	"github.com/samber/lo"
)

// Descend produces the spanning tree at rank index, out of the
// count(width,height) spanning trees of the width×height grid graph
// (spec §4.6). Cells are visited from n-1 down to 1; each cell's north and
// west candidate edges (the edges to lower-indexed cells) are decided by
// tryEdge, which compares the number of spanning trees reachable without
// the edge against the remaining rank.
//
// Descend returns ErrOutOfRange if index >= count(width,height).
//
// Complexity: O(n·w²) worst case, matching a single incremental Bareiss
// Update per candidate edge.
func Descend(width, height int, index *bigint.Int) (*maze.Maze, error) {
	m := gridlaplacian.Build(width, height)
	n := m.N()
	bareiss.Rebuild(m)

	mz := maze.New(width, height)
	c := chain.New(n)
	idx := bigint.New().Set(index)

	for cell := n - 1; cell >= 1; cell-- {
		m.SetNR(cell + 1)

		if cell >= width {
			if tryEdge(m, idx, c, cell-width, cell) {
				mz.Link(cell-width, maze.South)
			}
		}
		if cell%width != 0 {
			if tryEdge(m, idx, c, cell-1, cell) {
				mz.Link(cell-1, maze.East)
			}
		}
	}

	if !idx.IsZero() {
		return nil, ErrOutOfRange
	}
	return mz, nil
}

// tryEdge decides whether the edge between fromCell and toCell belongs to
// the spanning tree at the current residual rank idx, mutating m's reduced
// Laplacian and idx in place. It reports whether the edge is present.
//
// fromCell and toCell must already resolve to distinct super-nodes in c's
// equivalence classes, or the edge is already implied by earlier decisions
// and is reported absent without consuming any rank.
func tryEdge(m *bandmatrix.Matrix, idx *bigint.Int, c *chain.Chain, fromCell, toCell int) bool {
	ni, nj := c.Root(toCell), c.Root(fromCell)
	if ni < nj {
		ni, nj = nj, ni
	}

	mij := m.Get(ni, nj)
	if mij.OV.Sign() >= 0 {
		// Already connected through earlier decisions: no -1 entry left
		// between these two super-nodes, so this edge can't be chosen.
		return false
	}

	mii := m.Get(ni, ni)
	mjj := m.Get(nj, nj)

	// Tentatively remove the edge: lower both diagonal entries by one and
	// raise the off-diagonal one by one, then see how many spanning trees remain.
	mii.OV.SubSmall(mii.OV, 1)
	mjj.OV.SubSmall(mjj.OV, 1)
	mij.OV.AddSmall(mij.OV, 1)
	bareiss.MarkChanged(m, nj, ni)
	bareiss.Update(m)
	countWithoutEdge := bareiss.Det(m)

	if idx.Cmp(countWithoutEdge) < 0 {
		// Edge excluded: the edits above already represent that state.
		return false
	}

	// Edge included: contract ni into nj by folding ni's row/column into
	// nj's and zeroing ni's, restricted to the band around both nodes.
	idx.Sub(idx, countWithoutEdge)

	w := m.W()
	start := lo.Max(0, nj-w+1)
	end := lo.Min(m.N(), ni+w)

	mjj.OV.Add(mjj.OV, mii.OV)
	mjj.OV.Add(mjj.OV, mij.OV)
	bareiss.MarkChanged(m, nj, ni)

	for k := start; k < end; k++ {
		nik := m.Get(ni, k).OV
		if k != ni && !nik.IsZero() {
			njk := m.Get(nj, k).OV
			njk.Add(njk, nik)
			bareiss.MarkChanged(m, nj, k)
		}
		var target int64
		if k == ni {
			target = 1
		}
		if nik.CmpInt64(target) != 0 {
			nik.SetInt64(target)
			bareiss.MarkChanged(m, ni, k)
		}
	}

	c.Link(ni, nj)
	return true
}
