// SPDX-License-Identifier: MIT
package bandmatrix

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/bigint"
	"github.com/samber/lo"
)

// Cell holds one in-band entry: OV is the logical matrix value, BV is the
// Bareiss scratch value the bareiss package mutates in place.
type Cell struct {
	OV *bigint.Int
	BV *bigint.Int
}

func newCell() Cell {
	return Cell{OV: bigint.New(), BV: bigint.New()}
}

// row stores one matrix row's half-band: cells[0] is column `offset`,
// cells[len(cells)-1] is the diagonal.
type row struct {
	offset int
	cells  []Cell
}

// Matrix is a symmetric band matrix of N rows/columns with half-bandwidth
// w−1, following the layout and field names of spec §4.2/§4.3.
type Matrix struct {
	n          int // allocated rows
	w          int // entries per full row, i.e. 1 + half-bandwidth
	nr         int // active row prefix used by determinant operations
	detStart   int // first pivot considered by Bareiss
	minChanged int // smallest row index whose ov changed since the last rebuild; n means "nothing pending"
	zero       Cell
	rows       []row
}

// New builds an n×n all-zero symmetric band matrix with row length w
// (half-bandwidth w−1) and the given det_start (spec §4.2 "init(n,w,det_start)").
//
// Complexity: O(n·w) time and memory.
func New(n, w, detStart int) *Matrix {
	m := &Matrix{
		n:          n,
		w:          w,
		nr:         n,
		detStart:   detStart,
		minChanged: n,
		zero:       newCell(),
		rows:       make([]row, n),
	}
	for i := 0; i < n; i++ {
		rowLen := lo.Min(i+1, w)
		cells := make([]Cell, rowLen)
		for j := range cells {
			cells[j] = newCell()
		}
		m.rows[i] = row{offset: i + 1 - rowLen, cells: cells}
	}
	return m
}

// N returns the number of allocated rows/columns.
func (m *Matrix) N() int { return m.n }

// W returns the row length (1 + half-bandwidth).
func (m *Matrix) W() int { return m.w }

// NR returns the currently active row prefix.
func (m *Matrix) NR() int { return m.nr }

// SetNR sets the active row prefix used by determinant operations.
func (m *Matrix) SetNR(nr int) { m.nr = nr }

// DetStart returns the first pivot index considered during elimination.
func (m *Matrix) DetStart() int { return m.detStart }

// MinChanged returns the smallest row index whose ov has been modified
// since the last full rebuild; n means nothing is pending.
func (m *Matrix) MinChanged() int { return m.minChanged }

// MarkChangedFrom lowers MinChanged to min(MinChanged, i), recording that
// row/column i (and everything at or above it) may need reconsideration.
func (m *Matrix) MarkChangedFrom(i int) {
	if i < m.minChanged {
		m.minChanged = i
	}
}

// ResetMinChanged marks nothing as pending (spec: "Sets min_changed <- n").
func (m *Matrix) ResetMinChanged() {
	m.minChanged = m.n
}

// RowOffset returns offset(i): the first stored column of row i.
func (m *Matrix) RowOffset(i int) int {
	return m.rows[i].offset
}

// Row returns row i's stored column offset and its cells, for callers
// (the bareiss package) that need to sweep an entire stored row rather
// than address individual entries.
func (m *Matrix) Row(i int) (offset int, cells []Cell) {
	r := &m.rows[i]
	return r.offset, r.cells
}

// InBand reports whether (i,j) falls within the stored band.
func (m *Matrix) InBand(i, j int) bool {
	if i < j {
		i, j = j, i
	}
	return j >= m.rows[i].offset
}

// Get returns a handle to the (i,j) entry, transparently reordering for
// symmetric access (callers need not ensure i >= j) and resolving
// out-of-band reads to the shared, read-only zero cell.
//
// Complexity: O(1).
func (m *Matrix) Get(i, j int) *Cell {
	if i < j {
		i, j = j, i
	}
	r := &m.rows[i]
	if j < r.offset {
		return &m.zero
	}
	return &r.cells[j-r.offset]
}

// String renders the ov values of the active nr×nr submatrix, for debugging.
func (m *Matrix) String() string {
	s := ""
	for i := 0; i < m.nr; i++ {
		for j := 0; j <= i; j++ {
			s += fmt.Sprintf("%s ", m.Get(i, j).OV.String())
		}
		s += "\n"
	}
	return s
}
