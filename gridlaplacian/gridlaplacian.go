// SPDX-License-Identifier: MIT
package gridlaplacian

import (
	"github.com/katalvlaran/mazegrid/bandmatrix"
)

// Build constructs the reduced Laplacian of the width×height grid graph,
// using row-major cell indexing (cell i is at row i/width, column i%width).
// The returned matrix has n = width*height, w = width+1, det_start = 1.
//
// Complexity: O(width*height) time and memory.
func Build(width, height int) *bandmatrix.Matrix {
	n := width * height
	m := bandmatrix.New(n, width+1, 1)

	for i := 0; i < n; i++ {
		r := i / width
		c := i % width
		firstRow := r == 0
		lastRow := r == height-1
		firstCol := c == 0
		lastCol := c == width-1

		degree := 0
		if !firstRow {
			degree++
		}
		if !lastRow {
			degree++
		}
		if !firstCol {
			degree++
		}
		if !lastCol {
			degree++
		}

		m.Get(i, i).OV.SetInt64(int64(degree))
		if !firstRow {
			m.Get(i, i-width).OV.SetInt64(-1)
		}
		if !firstCol {
			m.Get(i, i-1).OV.SetInt64(-1)
		}
	}

	return m
}
