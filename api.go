// SPDX-License-Identifier: MIT
package mazegrid

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/bigint"
	"github.com/katalvlaran/mazegrid/fastcount"
	"github.com/katalvlaran/mazegrid/maze"
	"github.com/katalvlaran/mazegrid/rankdescent"
)

// Count returns the exact number of spanning trees of the width×height grid
// graph — equivalently, the number of distinct perfect mazes over that
// grid (spec §6's count(width,height)).
//
// Preconditions: width >= 1, height >= 1; violating either returns
// ErrInvalidDimension before any allocation.
func Count(width, height int) (*bigint.Int, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("mazegrid: Count(%d,%d): %w", width, height, ErrInvalidDimension)
	}
	return fastcount.Count(width, height), nil
}

// CountReport bundles a spanning-tree count with the bit-savings comparison
// original_source/src/main.c's print_count prints alongside it: how many
// bits the exact count takes versus a naive one-bit-per-edge encoding of
// every spanning tree in the grid.
type CountReport struct {
	Count        *bigint.Int
	Bits         int     // Count.BitLen()
	NaiveBits    int     // (width-1)*height + width*(height-1): one bit per grid edge
	PercentSaved float64 // 100 * (1 - Bits/NaiveBits), 0 when NaiveBits == 0
}

// CountWithReport is Count plus the bit-savings comparison of CountReport.
func CountWithReport(width, height int) (*CountReport, error) {
	count, err := Count(width, height)
	if err != nil {
		return nil, err
	}

	naiveBits := (width-1)*height + width*(height-1)
	bits := count.BitLen()

	report := &CountReport{
		Count:     count,
		Bits:      bits,
		NaiveBits: naiveBits,
	}
	if naiveBits > 0 {
		report.PercentSaved = 100 * (1 - float64(bits)/float64(naiveBits))
	}
	return report, nil
}

// MazeByIndex returns the spanning tree at rank index out of the
// count(width,height) spanning trees of the width×height grid graph (spec
// §6's maze_by_index).
//
// Preconditions: width >= 1, height >= 1, index >= 0. Returns
// ErrInvalidDimension or ErrOutOfRange (when index >= Count(width,height))
// rather than a maze in those cases.
func MazeByIndex(width, height int, index *bigint.Int) (*maze.Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("mazegrid: MazeByIndex(%d,%d): %w", width, height, ErrInvalidDimension)
	}
	if index.Sign() < 0 {
		return nil, fmt.Errorf("mazegrid: MazeByIndex(%d,%d): %w", width, height, ErrOutOfRange)
	}

	mz, err := rankdescent.Descend(width, height, index)
	if err != nil {
		return nil, fmt.Errorf("mazegrid: MazeByIndex(%d,%d,%s): %w", width, height, index.String(), err)
	}
	return mz, nil
}
