// SPDX-License-Identifier: MIT
package mazegrid_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mazegrid"
	"github.com/katalvlaran/mazegrid/bigint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleCount() {
	count, err := mazegrid.Count(3, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(count.String())
	// Output: 192
}

func ExampleMazeByIndex() {
	mz, err := mazegrid.MazeByIndex(2, 2, bigint.New().SetInt64(0))
	if err != nil {
		panic(err)
	}
	fmt.Println(mz.IsSpanningTree())
	// Output: true
}

func TestCountKnownSeeds(t *testing.T) {
	cases := []struct {
		w, h int
		want int64
	}{
		{1, 1, 1},
		{2, 2, 4},
		{3, 3, 192},
		{4, 4, 100352},
	}
	for _, tc := range cases {
		got, err := mazegrid.Count(tc.w, tc.h)
		require.NoError(t, err)
		assert.Equalf(t, 0, got.CmpInt64(tc.want), "Count(%d,%d)", tc.w, tc.h)
	}
}

func TestCountRejectsInvalidDimensions(t *testing.T) {
	_, err := mazegrid.Count(0, 3)
	assert.ErrorIs(t, err, mazegrid.ErrInvalidDimension)

	_, err = mazegrid.Count(3, -1)
	assert.ErrorIs(t, err, mazegrid.ErrInvalidDimension)
}

func TestMazeByIndexRejectsInvalidDimensions(t *testing.T) {
	_, err := mazegrid.MazeByIndex(0, 3, bigint.New())
	assert.ErrorIs(t, err, mazegrid.ErrInvalidDimension)
}

func TestMazeByIndexRejectsNegativeIndex(t *testing.T) {
	_, err := mazegrid.MazeByIndex(3, 3, bigint.New().SetInt64(-1))
	assert.ErrorIs(t, err, mazegrid.ErrOutOfRange)
}

func TestMazeByIndexOutOfRange(t *testing.T) {
	_, err := mazegrid.MazeByIndex(2, 2, bigint.New().SetInt64(4))
	assert.ErrorIs(t, err, mazegrid.ErrOutOfRange)
}

func TestCountWithReport(t *testing.T) {
	report, err := mazegrid.CountWithReport(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Count.CmpInt64(192))
	assert.Equal(t, 12, report.NaiveBits) // (3-1)*3 + 3*(3-1)
	assert.Greater(t, report.Bits, 0)
}
