// SPDX-License-Identifier: MIT
package rankdescent_test

import (
	"testing"

	"github.com/katalvlaran/mazegrid/bigint"
	"github.com/katalvlaran/mazegrid/fastcount"
	"github.com/katalvlaran/mazegrid/rankdescent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(n int64) *bigint.Int {
	return bigint.New().SetInt64(n)
}

// TestDescend2x2CoversAllFourSpanningTrees exercises spec §8 Scenario A:
// count(2,2) == 4, and every rank in [0,4) must produce a distinct spanning
// tree (injectivity, property 4) that is in fact a spanning tree
// (property 2) and symmetric (property 3).
func TestDescend2x2CoversAllFourSpanningTrees(t *testing.T) {
	count := fastcount.Count(2, 2)
	require.Equal(t, 0, count.CmpInt64(4))

	seen := make(map[string]bool)
	for i := int64(0); i < 4; i++ {
		mz, err := rankdescent.Descend(2, 2, indexOf(i))
		require.NoError(t, err)
		assert.True(t, mz.IsSpanningTree())
		assert.True(t, mz.IsSymmetric())

		key := string(mz.Conn)
		assert.Falsef(t, seen[key], "rank %d produced a maze already seen at a lower rank", i)
		seen[key] = true
	}
	assert.Len(t, seen, 4)
}

// TestDescend2x2OutOfRange exercises the OUT_OF_RANGE edge case: rank ==
// count(width,height) has no corresponding spanning tree.
func TestDescend2x2OutOfRange(t *testing.T) {
	_, err := rankdescent.Descend(2, 2, indexOf(4))
	assert.ErrorIs(t, err, rankdescent.ErrOutOfRange)
}

// TestDescend3x3CoversAllSpanningTrees exercises spec §8 Scenario B:
// count(3,3) == 192, exhaustively checked for injectivity and validity, and
// rank 192 (== count) is rejected as OUT_OF_RANGE.
func TestDescend3x3CoversAllSpanningTrees(t *testing.T) {
	count := fastcount.Count(3, 3)
	require.Equal(t, 0, count.CmpInt64(192))

	seen := make(map[string]bool)
	for i := int64(0); i < 192; i++ {
		mz, err := rankdescent.Descend(3, 3, indexOf(i))
		require.NoErrorf(t, err, "rank %d", i)
		require.True(t, mz.IsSpanningTree(), "rank %d did not produce a spanning tree", i)
		require.True(t, mz.IsSymmetric(), "rank %d produced asymmetric connectivity", i)

		key := string(mz.Conn)
		require.Falsef(t, seen[key], "rank %d collided with an earlier rank", i)
		seen[key] = true
	}
	assert.Len(t, seen, 192)

	_, err := rankdescent.Descend(3, 3, indexOf(192))
	assert.ErrorIs(t, err, rankdescent.ErrOutOfRange)
}

// TestDescend2x3ExhaustiveInjectivity checks a non-square grid (count(2,3)
// == 15, spec §8 known seed) for the same injectivity/validity properties.
func TestDescend2x3ExhaustiveInjectivity(t *testing.T) {
	count := fastcount.Count(2, 3)
	require.Equal(t, 0, count.CmpInt64(15))

	seen := make(map[string]bool)
	for i := int64(0); i < 15; i++ {
		mz, err := rankdescent.Descend(2, 3, indexOf(i))
		require.NoError(t, err)
		assert.True(t, mz.IsSpanningTree())
		key := string(mz.Conn)
		assert.False(t, seen[key])
		seen[key] = true
	}
}

// TestDescendSingleColumnIsTheOnlyLine covers the degenerate width==1 case:
// there is exactly one spanning tree (the single line of cells), at rank 0.
func TestDescendSingleColumnIsTheOnlyLine(t *testing.T) {
	mz, err := rankdescent.Descend(1, 5, indexOf(0))
	require.NoError(t, err)
	assert.True(t, mz.IsSpanningTree())
	assert.Equal(t, 4, mz.EdgeCount())

	_, err = rankdescent.Descend(1, 5, indexOf(1))
	assert.ErrorIs(t, err, rankdescent.ErrOutOfRange)
}
