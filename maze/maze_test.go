// SPDX-License-Identifier: MIT
package maze_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mazegrid/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildLine(width, height int) *maze.Maze {
	// A simple comb-shaped spanning tree: East links across each row,
	// joined by South links down the last column.
	m := maze.New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width-1; x++ {
			m.Link(x+y*width, maze.East)
		}
		if y < height-1 {
			m.Link((width-1)+y*width, maze.South)
		}
	}
	return m
}

func TestLinkIsSymmetric(t *testing.T) {
	m := buildLine(3, 3)
	assert.True(t, m.IsSymmetric())
}

func TestLineIsSpanningTree(t *testing.T) {
	m := buildLine(3, 3)
	assert.Equal(t, 8, m.EdgeCount())
	assert.True(t, m.IsSpanningTree())
}

func TestDisconnectedMazeIsNotSpanningTree(t *testing.T) {
	m := maze.New(2, 2)
	m.Link(0, maze.East) // only one edge; 4 cells need 3
	assert.False(t, m.IsSpanningTree())
}

func TestRenderProducesBoxArt(t *testing.T) {
	m := buildLine(2, 2)
	var sb strings.Builder
	require.NoError(t, m.Render(&sb))
	out := sb.String()
	assert.Contains(t, out, "+")
	assert.Contains(t, out, "|")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// One wall row + one opening row per grid row, plus the final bottom border.
	assert.Len(t, lines, m.Height*2+1)
}

func TestLinkPanicsOnBadDirection(t *testing.T) {
	m := maze.New(2, 2)
	assert.Panics(t, func() {
		m.Link(0, maze.North)
	})
}
