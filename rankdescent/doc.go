// SPDX-License-Identifier: MIT
//
// Package rankdescent implements the index-to-maze unranking algorithm
// (spec §4.6): given width, height, and a rank i in [0, count(width,height)),
// it produces the specific spanning tree at that rank. Cells are visited
// from n-1 down to 1; for each of a cell's two "earlier" candidate edges
// (north, west), tryEdge asks "how many spanning trees remain if this edge
// is excluded?" by mutating the Laplacian's reduced submatrix and reading
// off the incrementally-maintained Bareiss determinant. Comparing that
// count against the remaining rank decides whether the edge is present.
//
// This is a direct, line-for-line Go port of original_source/mazing.c's
// try_edge/maze_by_index, restructured into the numbered-step doc-comment
// style lvlath/prim_kruskal uses for its own decision-per-edge MST loop.
package rankdescent
