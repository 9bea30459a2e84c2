// SPDX-License-Identifier: MIT
//
// Package gridlaplacian constructs the reduced Laplacian of a W×H grid
// graph (spec §4.4) as a bandmatrix.Matrix: diagonal entries hold each
// cell's degree (2 corners, 3 edges, 4 interior), off-diagonal entries hold
// -1 for horizontal and vertical grid adjacency, and det_start=1 excludes
// the first row/column so the resulting submatrix determinant is the
// spanning-tree count by Kirchhoff's theorem.
//
// Grounded on original_source/mazing.c's grid_matrix, generalised the way
// gridgraph.NewGridGraph precomputes neighbor structure from width/height
// rather than hand-rolling bounds checks inline.
package gridlaplacian
