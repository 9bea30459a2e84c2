// Package mazegrid counts and enumerates the spanning trees of W×H grid
// graphs — equivalently, perfect mazes over a W×H grid of cells, where a
// perfect maze is a spanning tree of the grid's adjacency graph (every pair
// of cells connected by exactly one path, no loops, no isolated cells).
//
// Count(width, height) returns the exact number of such spanning trees via
// Kirchhoff's theorem and a doubling matrix recurrence (package fastcount).
// MazeByIndex(width, height, index) returns the specific spanning tree at
// rank index, out of that count, via an incremental Bareiss-elimination
// descent (package rankdescent). Both are exact, arbitrary-precision
// operations: no floating point and no approximation anywhere in the path
// from dimensions to result.
//
// Everything is organized under flat top-level subpackages:
//
//	bigint/        — arbitrary-precision integer cell
//	chain/         — union-find over grid cells
//	bandmatrix/    — symmetric band matrix storage
//	bareiss/       — fraction-free elimination, full and incremental
//	gridlaplacian/ — reduced Laplacian of a grid graph
//	fastcount/     — O(log H) spanning-tree count via matrix doubling
//	rankdescent/   — index-to-maze unranking
//	maze/          — maze type, validation, ASCII rendering
//	cmd/mazegrid/  — CLI entry point
//
// This package itself is a thin, deterministic public facade: the
// arithmetic and graph-theoretic work lives in the subpackages above;
// mazegrid only validates inputs and dispatches.
//
//	go get github.com/katalvlaran/mazegrid
package mazegrid
