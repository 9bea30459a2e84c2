// SPDX-License-Identifier: MIT
//
// Package fastcount computes the exact spanning-tree count of a W×H grid
// graph (spec §4.5) without ever materialising the full W·H×W·H Laplacian.
// It works over dense, symmetric (W−1)×(W−1) BigInt matrices, stored in a
// triangular arena (T(n)=n(n+1)/2 cells, indexed by tri(i)+j for i>=j), and
// scans the bits of H from its most significant set bit down to the LSB,
// applying a doubling recurrence that costs O(log H) matrix multiplies
// instead of O(H).
//
// This is a direct, line-for-line Go port of original_source/src/fmc.c
// ("Fast Maze Counter"): tri, msb, fmc_matrix_mul, fmc_matrix_mul_mobfi,
// dmf, and the dense (non-banded) Bareiss pass that extracts the final
// determinant.
package fastcount
