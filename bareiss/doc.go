// SPDX-License-Identifier: MIT
//
// Package bareiss implements fraction-free Gaussian elimination (the
// Bareiss algorithm), specialised to the band structure of a
// bandmatrix.Matrix, in both a from-scratch and an incremental-update
// form (spec §4.3).
//
// Rebuild runs the full band-aware sweep from det_start through nr−1.
// MarkChanged records that an (i,j) entry of the logical matrix may have
// changed. Update reconsiders only the pivots and rows whose Bareiss state
// could have been affected, exploiting the fact that rank-descent's edits
// touch only a shrinking suffix of rows — the entire reason this package
// exists separately from a plain "recompute the determinant" helper.
//
// This is a direct, line-for-line Go port of original_source/mazing.c's
// det_init/det_changed/det_update.
package bareiss
