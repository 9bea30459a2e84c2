// SPDX-License-Identifier: MIT
//
// Package bandmatrix implements the symmetric band matrix of spec §4.2:
// an N×N matrix with half-bandwidth w−1, storing only the lower band
// (row i holds columns [max(0,i−w+1)..i]) because the matrix is always
// symmetric. Each stored cell carries a pair of BigInt values — ov, the
// logical matrix entry, and bv, a scratch slot the bareiss package drives
// through Bareiss elimination.
//
// Reads outside the stored band return a shared, package-private zero
// cell that every out-of-band lookup on a given Matrix aliases; callers
// must never write through it (mirroring original_source/mazing.c's
// single matrix_t.zero member).
package bandmatrix
