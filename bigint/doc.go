// SPDX-License-Identifier: MIT
//
// Package bigint wraps math/big.Int behind the small, fixed operation set
// that the Bareiss elimination kernel needs: zero, set-from-small-int,
// copy-assign, add, sub, mul, fused multiply-add/subtract, exact division,
// and compare. No inexact division is ever performed — DivExact panics if
// the remainder is non-zero, since that indicates a logic bug upstream
// (see mazegrid's contract-violation policy).
//
// Cells are mutable value holders rather than immutable math/big.Int
// values: every operation writes its result into the receiver, so callers
// can reuse a destination across an inner loop without allocating (the
// Bareiss sweep calls Mul/SubMul/DivExact once per (i,j,k) triple, and a
// fresh allocation there would dominate runtime on large grids).
package bigint
