// SPDX-License-Identifier: MIT
//
// Package chain implements a union-find (disjoint-set) structure over an
// initial segment of the natural numbers [0,n), with the specific
// "min-root" semantics rank-descent unranking needs: the representative of
// every equivalence class is always its smallest member.
//
// This mirrors the nameless data structure in original_source/mazing.c
// ("Is there a standard name for this data structure? I'm calling it a
// chain."), restructured with iterative path compression (spec §9 warns the
// recursive C version would overflow the stack once W·H reaches the
// hundreds of thousands).
package chain
