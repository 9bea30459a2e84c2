// SPDX-License-Identifier: MIT
//
// Package maze defines the Maze edge-set output type (spec §3, §4.7): a
// W×H grid of cells, each carrying a 4-bit connectivity mask (N/E/S/W),
// whose induced edge set is guaranteed by rankdescent to be a spanning
// tree. It also supplies the ASCII rendering original_source/mazing.c's
// maze_print produced — outside the core per spec §4.7/§6, but a feature
// the distillation otherwise dropped entirely.
package maze
