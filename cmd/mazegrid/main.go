// SPDX-License-Identifier: MIT
//
// Command mazegrid counts and generates perfect mazes over W×H grids.
//
// Usage:
//
//	mazegrid count WIDTH HEIGHT
//	mazegrid index WIDTH HEIGHT INDEX
//
// count prints the exact number of spanning trees (mazes) of the grid,
// alongside a bit-savings comparison against a naive one-bit-per-edge
// encoding. index prints the ASCII rendering of the spanning tree at rank
// INDEX. Malformed invocations and out-of-range indices both exit 64
// (EX_USAGE, sysexits.h), matching original_source/src/main.c's dispatch.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

// exUsage is sysexits.h's EX_USAGE: the command was used incorrectly, or
// (per spec §7) the supplied index was out of range.
const exUsage = 64

func main() {
	log.SetFlags(0)
	log.SetPrefix("mazegrid: ")

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exUsage)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mazegrid",
		Short:         "Count and generate perfect mazes over W×H grids",
		SilenceUsage:  false,
		SilenceErrors: true,
	}
	root.AddCommand(newCountCmd())
	root.AddCommand(newIndexCmd())
	return root
}
