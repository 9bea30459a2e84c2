// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/mazegrid"
	"github.com/katalvlaran/mazegrid/bigint"
	"github.com/spf13/cobra"
)

func newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index WIDTH HEIGHT INDEX",
		Short: "Print the ASCII rendering of the spanning tree at rank INDEX",
		Args:  cobra.ExactArgs(3),
		RunE:  runIndex,
	}
}

func runIndex(cmd *cobra.Command, args []string) error {
	width, height, err := parseDimensions(args[0], args[1])
	if err != nil {
		log.Print(err)
		return err
	}

	index, err := parseIndex(args[2])
	if err != nil {
		log.Print(err)
		return err
	}

	mz, err := mazegrid.MazeByIndex(width, height, index)
	if err != nil {
		log.Print(err)
		return err
	}

	return mz.Render(cmd.OutOrStdout())
}

func parseIndex(arg string) (*bigint.Int, error) {
	v := new(bigint.Int)
	if _, ok := v.SetString(arg); !ok {
		return nil, fmt.Errorf("invalid index %q: not a base-10 integer", arg)
	}
	return v, nil
}
