//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/markkurossi/aig"
)

func newDotCmd() *cobra.Command {
	var output string
	var levels bool

	cmd := &cobra.Command{
		Use:   "dot file",
		Short: "Print circuit as graphviz dot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(args[0])
			if err != nil {
				return err
			}
			var d *aig.Depth
			if levels {
				d = aig.NewDepth(g)
			}
			out := os.Stdout
			if len(output) > 0 {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			g.Dot(out, d)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"write the dot output to `file`")
	cmd.Flags().BoolVar(&levels, "levels", false,
		"label nodes with their depth levels")
	return cmd
}
