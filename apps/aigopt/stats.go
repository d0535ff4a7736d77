//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"

	"github.com/markkurossi/tabulate"
	"github.com/spf13/cobra"

	"github.com/markkurossi/aig"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats file...",
		Short: "Print circuit statistics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tab := tabulate.New(tabulate.UnicodeLight)
			tab.Header("File").SetAlign(tabulate.ML)
			tab.Header("Inputs").SetAlign(tabulate.MR)
			tab.Header("Outputs").SetAlign(tabulate.MR)
			tab.Header("Gates").SetAlign(tabulate.MR)
			tab.Header("Depth").SetAlign(tabulate.MR)

			for _, file := range args {
				g, err := readGraph(file)
				if err != nil {
					return err
				}
				d := aig.NewDepth(g)
				s := g.Stats()

				row := tab.Row()
				row.Column(file)
				row.Column(fmt.Sprintf("%d", s.Inputs))
				row.Column(fmt.Sprintf("%d", s.Outputs))
				row.Column(fmt.Sprintf("%d", s.Gates))
				row.Column(fmt.Sprintf("%d", d.Depth()))
			}
			tab.Print(os.Stdout)
			return nil
		},
	}
}
