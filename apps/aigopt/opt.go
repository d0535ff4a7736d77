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

	"github.com/markkurossi/aig/rewrite"
)

func newOptCmd() *cobra.Command {
	var output string
	var configFile string
	var noAssoc, noDistrib, noDistrib3L bool
	var maxPasses int

	cmd := &cobra.Command{
		Use:   "opt file",
		Short: "Optimize circuit depth with algebraic rewriting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(args[0])
			if err != nil {
				return err
			}
			params, err := loadParams(configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-passes") {
				params.MaxPasses = maxPasses
			}
			if noAssoc {
				params.Associativity = false
			}
			if noDistrib {
				params.Distributivity = false
			}
			if noDistrib3L {
				params.Distributivity3L = false
			}

			gatesBefore := g.NumGates()
			result, err := rewrite.RewriteGraph(g, params)
			if err != nil {
				return err
			}

			tab := tabulate.New(tabulate.UnicodeLight)
			tab.Header("Metric").SetAlign(tabulate.ML)
			tab.Header("Before").SetAlign(tabulate.MR)
			tab.Header("After").SetAlign(tabulate.MR)

			row := tab.Row()
			row.Column("Depth")
			row.Column(fmt.Sprintf("%d", result.DepthBefore))
			row.Column(fmt.Sprintf("%d", result.DepthAfter))

			row = tab.Row()
			row.Column("Gates")
			row.Column(fmt.Sprintf("%d", gatesBefore))
			row.Column(fmt.Sprintf("%d", g.NumGates()))

			tab.Print(os.Stdout)

			fmt.Printf("%d rewrites in %d passes (associativity=%d, distributivity=%d, 3-layer=%d)\n",
				result.Rewrites, result.Passes, result.Associativity,
				result.Distributivity, result.Distributivity3L)
			if !result.Converged {
				fmt.Printf("did not converge in %d passes\n", result.Passes)
			}

			if len(output) > 0 {
				return writeGraph(g, output)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"write the optimized circuit to `file`")
	cmd.Flags().StringVar(&configFile, "config", "",
		"TOML configuration `file`")
	cmd.Flags().IntVar(&maxPasses, "max-passes", 64,
		"maximum number of rewrite passes")
	cmd.Flags().BoolVar(&noAssoc, "no-associativity", false,
		"disable the associativity rule")
	cmd.Flags().BoolVar(&noDistrib, "no-distributivity", false,
		"disable the distributivity rule")
	cmd.Flags().BoolVar(&noDistrib3L, "no-distributivity-3l", false,
		"disable the three-layer distributivity rule")
	return cmd
}
