//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"

	"github.com/markkurossi/aig"
)

func newRenderCmd() *cobra.Command {
	var output string
	var levels bool

	cmd := &cobra.Command{
		Use:   "render file -o out.svg",
		Short: "Render circuit as an image via graphviz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(args[0])
			if err != nil {
				return err
			}
			var format graphviz.Format
			switch filepath.Ext(output) {
			case ".svg":
				format = graphviz.SVG
			case ".png":
				format = graphviz.PNG
			default:
				return fmt.Errorf("unknown image format %q",
					filepath.Ext(output))
			}

			var d *aig.Depth
			if levels {
				d = aig.NewDepth(g)
			}
			var dot bytes.Buffer
			g.Dot(&dot, d)

			ctx := cmd.Context()
			gv, err := graphviz.New(ctx)
			if err != nil {
				return fmt.Errorf("init graphviz: %w", err)
			}
			defer gv.Close()

			graph, err := graphviz.ParseBytes(dot.Bytes())
			if err != nil {
				return fmt.Errorf("parse dot: %w", err)
			}
			defer graph.Close()

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			return gv.Render(ctx, graph, format, f)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"output image `file` (.svg or .png)")
	cmd.Flags().BoolVar(&levels, "levels", false,
		"label nodes with their depth levels")
	cmd.MarkFlagRequired("output")
	return cmd
}
