//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/markkurossi/aig"
	"github.com/markkurossi/aig/aiger"
	"github.com/markkurossi/aig/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "aigopt",
		Short:        "aigopt optimizes and inspects and-inverter graphs",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger.Set(logger.Logger().Level(level))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose logging")

	root.AddCommand(newStatsCmd())
	root.AddCommand(newOptCmd())
	root.AddCommand(newDotCmd())
	root.AddCommand(newRenderCmd())

	return root
}

// readGraph reads a circuit file, dispatching on the file extension:
// .aag and .aig are AIGER encodings, .aigc is the CBOR snapshot.
func readGraph(path string) (*aig.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".aag", ".aig":
		return aiger.Read(f)
	case ".aigc":
		return aig.Deserialize(f)
	default:
		return nil, fmt.Errorf("unknown circuit format %q",
			filepath.Ext(path))
	}
}

// writeGraph writes a circuit file, dispatching on the file
// extension like readGraph.
func writeGraph(g *aig.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".aag":
		return aiger.WriteAscii(g, f)
	case ".aig":
		return aiger.WriteBinary(g, f)
	case ".aigc":
		return g.Serialize(f)
	default:
		return fmt.Errorf("unknown circuit format %q", filepath.Ext(path))
	}
}
