//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aig

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
)

// Stats collects graph size statistics.
type Stats struct {
	Nodes   int
	Inputs  int
	Outputs int
	Gates   int
	Dead    int
}

// Stats returns the current statistics of the graph.
func (g *Graph) Stats() Stats {
	return Stats{
		Nodes:   len(g.nodes),
		Inputs:  len(g.inputs),
		Outputs: len(g.outputs),
		Gates:   g.numGates,
		Dead:    g.numDead,
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("inputs=%d, outputs=%d, gates=%d, dead=%d",
		s.Inputs, s.Outputs, s.Gates, s.Dead)
}

// Print prints the statistics as a table to out.
func (s Stats) Print(out io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Metric").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.MR)

	rows := []struct {
		label string
		value int
	}{
		{"Inputs", s.Inputs},
		{"Outputs", s.Outputs},
		{"Gates", s.Gates},
		{"Dead", s.Dead},
		{"Nodes", s.Nodes},
	}
	for _, r := range rows {
		row := tab.Row()
		row.Column(r.label)
		row.Column(fmt.Sprintf("%d", r.value))
	}
	tab.Print(out)
}
