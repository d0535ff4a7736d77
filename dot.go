//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aig

import (
	"fmt"
	"io"

	"github.com/markkurossi/text/superscript"
)

// Dot creates graphviz dot output of the graph. Complemented fanin
// edges are drawn dashed. If d is non-nil, node labels carry the
// node's level as a superscript.
func (g *Graph) Dot(out io.Writer, d *Depth) {
	label := func(n Node, name string) string {
		if d == nil {
			return name
		}
		return name + superscript.Itoa(d.Level(n))
	}

	fmt.Fprintf(out, "digraph aig\n{\n")
	fmt.Fprintf(out, "  overlap=scale;\n")
	fmt.Fprintf(out, "  node\t[fontname=\"Helvetica\"];\n")

	fmt.Fprintf(out, "  {\n    node [shape=plaintext];\n")
	for i, n := range g.inputs {
		name, ok := g.InputName(i)
		if !ok {
			name = fmt.Sprintf("x%d", i)
		}
		fmt.Fprintf(out, "    n%d\t[label=\"%s\"];\n", n, label(n, name))
	}
	for i := range g.outputs {
		name, ok := g.OutputName(i)
		if !ok {
			name = fmt.Sprintf("y%d", i)
		}
		fmt.Fprintf(out, "    o%d\t[label=\"%s\"];\n", i, name)
	}
	fmt.Fprintf(out, "  }\n")

	fmt.Fprintf(out, "  {\n    node [shape=box];\n")
	g.ForEachGate(func(n Node) bool {
		fmt.Fprintf(out, "    n%d\t[label=\"%s\"];\n", n,
			label(n, fmt.Sprintf("g%d", n)))
		return true
	})
	fmt.Fprintf(out, "  }\n")

	fmt.Fprintf(out, "  {  rank=same")
	for _, n := range g.inputs {
		fmt.Fprintf(out, "; n%d", n)
	}
	fmt.Fprintf(out, ";}\n")

	edge := func(from Signal, to string) {
		if from.IsComplemented() {
			fmt.Fprintf(out, "  n%d -> %s\t[style=dashed];\n",
				from.Node(), to)
		} else {
			fmt.Fprintf(out, "  n%d -> %s;\n", from.Node(), to)
		}
	}
	g.ForEachGate(func(n Node) bool {
		f0, f1 := g.Fanins(n)
		edge(f0, fmt.Sprintf("n%d", n))
		edge(f1, fmt.Sprintf("n%d", n))
		return true
	})
	for i, o := range g.outputs {
		edge(o, fmt.Sprintf("o%d", i))
	}
	fmt.Fprintf(out, "}\n")
}
