//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aig

import (
	"fmt"
)

// Eval64 evaluates the graph for 64 input assignments in parallel.
// The argument has one word per primary input, in creation order; bit
// j of every word belongs to assignment j. The result has one word
// per registered output, complemented output polarities applied.
func (g *Graph) Eval64(in []uint64) []uint64 {
	if len(in) != len(g.inputs) {
		panic(fmt.Sprintf("aig: Eval64 with %d values for %d inputs",
			len(in), len(g.inputs)))
	}
	vs := make([]uint64, len(g.nodes))
	for i, n := range g.inputs {
		vs[n] = in[i]
	}
	for _, n := range g.TopoOrder() {
		nn := &g.nodes[n]
		v0 := vs[nn.f0.Node()]
		if nn.f0.IsComplemented() {
			v0 = ^v0
		}
		v1 := vs[nn.f1.Node()]
		if nn.f1.IsComplemented() {
			v1 = ^v1
		}
		vs[n] = v0 & v1
	}
	out := make([]uint64, len(g.outputs))
	for i, o := range g.outputs {
		v := vs[o.Node()]
		if o.IsComplemented() {
			v = ^v
		}
		out[i] = v
	}
	return out
}

// Eval evaluates the graph for a single input assignment.
func (g *Graph) Eval(in []bool) []bool {
	words := make([]uint64, len(in))
	for i, v := range in {
		if v {
			words[i] = 1
		}
	}
	out := g.Eval64(words)
	result := make([]bool, len(out))
	for i, w := range out {
		result[i] = w&1 != 0
	}
	return result
}
