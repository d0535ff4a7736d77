//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aig

import (
	"github.com/bits-and-blooms/bitset"
)

// TopoOrder returns every live AND gate exactly once, fanins before
// fanouts. The arena's construction order is topological only until
// the first substitution rewires a consumer to a later node, so all
// structure-driven traversals go through here.
func (g *Graph) TopoOrder() []Node {
	visited := bitset.New(uint(len(g.nodes)))
	order := make([]Node, 0, g.numGates)

	type frame struct {
		n        Node
		expanded bool
	}
	var stack []frame

	push := func(n Node) {
		if g.IsAnd(n) && !visited.Test(uint(n)) {
			stack = append(stack, frame{n: n})
		}
	}
	drain := func() {
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.expanded {
				if !visited.Test(uint(f.n)) {
					visited.Set(uint(f.n))
					order = append(order, f.n)
				}
				stack = stack[:len(stack)-1]
				continue
			}
			f.expanded = true
			nn := &g.nodes[f.n]
			push(nn.f1.Node())
			push(nn.f0.Node())
		}
	}

	for _, o := range g.outputs {
		push(o.Node())
		drain()
	}
	for i := 1; i < len(g.nodes); i++ {
		push(Node(i))
		drain()
	}
	return order
}
