//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aig

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

type subst struct {
	old  Node
	repl Signal
}

// SubstituteNode replaces the output of node old with the signal repl
// everywhere in the graph: every consumer of old is rewired to repl
// with its polarity preserved, and registered outputs driven by old
// are redirected. When a rewired consumer becomes trivially
// simplifiable or structurally identical to an existing gate, the
// substitution cascades to it. Fanout-free cones left behind are
// marked dead; reclamation of dead nodes is up to the arena.
//
// SubstituteNode panics if old is not a live AND gate or if the cone
// of repl contains old, which would make the graph cyclic.
func (g *Graph) SubstituteNode(old Node, repl Signal) {
	if !g.IsAnd(old) {
		panic(fmt.Sprintf("aig: substituting non-gate node %s", old))
	}
	if g.coneContains(repl.Node(), old) {
		panic(fmt.Sprintf("aig: substituting %s with %s creates a cycle",
			old, repl))
	}

	// Retirement is deferred until the worklist drains: a pending
	// replacement may name a node that is momentarily fanout-free,
	// and releasing it early would rewire consumers onto a dead
	// gate.
	g.unhash(old)

	queue := []subst{{old: old, repl: repl}}
	var retired []Node
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		queue = g.substitute(s, queue)
		retired = append(retired, s.old)
	}
	for _, n := range retired {
		g.release(n)
	}
}

// substitute rewires the consumers and outputs of s.old to s.repl.
// Consumers that simplify or merge with existing gates are appended
// to the worklist.
func (g *Graph) substitute(s subst, queue []subst) []subst {
	consumers := g.nodes[s.old].fanout
	g.nodes[s.old].fanout = nil

	for _, c := range consumers {
		cn := &g.nodes[c]
		if cn.dead {
			continue
		}
		g.unhash(c)

		a, b := cn.f0, cn.f1
		if a.Node() == s.old {
			a = s.repl ^ (a & 1)
		}
		if b.Node() == s.old {
			b = s.repl ^ (b & 1)
		}
		if a > b {
			a, b = b, a
		}
		cn.f0 = a
		cn.f1 = b
		g.addFanout(a.Node(), c)
		g.addFanout(b.Node(), c)

		if t, ok := trivial(a, b); ok {
			queue = append(queue, subst{old: c, repl: t})
			continue
		}
		if m, ok := g.lookup(a, b); ok && m != c {
			queue = append(queue, subst{old: c, repl: MakeSignal(m, false)})
			continue
		}
		g.hash(a, b, uint32(c))
	}

	for i, o := range g.outputs {
		if o.Node() == s.old {
			g.outputs[i] = s.repl ^ (o & 1)
		}
	}
	return queue
}

// trivial simplifies the ordered fanin pair (a, b) when the
// conjunction does not need a gate.
func trivial(a, b Signal) (Signal, bool) {
	switch {
	case a == b:
		return a, true
	case a == b.Not():
		return ConstFalse, true
	case a == ConstFalse:
		return ConstFalse, true
	case a == ConstTrue:
		return b, true
	}
	return 0, false
}

// release retires n if nothing references its output, and cascades to
// fanin cones that become unreferenced.
func (g *Graph) release(n Node) {
	nn := &g.nodes[n]
	if nn.kind != kindAnd || nn.dead {
		return
	}
	if len(nn.fanout) > 0 || g.outputRef(n) {
		return
	}
	g.unhash(n)
	nn.dead = true
	g.numGates--
	g.numDead++

	f0, f1 := nn.f0, nn.f1
	g.removeFanout(f0.Node(), n)
	g.removeFanout(f1.Node(), n)
	g.release(f0.Node())
	g.release(f1.Node())
}

func (g *Graph) outputRef(n Node) bool {
	for _, o := range g.outputs {
		if o.Node() == n {
			return true
		}
	}
	return false
}

// coneContains reports whether target is in the transitive fanin cone
// of from, from itself included.
func (g *Graph) coneContains(from, target Node) bool {
	if from == target {
		return true
	}
	seen := bitset.New(uint(len(g.nodes)))
	stack := []Node{from}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == target {
			return true
		}
		if seen.Test(uint(n)) || g.nodes[n].kind != kindAnd {
			continue
		}
		seen.Set(uint(n))
		stack = append(stack, g.nodes[n].f0.Node(), g.nodes[n].f1.Node())
	}
	return false
}
