//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aig

import (
	"math/rand"
)

// Rand builds a pseudo-random graph with numIn primary inputs and up
// to numGates AND gates, drawing fanins and polarities from rnd.
// Deduplication and trivial simplification may merge requested gates,
// so the result can have fewer gates. Every fanout-free gate is
// registered as an output with a random polarity; the construction is
// deterministic for a fixed rnd seed.
func Rand(rnd *rand.Rand, numIn, numGates int) *Graph {
	g := New()
	sigs := make([]Signal, 0, numIn+numGates)
	for i := 0; i < numIn; i++ {
		sigs = append(sigs, g.Input())
	}
	for i := 0; i < numGates; i++ {
		a := sigs[rnd.Intn(len(sigs))]
		b := sigs[rnd.Intn(len(sigs))]
		if rnd.Intn(2) == 1 {
			a = a.Not()
		}
		if rnd.Intn(2) == 1 {
			b = b.Not()
		}
		sigs = append(sigs, g.And(a, b))
	}
	g.ForEachGate(func(n Node) bool {
		if len(g.Fanout(n)) == 0 {
			g.Output(MakeSignal(n, rnd.Intn(2) == 1))
		}
		return true
	})
	if g.NumOutputs() == 0 {
		g.Output(sigs[len(sigs)-1])
	}
	return g
}
