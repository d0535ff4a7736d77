//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package rewrite implements an algebraic depth-optimization pass
// over and-inverter graphs. It rewrites local subgraphs with the
// associativity and distributivity identities of Boolean algebra to
// shorten the longest input-to-output path, without changing the
// functions the graph computes. Node count is not minimized: a
// rewrite may add gates, relying on the network's structural
// deduplication to bound growth.
package rewrite

import (
	"fmt"

	"github.com/markkurossi/aig"
	"github.com/markkurossi/aig/logger"
)

// Network is the graph capability set the pass operates on: the
// and-inverter network interface plus depth tracking. Levels must be
// a pure function of the current structure; the pass calls Update
// after every substitution and never makes level-dependent decisions
// on stale values. A network type without depth tracking does not
// satisfy Network, so pairing the pass with such a network fails at
// compile time.
type Network interface {
	// FaninSize returns the fanin count of n: two for AND gates,
	// zero for primary inputs and constants.
	FaninSize(n aig.Node) int

	// Fanins returns the fanin signals of the AND gate n in stored
	// order.
	Fanins(n aig.Node) (aig.Signal, aig.Signal)

	// ForEachGate iterates over the live gates in the network's own
	// fixed order. The iteration stops when fn returns false.
	ForEachGate(fn func(n aig.Node) bool)

	// Level returns the current depth level of n.
	Level(n aig.Node) int

	// Depth returns the maximum output level.
	Depth() int

	// And, Not and Nand construct signals, deduplicating against
	// existing structure.
	And(a, b aig.Signal) aig.Signal
	Not(a aig.Signal) aig.Signal
	Nand(a, b aig.Signal) aig.Signal

	// SubstituteNode replaces old's output with repl network-wide
	// and retires old.
	SubstituteNode(old aig.Node, repl aig.Signal)

	// Update recomputes depth levels after a structural change.
	Update()
}

var _ Network = (*aig.Depth)(nil)

// Rewrite runs the pass over nw: every scan visits all gates and
// tries the rules on each in priority order, substituting on the
// first match and refreshing levels before the next gate. Scans
// repeat until one makes no changes or params.MaxPasses is reached.
func Rewrite(nw Network, params *Params) (Result, error) {
	if params == nil {
		params = NewParams()
	}
	if params.MaxPasses < 1 {
		return Result{}, fmt.Errorf("rewrite: invalid MaxPasses %d",
			params.MaxPasses)
	}
	rw := &rewriter{
		nw:     nw,
		params: params,
	}
	rw.result.DepthBefore = nw.Depth()
	rw.run()
	rw.result.DepthAfter = nw.Depth()

	log := logger.Logger()
	log.Info().
		Int("passes", rw.result.Passes).
		Int("rewrites", rw.result.Rewrites).
		Int("depthBefore", rw.result.DepthBefore).
		Int("depthAfter", rw.result.DepthAfter).
		Bool("converged", rw.result.Converged).
		Msg("rewrite done")

	return rw.result, nil
}

// RewriteGraph wraps g in a depth view and runs Rewrite on it.
func RewriteGraph(g *aig.Graph, params *Params) (Result, error) {
	return Rewrite(aig.NewDepth(g), params)
}

type rewriter struct {
	nw     Network
	params *Params
	result Result
}

func (rw *rewriter) run() {
	log := logger.Logger()
	for rw.result.Passes < rw.params.MaxPasses {
		changed := false
		rw.nw.ForEachGate(func(n aig.Node) bool {
			if rw.tryNode(n) {
				rw.nw.Update()
				rw.result.Rewrites++
				changed = true
			}
			return true
		})
		rw.result.Passes++
		log.Debug().
			Int("pass", rw.result.Passes).
			Int("rewrites", rw.result.Rewrites).
			Int("depth", rw.nw.Depth()).
			Msg("rewrite pass")
		if !changed {
			rw.result.Converged = true
			return
		}
	}
	log.Warn().
		Int("passes", rw.result.Passes).
		Msg("rewrite did not converge")
}

// tryNode tries the rules on n in priority order. The first match
// substitutes n and no further rule is tried for it in this visit.
func (rw *rewriter) tryNode(n aig.Node) bool {
	if rw.params.Associativity && rw.tryAssociativity(n) {
		rw.result.Associativity++
		return true
	}
	if rw.params.Distributivity && rw.tryDistributivity(n) {
		rw.result.Distributivity++
		return true
	}
	if rw.params.Distributivity3L && rw.tryDistributivity3L(n) {
		rw.result.Distributivity3L++
		return true
	}
	return false
}

// extractAnd views n as a two-input AND gate, yielding the fanin
// signals and their nodes in stored order. It fails for nodes whose
// fanin count is not exactly two. Read-only; safe to call
// speculatively and discard.
func (rw *rewriter) extractAnd(n aig.Node) (
	sl, sr aig.Signal, nl, nr aig.Node, ok bool) {

	if rw.nw.FaninSize(n) != 2 {
		return
	}
	sl, sr = rw.nw.Fanins(n)
	return sl, sr, sl.Node(), sr.Node(), true
}

// tryAssociativity re-associates n = l·(rl·rr) into (l·rl)·rr when
// the r subtree is deep enough that pairing the shallow l with r's
// shallower child keeps the new pairing off the critical path.
func (rw *rewriter) tryAssociativity(n aig.Node) bool {
	sl, sr, nl, nr, ok := rw.extractAnd(n)
	if !ok {
		return false
	}

	// Orient so that r is the deeper branch, then require a strict
	// depth win.
	if rw.nw.Level(nl) > rw.nw.Level(nr)+1 {
		sl, sr = sr, sl
		nl, nr = nr, nl
	} else if rw.nw.Level(nl)+1 >= rw.nw.Level(nr) {
		return false
	}
	// Only a genuine AND-of-AND re-associates, not a NAND.
	if sr.IsComplemented() {
		return false
	}

	srl, srr, nrl, nrr, ok := rw.extractAnd(nr)
	if !ok {
		return false
	}
	if rw.nw.Level(nrl) > rw.nw.Level(nrr) {
		srl, srr = srr, srl
		nrl, nrr = nrr, nrl
	} else if rw.nw.Level(nrl) == rw.nw.Level(nrr) {
		return false
	}

	inner := rw.nw.And(sl, srl)
	rw.nw.SubstituteNode(n, rw.nw.And(inner, srr))
	return true
}

// tryDistributivity factors a shared subterm out of two NAND-shaped
// operands: !(a·c) · !(b·c) = !(c·(a+b)). Firing requires the common
// factor c to dominate the depth of both distinct branches, so the
// duplicated deep term leaves the critical path.
func (rw *rewriter) tryDistributivity(n aig.Node) bool {
	sl, sr, nl, nr, ok := rw.extractAnd(n)
	if !ok {
		return false
	}
	if !sl.IsComplemented() || !sr.IsComplemented() {
		return false
	}

	sll, slr, nll, nlr, ok := rw.extractAnd(nl)
	if !ok {
		return false
	}
	srl, srr, nrl, nrr, ok := rw.extractAnd(nr)
	if !ok {
		return false
	}

	// Normalize so that the common factor is the second element of
	// both pairs.
	switch {
	case nll == nrr:
		sll, slr = slr, sll
		nll, nlr = nlr, nll
		srl, srr = srr, srl
		nrl, nrr = nrr, nrl
	case nll == nrl:
		sll, slr = slr, sll
		nll, nlr = nlr, nll
	case nlr == nrr:
		srl, srr = srr, srl
		nrl, nrr = nrr, nrl
	case nlr != nrl:
		return false
	}

	if rw.nw.Level(nlr) <= rw.nw.Level(nll) ||
		rw.nw.Level(nlr) <= rw.nw.Level(nrr) {
		return false
	}
	// The identity needs the two uses of the common factor to agree
	// in polarity.
	if slr.IsComplemented() != srl.IsComplemented() {
		return false
	}

	or := rw.nw.Nand(rw.nw.Not(sll), rw.nw.Not(srr))
	rw.nw.SubstituteNode(n, rw.nw.Nand(slr, or))
	return true
}

// tryDistributivity3L extends the factoring one level deeper: when
// the depth imbalance spans three layers and each intermediate branch
// is NAND-shaped, the shallow l is pushed into both branches. The two
// uses of l collapse to one node through deduplication.
func (rw *rewriter) tryDistributivity3L(n aig.Node) bool {
	sl, sr, nl, nr, ok := rw.extractAnd(n)
	if !ok {
		return false
	}

	// Orient so that r is the deeper branch; here the gap must span
	// two levels.
	if rw.nw.Level(nl) > rw.nw.Level(nr)+2 {
		sl, sr = sr, sl
		nl, nr = nr, nl
	} else if rw.nw.Level(nl)+2 >= rw.nw.Level(nr) {
		return false
	}
	if !sr.IsComplemented() {
		return false
	}

	srl, srr, nrl, nrr, ok := rw.extractAnd(nr)
	if !ok {
		return false
	}
	if rw.nw.Level(nrl) > rw.nw.Level(nrr)+1 {
		srl, srr = srr, srl
		nrl, nrr = nrr, nrl
	} else if rw.nw.Level(nrl)+1 >= rw.nw.Level(nrr) {
		return false
	}
	if !srr.IsComplemented() {
		return false
	}

	srrl, srrr, nrrl, nrrr, ok := rw.extractAnd(nrr)
	if !ok {
		return false
	}
	if rw.nw.Level(nrrl) > rw.nw.Level(nrrr) {
		srrl, srrr = srrr, srrl
		nrrl, nrrr = nrrr, nrrl
	} else if rw.nw.Level(nrrl) == rw.nw.Level(nrrr) {
		return false
	}

	newL := rw.nw.Nand(sl, rw.nw.Not(srl))
	newR := rw.nw.Nand(rw.nw.And(sl, srrl), srrr)
	rw.nw.SubstituteNode(n, rw.nw.Nand(newL, newR))
	return true
}
