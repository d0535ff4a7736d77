//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package rewrite

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markkurossi/aig"
)

// inputs creates count primary inputs.
func inputs(g *aig.Graph, count int) []aig.Signal {
	result := make([]aig.Signal, count)
	for i := range result {
		result[i] = g.Input()
	}
	return result
}

// balanced builds a balanced AND tree over the signals: every gate in
// the tree has equal-level children, so no rule can fire inside it.
func balanced(g *aig.Graph, ss []aig.Signal) aig.Signal {
	for len(ss) > 1 {
		var next []aig.Signal
		for i := 0; i+1 < len(ss); i += 2 {
			next = append(next, g.And(ss[i], ss[i+1]))
		}
		if len(ss)%2 == 1 {
			next = append(next, ss[len(ss)-1])
		}
		ss = next
	}
	return ss[0]
}

// buildAssociativity builds the shallow-AND-of-deep-AND shape:
// n = x0 · ((x1·x2) · ((x3·x4)·x5)) with n at depth 4.
func buildAssociativity(g *aig.Graph) {
	in := inputs(g, 6)
	r1 := g.And(in[1], in[2])
	r2 := g.And(g.And(in[3], in[4]), in[5])
	r := g.And(r1, r2)
	g.Output(g.And(in[0], r))
}

func TestAssociativity(t *testing.T) {
	g := aig.New()
	buildAssociativity(g)
	ref := aig.New()
	buildAssociativity(ref)

	result, err := RewriteGraph(g, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, result.DepthBefore)
	assert.Equal(t, 3, result.DepthAfter)
	assert.True(t, result.Converged)
	assert.Equal(t, 1, result.Rewrites)
	assert.Equal(t, 1, result.Associativity)
	assert.Equal(t, 0, result.Distributivity)
	assert.Equal(t, 0, result.Distributivity3L)

	eq, err := aig.Equiv(ref, g)
	require.NoError(t, err)
	assert.True(t, eq)

	// A second run finds nothing once depths have equalized.
	result, err = RewriteGraph(g, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Rewrites)
	assert.Equal(t, 1, result.Passes)
	assert.True(t, result.Converged)
}

// buildDistributivity builds n = !(a·c) · !(b·c) with a deep, balanced
// common factor c that no other rule can touch.
func buildDistributivity(g *aig.Graph) {
	in := inputs(g, 6)
	a, b := in[0], in[1]
	c := balanced(g, in[2:6]) // level 2, tied children throughout
	g.Output(g.And(g.And(a, c).Not(), g.And(b, c).Not()))
}

func TestDistributivity(t *testing.T) {
	g := aig.New()
	buildDistributivity(g)
	ref := aig.New()
	buildDistributivity(ref)

	result, err := RewriteGraph(g, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, result.DepthBefore)
	assert.Equal(t, 3, result.DepthAfter)
	assert.True(t, result.Converged)
	assert.Equal(t, 1, result.Distributivity)
	assert.Equal(t, 0, result.Associativity)

	// ¬(ac)·¬(bc) = ¬(c·(a+b)) for every assignment.
	eq, err := aig.Equiv(ref, g)
	require.NoError(t, err)
	assert.True(t, eq)
}

// buildDistributivity3L builds the three-layer nested-NAND shape
// n = x0 · !(x6 · !(x5 · B)) with B a balanced level-2 tree.
func buildDistributivity3L(g *aig.Graph) {
	in := inputs(g, 8)
	b2 := balanced(g, in[1:5])              // level 2
	u := g.And(in[5], b2)                   // level 3
	v := g.And(in[6], u.Not())              // level 4
	g.Output(g.And(in[0], v.Not()))         // level 5
}

func TestDistributivity3L(t *testing.T) {
	g := aig.New()
	buildDistributivity3L(g)
	ref := aig.New()
	buildDistributivity3L(ref)

	result, err := RewriteGraph(g, nil)
	require.NoError(t, err)

	assert.Equal(t, 5, result.DepthBefore)
	assert.Equal(t, 4, result.DepthAfter)
	assert.True(t, result.Converged)
	assert.Equal(t, 1, result.Distributivity3L)
	assert.Equal(t, 0, result.Associativity)
	assert.Equal(t, 0, result.Distributivity)

	eq, err := aig.Equiv(ref, g)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestNoMatchTiedChildren(t *testing.T) {
	// Associativity candidate whose deep operand has equal-level
	// children: nothing may change, byte for byte.
	g := aig.New()
	in := inputs(g, 5)
	r := g.And(g.And(in[1], in[2]), g.And(in[3], in[4]))
	g.Output(g.And(in[0], r))

	before := g.Fingerprint()
	result, err := RewriteGraph(g, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Rewrites)
	assert.Equal(t, 1, result.Passes)
	assert.True(t, result.Converged)
	assert.Equal(t, before, g.Fingerprint())
}

// Rule-locality: perturbing exactly one precondition of a firing
// shape must make the engine leave the graph unchanged.
func TestRuleLocality(t *testing.T) {
	tests := []struct {
		name  string
		build func(g *aig.Graph)
		fires bool
	}{
		{
			name:  "associativity fires",
			build: buildAssociativity,
			fires: true,
		},
		{
			name: "associativity gap too small",
			build: func(g *aig.Graph) {
				// level(l)+1 == level(r): no depth win possible.
				in := inputs(g, 3)
				r := g.And(in[1], in[2])
				g.Output(g.And(in[0], r))
			},
			fires: false,
		},
		{
			name: "associativity complemented deep operand",
			build: func(g *aig.Graph) {
				// The deep branch is a NAND, not an AND; and its
				// tied children block the rule even when oriented.
				in := inputs(g, 5)
				r := g.And(g.And(in[1], in[2]), g.And(in[3], in[4]))
				g.Output(g.And(in[0], r.Not()))
			},
			fires: false,
		},
		{
			name:  "distributivity fires",
			build: buildDistributivity,
			fires: true,
		},
		{
			name: "distributivity one branch not complemented",
			build: func(g *aig.Graph) {
				in := inputs(g, 6)
				a, b := in[0], in[1]
				c := balanced(g, in[2:6])
				g.Output(g.And(g.And(a, c), g.And(b, c).Not()))
			},
			fires: false,
		},
		{
			name: "distributivity no common factor",
			build: func(g *aig.Graph) {
				in := inputs(g, 10)
				c1 := balanced(g, in[2:6])
				c2 := balanced(g, in[6:10])
				g.Output(g.And(g.And(in[0], c1).Not(),
					g.And(in[1], c2).Not()))
			},
			fires: false,
		},
		{
			name: "distributivity shallow common factor",
			build: func(g *aig.Graph) {
				// The shared term does not dominate the depth: the
				// distinct branches are as deep as the factor.
				in := inputs(g, 10)
				a := balanced(g, in[2:6])
				b := balanced(g, in[6:10])
				c := in[0]
				g.Output(g.And(g.And(a, c).Not(), g.And(b, c).Not()))
			},
			fires: false,
		},
		{
			name: "distributivity polarity mismatch",
			build: func(g *aig.Graph) {
				in := inputs(g, 6)
				a, b := in[0], in[1]
				c := balanced(g, in[2:6])
				g.Output(g.And(g.And(a, c).Not(),
					g.And(b, c.Not()).Not()))
			},
			fires: false,
		},
		{
			name:  "3-layer distributivity fires",
			build: buildDistributivity3L,
			fires: true,
		},
		{
			name: "3-layer gap too small",
			build: func(g *aig.Graph) {
				// level(l)+2 == level(r): one layer short.
				in := inputs(g, 4)
				w := g.And(in[1], in[2])
				v := g.And(in[3], w.Not())
				g.Output(g.And(in[0], v.Not()))
			},
			fires: false,
		},
		{
			name: "3-layer tied innermost children",
			build: func(g *aig.Graph) {
				// The gap is wide enough but the innermost gate has
				// equal-level children, so no layer can move up.
				in := inputs(g, 6)
				b2 := balanced(g, in[1:5])
				v := g.And(in[5], b2.Not())
				g.Output(g.And(in[0], v.Not()))
			},
			fires: false,
		},
		{
			name: "3-layer inner polarity flipped",
			build: func(g *aig.Graph) {
				// The innermost deep branch is an AND, not a NAND.
				in := inputs(g, 6)
				b2 := balanced(g, in[1:5])
				v := g.And(in[5], b2) // b2 not complemented
				g.Output(g.And(in[0], v.Not()))
			},
			fires: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := aig.New()
			tc.build(g)
			before := g.Fingerprint()

			result, err := RewriteGraph(g, nil)
			require.NoError(t, err)

			if tc.fires {
				assert.Greater(t, result.Rewrites, 0)
				assert.NotEqual(t, before, g.Fingerprint())
			} else {
				assert.Equal(t, 0, result.Rewrites)
				assert.Equal(t, before, g.Fingerprint())
			}
			assert.True(t, result.Converged)
		})
	}
}

func TestRuleToggles(t *testing.T) {
	g := aig.New()
	buildAssociativity(g)

	params := NewParams()
	params.Associativity = false
	result, err := RewriteGraph(g, params)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Rewrites)
}

func TestInvalidParams(t *testing.T) {
	g := aig.New()
	buildAssociativity(g)

	params := NewParams()
	params.MaxPasses = 0
	_, err := RewriteGraph(g, params)
	assert.Error(t, err)
}

func TestMaxPassesExceeded(t *testing.T) {
	// A long chain needs several passes; capping at one stops the run
	// without convergence but keeps the graph sound.
	g := aig.New()
	in := inputs(g, 16)
	s := in[0]
	for _, x := range in[1:] {
		s = g.And(s, x)
	}
	g.Output(s)
	ref := aig.New()
	rin := inputs(ref, 16)
	rs := rin[0]
	for _, x := range rin[1:] {
		rs = ref.And(rs, x)
	}
	ref.Output(rs)

	params := NewParams()
	params.MaxPasses = 1
	result, err := RewriteGraph(g, params)
	require.NoError(t, err)

	assert.False(t, result.Converged)
	assert.Equal(t, 1, result.Passes)
	assert.Greater(t, result.Rewrites, 0)
	assert.LessOrEqual(t, result.DepthAfter, result.DepthBefore)

	eq, err := aig.Equiv(ref, g)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestCarryChain(t *testing.T) {
	// A long unbalanced AND chain: x0·x1·…·xk built left to right.
	// Associativity alone rebalances it to logarithmic depth.
	g := aig.New()
	in := inputs(g, 16)
	s := in[0]
	for _, x := range in[1:] {
		s = g.And(s, x)
	}
	g.Output(s)
	ref := aig.New()
	rin := inputs(ref, 16)
	rs := rin[0]
	for _, x := range rin[1:] {
		rs = ref.And(rs, x)
	}
	ref.Output(rs)

	result, err := RewriteGraph(g, nil)
	require.NoError(t, err)

	assert.Equal(t, 15, result.DepthBefore)
	assert.LessOrEqual(t, result.DepthAfter, 5)
	assert.True(t, result.Converged)

	eq, err := aig.Equiv(ref, g)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestRewriteProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	build := func(seed int64, numIn, numGates int) *aig.Graph {
		return aig.Rand(rand.New(rand.NewSource(seed)), numIn, numGates)
	}

	properties.Property("rewriting preserves the function", prop.ForAll(
		func(seed int64, numIn, numGates int) bool {
			ref := build(seed, numIn, numGates)
			g := build(seed, numIn, numGates)
			if _, err := RewriteGraph(g, nil); err != nil {
				return false
			}
			eq, err := aig.Equiv(ref, g)
			return err == nil && eq
		},
		gen.Int64(), gen.IntRange(2, 8), gen.IntRange(1, 60),
	))

	properties.Property("depth never increases", prop.ForAll(
		func(seed int64, numIn, numGates int) bool {
			g := build(seed, numIn, numGates)
			result, err := RewriteGraph(g, nil)
			if err != nil {
				return false
			}
			return result.DepthAfter <= result.DepthBefore
		},
		gen.Int64(), gen.IntRange(2, 8), gen.IntRange(1, 60),
	))

	properties.Property("a converged run is idempotent", prop.ForAll(
		func(seed int64, numIn, numGates int) bool {
			g := build(seed, numIn, numGates)
			first, err := RewriteGraph(g, nil)
			if err != nil || !first.Converged {
				return false
			}
			second, err := RewriteGraph(g, nil)
			if err != nil {
				return false
			}
			return second.Rewrites == 0 && second.Passes == 1
		},
		gen.Int64(), gen.IntRange(2, 8), gen.IntRange(1, 60),
	))

	properties.TestingRun(t)
}
