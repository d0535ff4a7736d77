//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aig

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval64(t *testing.T) {
	g := New()
	a := g.Input()
	b := g.Input()
	g.Output(g.And(a, b))
	g.Output(g.And(a, b).Not())

	// All four assignments in the low bits.
	in := []uint64{0b1010, 0b1100}
	out := g.Eval64(in)
	require.Len(t, out, 2)
	assert.Equal(t, uint64(0b1000), out[0]&0xf)
	assert.Equal(t, uint64(0b0111), out[1]&0xf)
}

func TestEval64BadInput(t *testing.T) {
	g := New()
	g.Input()
	assert.Panics(t, func() {
		g.Eval64(nil)
	})
}

func TestEquivSelf(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	a := Rand(rnd, 6, 30)
	b := Rand(rand.New(rand.NewSource(42)), 6, 30)

	eq, err := Equiv(a, b)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestEquivDistinct(t *testing.T) {
	a := New()
	x := a.Input()
	y := a.Input()
	a.Output(a.And(x, y))

	b := New()
	x = b.Input()
	y = b.Input()
	b.Output(b.Or(x, y))

	eq, err := Equiv(a, b)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestEquivNegated(t *testing.T) {
	a := New()
	x := a.Input()
	y := a.Input()
	a.Output(a.And(x, y))

	b := New()
	x = b.Input()
	y = b.Input()
	b.Output(b.And(x, y).Not())

	eq, err := Equiv(a, b)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestEquivDeMorgan(t *testing.T) {
	a := New()
	x := a.Input()
	y := a.Input()
	a.Output(a.And(x, y).Not())

	b := New()
	x = b.Input()
	y = b.Input()
	b.Output(b.Or(x.Not(), y.Not()))

	eq, err := Equiv(a, b)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestEquivMismatch(t *testing.T) {
	a := New()
	a.Input()

	b := New()
	b.Input()
	b.Input()

	_, err := Equiv(a, b)
	assert.Error(t, err)
}

func TestEquivManyInputs(t *testing.T) {
	// 20 inputs forces the pseudo-random path.
	rnd := rand.New(rand.NewSource(7))
	a := Rand(rnd, 20, 100)
	b := Rand(rand.New(rand.NewSource(7)), 20, 100)

	eq, err := Equiv(a, b)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestFingerprint(t *testing.T) {
	g := New()
	a := g.Input()
	b := g.Input()
	g.Output(g.And(a, b))

	fp := g.Fingerprint()
	assert.Equal(t, fp, g.Fingerprint())

	// Any structural change shows.
	g.Output(g.And(a, b.Not()))
	assert.NotEqual(t, fp, g.Fingerprint())
}
