//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aig

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"runtime"
	"sync/atomic"

	"golang.org/x/crypto/sha3"
	"golang.org/x/sync/errgroup"
)

// randBlocks is the number of 64-assignment simulation blocks Equiv
// runs when the input count makes exhaustive checking infeasible.
const randBlocks = 256

// Equiv checks that the graphs a and b compute the same Boolean
// functions. For up to 16 inputs the check is exhaustive; larger
// graphs are simulated on pseudo-random assignment blocks, so a true
// result is then probabilistic. The blocks run in parallel; both
// graphs are only read.
func Equiv(a, b *Graph) (bool, error) {
	if a.NumInputs() != b.NumInputs() {
		return false, fmt.Errorf("aig: input count mismatch: %d vs %d",
			a.NumInputs(), b.NumInputs())
	}
	if a.NumOutputs() != b.NumOutputs() {
		return false, fmt.Errorf("aig: output count mismatch: %d vs %d",
			a.NumOutputs(), b.NumOutputs())
	}
	numIn := a.NumInputs()

	exhaustive := numIn <= 16
	blocks := randBlocks
	if exhaustive {
		blocks = 1
		if numIn > 6 {
			blocks = 1 << (numIn - 6)
		}
	}

	var neq atomic.Bool
	grp := new(errgroup.Group)
	grp.SetLimit(runtime.NumCPU())

	for blk := 0; blk < blocks; blk++ {
		blk := blk
		grp.Go(func() error {
			if neq.Load() {
				return nil
			}
			in := make([]uint64, numIn)
			if exhaustive {
				base := uint64(blk) * 64
				for i := 0; i < numIn; i++ {
					var w uint64
					for j := uint64(0); j < 64; j++ {
						w |= ((base + j) >> i & 1) << j
					}
					in[i] = w
				}
			} else {
				seed := uint64(0x9e3779b97f4a7c15) ^ uint64(blk)
				rnd := rand.New(rand.NewSource(int64(seed)))
				for i := range in {
					in[i] = rnd.Uint64()
				}
			}
			oa := a.Eval64(in)
			ob := b.Eval64(in)
			for i := range oa {
				if oa[i] != ob[i] {
					neq.Store(true)
					return nil
				}
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return false, err
	}
	return !neq.Load(), nil
}

// Fingerprint returns a SHA3-256 digest of the graph's current
// structure: node kinds and fanins in arena order plus the input and
// output lists. Equal fingerprints mean structurally identical
// graphs.
func (g *Graph) Fingerprint() [32]byte {
	buf := make([]byte, 0, 12*len(g.nodes))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(g.nodes)))
	for i := range g.nodes {
		n := &g.nodes[i]
		k := uint32(n.kind)
		if n.dead {
			k |= 0x100
		}
		buf = binary.LittleEndian.AppendUint32(buf, k)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(n.f0))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(n.f1))
	}
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(g.inputs)))
	for _, n := range g.inputs {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(n))
	}
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(g.outputs)))
	for _, o := range g.outputs {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(o))
	}
	return sha3.Sum256(buf)
}
