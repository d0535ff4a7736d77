//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aig

import (
	"fmt"
	"io"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"

	"github.com/markkurossi/aig/logger"
)

// FormatVersion is the version of the CBOR snapshot format. A
// snapshot with a different major version is rejected; a newer minor
// version is read with a warning.
const FormatVersion = "1.0.0"

type snapshot struct {
	Version  string         `cbor:"version"`
	Inputs   int            `cbor:"inputs"`
	Gates    [][2]uint32    `cbor:"gates"`
	Outputs  []uint32       `cbor:"outputs"`
	InNames  map[int]string `cbor:"inNames,omitempty"`
	OutNames map[int]string `cbor:"outNames,omitempty"`
}

// Serialize writes a snapshot of the graph to w. Dead nodes are
// dropped and live nodes are renumbered in topological order, so the
// snapshot is canonical for the graph's live structure.
func (g *Graph) Serialize(w io.Writer) error {
	renum := make([]uint32, len(g.nodes))
	next := uint32(1)
	for _, n := range g.inputs {
		renum[n] = next
		next++
	}
	order := g.TopoOrder()

	snap := snapshot{
		Version:  FormatVersion,
		Inputs:   len(g.inputs),
		Gates:    make([][2]uint32, 0, len(order)),
		Outputs:  make([]uint32, 0, len(g.outputs)),
		InNames:  g.inNames,
		OutNames: g.outNames,
	}
	lit := func(s Signal) uint32 {
		return renum[s.Node()]<<1 | uint32(s&1)
	}
	for _, n := range order {
		f0, f1 := g.Fanins(n)
		snap.Gates = append(snap.Gates, [2]uint32{lit(f0), lit(f1)})
		renum[n] = next
		next++
	}
	for _, o := range g.outputs {
		snap.Outputs = append(snap.Outputs, lit(o))
	}

	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return err
	}
	return em.NewEncoder(w).Encode(snap)
}

// Deserialize reads a graph snapshot written by Serialize.
func Deserialize(r io.Reader) (*Graph, error) {
	var snap snapshot
	if err := cbor.NewDecoder(r).Decode(&snap); err != nil {
		return nil, err
	}
	v, err := semver.Parse(snap.Version)
	if err != nil {
		return nil, fmt.Errorf("aig: invalid snapshot version %q: %w",
			snap.Version, err)
	}
	cur := semver.MustParse(FormatVersion)
	if v.Major != cur.Major {
		return nil, fmt.Errorf("aig: incompatible snapshot version %s, expected %d.x", v, cur.Major)
	}
	if v.Minor > cur.Minor {
		log := logger.Logger()
		log.Warn().
			Str("snapshot", v.String()).
			Str("current", cur.String()).
			Msg("reading snapshot written by a newer minor version")
	}

	g := NewCap(1 + snap.Inputs + len(snap.Gates))
	sigs := make([]Signal, 1+snap.Inputs+len(snap.Gates))
	sigs[0] = ConstFalse
	for i := 0; i < snap.Inputs; i++ {
		sigs[1+i] = g.Input()
	}
	resolve := func(lit uint32) (Signal, error) {
		idx := int(lit >> 1)
		if idx >= len(sigs) {
			return 0, fmt.Errorf("aig: snapshot literal %d out of range",
				lit)
		}
		return sigs[idx] ^ Signal(lit&1), nil
	}
	for i, gate := range snap.Gates {
		idx := 1 + snap.Inputs + i
		f0, err := resolve(gate[0])
		if err != nil {
			return nil, err
		}
		f1, err := resolve(gate[1])
		if err != nil {
			return nil, err
		}
		// Gates are serialized in topological order so both fanins
		// resolve to already-built signals.
		if int(gate[0]>>1) >= idx || int(gate[1]>>1) >= idx {
			return nil, fmt.Errorf("aig: snapshot gate %d references later node", idx)
		}
		sigs[idx] = g.And(f0, f1)
	}
	for _, lit := range snap.Outputs {
		o, err := resolve(lit)
		if err != nil {
			return nil, err
		}
		g.Output(o)
	}
	for i, name := range snap.InNames {
		if i >= 0 && i < snap.Inputs {
			g.SetInputName(i, name)
		}
	}
	for i, name := range snap.OutNames {
		if i >= 0 && i < len(snap.Outputs) {
			g.SetOutputName(i, name)
		}
	}
	return g, nil
}
