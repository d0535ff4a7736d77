//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aig

// Depth wraps a graph with per-node logic depth annotations: the
// level of a node is the length, in gate layers, of the longest path
// from any primary input to the node. Primary inputs and the constant
// are at level zero and complemented edges do not add depth.
//
// Levels are a pure function of the current structure. They must be
// refreshed with Update after every mutation before further
// level-dependent decisions are made.
type Depth struct {
	*Graph
	levels []int
}

// NewDepth wraps g with depth annotations, computed eagerly.
func NewDepth(g *Graph) *Depth {
	d := &Depth{
		Graph: g,
	}
	d.Update()
	return d
}

// Level returns the current level of node n.
func (d *Depth) Level(n Node) int {
	return d.levels[n]
}

// Update recomputes all levels from the current graph structure.
func (d *Depth) Update() {
	if cap(d.levels) < d.Len() {
		d.levels = make([]int, d.Len())
	}
	d.levels = d.levels[:d.Len()]
	clear(d.levels)

	for _, n := range d.TopoOrder() {
		f0, f1 := d.Fanins(n)
		l0 := d.levels[f0.Node()]
		if l1 := d.levels[f1.Node()]; l1 > l0 {
			l0 = l1
		}
		d.levels[n] = l0 + 1
	}
}

// Depth returns the maximum level over the registered outputs, or
// over all live gates when no outputs are registered.
func (d *Depth) Depth() int {
	var max int
	if d.NumOutputs() > 0 {
		for _, o := range d.Outputs() {
			if l := d.levels[o.Node()]; l > max {
				max = l
			}
		}
		return max
	}
	d.ForEachGate(func(n Node) bool {
		if l := d.levels[n]; l > max {
			max = l
		}
		return true
	})
	return max
}
