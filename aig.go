//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package aig implements and-inverter graphs: Boolean circuits built
// from two-input AND gates and edge-level inversion markers. The
// graph deduplicates structurally identical gates so that requesting
// an AND, NOT, or NAND of signals that already combine to an existing
// node returns that node instead of creating a duplicate.
package aig

import (
	"fmt"
)

type kind uint8

const (
	kindConst kind = iota
	kindInput
	kindAnd
)

type node struct {
	f0, f1 Signal
	next   uint32 // strash chain
	fanout []Node
	kind   kind
	dead   bool
}

// Graph is an and-inverter graph. Nodes live in an arena indexed by
// stable integer identifiers; node 0 is the constant-false node.
type Graph struct {
	nodes    []node
	strash   []uint32
	inputs   []Node
	outputs  []Signal
	inNames  map[int]string
	outNames map[int]string
	numGates int
	numDead  int
}

// New creates a new graph.
func New() *Graph {
	return NewCap(128)
}

// NewCap creates a new graph with initial capacity capHint.
func NewCap(capHint int) *Graph {
	if capHint < 8 {
		capHint = 8
	}
	g := &Graph{
		nodes:  make([]node, 1, capHint),
		strash: make([]uint32, capHint),
	}
	g.nodes[0] = node{kind: kindConst}
	return g
}

// Input creates a new primary input and returns its signal.
func (g *Graph) Input() Signal {
	id := g.newNode()
	g.nodes[id].kind = kindInput
	g.inputs = append(g.inputs, Node(id))
	return MakeSignal(Node(id), false)
}

// NamedInput creates a new primary input with the symbol name.
func (g *Graph) NamedInput(name string) Signal {
	s := g.Input()
	g.SetInputName(len(g.inputs)-1, name)
	return s
}

// Inputs returns the primary inputs in creation order. The caller
// must not modify the result.
func (g *Graph) Inputs() []Node {
	return g.inputs
}

// Output registers s as a primary output.
func (g *Graph) Output(s Signal) {
	g.outputs = append(g.outputs, s)
}

// Outputs returns the registered primary outputs. The caller must
// not modify the result.
func (g *Graph) Outputs() []Signal {
	return g.outputs
}

// SetInputName names the i'th primary input.
func (g *Graph) SetInputName(i int, name string) {
	if g.inNames == nil {
		g.inNames = make(map[int]string)
	}
	g.inNames[i] = name
}

// InputName returns the name of the i'th primary input.
func (g *Graph) InputName(i int) (string, bool) {
	name, ok := g.inNames[i]
	return name, ok
}

// SetOutputName names the i'th primary output.
func (g *Graph) SetOutputName(i int, name string) {
	if g.outNames == nil {
		g.outNames = make(map[int]string)
	}
	g.outNames[i] = name
}

// OutputName returns the name of the i'th primary output.
func (g *Graph) OutputName(i int) (string, bool) {
	name, ok := g.outNames[i]
	return name, ok
}

// And returns a signal for the conjunction of a and b. Trivial cases
// simplify without creating a node and structurally identical gates
// deduplicate to the existing node.
func (g *Graph) And(a, b Signal) Signal {
	if a == b {
		return a
	}
	if a == b.Not() {
		return ConstFalse
	}
	if a > b {
		a, b = b, a
	}
	if a == ConstFalse {
		return ConstFalse
	}
	if a == ConstTrue {
		return b
	}
	if m, ok := g.lookup(a, b); ok {
		return MakeSignal(m, false)
	}
	id := g.newNode()
	n := &g.nodes[id]
	n.kind = kindAnd
	n.f0 = a
	n.f1 = b
	g.hash(a, b, id)
	g.addFanout(a.Node(), Node(id))
	g.addFanout(b.Node(), Node(id))
	g.numGates++
	return MakeSignal(Node(id), false)
}

// Not returns the complement of a.
func (g *Graph) Not(a Signal) Signal {
	return a.Not()
}

// Nand returns a signal for the negated conjunction of a and b.
func (g *Graph) Nand(a, b Signal) Signal {
	return g.And(a, b).Not()
}

// Or returns a signal for the disjunction of a and b.
func (g *Graph) Or(a, b Signal) Signal {
	return g.And(a.Not(), b.Not()).Not()
}

// Nor returns a signal for the negated disjunction of a and b.
func (g *Graph) Nor(a, b Signal) Signal {
	return g.And(a.Not(), b.Not())
}

// Xor returns a signal for the exclusive disjunction of a and b.
func (g *Graph) Xor(a, b Signal) Signal {
	return g.Or(g.And(a, b.Not()), g.And(a.Not(), b))
}

// Xnor returns a signal for the negated exclusive disjunction of a
// and b.
func (g *Graph) Xnor(a, b Signal) Signal {
	return g.Xor(a, b).Not()
}

// Implies returns a signal which is true when a implies b.
func (g *Graph) Implies(a, b Signal) Signal {
	return g.Or(a.Not(), b)
}

// Choice returns a signal for "if i then t else e".
func (g *Graph) Choice(i, t, e Signal) Signal {
	return g.Or(g.And(i, t), g.And(i.Not(), e))
}

// Ands returns the conjunction of the signals ss. If ss is empty,
// Ands returns ConstTrue.
func (g *Graph) Ands(ss ...Signal) Signal {
	a := ConstTrue
	for _, s := range ss {
		a = g.And(a, s)
	}
	return a
}

// Ors returns the disjunction of the signals ss. If ss is empty, Ors
// returns ConstFalse.
func (g *Graph) Ors(ss ...Signal) Signal {
	d := ConstFalse
	for _, s := range ss {
		d = g.Or(d, s)
	}
	return d
}

// Len returns the number of nodes in the arena, dead nodes and the
// constant included.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// NumInputs returns the number of primary inputs.
func (g *Graph) NumInputs() int {
	return len(g.inputs)
}

// NumOutputs returns the number of registered primary outputs.
func (g *Graph) NumOutputs() int {
	return len(g.outputs)
}

// NumGates returns the number of live AND gates.
func (g *Graph) NumGates() int {
	return g.numGates
}

// NumDead returns the number of retired nodes awaiting reclamation.
func (g *Graph) NumDead() int {
	return g.numDead
}

// IsConst reports whether n is the constant-false node.
func (g *Graph) IsConst(n Node) bool {
	return n == 0
}

// IsInput reports whether n is a primary input.
func (g *Graph) IsInput(n Node) bool {
	return g.nodes[n].kind == kindInput
}

// IsAnd reports whether n is a live AND gate.
func (g *Graph) IsAnd(n Node) bool {
	return g.nodes[n].kind == kindAnd && !g.nodes[n].dead
}

// IsDead reports whether n has been retired by substitution.
func (g *Graph) IsDead(n Node) bool {
	return g.nodes[n].dead
}

// FaninSize returns the number of fanin signals of n: two for AND
// gates, zero for primary inputs and the constant.
func (g *Graph) FaninSize(n Node) int {
	if g.nodes[n].kind == kindAnd {
		return 2
	}
	return 0
}

// Fanins returns the fanin signals of the AND gate n in stored order.
func (g *Graph) Fanins(n Node) (Signal, Signal) {
	nn := &g.nodes[n]
	if nn.kind != kindAnd {
		panic(fmt.Sprintf("aig: Fanins of non-gate node %s", n))
	}
	return nn.f0, nn.f1
}

// Fanout returns the live consumers of n's output. The caller must
// not modify the result.
func (g *Graph) Fanout(n Node) []Node {
	return g.nodes[n].fanout
}

// ForEachGate calls fn for every live AND gate that existed when the
// iteration began, in arena index order. Gates created during the
// iteration are not visited and gates retired during the iteration
// are skipped. The iteration stops early when fn returns false.
func (g *Graph) ForEachGate(fn func(n Node) bool) {
	end := len(g.nodes)
	for i := 1; i < end; i++ {
		n := &g.nodes[i]
		if n.kind != kindAnd || n.dead {
			continue
		}
		if !fn(Node(i)) {
			return
		}
	}
}

func (g *Graph) String() string {
	return g.Stats().String()
}

func (g *Graph) newNode() uint32 {
	if len(g.nodes) == cap(g.nodes) {
		g.grow()
	}
	id := len(g.nodes)
	g.nodes = g.nodes[:id+1]
	g.nodes[id] = node{}
	return uint32(id)
}

func (g *Graph) grow() {
	newCap := cap(g.nodes) * 2
	nodes := make([]node, len(g.nodes), newCap)
	strash := make([]uint32, newCap)
	copy(nodes, g.nodes)
	for i := range nodes {
		n := &nodes[i]
		n.next = 0
		if n.kind != kindAnd || n.dead {
			continue
		}
		j := strashCode(n.f0, n.f1) % uint32(newCap)
		n.next = strash[j]
		strash[j] = uint32(i)
	}
	g.nodes = nodes
	g.strash = strash
}

func strashCode(a, b Signal) uint32 {
	return (uint32(a) << 13) * uint32(b)
}

func (g *Graph) lookup(a, b Signal) (Node, bool) {
	si := g.strash[strashCode(a, b)%uint32(len(g.strash))]
	for si != 0 {
		n := &g.nodes[si]
		if n.f0 == a && n.f1 == b {
			return Node(si), true
		}
		si = n.next
	}
	return 0, false
}

func (g *Graph) hash(a, b Signal, id uint32) {
	i := strashCode(a, b) % uint32(len(g.strash))
	g.nodes[id].next = g.strash[i]
	g.strash[i] = id
}

// unhash removes n from its strash chain. It is a no-op if n is not
// hashed.
func (g *Graph) unhash(n Node) {
	nn := &g.nodes[n]
	i := strashCode(nn.f0, nn.f1) % uint32(len(g.strash))
	si := g.strash[i]
	if si == uint32(n) {
		g.strash[i] = nn.next
		nn.next = 0
		return
	}
	for si != 0 {
		prev := &g.nodes[si]
		if prev.next == uint32(n) {
			prev.next = nn.next
			nn.next = 0
			return
		}
		si = prev.next
	}
}

func (g *Graph) addFanout(n, consumer Node) {
	for _, c := range g.nodes[n].fanout {
		if c == consumer {
			return
		}
	}
	g.nodes[n].fanout = append(g.nodes[n].fanout, consumer)
}

func (g *Graph) removeFanout(n, consumer Node) {
	fo := g.nodes[n].fanout
	for i, c := range fo {
		if c == consumer {
			fo[i] = fo[len(fo)-1]
			g.nodes[n].fanout = fo[:len(fo)-1]
			return
		}
	}
}
