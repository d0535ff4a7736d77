//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aig

import (
	"fmt"
)

// Node names a primary input or a two-input AND gate in a graph.
// Node 0 is the constant-false node.
type Node uint32

// Signal references a node's output with a polarity bit: the least
// significant bit is set when the output is complemented at the point
// of use. The encoding follows the AIGER literal convention: node<<1
// for a node's output, node<<1|1 for its complement.
type Signal uint32

// Constant signals of every graph.
const (
	ConstFalse = Signal(0)
	ConstTrue  = Signal(1)
)

// MakeSignal creates a signal for the node n, complemented when
// complemented is true.
func MakeSignal(n Node, complemented bool) Signal {
	s := Signal(n) << 1
	if complemented {
		s |= 1
	}
	return s
}

// Node returns the node the signal references.
func (s Signal) Node() Node {
	return Node(s >> 1)
}

// IsComplemented reports whether the signal is negated at the point
// of use.
func (s Signal) IsComplemented() bool {
	return s&1 != 0
}

// Not returns the complement of the signal.
func (s Signal) Not() Signal {
	return s ^ 1
}

func (s Signal) String() string {
	if s.IsComplemented() {
		return fmt.Sprintf("!n%d", s.Node())
	}
	return fmt.Sprintf("n%d", s.Node())
}

func (n Node) String() string {
	return fmt.Sprintf("n%d", n)
}
