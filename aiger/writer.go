//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aiger

import (
	"bufio"
	"fmt"
	"io"

	"github.com/markkurossi/aig"
)

// writer renumbers the live nodes of a graph into the packed AIGER
// variable space: constant 0, then inputs, then gates in topological
// order. Dead nodes are dropped.
type writer struct {
	g     *aig.Graph
	renum []uint
	order []aig.Node
}

func newWriter(g *aig.Graph) *writer {
	w := &writer{
		g:     g,
		renum: make([]uint, g.Len()),
		order: g.TopoOrder(),
	}
	next := uint(1)
	for _, n := range g.Inputs() {
		w.renum[n] = next
		next++
	}
	for _, n := range w.order {
		w.renum[n] = next
		next++
	}
	return w
}

func (w *writer) lit(s aig.Signal) uint {
	lit := w.renum[s.Node()] * 2
	if s.IsComplemented() {
		lit++
	}
	return lit
}

func (w *writer) writeHeader(bw *bufio.Writer, format string) {
	fmt.Fprintf(bw, "%s %d %d 0 %d %d\n", format,
		w.g.NumInputs()+len(w.order), w.g.NumInputs(),
		w.g.NumOutputs(), len(w.order))
}

func (w *writer) writeOutputs(bw *bufio.Writer) {
	for _, o := range w.g.Outputs() {
		fmt.Fprintf(bw, "%d\n", w.lit(o))
	}
}

func (w *writer) writeSymbols(bw *bufio.Writer) {
	for i := range w.g.Inputs() {
		if name, ok := w.g.InputName(i); ok {
			fmt.Fprintf(bw, "i%d %s\n", i, name)
		}
	}
	for i := range w.g.Outputs() {
		if name, ok := w.g.OutputName(i); ok {
			fmt.Fprintf(bw, "o%d %s\n", i, name)
		}
	}
	bw.WriteString("c\naiger file version 1.9 created by github.com/markkurossi/aig\n")
}

// WriteAscii writes the graph to w in the ASCII "aag" encoding.
func WriteAscii(g *aig.Graph, out io.Writer) error {
	wr := newWriter(g)
	bw := bufio.NewWriter(out)
	wr.writeHeader(bw, "aag")
	for i := 1; i <= g.NumInputs(); i++ {
		fmt.Fprintf(bw, "%d\n", i*2)
	}
	wr.writeOutputs(bw)
	for _, n := range wr.order {
		f0, f1 := g.Fanins(n)
		fmt.Fprintf(bw, "%d %d %d\n", wr.renum[n]*2, wr.lit(f0), wr.lit(f1))
	}
	wr.writeSymbols(bw)
	return bw.Flush()
}

// WriteBinary writes the graph to w in the binary "aig" encoding.
func WriteBinary(g *aig.Graph, out io.Writer) error {
	wr := newWriter(g)
	bw := bufio.NewWriter(out)
	wr.writeHeader(bw, "aig")
	wr.writeOutputs(bw)
	for _, n := range wr.order {
		f0, f1 := g.Fanins(n)
		lhs := wr.renum[n] * 2
		rhs0 := wr.lit(f0)
		rhs1 := wr.lit(f1)
		if rhs0 < rhs1 {
			rhs0, rhs1 = rhs1, rhs0
		}
		writeDelta(bw, lhs-rhs0)
		writeDelta(bw, rhs0-rhs1)
	}
	wr.writeSymbols(bw)
	return bw.Flush()
}

func writeDelta(bw *bufio.Writer, delta uint) {
	for delta >= 0x80 {
		bw.WriteByte(byte(delta&0x7f) | 0x80)
		delta >>= 7
	}
	bw.WriteByte(byte(delta))
}
