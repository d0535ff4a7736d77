//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package aiger reads and writes combinational and-inverter graphs in
// the AIGER format, version 1.9, in both the "aag" ASCII and the
// "aig" binary encodings. Sequential elements are not supported:
// reading a file with latches fails with ErrSequential.
package aiger

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/markkurossi/aig"
)

// Errors related to IO and formatting.
var (
	ErrBadHeader    = errors.New("aiger: malformed header")
	ErrBadLiteral   = errors.New("aiger: malformed literal")
	ErrSequential   = errors.New("aiger: sequential circuits not supported")
	ErrPrematureEOF = errors.New("aiger: premature end of file")
	ErrBadDelta     = errors.New("aiger: bad delta encoding")
	ErrCombLoop     = errors.New("aiger: combinational logic has a loop")
	ErrRedefined    = errors.New("aiger: and gate multiply defined")
	ErrUndefined    = errors.New("aiger: literal not defined")
)

type header struct {
	binary                 bool
	max, in, latch, out, a uint
}

func readHeader(r *bufio.Reader) (*header, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return nil, ErrPrematureEOF
	}
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) != 6 {
		return nil, ErrBadHeader
	}
	hdr := new(header)
	switch fields[0] {
	case "aag":
	case "aig":
		hdr.binary = true
	default:
		return nil, ErrBadHeader
	}
	nums := []*uint{&hdr.max, &hdr.in, &hdr.latch, &hdr.out, &hdr.a}
	for i, p := range nums {
		v, err := strconv.ParseUint(fields[1+i], 10, 32)
		if err != nil {
			return nil, ErrBadHeader
		}
		*p = uint(v)
	}
	if hdr.max < hdr.in+hdr.latch+hdr.a {
		return nil, ErrBadHeader
	}
	return hdr, nil
}

// Read reads an AIGER file in either encoding, dispatching on the
// header.
func Read(r io.Reader) (*aig.Graph, error) {
	br := bufio.NewReader(r)
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if hdr.latch > 0 {
		return nil, ErrSequential
	}
	rd := &reader{
		hdr: hdr,
		br:  br,
		g:   aig.NewCap(int(hdr.max) + 1),
	}
	if hdr.binary {
		err = rd.readBinary()
	} else {
		err = rd.readAscii()
	}
	if err != nil {
		return nil, err
	}
	if err := rd.readSymbols(); err != nil {
		return nil, err
	}
	return rd.g, nil
}

type reader struct {
	hdr     *header
	br      *bufio.Reader
	g       *aig.Graph
	inputs  []aig.Signal // indexed by variable, 0 unused
	outLits []uint
	sigs    map[uint]aig.Signal // variable of defined gate -> signal
	defs    map[uint][2]uint    // ASCII gate defs pending resolution
	state   map[uint]int        // DFS state for loop detection
}

func (rd *reader) readUint(line string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(line), 10, 32)
	if err != nil {
		return 0, ErrBadLiteral
	}
	if uint(v) > rd.hdr.max*2+1 {
		return 0, ErrBadLiteral
	}
	return uint(v), nil
}

func (rd *reader) readLine() (string, error) {
	line, err := rd.br.ReadString('\n')
	if err != nil && line == "" {
		return "", ErrPrematureEOF
	}
	return strings.TrimSpace(line), nil
}

// sigOf resolves the literal lit against the inputs and the gates
// defined so far.
func (rd *reader) sigOf(lit uint) (aig.Signal, error) {
	v := lit >> 1
	var s aig.Signal
	switch {
	case v == 0:
		s = aig.ConstFalse
	case int(v) < len(rd.inputs) && rd.inputs[v] != 0:
		s = rd.inputs[v]
	default:
		var ok bool
		s, ok = rd.sigs[v]
		if !ok {
			return 0, ErrUndefined
		}
	}
	if lit&1 != 0 {
		s = s.Not()
	}
	return s, nil
}

func (rd *reader) readOutputs() error {
	for i := uint(0); i < rd.hdr.out; i++ {
		line, err := rd.readLine()
		if err != nil {
			return err
		}
		lit, err := rd.readUint(line)
		if err != nil {
			return err
		}
		rd.outLits = append(rd.outLits, lit)
	}
	return nil
}

func (rd *reader) finishOutputs() error {
	for _, lit := range rd.outLits {
		s, err := rd.sigOf(lit)
		if err != nil {
			return err
		}
		rd.g.Output(s)
	}
	return nil
}

func (rd *reader) readAscii() error {
	rd.inputs = make([]aig.Signal, rd.hdr.max+1)
	rd.sigs = make(map[uint]aig.Signal)
	rd.defs = make(map[uint][2]uint)
	rd.state = make(map[uint]int)

	for i := uint(0); i < rd.hdr.in; i++ {
		line, err := rd.readLine()
		if err != nil {
			return err
		}
		lit, err := rd.readUint(line)
		if err != nil {
			return err
		}
		if lit&1 != 0 || lit == 0 {
			return ErrBadLiteral
		}
		if rd.inputs[lit>>1] != 0 {
			return ErrRedefined
		}
		rd.inputs[lit>>1] = rd.g.Input()
	}
	if err := rd.readOutputs(); err != nil {
		return err
	}
	for i := uint(0); i < rd.hdr.a; i++ {
		line, err := rd.readLine()
		if err != nil {
			return err
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return ErrBadLiteral
		}
		var lits [3]uint
		for j, f := range fields {
			lit, err := rd.readUint(f)
			if err != nil {
				return err
			}
			lits[j] = lit
		}
		lhs := lits[0]
		if lhs&1 != 0 || lhs == 0 {
			return ErrBadLiteral
		}
		if rd.inputs[lhs>>1] != 0 {
			return ErrRedefined
		}
		if _, ok := rd.defs[lhs>>1]; ok {
			return ErrRedefined
		}
		rd.defs[lhs>>1] = [2]uint{lits[1], lits[2]}
	}
	// ASCII files may define gates in any order; resolve each
	// definition depth first, rejecting cycles.
	for v := range rd.defs {
		if _, err := rd.build(v); err != nil {
			return err
		}
	}
	return rd.finishOutputs()
}

func (rd *reader) build(v uint) (aig.Signal, error) {
	if s, ok := rd.sigs[v]; ok {
		return s, nil
	}
	switch rd.state[v] {
	case 1:
		return 0, ErrCombLoop
	}
	rd.state[v] = 1
	def, ok := rd.defs[v]
	if !ok {
		return 0, ErrUndefined
	}
	var fanins [2]aig.Signal
	for i, lit := range def {
		fv := lit >> 1
		switch {
		case fv == 0:
			fanins[i] = aig.ConstFalse
		case rd.inputs[fv] != 0:
			fanins[i] = rd.inputs[fv]
		default:
			s, err := rd.build(fv)
			if err != nil {
				return 0, err
			}
			fanins[i] = s
		}
		if lit&1 != 0 {
			fanins[i] = fanins[i].Not()
		}
	}
	s := rd.g.And(fanins[0], fanins[1])
	rd.sigs[v] = s
	rd.state[v] = 2
	return s, nil
}

func (rd *reader) readBinary() error {
	rd.inputs = make([]aig.Signal, rd.hdr.max+1)
	rd.sigs = make(map[uint]aig.Signal)

	// Binary inputs are implicit: variables 1..in.
	for i := uint(1); i <= rd.hdr.in; i++ {
		rd.inputs[i] = rd.g.Input()
	}
	if err := rd.readOutputs(); err != nil {
		return err
	}
	// Gates are strictly ordered: lhs of the i'th gate is
	// 2*(in+i+1) and both deltas reach backwards.
	for i := uint(0); i < rd.hdr.a; i++ {
		lhs := 2 * (rd.hdr.in + i + 1)
		d0, err := rd.readDelta()
		if err != nil {
			return err
		}
		if d0 == 0 || d0 > lhs {
			return ErrBadDelta
		}
		rhs0 := lhs - d0
		d1, err := rd.readDelta()
		if err != nil {
			return err
		}
		if d1 > rhs0 {
			return ErrBadDelta
		}
		rhs1 := rhs0 - d1
		f0, err := rd.sigOf(rhs0)
		if err != nil {
			return err
		}
		f1, err := rd.sigOf(rhs1)
		if err != nil {
			return err
		}
		rd.sigs[lhs>>1] = rd.g.And(f0, f1)
	}
	return rd.finishOutputs()
}

func (rd *reader) readDelta() (uint, error) {
	var delta, shift uint
	for {
		b, err := rd.br.ReadByte()
		if err != nil {
			return 0, ErrPrematureEOF
		}
		if shift > 28 && b > 0x0f {
			return 0, ErrBadDelta
		}
		delta |= uint(b&0x7f) << shift
		if b&0x80 == 0 {
			return delta, nil
		}
		shift += 7
	}
}

func (rd *reader) readSymbols() error {
	for {
		line, err := rd.br.ReadString('\n')
		if err != nil {
			if line == "" {
				return nil
			}
		}
		line = strings.TrimSuffix(line, "\n")
		if line == "c" || line == "" {
			// Comment section runs to EOF.
			return nil
		}
		idx := strings.IndexByte(line, ' ')
		if idx < 2 {
			return ErrBadLiteral
		}
		pos, perr := strconv.Atoi(line[1:idx])
		if perr != nil || pos < 0 {
			return ErrBadLiteral
		}
		name := line[idx+1:]
		switch line[0] {
		case 'i':
			rd.g.SetInputName(pos, name)
		case 'o':
			rd.g.SetOutputName(pos, name)
		default:
			return ErrBadLiteral
		}
		if err != nil {
			return nil
		}
	}
}
