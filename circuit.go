// Copyright 2026 The logiclab Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package logiclab

import (
	"github.com/pkg/errors"

	"github.com/hwlab/logiclab/logic"
)

// A Category is the behavioral class of a circuit. It determines which
// evaluation rule applies and which raw input and output lines are
// relevant.
type Category int

// Catalog categories, in menu order.
const (
	BasicGate Category = iota
	Combinational
	Sequential
	Timer
	Counter
	Decoder
)

var categoryNames = [...]string{
	BasicGate:     "Basic Gates",
	Combinational: "Combinational",
	Sequential:    "Sequential",
	Timer:         "Timers",
	Counter:       "Counters",
	Decoder:       "Decoders",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

// A CircuitID identifies one circuit of the fixed catalog. Every id
// belongs to exactly one Category.
type CircuitID int

// The catalog.
const (
	AND CircuitID = iota
	OR
	NOT
	NAND
	NOR
	XOR
	XNOR
	HalfAdder
	FullAdder
	Mux
	DFlipFlop
	JKFlipFlop
	Astable
	UpCounter
	DownCounter
	BCDDecoder

	numCircuits
)

// A circuitSpec ties a display name and category to the evaluation
// rule for one circuit. New circuits are added here; the evaluation
// dispatch in Engine.Evaluate never changes.
type circuitSpec struct {
	name string
	cat  Category
	eval evalFn
}

var catalog = [numCircuits]circuitSpec{
	AND:         {"AND", BasicGate, gateRule(logic.And)},
	OR:          {"OR", BasicGate, gateRule(logic.Or)},
	NOT:         {"NOT", BasicGate, gateRule(func(a, _ bool) bool { return logic.Not(a) })},
	NAND:        {"NAND", BasicGate, gateRule(logic.Nand)},
	NOR:         {"NOR", BasicGate, gateRule(logic.Nor)},
	XOR:         {"XOR", BasicGate, gateRule(logic.Xor)},
	XNOR:        {"XNOR", BasicGate, gateRule(logic.Xnor)},
	HalfAdder:   {"Half Adder", Combinational, halfAdderRule},
	FullAdder:   {"Full Adder", Combinational, fullAdderRule},
	Mux:         {"Multiplexer (MUX)", Combinational, muxRule},
	DFlipFlop:   {"D Flip-Flop", Sequential, dffRule},
	JKFlipFlop:  {"JK Flip-Flop", Sequential, jkRule},
	Astable:     {"Astable Multivibrator", Timer, astableRule},
	UpCounter:   {"Binary Up Counter", Counter, counterRule(1)},
	DownCounter: {"Binary Down Counter", Counter, counterRule(-1)},
	BCDDecoder:  {"BCD Decoder with 7-Segment Display", Decoder, bcdRule},
}

var byName = make(map[string]CircuitID, numCircuits)

func init() {
	for id, spec := range catalog {
		byName[spec.name] = CircuitID(id)
	}
}

// Lookup resolves a circuit name to its CircuitID. Names must match
// exactly, including case and punctuation ("Multiplexer (MUX)").
func Lookup(name string) (CircuitID, error) {
	id, ok := byName[name]
	if !ok {
		return 0, errors.Errorf("unknown circuit %q", name)
	}
	return id, nil
}

// Name returns the display name of the circuit.
func (id CircuitID) Name() string {
	if id < 0 || id >= numCircuits {
		return "Unknown"
	}
	return catalog[id].name
}

// Category returns the behavioral class of the circuit.
func (id CircuitID) Category() Category {
	if id < 0 || id >= numCircuits {
		return -1
	}
	return catalog[id].cat
}

func (id CircuitID) String() string { return id.Name() }

// Names returns the display names of all catalog circuits in the given
// category, in catalog order.
func Names(cat Category) []string {
	var names []string
	for i := range catalog {
		if catalog[i].cat == cat {
			names = append(names, catalog[i].name)
		}
	}
	return names
}
