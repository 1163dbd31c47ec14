// Copyright 2026 The logiclab Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gpio drives a physical lab bench on the Raspberry Pi GPIO
// header: a bank of pulled-up switch inputs (plus clock and reset
// push buttons), a bank of LED outputs and seven segment lines.
package gpio

import (
	"github.com/pkg/errors"
	rpio "github.com/stianeikeland/go-rpio/v4"

	"github.com/hwlab/logiclab"
)

// Pins assigns BCM pin numbers to the simulator lines.
type Pins struct {
	Inputs   [logiclab.NumInputs]uint8
	Outputs  [logiclab.NumOutputs]uint8
	Clock    uint8
	Reset    uint8
	Segments [logiclab.NumSegments]uint8
}

// DefaultPins is the reference bench wiring.
var DefaultPins = Pins{
	Inputs:   [8]uint8{2, 3, 4, 17, 27, 22, 10, 9},
	Outputs:  [8]uint8{14, 15, 18, 23, 24, 25, 8, 7},
	Clock:    11,
	Reset:    5,
	Segments: [7]uint8{6, 13, 19, 26, 16, 20, 21},
}

// A Bank is a GPIO-backed input sampler and output sink.
type Bank struct {
	pins Pins
}

// Open memory-maps the GPIO range and configures every line: the
// input, clock and reset pins as pulled-up inputs, the output and
// segment pins as outputs driven LOW.
//
// Callers must Close the bank to release the mapping.
func Open(p Pins) (*Bank, error) {
	if err := rpio.Open(); err != nil {
		return nil, errors.Wrap(err, "gpio: open")
	}
	for _, n := range p.Inputs {
		pullUpInput(n)
	}
	pullUpInput(p.Clock)
	pullUpInput(p.Reset)
	for _, n := range p.Outputs {
		lowOutput(n)
	}
	for _, n := range p.Segments {
		lowOutput(n)
	}
	return &Bank{pins: p}, nil
}

func pullUpInput(n uint8) {
	pin := rpio.Pin(n)
	pin.Input()
	pin.PullUp()
}

func lowOutput(n uint8) {
	pin := rpio.Pin(n)
	pin.Output()
	pin.Low()
}

// Sample implements logiclab.Sampler. Levels are read raw; the
// active-low reset convention is interpreted by the engine.
func (b *Bank) Sample() logiclab.Sample {
	var s logiclab.Sample
	for i, n := range b.pins.Inputs {
		s.Lines[i] = rpio.Pin(n).Read() == rpio.High
	}
	s.Clock = rpio.Pin(b.pins.Clock).Read() == rpio.High
	s.Reset = rpio.Pin(b.pins.Reset).Read() == rpio.High
	return s
}

// Write implements logiclab.Sink, driving the full line state.
func (b *Bank) Write(o logiclab.Output) {
	for i, n := range b.pins.Outputs {
		write(rpio.Pin(n), o.Lines[i])
	}
	for i, n := range b.pins.Segments {
		write(rpio.Pin(n), o.Segments[i])
	}
}

func write(p rpio.Pin, high bool) {
	if high {
		p.High()
	} else {
		p.Low()
	}
}

// Close drives every output LOW and releases the GPIO range.
func (b *Bank) Close() error {
	b.Write(logiclab.Output{})
	return errors.Wrap(rpio.Close(), "gpio: close")
}
