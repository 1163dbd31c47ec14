// Copyright 2026 The logiclab Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package logiclab

import (
	"time"

	"github.com/hwlab/logiclab/logic"
)

// Period of the astable multivibrator output.
const astablePeriod = time.Second

// An evalFn applies one circuit's evaluation rule for the tick,
// updating the engine's persisted state and output in place.
type evalFn func(e *Engine, s Sample, now time.Time)

// gateRule adapts a two-input boolean function into a basic gate rule:
// a = line 0, b = line 1, result on output line 0. Stateless,
// recomputed every tick regardless of the clock.
func gateRule(fn func(a, b bool) bool) evalFn {
	return func(e *Engine, s Sample, _ time.Time) {
		e.out = Output{}
		e.out.Lines[0] = fn(s.Lines[0], s.Lines[1])
	}
}

func halfAdderRule(e *Engine, s Sample, _ time.Time) {
	sum, carry := logic.HalfAdd(s.Lines[0], s.Lines[1])
	e.out = Output{}
	e.out.Lines[0], e.out.Lines[1] = sum, carry
}

func fullAdderRule(e *Engine, s Sample, _ time.Time) {
	sum, carry := logic.FullAdd(s.Lines[0], s.Lines[1], s.Lines[2])
	e.out = Output{}
	e.out.Lines[0], e.out.Lines[1] = sum, carry
}

// muxRule wires the 4:1 multiplexer the way the front panel does:
// data on lines 0, 1, 2 and 4, selects S0 on line 2 and S1 on line 3.
// Line 2 doubles as data input C and select S0.
func muxRule(e *Engine, s Sample, _ time.Time) {
	e.out = Output{}
	e.out.Lines[0] = logic.Mux4(s.Lines[0], s.Lines[1], s.Lines[2], s.Lines[4], s.Lines[3], s.Lines[2])
}

// dffRule latches line 0 on a rising clock edge. An asserted reset
// line forces the value LOW on the same tick, overriding the edge.
func dffRule(e *Engine, s Sample, _ time.Time) {
	if e.risingEdge(s.Clock) {
		e.flipFlop = s.Lines[0]
	}
	if !s.Reset {
		e.flipFlop = false
	}
	e.out = Output{}
	e.out.Lines[0] = e.flipFlop
}

func jkRule(e *Engine, s Sample, _ time.Time) {
	if e.risingEdge(s.Clock) {
		j, k := s.Lines[0], s.Lines[1]
		switch {
		case j && k:
			e.flipFlop = !e.flipFlop
		case j:
			e.flipFlop = true
		case k:
			e.flipFlop = false
		}
	}
	if !s.Reset {
		e.flipFlop = false
	}
	e.out = Output{}
	e.out.Lines[0] = e.flipFlop
}

// astableRule inverts output line 0 once the period has elapsed since
// the last inversion, and holds it otherwise. The previous output
// level is engine state, not re-derived from the sample.
func astableRule(e *Engine, _ Sample, now time.Time) {
	if now.Sub(e.lastPulse) >= astablePeriod {
		e.out.Lines[0] = !e.out.Lines[0]
		e.lastPulse = now
	}
}

// counterRule returns the rule for a 4-bit binary counter stepping by
// step on each rising edge. Unlike the flip-flops, the reset line is
// checked before edge handling: an edge on the same tick counts from
// the cleared value. Lines 0..3 carry the counter bits, LSB on line 0.
func counterRule(step int) evalFn {
	return func(e *Engine, s Sample, _ time.Time) {
		if !s.Reset {
			e.counter = 0
		}
		if e.risingEdge(s.Clock) {
			e.counter = (e.counter + step + 16) % 16
		}
		e.out = Output{}
		for i := 0; i < 4; i++ {
			e.out.Lines[i] = e.counter>>uint(i)&1 == 1
		}
	}
}

// bcdRule decodes lines 0..3 as a 4-bit binary value (line 3 most
// significant), clamps it to [0,9] and drives the segment pattern.
func bcdRule(e *Engine, s Sample, _ time.Time) {
	v := logic.Nibble(s.Lines[0], s.Lines[1], s.Lines[2], s.Lines[3])
	e.out = Output{}
	e.out.Segments = logic.Digit(v)
}
