// Copyright 2026 The logiclab Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package logiclab

// Line counts of the fixed I/O banks.
const (
	NumInputs   = 8
	NumOutputs  = 8
	NumSegments = 7
)

// A Sample is a snapshot of the input bank taken once per tick: the
// eight input line levels plus the clock and reset control lines.
// Reset is active-low: false means asserted.
type Sample struct {
	Lines [NumInputs]bool
	Clock bool
	Reset bool
}

// An Output carries the full desired state of the output bank for one
// tick: the eight output line levels and the 7-segment pattern, one
// bit per segment a-g. Unchanged lines are rewritten, not diffed.
type Output struct {
	Lines    [NumOutputs]bool
	Segments [NumSegments]bool
}

// A Sampler reads the current level of every input line on demand.
type Sampler interface {
	Sample() Sample
}

// A Sink drives the output lines and the 7-segment display.
type Sink interface {
	Write(Output)
}

// SamplerFunc adapts a function to the Sampler interface.
type SamplerFunc func() Sample

// Sample implements Sampler.
func (f SamplerFunc) Sample() Sample { return f() }

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Output)

// Write implements Sink.
func (f SinkFunc) Write(o Output) { f(o) }
