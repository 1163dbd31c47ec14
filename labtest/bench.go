// Copyright 2026 The logiclab Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package labtest provides a scripted bench for exercising an engine
// tick by tick with explicit control of the input lines, the clock and
// reset levels and the passage of time.
package labtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hwlab/logiclab"
)

// A Bench drives an Engine through ticks. Mutate the exported line
// fields between ticks; Reset is the level of the reset line, so true
// means idle (active-low).
type Bench struct {
	Lines [logiclab.NumInputs]bool
	Clock bool
	Reset bool
	Out   logiclab.Output

	t   *testing.T
	e   *logiclab.Engine
	now time.Time
}

// New returns a bench around e with all lines LOW, the reset line
// idle and the bench clock at a fixed origin.
func New(t *testing.T, e *logiclab.Engine) *Bench {
	return &Bench{t: t, e: e, now: time.Unix(0, 0), Reset: true}
}

// Now returns the bench clock.
func (b *Bench) Now() time.Time { return b.now }

// Advance moves the bench clock forward by d.
func (b *Bench) Advance(d time.Duration) { b.now = b.now.Add(d) }

// Apply forwards cmd to the engine at the current bench time.
func (b *Bench) Apply(cmd logiclab.Command) { b.e.Apply(cmd, b.now) }

// Tick evaluates one tick with the current line levels and records
// the output in b.Out.
func (b *Bench) Tick() logiclab.Output {
	b.Out = b.e.Evaluate(logiclab.Sample{Lines: b.Lines, Clock: b.Clock, Reset: b.Reset}, b.now)
	return b.Out
}

// Pulse drives a full LOW, HIGH, LOW clock sequence, evaluating one
// tick per level.
func (b *Bench) Pulse() {
	b.Clock = false
	b.Tick()
	b.Clock = true
	b.Tick()
	b.Clock = false
	b.Tick()
}

// ExpectLine asserts the level of output line n after the last tick.
func (b *Bench) ExpectLine(n int, level bool) {
	b.t.Helper()
	require.Equal(b.t, level, b.Out.Lines[n], "output line %d", n)
}

// ExpectNibble asserts the value encoded on output lines 0..3 after
// the last tick, LSB on line 0.
func (b *Bench) ExpectNibble(n int) {
	b.t.Helper()
	got := 0
	for i := 0; i < 4; i++ {
		if b.Out.Lines[i] {
			got |= 1 << uint(i)
		}
	}
	require.Equal(b.t, n, got, "output lines 0..3")
}

// ExpectSegments asserts the 7-segment pattern after the last tick.
func (b *Bench) ExpectSegments(pattern [7]bool) {
	b.t.Helper()
	require.Equal(b.t, pattern, b.Out.Segments, "segment pattern")
}
