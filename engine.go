// Copyright 2026 The logiclab Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package logiclab

import (
	"log/slog"
	"time"
)

// A CommandKind discriminates engine commands.
type CommandKind int

// Engine command kinds.
const (
	CmdSelect CommandKind = iota
	CmdReset
)

// A Command is a state transition request for the engine. Commands
// carry an already resolved CircuitID: unknown circuit names are
// rejected at the console boundary and never reach the engine.
type Command struct {
	Kind    CommandKind
	Circuit CircuitID
}

// Select returns the command that makes id the active circuit.
func Select(id CircuitID) Command { return Command{Kind: CmdSelect, Circuit: id} }

// Reset returns the command that clears all persisted evaluation
// state without changing the active circuit.
func Reset() Command { return Command{Kind: CmdReset} }

// Engine evaluates the active circuit once per tick and owns all
// persisted evaluation state: the active circuit, the last observed
// clock level, the flip-flop value, the counter value, the last pulse
// timestamp and the last emitted output.
//
// An Engine is not safe for concurrent use. Apply and Evaluate are
// meant to be called from the single goroutine driving the polling
// loop, with any pending command applied before that tick's Evaluate.
type Engine struct {
	log *slog.Logger

	active    CircuitID
	lastClock bool
	flipFlop  bool
	counter   int
	lastPulse time.Time
	out       Output
}

// New returns an engine with all-LOW state and the first basic gate
// active. If log is nil, slog.Default() is used.
func New(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{log: log}
}

// Active returns the currently selected circuit.
func (e *Engine) Active() CircuitID { return e.active }

// Apply performs cmd. Selecting a circuit also clears all persisted
// state and zeroes the outputs, so a switch never inherits stale state
// from the previous circuit.
func (e *Engine) Apply(cmd Command, now time.Time) {
	if cmd.Kind == CmdSelect {
		e.active = cmd.Circuit
	}
	e.flipFlop = false
	e.counter = 0
	e.lastPulse = now
	e.out = Output{}
}

// Evaluate runs the active circuit's evaluation rule against s and
// returns the full output state for this tick. A catalog entry with no
// rule leaves the output unchanged.
func (e *Engine) Evaluate(s Sample, now time.Time) Output {
	spec := &catalog[e.active]
	if spec.eval == nil {
		e.log.Warn("no evaluation rule", "circuit", spec.name, "category", spec.cat.String())
		return e.out
	}
	spec.eval(e, s, now)
	return e.out
}

// risingEdge reports whether clk is a LOW to HIGH transition from the
// previously stored level and stores clk as the new last level. The
// sequential and counter rules share this one helper.
func (e *Engine) risingEdge(clk bool) bool {
	edge := clk && !e.lastClock
	e.lastClock = clk
	return edge
}
