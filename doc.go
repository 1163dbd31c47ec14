/*
Package logiclab implements the core of a digital logic teaching
simulator: a fixed catalog of demonstration circuits (basic gates,
combinational circuits, flip-flops, timers, counters and decoders) and
an engine that evaluates the active circuit once per polling tick.

Each tick, the engine reads switch levels from a Sampler, applies any
pending command, runs the active circuit's evaluation rule and hands
the resulting line levels and 7-segment pattern to a Sink. Stateful
circuits keep their flip-flop, counter and timer state inside the
engine across ticks.
*/
package logiclab
