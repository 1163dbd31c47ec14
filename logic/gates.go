// Copyright 2026 The logiclab Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logic provides the pure combinational functions behind the
// simulator's circuit catalog: basic gates, adders, a multiplexer and
// the BCD 7-segment decoder table.
package logic

// Not returns !a.
func Not(a bool) bool { return !a }

// And returns a && b.
func And(a, b bool) bool { return a && b }

// Nand returns !(a && b).
func Nand(a, b bool) bool { return !(a && b) }

// Or returns a || b.
func Or(a, b bool) bool { return a || b }

// Nor returns !(a || b).
func Nor(a, b bool) bool { return !(a || b) }

// Xor returns (a && !b) || (!a && b).
func Xor(a, b bool) bool { return a && !b || !a && b }

// Xnor returns a && b || !a && !b.
func Xnor(a, b bool) bool { return a && b || !a && !b }
