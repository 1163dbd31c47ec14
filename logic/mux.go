// Copyright 2026 The logiclab Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package logic

// Mux4 selects one of the four data lines a, b, c, d by the select
// lines s1 (most significant) and s0, per the standard binary-select
// truth table.
//
//	s1 s0  out
//	 0  0   a
//	 0  1   b
//	 1  0   c
//	 1  1   d
func Mux4(a, b, c, d, s1, s0 bool) bool {
	return !s1 && !s0 && a || !s1 && s0 && b || s1 && !s0 && c || s1 && s0 && d
}
