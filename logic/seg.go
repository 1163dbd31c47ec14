// Copyright 2026 The logiclab Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package logic

// 7-segment display patterns for the digits 0-9, segment a in bit 0
// through segment g in bit 6.
var digits = [10]uint8{
	0x3f, // 0
	0x06, // 1
	0x5b, // 2
	0x4f, // 3
	0x66, // 4
	0x6d, // 5
	0x7d, // 6
	0x07, // 7
	0x7f, // 8
	0x6f, // 9
}

// Nibble packs four line levels into an integer, b0 least significant.
func Nibble(b0, b1, b2, b3 bool) int {
	n := 0
	for i, b := range [4]bool{b0, b1, b2, b3} {
		if b {
			n |= 1 << uint(i)
		}
	}
	return n
}

// Digit returns the 7-segment pattern for n, one level per segment
// a-g. Values outside [0,9] clamp to the nearest bound.
func Digit(n int) [7]bool {
	if n < 0 {
		n = 0
	}
	if n > 9 {
		n = 9
	}
	var s [7]bool
	for i := range s {
		s[i] = digits[n]>>uint(i)&1 == 1
	}
	return s
}
