// Copyright 2026 The logiclab Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package logic

// HalfAdd returns the sum and carry bits of a + b.
//
//	sum   = a ^ b
//	carry = a && b
func HalfAdd(a, b bool) (sum, carry bool) {
	return Xor(a, b), a && b
}

// FullAdd returns the sum and carry bits of a + b + cin.
//
//	sum   = a ^ b ^ cin
//	carry = (a && b) || (b && cin) || (a && cin)
func FullAdd(a, b, cin bool) (sum, carry bool) {
	return Xor(Xor(a, b), cin), a && b || b && cin || a && cin
}
