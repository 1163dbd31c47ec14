package logic_test

import (
	"testing"

	"github.com/hwlab/logiclab/logic"
)

// reference patterns, segment a in bit 0 through g in bit 6
var segPatterns = [10]uint8{
	0x3f, 0x06, 0x5b, 0x4f, 0x66, 0x6d, 0x7d, 0x07, 0x7f, 0x6f,
}

func pattern(bits uint8) [7]bool {
	var p [7]bool
	for i := range p {
		p[i] = bits>>uint(i)&1 == 1
	}
	return p
}

func TestDigit(t *testing.T) {
	for n := 0; n <= 9; n++ {
		if got, want := logic.Digit(n), pattern(segPatterns[n]); got != want {
			t.Errorf("Digit(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestDigit_clamp(t *testing.T) {
	nine := pattern(segPatterns[9])
	for n := 10; n <= 15; n++ {
		if got := logic.Digit(n); got != nine {
			t.Errorf("Digit(%d) = %v, want the pattern for 9", n, got)
		}
	}
	if got := logic.Digit(-1); got != pattern(segPatterns[0]) {
		t.Errorf("Digit(-1) = %v, want the pattern for 0", got)
	}
}

func TestNibble(t *testing.T) {
	for n := 0; n < 16; n++ {
		if got := logic.Nibble(n&1 != 0, n&2 != 0, n&4 != 0, n&8 != 0); got != n {
			t.Errorf("Nibble of %04b = %d", n, got)
		}
	}
}
