package gpio_test

import (
	"testing"

	"github.com/hwlab/logiclab/gpio"
)

func TestDefaultPins_distinct(t *testing.T) {
	p := gpio.DefaultPins
	seen := make(map[uint8]bool)
	claim := func(n uint8) {
		t.Helper()
		if seen[n] {
			t.Errorf("BCM pin %d assigned twice", n)
		}
		seen[n] = true
	}
	for _, n := range p.Inputs {
		claim(n)
	}
	for _, n := range p.Outputs {
		claim(n)
	}
	claim(p.Clock)
	claim(p.Reset)
	for _, n := range p.Segments {
		claim(n)
	}
}
