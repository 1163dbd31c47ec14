package logic_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hwlab/logiclab/logic"
)

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestHalfAdd(t *testing.T) {
	td := []struct {
		a, b       bool
		sum, carry bool
	}{
		{false, false, false, false},
		{false, true, true, false},
		{true, false, true, false},
		{true, true, false, true},
	}
	for _, d := range td {
		sum, carry := logic.HalfAdd(d.a, d.b)
		if sum != d.sum || carry != d.carry {
			t.Errorf("HalfAdd(%v, %v) = %v, %v, want %v, %v", d.a, d.b, sum, carry, d.sum, d.carry)
		}
	}
}

func TestFullAdd(t *testing.T) {
	for i := 0; i < 8; i++ {
		a, b, cin := i&4 != 0, i&2 != 0, i&1 != 0
		sum, carry := logic.FullAdd(a, b, cin)
		want := b2i(a) + b2i(b) + b2i(cin)
		if got := b2i(sum) + 2*b2i(carry); got != want {
			t.Errorf("FullAdd(%v, %v, %v) = %v, %v: encodes %d, want %d", a, b, cin, sum, carry, got, want)
		}
	}
}

func Test_adder_properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("half adder encodes a+b", prop.ForAll(
		func(a, b bool) bool {
			sum, carry := logic.HalfAdd(a, b)
			return b2i(sum)+2*b2i(carry) == b2i(a)+b2i(b)
		},
		gen.Bool(), gen.Bool(),
	))
	properties.Property("full adder is commutative in a and b", prop.ForAll(
		func(a, b, cin bool) bool {
			s1, c1 := logic.FullAdd(a, b, cin)
			s2, c2 := logic.FullAdd(b, a, cin)
			return s1 == s2 && c1 == c2
		},
		gen.Bool(), gen.Bool(), gen.Bool(),
	))

	properties.TestingRun(t)
}
