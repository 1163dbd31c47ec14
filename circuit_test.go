package logiclab_test

import (
	"testing"

	"github.com/hwlab/logiclab"
)

func TestLookup(t *testing.T) {
	td := []struct {
		name string
		id   logiclab.CircuitID
		cat  logiclab.Category
	}{
		{"AND", logiclab.AND, logiclab.BasicGate},
		{"XNOR", logiclab.XNOR, logiclab.BasicGate},
		{"Half Adder", logiclab.HalfAdder, logiclab.Combinational},
		{"Multiplexer (MUX)", logiclab.Mux, logiclab.Combinational},
		{"D Flip-Flop", logiclab.DFlipFlop, logiclab.Sequential},
		{"JK Flip-Flop", logiclab.JKFlipFlop, logiclab.Sequential},
		{"Astable Multivibrator", logiclab.Astable, logiclab.Timer},
		{"Binary Up Counter", logiclab.UpCounter, logiclab.Counter},
		{"Binary Down Counter", logiclab.DownCounter, logiclab.Counter},
		{"BCD Decoder with 7-Segment Display", logiclab.BCDDecoder, logiclab.Decoder},
	}
	for _, d := range td {
		id, err := logiclab.Lookup(d.name)
		if err != nil {
			t.Errorf("Lookup(%q): %v", d.name, err)
			continue
		}
		if id != d.id {
			t.Errorf("Lookup(%q) = %v, want %v", d.name, id, d.id)
		}
		if id.Category() != d.cat {
			t.Errorf("%v.Category() = %v, want %v", id, id.Category(), d.cat)
		}
		if id.Name() != d.name {
			t.Errorf("%v.Name() = %q, want %q", id, id.Name(), d.name)
		}
	}
}

func TestLookup_unknown(t *testing.T) {
	for _, name := range []string{"and", "XOR ", "Mux", "Multiplexer(MUX)", ""} {
		if id, err := logiclab.Lookup(name); err == nil {
			t.Errorf("Lookup(%q) = %v, want error", name, id)
		}
	}
}

func TestNames(t *testing.T) {
	td := []struct {
		cat  logiclab.Category
		want []string
	}{
		{logiclab.BasicGate, []string{"AND", "OR", "NOT", "NAND", "NOR", "XOR", "XNOR"}},
		{logiclab.Combinational, []string{"Half Adder", "Full Adder", "Multiplexer (MUX)"}},
		{logiclab.Sequential, []string{"D Flip-Flop", "JK Flip-Flop"}},
		{logiclab.Timer, []string{"Astable Multivibrator"}},
		{logiclab.Counter, []string{"Binary Up Counter", "Binary Down Counter"}},
		{logiclab.Decoder, []string{"BCD Decoder with 7-Segment Display"}},
	}
	for _, d := range td {
		got := logiclab.Names(d.cat)
		if len(got) != len(d.want) {
			t.Errorf("Names(%v) = %v, want %v", d.cat, got, d.want)
			continue
		}
		for i := range got {
			if got[i] != d.want[i] {
				t.Errorf("Names(%v)[%d] = %q, want %q", d.cat, i, got[i], d.want[i])
			}
		}
	}
}
