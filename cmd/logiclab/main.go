// Copyright 2026 The logiclab Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Command logiclab runs the digital logic lab simulator: a polling
// loop that applies at most one pending console command per tick,
// samples the input bank, evaluates the active circuit and drives the
// output bank.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hwlab/logiclab"
	"github.com/hwlab/logiclab/console"
	"github.com/hwlab/logiclab/gpio"
)

func main() {
	var (
		tick time.Duration
		sim  bool
	)
	cmd := &cobra.Command{
		Use:           "logiclab",
		Short:         "digital logic lab simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(tick, sim)
		},
	}
	cmd.Flags().DurationVar(&tick, "tick", 10*time.Millisecond, "polling interval")
	cmd.Flags().BoolVar(&sim, "sim", false, "run without GPIO hardware, logging output changes")
	if err := cmd.Execute(); err != nil {
		slog.Error("logiclab", "err", err)
		os.Exit(1)
	}
}

func run(tick time.Duration, sim bool) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var (
		sampler logiclab.Sampler
		sink    logiclab.Sink
	)
	if sim {
		sampler, sink = simBench(log)
	} else {
		bank, err := gpio.Open(gpio.DefaultPins)
		if err != nil {
			return err
		}
		defer bank.Close()
		sampler, sink = bank, bank
	}

	engine := logiclab.New(log)
	router := console.New(os.Stdout, log)

	log.Info("digital logic lab simulator initialized", "circuit", engine.Active().String())
	router.Menu()
	cmds := router.Lines(os.Stdin)

	tk := time.NewTicker(tick)
	defer tk.Stop()
	for now := range tk.C {
		// at most one command per tick, applied before evaluation
		select {
		case cmd, ok := <-cmds:
			if !ok {
				return nil
			}
			engine.Apply(cmd, now)
		default:
		}
		sink.Write(engine.Evaluate(sampler.Sample(), now))
	}
	return nil
}

// simBench returns an idle input bank and a sink that logs output
// changes, for running on a desktop without GPIO hardware.
func simBench(log *slog.Logger) (logiclab.Sampler, logiclab.Sink) {
	sampler := logiclab.SamplerFunc(func() logiclab.Sample {
		return logiclab.Sample{Reset: true}
	})
	var last logiclab.Output
	seen := false
	sink := logiclab.SinkFunc(func(o logiclab.Output) {
		if seen && o == last {
			return
		}
		seen, last = true, o
		log.Info("outputs", "lines", o.Lines, "segments", o.Segments)
	})
	return sampler, sink
}
