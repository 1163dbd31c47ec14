// Copyright 2026 The logiclab Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package console implements the simulator's text command channel. It
// parses one line of text at a time into an engine command, resolving
// circuit names through the catalog. Menu requests and invalid input
// are handled here and never reach the engine.
package console

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hwlab/logiclab"
)

// A Router turns incoming text lines into engine commands and writes
// user-facing messages (menu, confirmations, errors) to its writer.
type Router struct {
	w   io.Writer
	log *slog.Logger
}

// New returns a router writing user messages to w. If log is nil,
// slog.Default() is used.
func New(w io.Writer, log *slog.Logger) *Router {
	if log == nil {
		log = slog.Default()
	}
	return &Router{w: w, log: log}
}

// Parse interprets one line of text. It returns the resulting engine
// command and true, or false when the line was handled entirely by the
// router (menu, empty or invalid input).
func (r *Router) Parse(line string) (logiclab.Command, bool) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return logiclab.Command{}, false
	case "menu":
		r.Menu()
		return logiclab.Command{}, false
	case "reset":
		return logiclab.Reset(), true
	}
	id, err := logiclab.Lookup(line)
	if err != nil {
		fmt.Fprintln(r.w, "Invalid command. Type 'menu' for options.")
		r.log.Debug("command rejected", "input", line, "err", err)
		return logiclab.Command{}, false
	}
	fmt.Fprintf(r.w, "Circuit set to: %s\n", id)
	return logiclab.Select(id), true
}

// Menu writes the list of available circuits and commands.
func (r *Router) Menu() {
	fmt.Fprintln(r.w, "\n==== Digital Logic Lab Simulator ====")
	fmt.Fprintln(r.w, "Available Circuits:")
	for cat := logiclab.BasicGate; cat <= logiclab.Decoder; cat++ {
		fmt.Fprintf(r.w, "%s: %s\n", cat, strings.Join(logiclab.Names(cat), ", "))
	}
	fmt.Fprintln(r.w, "\nCommands: 'menu', 'reset', or circuit name")
	fmt.Fprintln(r.w, "===================================")
}

// Lines reads text lines from rd and delivers the resulting engine
// commands on the returned channel. The channel is closed when rd is
// exhausted.
func (r *Router) Lines(rd io.Reader) <-chan logiclab.Command {
	ch := make(chan logiclab.Command)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(rd)
		for sc.Scan() {
			if cmd, ok := r.Parse(sc.Text()); ok {
				ch <- cmd
			}
		}
	}()
	return ch
}
