// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package clipboard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Multiplexer selects the escape-sequence wrapping needed to pass OSC 52
// through a terminal multiplexer.
type Multiplexer int

const (
	MuxNone Multiplexer = iota
	MuxTmux
	MuxScreen
)

// DetectMultiplexer inspects TMUX and TERM.
func DetectMultiplexer(getenv func(string) string) Multiplexer {
	if getenv == nil {
		getenv = os.Getenv
	}
	if getenv("TMUX") != "" {
		return MuxTmux
	}
	if strings.HasPrefix(getenv("TERM"), "screen") {
		return MuxScreen
	}
	return MuxNone
}

// OSC52 writes text to the terminal clipboard with an OSC 52 sequence.
// It cannot tell whether the terminal honored the sequence; only write
// errors are reported.
type OSC52 struct {
	Out io.Writer
	Mux Multiplexer
}

// NewOSC52 returns an OSC52 writer on stderr with the multiplexer detected
// from the environment.
func NewOSC52() *OSC52 {
	return &OSC52{Out: os.Stderr, Mux: DetectMultiplexer(os.Getenv)}
}

// Sequence returns the escape sequence that copies text.
func (o *OSC52) Sequence(text string) string {
	return o.sequence(text).String()
}

func (o *OSC52) sequence(text string) osc52.Sequence {
	seq := osc52.New(text)
	switch o.Mux {
	case MuxTmux:
		seq = seq.Tmux()
	case MuxScreen:
		seq = seq.Screen()
	}
	return seq
}

// WriteAll emits the sequence for text.
func (o *OSC52) WriteAll(text string) error {
	out := o.Out
	if out == nil {
		out = os.Stderr
	}
	if _, err := o.sequence(text).WriteTo(out); err != nil {
		return fmt.Errorf("write osc52 sequence: %w", err)
	}
	return nil
}
