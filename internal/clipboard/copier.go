// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package clipboard

import (
	"context"
	"errors"
)

// ErrNoFallback is recorded when the primary writer fails and no fallback
// is configured.
var ErrNoFallback = errors.New("no clipboard fallback configured")

// Method names the writer that produced an Outcome.
type Method int

const (
	MethodPrimary Method = iota
	MethodFallback
)

func (m Method) String() string {
	if m == MethodFallback {
		return "fallback"
	}
	return "primary"
}

// Outcome describes one copy attempt.
type Outcome struct {
	Method      Method
	PrimaryErr  error
	FallbackErr error
}

// Succeeded reports whether some writer actually accepted the text.
func (o Outcome) Succeeded() bool {
	if o.Method == MethodPrimary {
		return o.PrimaryErr == nil
	}
	return o.FallbackErr == nil
}

// Copier tries Primary and falls back to Fallback when it fails.
type Copier struct {
	Primary  Writer
	Fallback Writer
}

// NewCopier returns a Copier using the system clipboard, falling back to
// OSC 52 when osc52 is true.
func NewCopier(osc52 bool) *Copier {
	c := &Copier{Primary: System{}}
	if osc52 {
		c.Fallback = NewOSC52()
	}
	return c
}

// Copy writes text. The primary write is abandoned when ctx is done, which
// counts as a primary failure.
func (c *Copier) Copy(ctx context.Context, text string) Outcome {
	primaryErr := c.writePrimary(ctx, text)
	if primaryErr == nil {
		return Outcome{Method: MethodPrimary}
	}

	out := Outcome{Method: MethodFallback, PrimaryErr: primaryErr}
	if c.Fallback == nil {
		out.FallbackErr = ErrNoFallback
		return out
	}
	out.FallbackErr = c.Fallback.WriteAll(text)
	return out
}

func (c *Copier) writePrimary(ctx context.Context, text string) error {
	if c.Primary == nil {
		return ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- c.Primary.WriteAll(text)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
