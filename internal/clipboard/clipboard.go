// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package clipboard writes text to the user's clipboard.
//
// The system clipboard (via pbcopy, xclip, xsel, wl-copy or the Windows API)
// is tried first. When it is missing or fails, the text is sent to the
// terminal as an OSC 52 escape sequence, which most modern terminals, tmux
// and GNU screen forward to the local clipboard. This also works over SSH.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned by System when no clipboard utility exists.
var ErrUnavailable = errors.New("system clipboard unavailable")

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

// WriteAll calls f(text).
func (f WriterFunc) WriteAll(text string) error { return f(text) }

// System writes to the OS clipboard.
type System struct{}

// WriteAll copies text to the OS clipboard.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// Available reports whether a system clipboard utility was found.
func (System) Available() bool {
	return !clipboard.Unsupported
}
