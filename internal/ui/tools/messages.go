// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tools

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/fmtkit/internal/toolkit"
)

// =============================================================================
// CLIPBOARD MESSAGES
// =============================================================================

// CopyResultMsg carries the outcome of an asynchronous clipboard write back
// to the update loop, where it is reported.
type CopyResultMsg struct {
	Result toolkit.CopyResult
}

// copyCmd writes text to the clipboard off the update loop. The write is
// bounded by timeout; the fallback still runs if the primary times out.
func copyCmd(ctx context.Context, ctrl *toolkit.Controller, text string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return CopyResultMsg{Result: ctrl.CopyText(ctx, text)}
	}
}
