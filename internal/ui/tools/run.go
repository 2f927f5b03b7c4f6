// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tools

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/fmtkit/internal/config"
	"github.com/jeranaias/fmtkit/internal/ui/styles"
)

// Run starts the full-screen tools UI and blocks until the user quits or
// ctx is cancelled. A nil Config uses config.Global().
func Run(ctx context.Context, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Config == nil {
		opts.Config = config.Global()
	}
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme(opts.Config.UI.Theme)
	}
	opts.Theme.Apply()
	opts.Context = ctx

	m, err := New(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Quit()
		case <-done:
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tools ui: %w", err)
	}
	return nil
}
