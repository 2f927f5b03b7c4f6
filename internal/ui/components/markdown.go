// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/jeranaias/fmtkit/internal/ui/styles"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// MarkdownStyle returns the glamour standard style for theme: "notty" for
// the ASCII profile, otherwise "dark" or "light".
func MarkdownStyle(theme *styles.Theme) string {
	switch {
	case theme == nil || theme.ColorProfile == termenv.Ascii:
		return "notty"
	case theme.IsDark:
		return "dark"
	default:
		return "light"
	}
}

// NewMarkdownRenderer returns a glamour renderer wrapping at width.
func NewMarkdownRenderer(theme *styles.Theme, width int) (*glamour.TermRenderer, error) {
	if width < 20 {
		width = 20
	}
	opts := []glamour.TermRendererOption{
		glamour.WithStandardStyle(MarkdownStyle(theme)),
		glamour.WithWordWrap(width),
	}
	if theme != nil {
		opts = append(opts, glamour.WithColorProfile(theme.ColorProfile))
	}
	return glamour.NewTermRenderer(opts...)
}

// RenderMarkdown renders markdown for terminal display. It returns the
// original content if rendering fails.
func RenderMarkdown(theme *styles.Theme, content string, width int) string {
	r, err := NewMarkdownRenderer(theme, width)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(rendered, "\n")
}
