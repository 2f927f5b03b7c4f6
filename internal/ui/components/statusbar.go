// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/fmtkit/internal/format"
	"github.com/jeranaias/fmtkit/internal/toolkit"
	"github.com/jeranaias/fmtkit/internal/ui/styles"
	"github.com/jeranaias/fmtkit/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar is the bottom line: active tool, declared format, input size
// and key hints.
type StatusBar struct {
	Tab    toolkit.TabID
	Format format.Format
	// ShowFormat is false on validator tabs, whose format is fixed.
	ShowFormat bool
	Lines      int
	Chars      int
	// Hints is the rendered short help, usually from bubbles/help.
	Hints string
	Width int
	theme *styles.Theme
}

// NewStatusBar creates a status bar for the converter tab.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Tab:        toolkit.TabConverter,
		Format:     format.JSON,
		ShowFormat: true,
		Width:      80,
		theme:      theme,
	}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetInput records the size of the active input.
func (s *StatusBar) SetInput(text string) {
	s.Lines = util.CountLines(text)
	s.Chars = len([]rune(text))
}

// View renders the status bar for the current width.
func (s *StatusBar) View() string {
	switch styles.LayoutFor(s.Width) {
	case styles.LayoutNarrow:
		return s.viewNarrow()
	case styles.LayoutMedium:
		return s.viewMedium()
	default:
		return s.viewWide()
	}
}

// viewNarrow: [JSON] 12L
func (s *StatusBar) viewNarrow() string {
	var parts []string
	if s.ShowFormat {
		parts = append(parts, s.renderFormat())
	}
	parts = append(parts, lipgloss.NewStyle().Foreground(styles.TextMuted).Render(toStr(s.Lines)+"L"))

	return s.frame(strings.Join(parts, " "), false)
}

// viewMedium: Converter | JSON | 12 lines, 340 chars
func (s *StatusBar) viewMedium() string {
	return s.frame(strings.Join(s.sections(), s.separator()), true)
}

// viewWide: sections on the left, hints on the right.
func (s *StatusBar) viewWide() string {
	left := strings.Join(s.sections(), s.separator())
	if s.Hints == "" {
		return s.frame(left, true)
	}

	// Padding takes 2 cells.
	space := s.Width - 2 - lipgloss.Width(left) - lipgloss.Width(s.Hints)
	if space < 2 {
		return s.frame(left, true)
	}
	return s.frame(left+strings.Repeat(" ", space)+s.Hints, true)
}

// ==========================================================================
// RENDER HELPERS
// ==========================================================================

func (s *StatusBar) sections() []string {
	parts := []string{
		lipgloss.NewStyle().Foreground(styles.TextPrimary).Bold(true).Render(s.Tab.Title()),
	}
	if s.ShowFormat {
		parts = append(parts, s.renderFormat())
	}
	parts = append(parts, lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Render(plural(s.Lines, "line")+", "+plural(s.Chars, "char")))
	return parts
}

func (s *StatusBar) renderFormat() string {
	return s.theme.FormatBadge(s.Format.String()).Render(s.Format.Label())
}

func (s *StatusBar) separator() string {
	return lipgloss.NewStyle().Foreground(styles.Overlay).Render(" | ")
}

func (s *StatusBar) frame(content string, padded bool) string {
	style := s.theme.StatusBar.Width(s.Width)
	if !padded {
		style = style.Padding(0)
	}
	return style.Render(content)
}
