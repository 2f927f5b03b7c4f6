// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tools

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jeranaias/fmtkit/internal/format"
	"github.com/jeranaias/fmtkit/internal/toolkit"
	"github.com/jeranaias/fmtkit/internal/ui/components"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the tools screen.
func (m Model) View() string {
	if !m.ready || m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpPanel()
	}

	m.syncStatus()

	var body string
	switch m.ctrl.ActiveTab() {
	case toolkit.TabConverter:
		body = m.renderConverter()
	default:
		body = m.renderValidator()
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		m.tabBar.View(),
		"",
		body,
		m.statusBar.View(),
	)

	// Toasts sit bottom-right, just above the status bar.
	if m.toasts.HasToasts() {
		stack := components.RenderToastStack(m.toasts.GetToasts(), m.width, 0)
		return overlayBottomRight(base, stack, m.width, statusBarHeight)
	}
	return base
}

// =============================================================================
// CONVERTER
// =============================================================================

func (m Model) renderConverter() string {
	input := m.panel("Input", m.converterInput.View(), m.focus == focusInput)

	var out string
	if m.outputText == "" {
		out = m.theme.Placeholder.Render("Converted output appears here. Press " +
			m.keys.Convert.Help().Key + " to convert.")
	} else {
		out = m.output.View()
	}
	output := m.panel("Output", out, m.focus == focusOutput)

	return lipgloss.JoinVertical(lipgloss.Left, input, m.renderFormatLine(), output)
}

// renderFormatLine shows the declared input format and the target.
func (m Model) renderFormatLine() string {
	from := m.ctrl.Format()
	line := " Input " + m.badge(from) + " -> " + m.badge(from.Other())
	if m.cfg.UI.AutoDetect {
		line += m.theme.ShortcutDesc.Render("  auto-detect on, " +
			m.keys.ToggleFormat.Help().Key + " to switch")
	} else {
		line += m.theme.ShortcutDesc.Render("  " + m.keys.ToggleFormat.Help().Key + " to switch")
	}
	return line
}

func (m Model) badge(f format.Format) string {
	return m.theme.FormatBadge(f.Label()).Render(f.Label())
}

// =============================================================================
// VALIDATORS
// =============================================================================

func (m Model) renderValidator() string {
	id := m.ctrl.ActiveTab()
	f, _ := toolkit.ValidatorFormat(id)

	input := m.panel(f.Label()+" input", m.activeEditor().View(), true)
	result := components.RenderResult(m.theme, m.Result(id), m.width-2)
	return lipgloss.JoinVertical(lipgloss.Left, input, result)
}

// =============================================================================
// HELP PANEL
// =============================================================================

func (m Model) renderHelpPanel() string {
	title := m.theme.HeaderTitle.Render(" Keyboard shortcuts")
	footer := m.theme.ShortcutDesc.Render(" " + m.keys.CloseHelp.Help().Key +
		" to close, arrows to scroll")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.helpView.View(), footer)
}

// =============================================================================
// HELPERS
// =============================================================================

// panel frames content with a border and a label on the first line.
func (m Model) panel(label, content string, focused bool) string {
	style := m.theme.Panel
	if focused {
		style = m.theme.PanelFocused
	}
	head := m.theme.PanelLabel.Render(label)
	return style.Width(m.width - 2).Render(head + "\n" + content)
}

// overlayBottomRight draws overlay over the bottom-right corner of base,
// leaving the last reserve lines of base untouched.
func overlayBottomRight(base, overlay string, width, reserve int) string {
	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(overlay, "\n")

	start := len(baseLines) - reserve - len(overLines)
	if start < 0 {
		start = 0
	}
	for i, ol := range overLines {
		row := start + i
		if row >= len(baseLines) {
			break
		}
		w := ansi.StringWidth(ol)
		if w == 0 {
			continue
		}
		keep := width - w
		if keep < 0 {
			keep = 0
		}
		left := ansi.Truncate(baseLines[row], keep, "")
		if pad := keep - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		baseLines[row] = left + ol
	}
	return strings.Join(baseLines, "\n")
}
