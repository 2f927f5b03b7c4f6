// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/fmtkit/internal/toolkit"
	"github.com/jeranaias/fmtkit/internal/ui/styles"
)

// =============================================================================
// VALIDATION RESULT BOX
// =============================================================================

// RenderResult draws a validator result block in its state's style:
// neutral for placeholders, green for valid input, red for invalid input.
func RenderResult(theme *styles.Theme, block toolkit.ResultBlock, width int) string {
	box := theme.ResultPlaceholder
	icon := styles.StatusIndicators.Info
	switch block.State {
	case toolkit.ResultValid:
		box = theme.ResultValid
		icon = styles.StatusIndicators.Success
	case toolkit.ResultInvalid:
		box = theme.ResultInvalid
		icon = styles.StatusIndicators.Error
	}

	var lines []string
	if block.Header != "" {
		lines = append(lines, theme.ResultHeader.Render(icon+" "+block.Header))
	}
	if block.Message != "" {
		msg := block.Message
		if block.State == toolkit.ResultPlaceholder {
			msg = theme.Placeholder.Render(msg)
		}
		lines = append(lines, msg)
	}
	if len(block.Details) > 0 {
		lines = append(lines, "")
	}
	for _, d := range block.Details {
		value := d.Value
		// Parser messages can span lines; keep continuation lines aligned.
		value = strings.ReplaceAll(value, "\n", "\n"+strings.Repeat(" ", len(d.Label)+2))
		lines = append(lines, theme.ResultLabel.Render(d.Label+":")+" "+value)
	}
	if block.Hint != "" {
		lines = append(lines, "", theme.ResultHint.Render(block.Hint))
	}

	// Borders and padding take 4 cells.
	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	return box.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
