// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/fmtkit/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the title bar shown above the tab bar.
type Header struct {
	Title    string
	Subtitle string
	Width    int
	theme    *styles.Theme
}

// NewHeader creates a header with the application title.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:    "fmtkit",
		Subtitle: "JSON and YAML tools",
		Width:    80,
		theme:    theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the header. Narrow terminals get the single-line form.
func (h *Header) View() string {
	if h.Width < 60 {
		return h.ViewCompact()
	}

	innerWidth := h.Width - 6

	title := h.theme.HeaderTitle.Render(h.Title)
	if h.theme.HasTrueColor {
		title = lipgloss.NewStyle().Bold(true).Render(
			GradientTitle(h.Title, lipgloss.Color(styles.Purple.Dark), lipgloss.Color(styles.Cyan.Dark)))
	}

	accent := lipgloss.NewStyle().Foreground(styles.Purple)
	brand := accent.Render("{ ") + title + accent.Render(" }")

	center := lipgloss.NewStyle().Width(innerWidth).Align(lipgloss.Center)
	content := lipgloss.JoinVertical(lipgloss.Center,
		center.Render(brand),
		center.Render(h.theme.HeaderSubtitle.Render(h.Subtitle)),
	)

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Purple).
		Padding(0, 2).
		Width(h.Width - 2).
		Render(content)
}

// ViewCompact renders a single-line header: { fmtkit } | subtitle
func (h *Header) ViewCompact() string {
	accent := lipgloss.NewStyle().Foreground(styles.Purple)
	brand := accent.Render("{") + h.theme.HeaderTitle.Render(h.Title) + accent.Render("}")

	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(" | ")

	return strings.Join([]string{brand, h.theme.HeaderSubtitle.Render(h.Subtitle)}, separator)
}

// =============================================================================
// GRADIENT TITLE (for terminals with true color support)
// =============================================================================

// GradientTitle colors text with a left-to-right gradient between two hex
// colors.
func GradientTitle(text string, startColor, endColor lipgloss.Color) string {
	chars := []rune(text)
	n := len(chars)
	if n == 0 {
		return ""
	}
	if n < 3 {
		return lipgloss.NewStyle().Foreground(startColor).Render(text)
	}

	var result strings.Builder
	for i, char := range chars {
		t := float64(i) / float64(n-1)
		style := lipgloss.NewStyle().Foreground(interpolateColor(startColor, endColor, t))
		result.WriteString(style.Render(string(char)))
	}
	return result.String()
}

// interpolateColor blends two hex colors; t runs from 0 (start) to 1 (end).
func interpolateColor(start, end lipgloss.Color, t float64) lipgloss.Color {
	sr, sg, sb := parseHexColor(string(start))
	er, eg, eb := parseHexColor(string(end))

	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + t*(float64(b)-float64(a)))
	}
	return lipgloss.Color(formatHexColor(mix(sr, er), mix(sg, eg), mix(sb, eb)))
}

// parseHexColor parses "#RRGGBB" or "RRGGBB". Invalid input yields white.
func parseHexColor(hex string) (r, g, b uint8) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) < 6 {
		return 255, 255, 255
	}
	v, err := strconv.ParseUint(hex[:6], 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// formatHexColor formats RGB values as "#RRGGBB".
func formatHexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
