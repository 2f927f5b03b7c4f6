// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/fmtkit/internal/ui/styles"
)

// =============================================================================
// HEADER TESTS
// =============================================================================

func TestNewHeader(t *testing.T) {
	theme := styles.NewTheme("dark")
	h := NewHeader(theme)

	if h == nil {
		t.Fatal("NewHeader() returned nil")
	}
	if h.Title != "fmtkit" {
		t.Errorf("NewHeader() Title = %q, want %q", h.Title, "fmtkit")
	}
	if h.Width != 80 {
		t.Errorf("NewHeader() Width = %d, want 80", h.Width)
	}
	if h.theme != theme {
		t.Error("NewHeader() did not set theme")
	}
}

func TestHeaderView(t *testing.T) {
	h := NewHeader(styles.NewTheme("dark"))

	for _, width := range []int{60, 80, 120, 200} {
		h.SetWidth(width)
		view := h.View()
		if view == "" {
			t.Errorf("View() at width %d returned empty string", width)
		}
		if !strings.Contains(view, h.Subtitle) {
			t.Errorf("View() at width %d should contain the subtitle", width)
		}
	}
}

func TestHeaderViewNarrowUsesCompact(t *testing.T) {
	h := NewHeader(styles.NewTheme("dark"))
	h.SetWidth(40)

	view := h.View()
	if strings.Contains(view, "\n") {
		t.Errorf("narrow View() should be a single line, got %q", view)
	}
	if !strings.Contains(view, "fmtkit") {
		t.Errorf("compact header should contain the title, got %q", view)
	}
}

func TestHeaderViewCompact(t *testing.T) {
	h := NewHeader(styles.NewTheme("light"))
	view := h.ViewCompact()

	if !strings.Contains(view, "fmtkit") || !strings.Contains(view, " | ") {
		t.Errorf("ViewCompact() = %q, want title and separator", view)
	}
}

// =============================================================================
// GRADIENT TESTS
// =============================================================================

func TestGradientTitle(t *testing.T) {
	start := lipgloss.Color("#7C3AED")
	end := lipgloss.Color("#22D3EE")

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"single char", "a"},
		{"short", "hi"},
		{"normal", "fmtkit"},
		{"unicode", "fmtkít"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := GradientTitle(tc.text, start, end)
			if tc.text == "" && result != "" {
				t.Error("GradientTitle() should return empty for empty input")
			}
			if tc.text != "" && result == "" {
				t.Error("GradientTitle() should return non-empty for non-empty input")
			}
		})
	}
}

func TestInterpolateColor(t *testing.T) {
	start := lipgloss.Color("#000000")
	end := lipgloss.Color("#FF8040")

	tests := []struct {
		t    float64
		want lipgloss.Color
	}{
		{0.0, "#000000"},
		{0.5, "#7F4020"},
		{1.0, "#FF8040"},
	}

	for _, tc := range tests {
		if got := interpolateColor(start, end, tc.t); got != tc.want {
			t.Errorf("interpolateColor(t=%v) = %q, want %q", tc.t, got, tc.want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b uint8
	}{
		{"000000", 0, 0, 0},
		{"#FFFFFF", 255, 255, 255},
		{"FF0000", 255, 0, 0},
		{"7c3aed", 124, 58, 237},
		{"#22D3EE", 34, 211, 238},
		{"", 255, 255, 255},
		{"FFF", 255, 255, 255},
		{"GGGGGG", 255, 255, 255},
	}

	for _, tc := range tests {
		r, g, b := parseHexColor(tc.hex)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("parseHexColor(%q) = (%d, %d, %d), want (%d, %d, %d)",
				tc.hex, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestFormatHexColor(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    string
	}{
		{0, 0, 0, "#000000"},
		{255, 255, 255, "#FFFFFF"},
		{124, 58, 237, "#7C3AED"},
		{34, 211, 238, "#22D3EE"},
	}

	for _, tc := range tests {
		if got := formatHexColor(tc.r, tc.g, tc.b); got != tc.want {
			t.Errorf("formatHexColor(%d, %d, %d) = %q, want %q", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}
