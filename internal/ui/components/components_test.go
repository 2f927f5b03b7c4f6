// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/fmtkit/internal/format"
	"github.com/jeranaias/fmtkit/internal/toolkit"
	"github.com/jeranaias/fmtkit/internal/ui/styles"
)

// plainTheme returns a theme that renders without escape codes so tests
// can match on text.
func plainTheme(t *testing.T) *styles.Theme {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	theme := styles.NewTheme("dark")
	lipgloss.SetColorProfile(termenv.Ascii)
	return theme
}

// =============================================================================
// TAB BAR
// =============================================================================

func TestTabBarLabels(t *testing.T) {
	bar := NewTabBar(plainTheme(t), toolkit.DefaultTabs())

	if got := bar.Label(0); got != "F1 Converter" {
		t.Errorf("Label(0) = %q", got)
	}
	bar.ShowKeys = false
	if got := bar.Label(2); got != "YAML Validator" {
		t.Errorf("Label(2) = %q", got)
	}
}

func TestTabBarView(t *testing.T) {
	bar := NewTabBar(plainTheme(t), toolkit.DefaultTabs())
	bar.Width = 120
	bar.Active = toolkit.TabJSONValidator

	view := bar.View()
	for _, want := range []string{"F1 Converter", "F2 JSON Validator", "F3 YAML Validator"} {
		if !strings.Contains(view, want) {
			t.Errorf("tab bar %q missing %q", view, want)
		}
	}
}

func TestTabBarShrinksInactiveLabels(t *testing.T) {
	bar := NewTabBar(plainTheme(t), toolkit.DefaultTabs())
	bar.Width = 40
	bar.Active = toolkit.TabYAMLValidator

	view := bar.View()
	if !strings.Contains(view, "F3 YAML Validator") {
		t.Errorf("active label should stay whole, got %q", view)
	}
	if strings.Contains(view, "F2 JSON Validator") {
		t.Errorf("inactive labels should be truncated, got %q", view)
	}
}

// =============================================================================
// RESULT BOX
// =============================================================================

func TestRenderResult(t *testing.T) {
	theme := plainTheme(t)
	c, err := toolkit.New(toolkit.Options{})
	if err != nil {
		t.Fatalf("toolkit.New: %v", err)
	}

	tests := []struct {
		name  string
		block toolkit.ResultBlock
		want  []string
	}{
		{"placeholder", c.ValidateJSON(""), []string{"Please enter JSON data to validate"}},
		{"valid", c.ValidateJSON(`[1,2,3]`), []string{"Valid JSON", "Type: Array", "Length: 3"}},
		{"invalid", c.ValidateYAML("a: [\n"), []string{"Invalid YAML", "Error:", "Please check your YAML syntax and try again."}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			view := RenderResult(theme, tc.block, 80)
			for _, want := range tc.want {
				if !strings.Contains(view, want) {
					t.Errorf("result %q missing %q", view, want)
				}
			}
		})
	}
}

// =============================================================================
// STATUS BAR
// =============================================================================

func TestStatusBarLayouts(t *testing.T) {
	s := NewStatusBar(plainTheme(t))
	s.Format = format.YAML
	s.SetInput("a: 1\nb: 2\n")
	s.Hints = "ctrl+r convert"

	if s.Lines != 2 || s.Chars != 10 {
		t.Fatalf("SetInput: lines=%d chars=%d", s.Lines, s.Chars)
	}

	s.SetWidth(40)
	if view := s.View(); !strings.Contains(view, "YAML") || !strings.Contains(view, "2L") {
		t.Errorf("narrow view = %q", view)
	}

	s.SetWidth(80)
	view := s.View()
	if !strings.Contains(view, "Converter") || !strings.Contains(view, "2 lines, 10 chars") {
		t.Errorf("medium view = %q", view)
	}

	s.SetWidth(120)
	if view := s.View(); !strings.Contains(view, "ctrl+r convert") {
		t.Errorf("wide view should include hints, got %q", view)
	}
}

func TestStatusBarHidesFormatOnValidators(t *testing.T) {
	s := NewStatusBar(plainTheme(t))
	s.Tab = toolkit.TabJSONValidator
	s.ShowFormat = false
	s.Format = format.YAML
	s.SetWidth(80)

	if view := s.View(); strings.Contains(view, "YAML") {
		t.Errorf("validator status should not show the converter format, got %q", view)
	}
}

// =============================================================================
// CODE BLOCK
// =============================================================================

func TestCodeBlockPlain(t *testing.T) {
	cb := NewCodeBlock(plainTheme(t), format.JSON, "{\n  \"a\": 1\n}\n")
	view := cb.Render()

	lines := strings.Split(view, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), view)
	}
	if !strings.Contains(lines[1], "2") || !strings.Contains(lines[1], `"a": 1`) {
		t.Errorf("line 2 = %q", lines[1])
	}

	cb.LineNumbers = false
	if got := cb.Render(); got != "{\n  \"a\": 1\n}" {
		t.Errorf("Render() without numbers = %q", got)
	}
}

func TestCodeBlockEmpty(t *testing.T) {
	if got := NewCodeBlock(plainTheme(t), format.YAML, "").Render(); got != "" {
		t.Errorf("empty code block rendered %q", got)
	}
}

func TestHighlightKeepsText(t *testing.T) {
	theme := &styles.Theme{IsDark: true, ColorProfile: termenv.ANSI256}
	code := "name: fmtkit\ntags:\n  - a\n"

	out := Highlight(code, format.YAML, theme)
	if out == code {
		t.Error("expected escape codes in highlighted output")
	}
	for _, want := range []string{"name", "fmtkit", "tags"} {
		if !strings.Contains(out, want) {
			t.Errorf("highlighted output lost %q", want)
		}
	}

	if got := Highlight(code, format.YAML, nil); got != code {
		t.Error("nil theme should return code unchanged")
	}
}

func TestSyntaxStyleBuilds(t *testing.T) {
	if syntaxStyle(true) == nil || syntaxStyle(false) == nil {
		t.Fatal("syntax styles should build")
	}
	if syntaxStyle(true).Name != "fmtkit-dark" {
		t.Errorf("dark style name = %q", syntaxStyle(true).Name)
	}
}

// =============================================================================
// MARKDOWN
// =============================================================================

func TestMarkdownStyle(t *testing.T) {
	if got := MarkdownStyle(nil); got != "notty" {
		t.Errorf("nil theme style = %q", got)
	}
	if got := MarkdownStyle(&styles.Theme{IsDark: true, ColorProfile: termenv.TrueColor}); got != "dark" {
		t.Errorf("dark theme style = %q", got)
	}
	if got := MarkdownStyle(&styles.Theme{ColorProfile: termenv.ANSI256}); got != "light" {
		t.Errorf("light theme style = %q", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown(nil, "# Keys\n\n- **ctrl+r** convert\n", 60)
	if !strings.Contains(out, "Keys") || !strings.Contains(out, "convert") {
		t.Errorf("rendered markdown = %q", out)
	}
}
