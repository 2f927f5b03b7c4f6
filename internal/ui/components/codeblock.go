// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/fmtkit/internal/format"
	"github.com/jeranaias/fmtkit/internal/ui/styles"
)

// =============================================================================
// CODE BLOCK RENDERER
// =============================================================================

// CodeBlock renders a JSON or YAML document with line numbers and syntax
// highlighting.
type CodeBlock struct {
	Format      format.Format
	Code        string
	LineNumbers bool
	// Plain disables syntax highlighting.
	Plain bool
	theme *styles.Theme
}

// NewCodeBlock creates a code block for code written in f.
func NewCodeBlock(theme *styles.Theme, f format.Format, code string) CodeBlock {
	return CodeBlock{
		Format:      f,
		Code:        code,
		LineNumbers: true,
		theme:       theme,
	}
}

// Render returns the highlighted code. Error output from a failed conversion
// is rendered plain in the error color.
func (c CodeBlock) Render() string {
	code := strings.TrimRight(c.Code, "\n")
	if code == "" {
		return ""
	}

	var body string
	switch {
	case strings.HasPrefix(code, "Error: "):
		body = c.theme.CodeError.Render(code)
	case c.Plain:
		body = code
	default:
		body = Highlight(code, c.Format, c.theme)
	}

	if !c.LineNumbers {
		return body
	}

	lineNumStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Width(4).
		Align(lipgloss.Right).
		MarginRight(1)

	lines := strings.Split(body, "\n")
	rendered := make([]string, 0, len(lines))
	for i, line := range lines {
		rendered = append(rendered, lineNumStyle.Render(strconv.Itoa(i+1))+line)
	}
	return strings.Join(rendered, "\n")
}

// =============================================================================
// SYNTAX HIGHLIGHTING (Chroma-based)
// =============================================================================

var (
	syntaxStyleOnce sync.Once
	syntaxDark      *chroma.Style
	syntaxLight     *chroma.Style
)

// syntaxStyle builds the chroma style from the palette's syntax colors.
func syntaxStyle(dark bool) *chroma.Style {
	syntaxStyleOnce.Do(func() {
		syntaxDark = buildSyntaxStyle("fmtkit-dark", func(c lipgloss.AdaptiveColor) string { return c.Dark })
		syntaxLight = buildSyntaxStyle("fmtkit-light", func(c lipgloss.AdaptiveColor) string { return c.Light })
	})
	if dark {
		return syntaxDark
	}
	return syntaxLight
}

func buildSyntaxStyle(name string, pick func(lipgloss.AdaptiveColor) string) *chroma.Style {
	style, err := chroma.NewStyle(name, chroma.StyleEntries{
		chroma.Keyword:         pick(styles.SyntaxKeyword),
		chroma.NameTag:         pick(styles.SyntaxKey),
		chroma.NameAttribute:   pick(styles.SyntaxKey),
		chroma.LiteralString:   pick(styles.SyntaxString),
		chroma.LiteralNumber:   pick(styles.SyntaxNumber),
		chroma.KeywordConstant: pick(styles.SyntaxConstant),
		chroma.Comment:         "italic " + pick(styles.SyntaxComment),
		chroma.Punctuation:     pick(styles.SyntaxOperator),
		chroma.Operator:        pick(styles.SyntaxOperator),
	})
	if err != nil {
		return chromaStyles.Fallback
	}
	return style
}

// lexerFor returns the chroma lexer for f.
func lexerFor(f format.Format) chroma.Lexer {
	lexer := lexers.Get(f.String())
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// formatterFor picks the terminal formatter matching the color profile.
func formatterFor(profile termenv.Profile) chroma.Formatter {
	name := "terminal256"
	switch profile {
	case termenv.TrueColor:
		name = "terminal16m"
	case termenv.ANSI:
		name = "terminal16"
	}
	formatter := formatters.Get(name)
	if formatter == nil {
		formatter = formatters.Fallback
	}
	return formatter
}

// Highlight applies syntax highlighting for f. The ASCII profile and any
// chroma failure return code unchanged.
func Highlight(code string, f format.Format, theme *styles.Theme) string {
	if theme == nil || theme.ColorProfile == termenv.Ascii {
		return code
	}

	iterator, err := lexerFor(f).Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatterFor(theme.ColorProfile).Format(&buf, syntaxStyle(theme.IsDark), iterator); err != nil {
		return code
	}
	return strings.TrimRight(buf.String(), "\n")
}
