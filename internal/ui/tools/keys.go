// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tools

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the tools screen. Bindings are
// checked before keys reach the active editor, so they win over the
// editor's own emacs-style keys.
type KeyMap struct {
	NextTab      key.Binding
	PrevTab      key.Binding
	Converter    key.Binding
	JSONTab      key.Binding
	YAMLTab      key.Binding
	Convert      key.Binding
	ToggleFormat key.Binding
	Copy         key.Binding
	Validate     key.Binding
	SwitchFocus  key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding
	Help         key.Binding
	CloseHelp    key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("C-n", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("C-p", "previous tab"),
		),
		Converter: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "converter"),
		),
		JSONTab: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "JSON validator"),
		),
		YAMLTab: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "YAML validator"),
		),
		Convert: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "convert"),
		),
		ToggleFormat: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("C-f", "toggle input format"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy output"),
		),
		Validate: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("C-e", "validate"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "input/output focus"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll output up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll output down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f4"),
			key.WithHelp("?/F4", "help"),
		),
		CloseHelp: key.NewBinding(
			key.WithKeys("esc", "?", "f4", "q"),
			key.WithHelp("Esc", "close help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// =============================================================================
// KEY BINDING HELPERS
// =============================================================================

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Convert, k.Copy, k.Validate, k.Help, k.Quit}
}

// FullHelp returns the bindings grouped for the help panel.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Tabs
		{k.NextTab, k.PrevTab, k.Converter, k.JSONTab, k.YAMLTab},
		// Actions
		{k.Convert, k.ToggleFormat, k.Copy, k.Validate},
		// View
		{k.SwitchFocus, k.ScrollUp, k.ScrollDown, k.Help, k.Quit},
	}
}

// helpGroupTitles names the FullHelp groups in order.
var helpGroupTitles = []string{"Tabs", "Actions", "View"}

// HelpMarkdown renders the key map as markdown for the help panel.
func (k KeyMap) HelpMarkdown() string {
	var b strings.Builder
	b.WriteString("# fmtkit keys\n\n")
	b.WriteString("Convert between JSON and YAML and validate either format. ")
	b.WriteString("The converter re-detects the input format as you type.\n")

	for i, group := range k.FullHelp() {
		b.WriteString("\n## " + helpGroupTitles[i] + "\n\n")
		b.WriteString("| Key | Action |\n|-----|--------|\n")
		for _, binding := range group {
			h := binding.Help()
			b.WriteString("| `" + h.Key + "` | " + h.Desc + " |\n")
		}
	}

	b.WriteString("\nPress `Esc` to close this panel.\n")
	return b.String()
}
