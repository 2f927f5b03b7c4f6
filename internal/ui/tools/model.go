// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jeranaias/fmtkit/internal/clipboard"
	"github.com/jeranaias/fmtkit/internal/config"
	"github.com/jeranaias/fmtkit/internal/format"
	"github.com/jeranaias/fmtkit/internal/toolkit"
	"github.com/jeranaias/fmtkit/internal/ui/components"
	"github.com/jeranaias/fmtkit/internal/ui/styles"
)

// =============================================================================
// MODEL
// =============================================================================

// focusArea is the converter pane receiving keys.
type focusArea int

const (
	focusInput focusArea = iota
	focusOutput
)

// Options configures a Model.
type Options struct {
	// Config supplies UI, clipboard and toast settings. Defaults to config.Default().
	Config *config.Config
	// Theme defaults to styles.NewTheme(Config.UI.Theme).
	Theme *styles.Theme
	// InitialTab overrides Config.UI.DefaultTab.
	InitialTab toolkit.TabID
	// Clipboard defaults to the system clipboard with the OSC 52 fallback
	// when Config.Clipboard.OSC52 is set.
	Clipboard toolkit.Copier
	Logger    *zerolog.Logger
	// Context bounds clipboard writes. Defaults to context.Background().
	Context context.Context
}

// Model is the Bubble Tea model for the tools screen.
type Model struct {
	ctx   context.Context
	cfg   *config.Config
	theme *styles.Theme
	keys  KeyMap
	log   zerolog.Logger

	ctrl   *toolkit.Controller
	toasts *components.ToastManager

	header    *components.Header
	tabBar    *components.TabBar
	statusBar *components.StatusBar
	help      help.Model

	// Converter
	converterInput textarea.Model
	output         viewport.Model
	outputText     string
	outputFormat   format.Format
	focus          focusArea

	// Validators
	jsonInput  textarea.Model
	yamlInput  textarea.Model
	jsonResult toolkit.ResultBlock
	yamlResult toolkit.ResultBlock

	// Help panel
	showHelp bool
	helpView viewport.Model

	copyTimeout time.Duration

	width  int
	height int
	ready  bool
}

// New creates the tools model.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme(cfg.UI.Theme)
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	initial := opts.InitialTab
	if initial == "" {
		id, err := toolkit.ParseTabID(cfg.UI.DefaultTab)
		if err != nil {
			return Model{}, fmt.Errorf("ui.default_tab: %w", err)
		}
		initial = id
	}
	declared, err := format.ParseFormat(cfg.UI.DefaultFormat)
	if err != nil {
		return Model{}, fmt.Errorf("ui.default_format: %w", err)
	}

	copier := opts.Clipboard
	if copier == nil {
		copier = clipboard.NewCopier(cfg.Clipboard.OSC52)
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = opts.Logger.With().Str("component", "tui").Logger()
	}

	toasts := components.NewToastManager(time.Duration(cfg.UI.ToastSeconds) * time.Second)
	ctrl, err := toolkit.New(toolkit.Options{
		InitialTab: initial,
		Format:     declared,
		Notifier:   toasts,
		Clipboard:  copier,
		Logger:     opts.Logger,
	})
	if err != nil {
		return Model{}, err
	}

	m := Model{
		ctx:            ctx,
		cfg:            cfg,
		theme:          theme,
		keys:           DefaultKeyMap(),
		log:            log,
		ctrl:           ctrl,
		toasts:         toasts,
		header:         components.NewHeader(theme),
		tabBar:         components.NewTabBar(theme, ctrl.Tabs().Tabs()),
		statusBar:      components.NewStatusBar(theme),
		help:           help.New(),
		converterInput: newEditor("Paste JSON or YAML here..."),
		output:         viewport.New(80, 10),
		outputFormat:   declared.Other(),
		jsonInput:      newEditor("Paste JSON to validate..."),
		yamlInput:      newEditor("Paste YAML to validate..."),
		jsonResult:     ctrl.ValidateJSON(""),
		yamlResult:     ctrl.ValidateYAML(""),
		helpView:       viewport.New(80, 20),
		copyTimeout:    time.Duration(cfg.Clipboard.TimeoutMs) * time.Millisecond,
	}
	m.focusActive()
	return m, nil
}

// newEditor returns an unbounded multi-line editor.
func newEditor(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = true
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Blur()
	return ta
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the cursor blink and the toast ticker.
func (m Model) Init() tea.Cmd {
	m.log.Debug().Str("tab", string(m.ctrl.ActiveTab())).Msg("tools screen started")
	return tea.Batch(textarea.Blink, components.ToastTickCmd())
}

// =============================================================================
// ACCESSORS
// =============================================================================

// ActiveTab returns the active tab id.
func (m Model) ActiveTab() toolkit.TabID {
	return m.ctrl.ActiveTab()
}

// Format returns the converter's declared input format.
func (m Model) Format() format.Format {
	return m.ctrl.Format()
}

// Output returns the converter output text.
func (m Model) Output() string {
	return m.outputText
}

// Result returns the current result block of a validator tab.
func (m Model) Result(id toolkit.TabID) toolkit.ResultBlock {
	if id == toolkit.TabYAMLValidator {
		return m.yamlResult
	}
	return m.jsonResult
}

// Toasts returns the toast manager the controller reports into.
func (m Model) Toasts() *components.ToastManager {
	return m.toasts
}

// ShowingHelp reports whether the help panel is open.
func (m Model) ShowingHelp() bool {
	return m.showHelp
}

// =============================================================================
// INTERNAL STATE HELPERS
// =============================================================================

func (m *Model) onConverter() bool {
	return m.ctrl.ActiveTab() == toolkit.TabConverter
}

// activeEditor returns the editor of the active tab.
func (m *Model) activeEditor() *textarea.Model {
	switch m.ctrl.ActiveTab() {
	case toolkit.TabJSONValidator:
		return &m.jsonInput
	case toolkit.TabYAMLValidator:
		return &m.yamlInput
	default:
		return &m.converterInput
	}
}

// editorFocused reports whether typed keys go to an editor.
func (m *Model) editorFocused() bool {
	return !m.onConverter() || m.focus == focusInput
}

// focusActive focuses the active tab's editor and blurs the rest.
func (m *Model) focusActive() tea.Cmd {
	m.converterInput.Blur()
	m.jsonInput.Blur()
	m.yamlInput.Blur()
	if !m.editorFocused() {
		return nil
	}
	return m.activeEditor().Focus()
}

// setOutput replaces the converter output and scrolls to the top.
func (m *Model) setOutput(text string, f format.Format) {
	m.outputText = text
	m.outputFormat = f
	m.refreshOutput()
	m.output.GotoTop()
}

// refreshOutput re-renders the output viewport content.
func (m *Model) refreshOutput() {
	cb := components.NewCodeBlock(m.theme, m.outputFormat, m.outputText)
	cb.Plain = !m.cfg.UI.Highlight
	m.output.SetContent(cb.Render())
}

// syncStatus copies model state into the status bar and tab bar.
func (m *Model) syncStatus() {
	active := m.ctrl.ActiveTab()
	m.tabBar.Active = active

	s := m.statusBar
	s.Tab = active
	s.ShowFormat = active == toolkit.TabConverter
	s.Format = m.ctrl.Format()
	s.SetInput(m.activeEditor().Value())
	s.Hints = m.help.ShortHelpView(m.keys.ShortHelp())
}
