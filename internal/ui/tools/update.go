// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tools

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/fmtkit/internal/format"
	"github.com/jeranaias/fmtkit/internal/toolkit"
	"github.com/jeranaias/fmtkit/internal/ui/components"
)

// Layout heights. The header is measured at resize time.
const (
	tabBarHeight     = 1
	statusBarHeight  = 1
	bodyGap          = 1
	panelChrome      = 3 // borders and the label line
	panelFrameWidth  = 4 // border and padding on both sides
	formatLineHeight = 1
	resultBoxHeight  = 9
	minEditorHeight  = 3
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		next.syncStatus()
		return next, cmd

	case tea.MouseMsg:
		if m.showHelp {
			var cmd tea.Cmd
			m.helpView, cmd = m.helpView.Update(msg)
			return m, cmd
		}
		if m.onConverter() {
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}
		return m, nil

	case CopyResultMsg:
		m.ctrl.ReportCopy(msg.Result)
		return m, nil

	case components.ToastTickMsg:
		m.toasts.TickToasts()
		return m, components.ToastTickCmd()
	}

	// Cursor blink and anything else belongs to the active editor.
	ed := m.activeEditor()
	var cmd tea.Cmd
	*ed, cmd = ed.Update(msg)
	return m, cmd
}

// handleResize recomputes every pane size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	m.theme.SetSize(m.width, m.height)
	m.header.SetWidth(m.width)
	m.tabBar.Width = m.width
	m.statusBar.SetWidth(m.width)
	m.help.Width = m.width

	body := m.height - lipgloss.Height(m.header.View()) - tabBarHeight - statusBarHeight - bodyGap
	innerWidth := m.width - panelFrameWidth
	if innerWidth < 10 {
		innerWidth = 10
	}

	// Converter: input, format line, output.
	avail := body - formatLineHeight - 2*panelChrome
	inHeight := avail / 2
	if inHeight < minEditorHeight {
		inHeight = minEditorHeight
	}
	outHeight := avail - inHeight
	if outHeight < minEditorHeight {
		outHeight = minEditorHeight
	}
	m.converterInput.SetWidth(innerWidth)
	m.converterInput.SetHeight(inHeight)
	m.output.Width = innerWidth
	m.output.Height = outHeight

	// Validators: input above the result box.
	vHeight := body - panelChrome - resultBoxHeight
	if vHeight < minEditorHeight {
		vHeight = minEditorHeight
	}
	m.jsonInput.SetWidth(innerWidth)
	m.jsonInput.SetHeight(vHeight)
	m.yamlInput.SetWidth(innerWidth)
	m.yamlInput.SetHeight(vHeight)

	// Help panel: everything but one title and one footer line.
	m.helpView.Width = m.width
	m.helpView.Height = m.height - 2
	if m.helpView.Height < 1 {
		m.helpView.Height = 1
	}
	if m.showHelp {
		m.renderHelp()
	}

	m.refreshOutput()
	m.syncStatus()
	m.log.Debug().Int("width", m.width).Int("height", m.height).Msg("resized")
	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.CloseHelp) {
			m.showHelp = false
			return m, nil
		}
		var cmd tea.Cmd
		m.helpView, cmd = m.helpView.Update(msg)
		return m, cmd
	}

	switch {
	// "?" is text while an editor has focus; F4 always opens help.
	case key.Matches(msg, m.keys.Help) && (msg.String() != "?" || !m.editorFocused()):
		m.openHelp()
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.ctrl.NextTab()
		return m.afterTabChange()

	case key.Matches(msg, m.keys.PrevTab):
		m.ctrl.PrevTab()
		return m.afterTabChange()

	case key.Matches(msg, m.keys.Converter):
		return m.selectTab(toolkit.TabConverter)

	case key.Matches(msg, m.keys.JSONTab):
		return m.selectTab(toolkit.TabJSONValidator)

	case key.Matches(msg, m.keys.YAMLTab):
		return m.selectTab(toolkit.TabYAMLValidator)

	case key.Matches(msg, m.keys.Convert):
		if m.onConverter() {
			m.convert()
			return m, nil
		}
		m.validate()
		return m, nil

	case key.Matches(msg, m.keys.Validate):
		if !m.onConverter() {
			m.validate()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleFormat):
		if m.onConverter() {
			m.ctrl.ToggleFormat()
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if m.onConverter() {
			return m, copyCmd(m.ctx, m.ctrl, m.outputText, m.copyTimeout)
		}
		return m, nil

	case key.Matches(msg, m.keys.SwitchFocus):
		if m.onConverter() {
			if m.focus == focusInput {
				m.focus = focusOutput
			} else {
				m.focus = focusInput
			}
			return m, m.focusActive()
		}
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		if m.onConverter() {
			m.output.ViewUp()
		}
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		if m.onConverter() {
			m.output.ViewDown()
		}
		return m, nil
	}

	if m.onConverter() && m.focus == focusOutput {
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}
	return m.updateEditor(msg)
}

// updateEditor forwards msg to the active editor. A converter edit runs
// format auto-detection when enabled.
func (m Model) updateEditor(msg tea.Msg) (Model, tea.Cmd) {
	ed := m.activeEditor()
	before := ed.Value()

	var cmd tea.Cmd
	*ed, cmd = ed.Update(msg)

	if after := ed.Value(); after != before && m.onConverter() && m.cfg.UI.AutoDetect {
		d := m.ctrl.AutoDetect(after)
		m.log.Debug().Str("detected", d.String()).Msg("auto-detect")
	}
	return m, cmd
}

// =============================================================================
// ACTIONS
// =============================================================================

func (m Model) selectTab(id toolkit.TabID) (Model, tea.Cmd) {
	if err := m.ctrl.SelectTab(id); err != nil {
		m.toasts.AddError(err.Error())
		return m, nil
	}
	return m.afterTabChange()
}

func (m Model) afterTabChange() (Model, tea.Cmd) {
	m.focus = focusInput
	return m, m.focusActive()
}

// convert runs the converter on the input editor. Blank input leaves the
// output untouched.
func (m *Model) convert() {
	from := m.ctrl.Format()
	conv := m.ctrl.Convert(m.converterInput.Value())
	if conv.Skipped {
		return
	}
	to := from.Other()
	if conv.Err != nil {
		to = from
	}
	m.setOutput(conv.Output, to)
}

// validate runs the active validator.
func (m *Model) validate() {
	f, ok := toolkit.ValidatorFormat(m.ctrl.ActiveTab())
	if !ok {
		return
	}
	block := m.ctrl.Validate(m.activeEditor().Value(), f)
	if f == format.YAML {
		m.yamlResult = block
	} else {
		m.jsonResult = block
	}
}

func (m *Model) openHelp() {
	m.showHelp = true
	m.renderHelp()
	m.helpView.GotoTop()
}

func (m *Model) renderHelp() {
	m.helpView.SetContent(components.RenderMarkdown(m.theme, m.keys.HelpMarkdown(), m.width-4))
}
