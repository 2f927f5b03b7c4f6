// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/fmtkit/internal/toolkit"
	"github.com/jeranaias/fmtkit/internal/ui/styles"
	"github.com/jeranaias/fmtkit/internal/util"
)

// =============================================================================
// TAB BAR
// =============================================================================

// TabBar renders the row of tool tabs. Exactly one tab is drawn active.
type TabBar struct {
	Tabs     []toolkit.TabID
	Active   toolkit.TabID
	Width    int
	ShowKeys bool
	theme    *styles.Theme
}

// NewTabBar creates a tab bar over tabs with function-key hints.
func NewTabBar(theme *styles.Theme, tabs []toolkit.TabID) *TabBar {
	return &TabBar{
		Tabs:     tabs,
		Active:   tabs[0],
		Width:    80,
		ShowKeys: true,
		theme:    theme,
	}
}

// Label returns the text drawn for the tab at index i.
func (b *TabBar) Label(i int) string {
	title := b.Tabs[i].Title()
	if b.ShowKeys {
		return "F" + strconv.Itoa(i+1) + " " + title
	}
	return title
}

// View renders the tab bar. Labels shrink to fit the width; the active tab
// keeps its full label as long as possible.
func (b *TabBar) View() string {
	if len(b.Tabs) == 0 {
		return ""
	}

	labels := make([]string, len(b.Tabs))
	for i := range b.Tabs {
		labels[i] = b.Label(i)
	}

	// Each tab carries 4 cells of padding plus one gap.
	budget := b.Width - 5*len(b.Tabs)
	if budget > 0 {
		total := 0
		for _, l := range labels {
			total += util.StringWidth(l)
		}
		if total > budget {
			per := budget / len(labels)
			if per < 4 {
				per = 4
			}
			for i := range labels {
				if b.Tabs[i] != b.Active {
					labels[i] = util.TruncateWidth(labels[i], per)
				}
			}
		}
	}

	gap := b.theme.TabGap.Render(" ")
	rendered := make([]string, 0, 2*len(labels))
	for i, l := range labels {
		style := b.theme.TabInactive
		if b.Tabs[i] == b.Active {
			style = b.theme.TabActive
		}
		if i > 0 {
			rendered = append(rendered, gap)
		}
		rendered = append(rendered, style.Render(l))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
