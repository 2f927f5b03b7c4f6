// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package toolkit

import (
	"errors"
	"fmt"
	"strings"
)

// TabID names one tool panel.
type TabID string

const (
	TabConverter     TabID = "converter"
	TabJSONValidator TabID = "json-validator"
	TabYAMLValidator TabID = "yaml-validator"
)

// ErrUnknownTab is returned when selecting a tab that does not exist.
var ErrUnknownTab = errors.New("unknown tab")

// DefaultTabs returns the panels in display order.
func DefaultTabs() []TabID {
	return []TabID{TabConverter, TabJSONValidator, TabYAMLValidator}
}

// Title returns the label shown on the tab bar.
func (id TabID) Title() string {
	switch id {
	case TabConverter:
		return "Converter"
	case TabJSONValidator:
		return "JSON Validator"
	case TabYAMLValidator:
		return "YAML Validator"
	default:
		return string(id)
	}
}

// ParseTabID matches s against the known tab ids, ignoring case and
// surrounding space.
func ParseTabID(s string) (TabID, error) {
	id := TabID(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range DefaultTabs() {
		if t == id {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownTab, s)
}

// TabSet tracks which of a fixed list of tabs is active. Exactly one tab
// is active at any time.
type TabSet struct {
	tabs   []TabID
	active int
}

// NewTabSet returns the default tabs with initial active.
func NewTabSet(initial TabID) (*TabSet, error) {
	ts := &TabSet{tabs: DefaultTabs()}
	if err := ts.Select(initial); err != nil {
		return nil, err
	}
	return ts, nil
}

// Tabs returns the tab ids in display order.
func (ts *TabSet) Tabs() []TabID {
	out := make([]TabID, len(ts.tabs))
	copy(out, ts.tabs)
	return out
}

// Active returns the active tab id.
func (ts *TabSet) Active() TabID {
	return ts.tabs[ts.active]
}

// Index returns the position of the active tab.
func (ts *TabSet) Index() int {
	return ts.active
}

// IsActive reports whether id is the active tab.
func (ts *TabSet) IsActive(id TabID) bool {
	return ts.Active() == id
}

// Select activates id. Unknown ids leave the selection unchanged.
func (ts *TabSet) Select(id TabID) error {
	for i, t := range ts.tabs {
		if t == id {
			ts.active = i
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownTab, string(id))
}

// SelectIndex activates the tab at position i.
func (ts *TabSet) SelectIndex(i int) error {
	if i < 0 || i >= len(ts.tabs) {
		return fmt.Errorf("%w: index %d", ErrUnknownTab, i)
	}
	ts.active = i
	return nil
}

// Next activates the following tab, wrapping around.
func (ts *TabSet) Next() TabID {
	ts.active = (ts.active + 1) % len(ts.tabs)
	return ts.Active()
}

// Prev activates the preceding tab, wrapping around.
func (ts *TabSet) Prev() TabID {
	ts.active = (ts.active - 1 + len(ts.tabs)) % len(ts.tabs)
	return ts.Active()
}
