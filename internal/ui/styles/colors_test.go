// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// COLOR DEFINITION TESTS
// =============================================================================

func TestAdaptiveColorsHaveBothVariants(t *testing.T) {
	colors := map[string]lipgloss.AdaptiveColor{
		"Purple":    Purple,
		"Cyan":      Cyan,
		"Emerald":   Emerald,
		"Rose":      Rose,
		"Amber":     Amber,
		"Surface":   Surface,
		"Overlay":   Overlay,
		"ValidBg":   ValidBg,
		"InvalidBg": InvalidBg,
		"SyntaxKey": SyntaxKey,
	}

	for name, c := range colors {
		if c.Light == "" || c.Dark == "" {
			t.Errorf("%s should define both light and dark variants", name)
		}
		if !strings.HasPrefix(c.Light, "#") || !strings.HasPrefix(c.Dark, "#") {
			t.Errorf("%s should use hex colors, got %q/%q", name, c.Light, c.Dark)
		}
	}
}

func TestStatusIndicatorsAreASCII(t *testing.T) {
	for _, s := range []string{
		StatusIndicators.Success, StatusIndicators.Error,
		StatusIndicators.Warning, StatusIndicators.Info,
	} {
		for _, r := range s {
			if r > 127 {
				t.Errorf("indicator %q contains non-ASCII rune %q", s, r)
			}
		}
	}
}
