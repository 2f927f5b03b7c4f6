// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the fmtkit TUI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection.

# Color System (colors.go)

  - Purple - active tab and selections
  - Cyan - brand color, JSON badge, focus ring
  - Amber - YAML badge, warnings
  - Emerald / Rose - valid and invalid results

Result boxes use ValidBg/ValidFg and InvalidBg/InvalidFg. Syntax colors for
highlighted output follow Catppuccin Latte (light) and Mocha (dark).

# Theme System (theme.go)

	theme := styles.NewTheme(cfg.UI.Theme)
	theme.Apply()
	tab := theme.TabActive.Render("Converter")

# Status Indicators

Every status color is paired with an ASCII shape:

	StatusIndicators.Success   - [OK]
	StatusIndicators.Error     - [X]
	StatusIndicators.Warning   - [!]
	StatusIndicators.Info      - [i]
*/
package styles
