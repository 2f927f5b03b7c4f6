// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "strconv"

// =============================================================================
// SHARED HELPER FUNCTIONS
// =============================================================================

// toStr converts an integer to a string.
func toStr(n int) string {
	return strconv.Itoa(n)
}

// fmtNumber formats a number with thousand separators.
func fmtNumber(n int) string {
	if n < 0 {
		// Negate via the string form so MinInt64 does not overflow.
		return "-" + groupDigits(strconv.Itoa(n)[1:])
	}
	return groupDigits(strconv.Itoa(n))
}

func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}
	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	out := s[:head]
	for i := head; i < len(s); i += 3 {
		out += "," + s[i:i+3]
	}
	return out
}

// plural renders "1 line", "2 lines", "1,024 chars".
func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmtNumber(n) + " " + noun + "s"
}
