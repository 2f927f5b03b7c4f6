// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	jsonNumberRe = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][-+]?[0-9]+)?$`)
	jsonIntRe    = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)
)

// isJSONNumber reports whether lit is a valid JSON number literal.
func isJSONNumber(lit string) bool {
	return jsonNumberRe.MatchString(lit)
}

// parseNumber reads a number literal, accepting the YAML spellings of the
// non-finite floats. Literals beyond float64 range read as ±Inf.
func parseNumber(lit string) (float64, bool) {
	switch strings.ToLower(lit) {
	case ".inf", "+.inf":
		return math.Inf(1), true
	case "-.inf":
		return math.Inf(-1), true
	case ".nan":
		return math.NaN(), true
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

func numbersEqual(a, b string) bool {
	if a == b {
		return true
	}
	fa, okA := parseNumber(a)
	fb, okB := parseNumber(b)
	if !okA || !okB {
		return false
	}
	if math.IsNaN(fa) && math.IsNaN(fb) {
		return true
	}
	return fa == fb
}

// formatFloat renders f in shortest round-trip form: integral values
// without a fraction, exponent form outside [1e-6, 1e21).
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[0]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + string(sign) + digits
}

// canonicalNumber normalizes a JSON literal for YAML output: integers are
// kept verbatim, everything else goes through formatFloat. 1e400 becomes
// .inf so that YAML reads it back as a number.
func canonicalNumber(lit string) string {
	if jsonIntRe.MatchString(lit) {
		return lit
	}
	f, ok := parseNumber(lit)
	if !ok {
		return lit
	}
	return formatFloat(f)
}
