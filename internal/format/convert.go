// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"fmt"
	"strings"
)

// Parse parses text in format f.
func Parse(text string, f Format) (Value, error) {
	switch f {
	case JSON:
		return ParseJSON(text)
	case YAML:
		return ParseYAML(text)
	default:
		return Value{}, fmt.Errorf("unsupported format %v", f)
	}
}

// Encode serializes v in format f with two-space indentation.
func Encode(v Value, f Format) (string, error) {
	switch f {
	case JSON:
		return EncodeJSON(v)
	case YAML:
		return EncodeYAML(v)
	default:
		return "", fmt.Errorf("unsupported format %v", f)
	}
}

// IsBlank reports whether text is empty or whitespace only.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// =============================================================================
// CONVERSION
// =============================================================================

// Convert parses text as from and serializes the result in the other
// format. Blank input returns ErrEmptyInput without parsing.
func Convert(text string, from Format) (string, error) {
	if IsBlank(text) {
		return "", ErrEmptyInput
	}
	v, err := Parse(text, from)
	if err != nil {
		return "", err
	}
	return Encode(v, from.Other())
}

// =============================================================================
// DETECTION
// =============================================================================

// Detection is the outcome of format auto-detection.
type Detection int

const (
	// Unchanged means neither parser accepted the input; the caller keeps
	// whatever format it already had.
	Unchanged Detection = iota
	DetectedJSON
	DetectedYAML
)

func (d Detection) String() string {
	switch d {
	case DetectedJSON:
		return "json"
	case DetectedYAML:
		return "yaml"
	default:
		return "unchanged"
	}
}

// Format returns the detected format. ok is false for Unchanged.
func (d Detection) Format() (f Format, ok bool) {
	switch d {
	case DetectedJSON:
		return JSON, true
	case DetectedYAML:
		return YAML, true
	default:
		return JSON, false
	}
}

// Apply returns the format to use after detection, keeping current when
// nothing was detected.
func (d Detection) Apply(current Format) Format {
	if f, ok := d.Format(); ok {
		return f
	}
	return current
}

// Detect tries JSON first, then YAML, on the trimmed text. Since almost any
// text is a valid YAML scalar, JSON input is always reported as JSON.
func Detect(text string) Detection {
	text = strings.TrimSpace(text)
	if text == "" {
		return Unchanged
	}
	if _, err := ParseJSON(text); err == nil {
		return DetectedJSON
	}
	if _, err := ParseYAML(text); err == nil {
		return DetectedYAML
	}
	return Unchanged
}

// =============================================================================
// VALIDATION
// =============================================================================

// Summary is the shallow description of a successfully parsed document.
type Summary struct {
	Kind Kind `json:"-"`
	// Type is Kind.Label(), kept for JSON output.
	Type   string `json:"type"`
	Length *int   `json:"length,omitempty"`
	Keys   *int   `json:"keys,omitempty"`
}

// Summarize describes v: its kind, the element count of an array and the
// key count of any collection. Arrays report their indices as keys.
func Summarize(v Value) Summary {
	s := Summary{Kind: v.Kind, Type: v.Kind.Label()}
	switch v.Kind {
	case KindArray:
		n := len(v.Items)
		s.Length = &n
		keys := n
		s.Keys = &keys
	case KindObject:
		n := len(v.Fields)
		s.Keys = &n
	}
	return s
}

// Validate parses text as f and summarizes the result. Blank input returns
// ErrEmptyInput.
func Validate(text string, f Format) (Summary, error) {
	if IsBlank(text) {
		return Summary{}, ErrEmptyInput
	}
	v, err := Parse(text, f)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(v), nil
}
