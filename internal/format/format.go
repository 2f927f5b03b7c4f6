// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"fmt"
	"strings"
)

// Format identifies a textual serialization format.
type Format int

const (
	// JSON is the structured-data notation (RFC 8259).
	JSON Format = iota
	// YAML is the indentation-based notation.
	YAML
)

// String returns the lowercase identifier used in flags and config files.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Label returns the display name ("JSON" or "YAML").
func (f Format) Label() string {
	return strings.ToUpper(f.String())
}

// Other returns the conversion target for f.
func (f Format) Other() Format {
	if f == JSON {
		return YAML
	}
	return JSON
}

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{JSON, YAML}
}

// ParseFormat parses a format name. Accepts json, yaml and yml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return JSON, fmt.Errorf("unknown format %q (expected json or yaml)", s)
	}
}
