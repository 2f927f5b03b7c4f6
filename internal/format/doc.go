// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package format implements the two text formats fmtkit works with: JSON and YAML.

Both formats parse into a single tagged-union Value so that conversion,
auto-detection and validation share one representation. Object key order is
kept from input to output.

# Parsing

	v, err := format.ParseJSON(`{"a": [1, 2]}`)
	v, err := format.ParseYAML("a:\n  - 1\n  - 2\n")

Parse failures are returned as *ParseError carrying the parser's message and,
where known, a line and column.

# Serialization

EncodeJSON and EncodeYAML always indent nested structures by two spaces:

	out, err := format.EncodeYAML(v)

# Operations

	out, err := format.Convert(text, format.JSON) // JSON in, YAML out
	det := format.Detect(text)                    // DetectedJSON, DetectedYAML or Unchanged
	sum, err := format.Validate(text, format.YAML)

Blank input to Convert and Validate returns ErrEmptyInput before any parsing is
attempted.
*/
package format
