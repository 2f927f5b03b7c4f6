// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput is returned when the input is empty or whitespace only.
// No parsing is attempted in that case.
var ErrEmptyInput = errors.New("input is empty")

// ParseError describes malformed input for a given format.
type ParseError struct {
	Format Format
	Msg    string
	// Line and Column are 1-based; zero when the parser did not report them.
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d, column %d)", e.Msg, e.Line, e.Column)
	}
	return e.Msg
}

// IsParseError reports whether err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// position converts a byte offset in text into a 1-based line and column.
func position(text string, offset int64) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(text)) {
		offset = int64(len(text))
	}
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	col := len(before) - strings.LastIndex(before, "\n")
	return line, col
}
