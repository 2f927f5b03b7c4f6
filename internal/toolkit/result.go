// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package toolkit

import (
	"fmt"
	"strconv"

	"github.com/jeranaias/fmtkit/internal/format"
)

// ResultState is the outcome shown in a validator's result area.
type ResultState int

const (
	// ResultPlaceholder is the neutral message shown for empty input.
	ResultPlaceholder ResultState = iota
	ResultValid
	ResultInvalid
)

func (s ResultState) String() string {
	switch s {
	case ResultValid:
		return "valid"
	case ResultInvalid:
		return "invalid"
	default:
		return "placeholder"
	}
}

// Detail is one labeled line of a result block.
type Detail struct {
	Label string
	Value string
}

// ResultBlock is the rendered-independent content of a validation result.
type ResultBlock struct {
	State  ResultState
	Format format.Format
	// Header is "Valid JSON", "Invalid YAML", and so on. Empty for placeholders.
	Header string
	// Message is the body line: the placeholder prompt or the success line.
	Message string
	Details []Detail
	// Hint follows the details on failure.
	Hint string
	// Summary is set for valid results.
	Summary *format.Summary
	// Err is the parse error of an invalid result.
	Err error
}

func placeholderBlock(f format.Format) ResultBlock {
	return ResultBlock{
		State:   ResultPlaceholder,
		Format:  f,
		Message: fmt.Sprintf(msgEmptyValidateFmt, f.Label()),
	}
}

func validBlock(f format.Format, s format.Summary) ResultBlock {
	b := ResultBlock{
		State:   ResultValid,
		Format:  f,
		Header:  "Valid " + f.Label(),
		Message: "Your " + f.Label() + " is syntactically correct!",
		Details: []Detail{{Label: "Type", Value: s.Type}},
		Summary: &s,
	}
	if s.Length != nil {
		b.Details = append(b.Details, Detail{Label: "Length", Value: strconv.Itoa(*s.Length)})
	}
	if s.Keys != nil {
		b.Details = append(b.Details, Detail{Label: "Keys", Value: strconv.Itoa(*s.Keys)})
	}
	return b
}

func invalidBlock(f format.Format, err error) ResultBlock {
	return ResultBlock{
		State:   ResultInvalid,
		Format:  f,
		Header:  "Invalid " + f.Label(),
		Details: []Detail{{Label: "Error", Value: err.Error()}},
		Hint:    "Please check your " + f.Label() + " syntax and try again.",
		Err:     err,
	}
}

// Lines flattens the block into display lines.
func (b ResultBlock) Lines() []string {
	var lines []string
	if b.Header != "" {
		lines = append(lines, b.Header)
	}
	if b.Message != "" {
		lines = append(lines, b.Message)
	}
	for _, d := range b.Details {
		lines = append(lines, d.Label+": "+d.Value)
	}
	if b.Hint != "" {
		lines = append(lines, b.Hint)
	}
	return lines
}
