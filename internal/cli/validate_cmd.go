// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// validate_cmd.go - the validate command.
//
// Command: validate [FILE]
// Short:   Check that a document is well-formed JSON or YAML
// Aliases: v
//
// Examples:
//   fmtkit validate package.json
//   fmtkit validate --format yaml notes.txt
//   cat compose.yml | fmtkit validate --json
//
// Flags:
//   --format FORMAT     json or yaml. Defaults to the file extension, then
//                       to whichever parser accepts the input
//   --json              Output in JSON format
//
// Exit codes: 0 valid, 2 empty input, 10 invalid.

package cli

import (
	"errors"
	"fmt"

	"github.com/jeranaias/fmtkit/internal/format"
	"github.com/jeranaias/fmtkit/internal/toolkit"
)

// HandleValidate handles "fmtkit validate".
func HandleValidate(env *Env, args Args) error {
	input, err := readInput(env, args.File)
	if err != nil {
		return err
	}

	f := validateFormat(env, args, input)
	ctrl, err := newController(env, f, false)
	if err != nil {
		return err
	}

	block := ctrl.Validate(input, f)
	if block.State == toolkit.ResultPlaceholder {
		return NewCommandError("validate", f.String(), "nothing to validate", format.ErrEmptyInput)
	}

	if args.JSON {
		resp := NewJSONResponse("validate", validateData(block))
		if block.State == toolkit.ResultInvalid {
			msg := block.Err.Error()
			resp.Success = false
			resp.Error = &msg
		}
		if err := resp.Print(env.Stdout); err != nil {
			return err
		}
	} else {
		printResultBlock(env, block)
	}

	if block.State == toolkit.ResultInvalid {
		return &reportedError{err: block.Err}
	}
	return nil
}

// validateFormat picks the format to validate against: the flag, the file
// extension, detection, then the configured default.
func validateFormat(env *Env, args Args, input string) format.Format {
	if args.Format != "" {
		if f, err := format.ParseFormat(args.Format); err == nil {
			return f
		}
	}
	if f, ok := formatFromExt(args.File); ok {
		return f
	}
	if f, ok := format.Detect(input).Format(); ok {
		return f
	}
	f, err := format.ParseFormat(env.Config.UI.DefaultFormat)
	if err != nil {
		return format.JSON
	}
	return f
}

func validateData(block toolkit.ResultBlock) ValidateData {
	data := ValidateData{
		Format:  block.Format.String(),
		Valid:   block.State == toolkit.ResultValid,
		Details: make([]DetailRecord, 0, len(block.Details)),
	}
	for _, d := range block.Details {
		data.Details = append(data.Details, DetailRecord{Label: d.Label, Value: d.Value})
	}
	if s := block.Summary; s != nil {
		data.Type = s.Type
		data.Length = s.Length
		data.Keys = s.Keys
	}
	var pe *format.ParseError
	if errors.As(block.Err, &pe) {
		data.Error = pe.Msg
		data.Line = pe.Line
		data.Column = pe.Column
	} else if block.Err != nil {
		data.Error = block.Err.Error()
	}
	return data
}

// printResultBlock prints a result the way the validator panel shows it.
func printResultBlock(env *Env, block toolkit.ResultBlock) {
	status := "valid"
	if block.State == toolkit.ResultInvalid {
		status = "invalid"
	}
	fmt.Fprintf(env.Stdout, "%s %s\n", RenderStatus(status), TitleStyle.Render(block.Header))
	if block.Message != "" {
		fmt.Fprintln(env.Stdout, block.Message)
	}
	for _, d := range block.Details {
		fmt.Fprintf(env.Stdout, "  %s%s\n", RenderLabel(d.Label+":", 10), ValueStyle.Render(d.Value))
	}
	if block.Hint != "" {
		fmt.Fprintln(env.Stdout, DimStyle.Render(block.Hint))
	}
}
