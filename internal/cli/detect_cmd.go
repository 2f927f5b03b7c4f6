// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// detect_cmd.go - the detect command.
//
// Command: detect [FILE]
// Short:   Print "json" or "yaml" for the input
// Aliases: d
//
// JSON is tried first, so any valid JSON document reports json.
// Exit codes: 0 detected, 2 empty input, 10 neither format.

package cli

import (
	"fmt"

	"github.com/jeranaias/fmtkit/internal/format"
)

// HandleDetect handles "fmtkit detect".
func HandleDetect(env *Env, args Args) error {
	input, err := readInput(env, args.File)
	if err != nil {
		return err
	}
	if format.IsBlank(input) {
		return NewCommandError("detect", "", "nothing to detect", format.ErrEmptyInput)
	}

	d := format.Detect(input)
	f, ok := d.Format()
	env.Logger.Debug().Str("detection", d.String()).Msg("detect")
	if !ok {
		return NewCommandError("detect", "", "unrecognized input", ErrUndetected)
	}

	if args.JSON {
		return NewJSONResponse("detect", DetectData{Format: f.String()}).Print(env.Stdout)
	}
	_, err = fmt.Fprintln(env.Stdout, f.String())
	return err
}
