// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// watch_cmd.go - the watch command.
//
// Command: watch FILE
// Short:   Reconvert FILE every time it is saved
// Aliases: w
//
// Examples:
//   fmtkit watch config.yaml -o config.json
//   fmtkit watch data.json                Print YAML on every save
//
// Flags are those of convert. A failed conversion is reported on stderr
// and watching continues. Ctrl+C stops.

package cli

import (
	"fmt"
	"time"

	"github.com/jeranaias/fmtkit/internal/watch"
)

// HandleWatch handles "fmtkit watch".
func HandleWatch(env *Env, args Args) error {
	debounce := time.Duration(env.Config.Watch.DebounceMs) * time.Millisecond
	fw, err := watch.New(args.File, debounce, env.Logger)
	if err != nil {
		return NewCommandError("watch", args.File, "cannot watch file", err)
	}
	defer fw.Close()

	reconvert := func(path string) {
		input, err := readInput(env, path)
		var data ConvertData
		if err == nil {
			data, err = convertDocument(env, args, input)
		}
		if err != nil {
			DisplayError(env.Stderr, "watch", err, false)
			return
		}
		if args.JSON {
			NewJSONResponse("watch", data).Print(env.Stdout)
		}
	}

	reconvert(fw.Path())
	if !args.Quiet {
		fmt.Fprintf(env.Stderr, "%s %s (Ctrl+C to stop)\n", DimStyle.Render("[WATCH]"), fw.Path())
	}
	return fw.Run(env.context(), reconvert)
}
