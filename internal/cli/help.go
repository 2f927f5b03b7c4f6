// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// help.go - the help and version commands.

package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/jeranaias/fmtkit/internal/ui/components"
	"github.com/jeranaias/fmtkit/internal/ui/styles"
)

// usageText is the top-level help, written as markdown.
const usageText = `# fmtkit

JSON and YAML conversion and validation, interactive or from the shell.

## Usage

    fmtkit [--tab TAB]              Start the interactive tools
    fmtkit <command> [flags] [FILE]

## Commands

- **convert** (c): convert JSON to YAML or YAML to JSON
- **validate** (v): check that a document is well-formed
- **detect** (d): print json or yaml for the input
- **watch** (w): reconvert a file every time it is saved
- **config**: show, path, init, get or set configuration
- **version**: print version information
- **help** [command]: show help

FILE defaults to stdin. Use - to read stdin explicitly.

## Global flags

- --json: output in JSON format
- --quiet, -q: no status lines on stderr
- --verbose: debug logging on stderr
- --config FILE: use FILE instead of ~/.fmtkit/config.toml

## Exit codes

0 success, 1 error, 2 usage or empty input, 3 config, 7 not found, 10 invalid input.
`

// topicText holds per-command help.
var topicText = map[string]string{
	"tui": `# fmtkit

    fmtkit [--tab converter|json-validator|yaml-validator]

Starts the interactive tools. Press ? outside an editor for key bindings.
`,
	"convert": `# fmtkit convert [FILE]

Converts the input to the other format. With --from auto (the default) the
format is detected from the content, falling back to the file extension.

- --from, -f FORMAT: json, yaml or auto
- --out, -o FILE: write to FILE instead of stdout
`,
	"validate": `# fmtkit validate [FILE]

Checks that the input parses and reports its type, plus the length of an
array or the number of keys of an object.

- --format FORMAT: json or yaml. Defaults to the extension, then detection
`,
	"detect": `# fmtkit detect [FILE]

Prints json or yaml. JSON is tried first, so valid JSON always reports json.
`,
	"watch": `# fmtkit watch FILE

Converts FILE once, then again on every save. Takes the flags of convert.
Failed conversions are reported on stderr and watching continues.
`,
	"config": `# fmtkit config [show|path|init|get|set]

- show: the effective configuration
- path: the configuration file path
- init [--force]: write a default file
- get KEY: print one value
- set KEY VALUE: change one value in the file
`,
	"version": `# fmtkit version

Prints version, commit, build date and Go version.
`,
}

// HandleHelp handles "fmtkit help [command]".
func HandleHelp(env *Env, args Args) error {
	text := usageText
	if args.Subcommand != "" {
		name := args.Subcommand
		if cmd, ok := commandNames[name]; ok {
			name = cmd.String()
		}
		t, ok := topicText[name]
		if !ok {
			return ErrInvalidValue("topic", args.Subcommand, "fmtkit help")
		}
		text = t
	}

	if ColorsEnabled() {
		theme := styles.NewTheme(env.Config.UI.Theme)
		text = components.RenderMarkdown(theme, text, outputWidth(env.Stdout))
	}
	_, err := fmt.Fprintln(env.Stdout, strings.TrimRight(text, "\n"))
	return err
}

// HandleVersion handles "fmtkit version".
func HandleVersion(env *Env, args Args) error {
	data := VersionData{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
	if args.JSON {
		return NewJSONResponse("version", data).Print(env.Stdout)
	}
	fmt.Fprintf(env.Stdout, "fmtkit %s\n", Version)
	fmt.Fprintf(env.Stdout, "  commit:  %s\n", GitCommit)
	fmt.Fprintf(env.Stdout, "  built:   %s\n", BuildDate)
	fmt.Fprintf(env.Stdout, "  go:      %s\n", data.GoVersion)
	return nil
}
