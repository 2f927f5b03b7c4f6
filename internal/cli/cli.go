// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - command-line parsing and dispatch for fmtkit.

package cli

import (
	"fmt"
	"strings"

	"github.com/jeranaias/fmtkit/internal/format"
	"github.com/jeranaias/fmtkit/internal/toolkit"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdConvert
	CmdValidate
	CmdDetect
	CmdWatch
	CmdConfig
	CmdVersion
	CmdHelp
)

// commandNames maps names and aliases to commands.
var commandNames = map[string]Command{
	"tui":      CmdTUI,
	"ui":       CmdTUI,
	"convert":  CmdConvert,
	"c":        CmdConvert,
	"validate": CmdValidate,
	"v":        CmdValidate,
	"detect":   CmdDetect,
	"d":        CmdDetect,
	"watch":    CmdWatch,
	"w":        CmdWatch,
	"config":   CmdConfig,
	"version":  CmdVersion,
	"help":     CmdHelp,
}

// String returns the canonical command name.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdConvert:
		return "convert"
	case CmdValidate:
		return "validate"
	case CmdDetect:
		return "detect"
	case CmdWatch:
		return "watch"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	default:
		return "help"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	JSON       bool   // Output in JSON format
	Quiet      bool   // Suppress notifications on stderr
	Verbose    bool   // Debug logging
	ConfigFile string // Alternate config file

	// Command-specific
	File       string // Input file; empty or "-" reads stdin
	From       string // convert/watch: json, yaml or auto
	Out        string // convert/watch: output file
	Format     string // validate: json or yaml
	Tab        string // tui: initial tab
	Force      bool   // config init: overwrite
	Subcommand string // config: show, path, init, get, set; help: topic
	ConfigKey  string
	ConfigVal  string

	// Raw args after the command name
	Raw []string
}

// boolFlags never consume the following argument.
var boolFlags = []string{"json", "quiet", "q", "verbose", "force", "help", "h", "version", "V"}

// globalFlags are accepted by every command.
var globalFlags = []string{"json", "quiet", "q", "verbose", "config", "help", "h"}

// commandFlags lists the extra flags each command accepts.
var commandFlags = map[Command][]string{
	CmdTUI:      {"tab", "version", "V"},
	CmdConvert:  {"from", "f", "out", "o"},
	CmdValidate: {"format"},
	CmdDetect:   {},
	CmdWatch:    {"from", "f", "out", "o"},
	CmdConfig:   {"force"},
	CmdVersion:  {},
	CmdHelp:     {},
}

// =============================================================================
// PARSING
// =============================================================================

// Parse parses argv (without the program name). An empty argv or leading
// flags start the TUI.
func Parse(argv []string) (Command, Args, error) {
	cmd := CmdTUI
	rest := argv
	if len(argv) > 0 && !strings.HasPrefix(argv[0], "-") {
		c, ok := commandNames[strings.ToLower(argv[0])]
		if !ok {
			return CmdHelp, Args{}, &ValidationError{
				Field:   "command",
				Value:   argv[0],
				Reason:  "unknown command",
				Example: "fmtkit help",
			}
		}
		cmd = c
		rest = argv[1:]
	}

	p := NewArgParser(rest, boolFlags...)
	args := Args{
		JSON:       p.BoolFlag("json"),
		Quiet:      p.BoolFlag("quiet", "q"),
		Verbose:    p.BoolFlag("verbose"),
		ConfigFile: p.Flag("config"),
		Raw:        rest,
	}

	if cmd == CmdTUI && p.BoolFlag("version", "V") {
		return CmdVersion, args, nil
	}
	if p.BoolFlag("help", "h") {
		if cmd != CmdTUI {
			args.Subcommand = cmd.String()
		}
		return CmdHelp, args, nil
	}

	known := append(append([]string{}, globalFlags...), commandFlags[cmd]...)
	if unknown := p.Unknown(known...); len(unknown) > 0 {
		return cmd, args, &ValidationError{
			Field:   "flag",
			Value:   "--" + unknown[0],
			Reason:  "unknown flag for " + cmd.String(),
			Example: "fmtkit help " + cmd.String(),
		}
	}

	var err error
	switch cmd {
	case CmdTUI:
		err = parseTUI(p, &args)
	case CmdConvert, CmdWatch:
		err = parseConvert(cmd, p, &args)
	case CmdValidate:
		err = parseValidate(p, &args)
	case CmdDetect:
		args.File = p.Positional(0)
	case CmdConfig:
		args.Subcommand = strings.ToLower(p.Positional(0))
		if args.Subcommand == "" {
			args.Subcommand = "show"
		}
		args.ConfigKey = p.Positional(1)
		args.ConfigVal = strings.Join(p.PositionalFrom(2), " ")
		args.Force = p.BoolFlag("force")
	case CmdHelp:
		args.Subcommand = strings.ToLower(p.Positional(0))
	}
	return cmd, args, err
}

func parseTUI(p *ArgParser, args *Args) error {
	args.Tab = p.Flag("tab")
	if args.Tab == "" {
		return nil
	}
	if _, err := toolkit.ParseTabID(args.Tab); err != nil {
		return ErrInvalidValue("tab", args.Tab, "converter, json-validator or yaml-validator")
	}
	return nil
}

func parseConvert(cmd Command, p *ArgParser, args *Args) error {
	args.File = p.Positional(0)
	args.Out = p.Flag("out", "o")
	args.From = strings.ToLower(p.Flag("from", "f"))
	if args.From == "" {
		args.From = "auto"
	}
	if args.From != "auto" {
		if _, err := format.ParseFormat(args.From); err != nil {
			return ErrInvalidValue("from", args.From, "json, yaml or auto")
		}
	}
	if cmd == CmdWatch && (args.File == "" || args.File == "-") {
		return ErrMissingArgument("FILE", "fmtkit watch config.yaml --out config.json")
	}
	return nil
}

func parseValidate(p *ArgParser, args *Args) error {
	args.File = p.Positional(0)
	args.Format = strings.ToLower(p.Flag("format"))
	if args.Format == "" {
		return nil
	}
	if _, err := format.ParseFormat(args.Format); err != nil {
		return ErrInvalidValue("format", args.Format, "json or yaml")
	}
	return nil
}

// =============================================================================
// DISPATCH
// =============================================================================

// Run executes a non-TUI command.
func Run(env *Env, cmd Command, args Args) error {
	switch cmd {
	case CmdConvert:
		return HandleConvert(env, args)
	case CmdValidate:
		return HandleValidate(env, args)
	case CmdDetect:
		return HandleDetect(env, args)
	case CmdWatch:
		return HandleWatch(env, args)
	case CmdConfig:
		return HandleConfig(env, args)
	case CmdVersion:
		return HandleVersion(env, args)
	case CmdHelp:
		return HandleHelp(env, args)
	default:
		return fmt.Errorf("%s is not a batch command", cmd)
	}
}
