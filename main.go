// fmtkit - JSON and YAML conversion and validation for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jeranaias/fmtkit/internal/cli"
	"github.com/jeranaias/fmtkit/internal/config"
	"github.com/jeranaias/fmtkit/internal/logging"
	"github.com/jeranaias/fmtkit/internal/toolkit"
	"github.com/jeranaias/fmtkit/internal/ui/tools"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	cmd, args, err := cli.Parse(argv)
	if err != nil {
		cli.ConfigureColors()
		cli.DisplayError(errWriter(args), cmd.String(), err, args.JSON)
		return cli.GetExitCode(err)
	}

	cfg, err := loadConfig(cmd, args)
	if err != nil {
		cli.ConfigureColors()
		cli.DisplayError(errWriter(args), cmd.String(), err, args.JSON)
		return cli.GetExitCode(err)
	}

	config.SetGlobal(cfg)
	logger, closer := setupLogging(cmd, args, cfg)
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cmd == cli.CmdTUI {
		return runTUI(ctx, args, logger)
	}

	cli.ConfigureColors()
	env := cli.NewEnv(ctx, cfg, logger)
	env.ConfigPath = args.ConfigFile
	err = cli.Run(env, cmd, args)
	cli.DisplayError(errWriter(args), cmd.String(), err, args.JSON)
	return cli.GetExitCode(err)
}

// errWriter returns where errors go: stdout in JSON mode so the envelope
// stays machine-readable, stderr otherwise.
func errWriter(args cli.Args) io.Writer {
	if args.JSON {
		return os.Stdout
	}
	return os.Stderr
}

// loadConfig loads --config or the default config file. A missing --config
// file is only allowed for the config command, which may create it.
func loadConfig(cmd cli.Command, args cli.Args) (*config.Config, error) {
	if cmd == cli.CmdHelp || cmd == cli.CmdVersion {
		if cfg, err := config.Load(); err == nil {
			return cfg, nil
		}
		return config.Default(), nil
	}

	if args.ConfigFile == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, &cli.ConfigError{Err: err}
		}
		return cfg, nil
	}

	if _, err := os.Stat(args.ConfigFile); errors.Is(err, fs.ErrNotExist) {
		if cmd != cli.CmdConfig {
			return nil, cli.ErrNotFound("config file", args.ConfigFile)
		}
		cfg := config.Default()
		cfg.ApplyEnvOverrides()
		return cfg, nil
	}
	cfg, err := config.LoadFromPath(args.ConfigFile)
	if err != nil {
		return nil, &cli.ConfigError{Path: args.ConfigFile, Err: err}
	}
	return cfg, nil
}

// setupLogging logs to a file under the TUI, since the screen belongs to
// Bubble Tea, and to stderr for batch commands.
func setupLogging(cmd cli.Command, args cli.Args, cfg *config.Config) (zerolog.Logger, io.Closer) {
	opts := logging.Options{
		Profile: logging.ProfileCLI,
		Level:   cfg.Logging.Level,
		NoColor: !cli.ColorsEnabled(),
	}
	if cmd == cli.CmdTUI {
		opts.Profile = logging.ProfileTUI
		if path, err := cfg.LogPath(); err == nil {
			opts.File = path
		}
	}
	if args.Verbose {
		opts.Level = "debug"
	}

	closer, err := logging.Install(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return zerolog.Nop(), closer
	}
	return log.Logger, closer
}

func runTUI(ctx context.Context, args cli.Args, logger zerolog.Logger) int {
	opts := tools.Options{Logger: &logger}
	if args.Tab != "" {
		tab, err := toolkit.ParseTabID(args.Tab)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return cli.ExitUsageError
		}
		opts.InitialTab = tab
	}

	if err := tools.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitGeneralError
	}
	return cli.ExitSuccess
}
