// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures the zerolog logger used across fmtkit.
//
// The TUI owns the terminal, so it logs to a file. CLI commands log to
// stderr through a console writer. FMTKIT_LOG_LEVEL overrides the level in
// both profiles.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel = "FMTKIT_LOG_LEVEL"
	EnvLogFile  = "FMTKIT_LOG_FILE"
)

// Profile selects defaults for where and how much to log.
type Profile int

const (
	// ProfileTUI writes JSON lines to a file at warn level.
	ProfileTUI Profile = iota
	// ProfileCLI writes human-readable lines to stderr at info level.
	ProfileCLI
	// ProfileTest discards everything.
	ProfileTest
)

// Options configures New.
type Options struct {
	Profile Profile
	// Level overrides the profile default when set.
	Level string
	// File is the log file for ProfileTUI.
	File string
	// Out replaces the destination writer. Used by tests.
	Out io.Writer
	// NoColor disables ANSI colors in the console writer.
	NoColor bool
}

// New builds a logger. The returned closer releases the log file, if any.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	level := defaultLevel(opts.Profile)
	if lvl, ok := ParseLevel(opts.Level); ok {
		level = lvl
	}
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		level = lvl
	}

	out, closer, err := destination(opts)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Str("app", "fmtkit").Logger()
	return logger, closer, nil
}

// Install builds a logger with New and makes it the global zerolog logger.
func Install(opts Options) (io.Closer, error) {
	logger, closer, err := New(opts)
	if err != nil {
		return closer, err
	}
	log.Logger = logger
	return closer, nil
}

func defaultLevel(p Profile) zerolog.Level {
	switch p {
	case ProfileCLI:
		return zerolog.InfoLevel
	case ProfileTest:
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

func destination(opts Options) (io.Writer, io.Closer, error) {
	switch opts.Profile {
	case ProfileTest:
		if opts.Out != nil {
			return opts.Out, nopCloser{}, nil
		}
		return io.Discard, nopCloser{}, nil
	case ProfileCLI:
		out := opts.Out
		if out == nil {
			out = os.Stderr
		}
		return zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    opts.NoColor,
		}, nopCloser{}, nil
	default:
		if opts.Out != nil {
			return opts.Out, nopCloser{}, nil
		}
		path := opts.File
		if env := os.Getenv(EnvLogFile); env != "" {
			path = env
		}
		if path == "" {
			return io.Discard, nopCloser{}, nil
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return f, f, nil
	}
}

// ParseLevel maps a level name to a zerolog level. ok is false for empty
// or unknown names.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
