// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// env.go - the I/O environment commands run in, plus input/output helpers.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/jeranaias/fmtkit/internal/config"
	"github.com/jeranaias/fmtkit/internal/format"
	"github.com/jeranaias/fmtkit/internal/toolkit"
	"github.com/jeranaias/fmtkit/internal/util"
)

// Env is what a command reads from and writes to.
type Env struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Config *config.Config
	// ConfigPath is the config file used by the config command. Empty means
	// the default location.
	ConfigPath string
	Logger     zerolog.Logger
}

// NewEnv returns an Env bound to the process's standard streams.
func NewEnv(ctx context.Context, cfg *config.Config, logger zerolog.Logger) *Env {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Env{
		Ctx:    ctx,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Config: cfg,
		Logger: logger,
	}
}

func (e *Env) context() context.Context {
	if e.Ctx == nil {
		return context.Background()
	}
	return e.Ctx
}

// configPath resolves the config file path.
func (e *Env) configPath() (string, error) {
	if e.ConfigPath != "" {
		return e.ConfigPath, nil
	}
	return config.ConfigPathTOML()
}

// =============================================================================
// TERMINAL
// =============================================================================

// isTerminal reports whether stream is an *os.File attached to a terminal.
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// outputWidth is the column count of w, at least 40. Pipes and buffers get 80.
func outputWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 80
	}
	width, _, err := term.GetSize(int(f.Fd()))
	switch {
	case err != nil || width <= 0:
		return 80
	case width < 40:
		return 40
	}
	return width
}

// =============================================================================
// INPUT AND OUTPUT
// =============================================================================

// readInput reads file, or stdin when file is empty or "-". An interactive
// stdin is refused so the command does not wait on a terminal.
func readInput(env *Env, file string) (string, error) {
	if file == "" || file == "-" {
		if isTerminal(env.Stdin) {
			return "", ErrMissingArgument("FILE", "fmtkit convert data.json  or  cat data.json | fmtkit convert")
		}
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotFound("file", file)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file, err)
	}
	return string(data), nil
}

// writeOutput writes text to out, or to stdout when out is empty. Text
// always ends with a newline.
func writeOutput(env *Env, out, text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if out == "" || out == "-" {
		_, err := io.WriteString(env.Stdout, text)
		return err
	}
	if err := util.AtomicWriteFile(out, []byte(text), 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}

// formatFromExt guesses a format from a file extension.
func formatFromExt(file string) (format.Format, bool) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return format.JSON, true
	case ".yaml", ".yml":
		return format.YAML, true
	default:
		return format.JSON, false
	}
}

// resolveFrom returns the starting input format and whether it should be
// auto-detected. Auto starts from the file extension, then the configured
// default format.
func resolveFrom(env *Env, from, file string) (format.Format, bool) {
	if from != "" && from != "auto" {
		f, err := format.ParseFormat(from)
		if err == nil {
			return f, false
		}
	}
	if f, ok := formatFromExt(file); ok {
		return f, true
	}
	f, err := format.ParseFormat(env.Config.UI.DefaultFormat)
	if err != nil {
		f = format.JSON
	}
	return f, true
}

// =============================================================================
// CONTROLLER
// =============================================================================

// newController returns a controller that reports to stderr when notify
// is set.
func newController(env *Env, f format.Format, notify bool) (*toolkit.Controller, error) {
	var notifier toolkit.Notifier = toolkit.Discard
	if notify {
		notifier = stderrNotifier(env.Stderr)
	}
	logger := env.Logger
	return toolkit.New(toolkit.Options{
		Format:   f,
		Notifier: notifier,
		Logger:   &logger,
	})
}

// stderrNotifier prints notifications as status lines.
func stderrNotifier(w io.Writer) toolkit.Notifier {
	return toolkit.NotifierFunc(func(n toolkit.Notification) {
		status := "ok"
		if n.Severity == toolkit.SeverityError {
			status = "fail"
		}
		fmt.Fprintf(w, "%s %s\n", RenderStatus(status), n.Message)
	})
}

// =============================================================================
// REPORTED ERRORS
// =============================================================================

// reportedError is a failure the command already printed. It still
// determines the exit code but is not displayed again.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already shown to the user.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
