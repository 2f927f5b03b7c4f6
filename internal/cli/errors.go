// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - error types, exit codes and error display for CLI commands.
//
// Handlers always return errors; main displays them once and exits with
// the code from GetExitCode.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jeranaias/fmtkit/internal/config"
	"github.com/jeranaias/fmtkit/internal/format"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage, arguments or empty input
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
	// ExitNotFoundError indicates a missing input file or config key
	ExitNotFoundError = 7
	// ExitParseError indicates input that is not valid JSON or YAML
	ExitParseError = 10
)

// ErrUndetected is returned by detect when neither parser accepts the input.
var ErrUndetected = errors.New("input is neither JSON nor YAML")

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "convert", "config")
	Action  string // Action being performed (e.g., "json -> yaml", "set")
	Reason  string // Human-readable reason
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	prefix := e.Command
	if e.Action != "" {
		prefix += " " + e.Action
	}
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", prefix, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", prefix, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ValidationError represents invalid command-line input.
type ValidationError struct {
	Field   string // Flag or argument that failed validation
	Value   string // Value that was provided
	Reason  string // Why validation failed
	Example string // Example of valid usage (optional)
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	if e.Value != "" {
		msg += fmt.Sprintf(" (got: %s)", e.Value)
	}
	if e.Example != "" {
		msg += fmt.Sprintf("\nExample: %s", e.Example)
	}
	return msg
}

// NotFoundError represents a missing file or key.
type NotFoundError struct {
	Resource string // Type of resource (e.g., "file", "config key")
	ID       string // Identifier that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ConfigError wraps a failure to load, validate or save the config file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// =============================================================================
// ERROR CONSTRUCTION HELPERS
// =============================================================================

// NewCommandError creates a new command error.
func NewCommandError(command, action, reason string, err error) error {
	return &CommandError{
		Command: command,
		Action:  action,
		Reason:  reason,
		Err:     err,
	}
}

// ErrMissingArgument creates an error for a missing required argument.
func ErrMissingArgument(argName, usage string) error {
	return &ValidationError{
		Field:   argName,
		Reason:  "required argument missing",
		Example: usage,
	}
}

// ErrInvalidValue creates an error for a flag value outside the accepted set.
func ErrInvalidValue(field, value, expected string) error {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Reason:  "invalid value",
		Example: expected,
	}
}

// ErrNotFound creates a not found error.
func ErrNotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// GetExitCode determines the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ExitUsageError
	}
	if errors.Is(err, format.ErrEmptyInput) {
		return ExitUsageError
	}

	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return ExitNotFoundError
	}

	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return ExitConfigError
	}
	var configInvalid config.ValidateErrors
	if errors.As(err, &configInvalid) {
		return ExitConfigError
	}

	if format.IsParseError(err) || errors.Is(err, ErrUndetected) {
		return ExitParseError
	}

	return ExitGeneralError
}

// =============================================================================
// ERROR DISPLAY
// =============================================================================

// DisplayError writes err to w, as a JSON envelope in JSON mode.
// Errors the command already printed are skipped.
func DisplayError(w io.Writer, command string, err error, jsonMode bool) {
	if err == nil || IsReported(err) {
		return
	}
	if jsonMode {
		DisplayErrorJSON(w, command, err)
		return
	}
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("[ERROR]"), err.Error())
}

// DisplayErrorJSON writes err as a failed JSONResponse with structured details.
func DisplayErrorJSON(w io.Writer, command string, err error) {
	resp := NewJSONErrorResponse(command, err)
	resp.Data = errorDetails(err)
	resp.Print(w)
}

// errorDetails describes err for machine consumers.
func errorDetails(err error) map[string]interface{} {
	details := map[string]interface{}{
		"exit_code": GetExitCode(err),
	}

	var (
		cmdErr      *CommandError
		validErr    *ValidationError
		notFoundErr *NotFoundError
		configErr   *ConfigError
		parseErr    *format.ParseError
	)
	switch {
	case errors.As(err, &validErr):
		details["error_type"] = "validation_error"
		details["field"] = validErr.Field
		details["value"] = validErr.Value
		details["reason"] = validErr.Reason
		if validErr.Example != "" {
			details["example"] = validErr.Example
		}
	case errors.As(err, &notFoundErr):
		details["error_type"] = "not_found_error"
		details["resource"] = notFoundErr.Resource
		details["id"] = notFoundErr.ID
	case errors.As(err, &configErr):
		details["error_type"] = "config_error"
		details["path"] = configErr.Path
	case errors.As(err, &parseErr):
		details["error_type"] = "parse_error"
		details["format"] = parseErr.Format.String()
		details["message"] = parseErr.Msg
		if parseErr.Line > 0 {
			details["line"] = parseErr.Line
			details["column"] = parseErr.Column
		}
	case errors.As(err, &cmdErr):
		details["error_type"] = "command_error"
	default:
		details["error_type"] = "generic_error"
	}

	if errors.As(err, &cmdErr) {
		details["command"] = cmdErr.Command
		details["action"] = cmdErr.Action
		details["reason"] = cmdErr.Reason
	}
	return details
}

// jsonEncode writes v as indented JSON.
func jsonEncode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
