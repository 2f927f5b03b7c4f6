// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// json_output.go - the --json envelope shared by every command.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// JSONResponse is the response envelope printed in --json mode.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is the RFC 3339 time the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the command that was executed
	Command string `json:"command,omitempty"`
}

// NewJSONResponse creates a new successful JSON response.
func NewJSONResponse(command string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// NewJSONErrorResponse creates a new error JSON response.
func NewJSONErrorResponse(command string, err error) *JSONResponse {
	errStr := err.Error()
	return &JSONResponse{
		Success:   false,
		Error:     &errStr,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// Print writes the response to w as indented JSON.
func (r *JSONResponse) Print(w io.Writer) error {
	return jsonEncode(w, r)
}

// String returns the response as indented JSON.
func (r *JSONResponse) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"success":false,"error":"failed to marshal response: %s","timestamp":"%s"}`,
			err.Error(), time.Now().UTC().Format(time.RFC3339))
	}
	return string(data)
}

// =============================================================================
// COMMAND-SPECIFIC DATA STRUCTURES
// =============================================================================

// ConvertData is returned by convert and by each watch reconversion.
type ConvertData struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Detected bool   `json:"detected"`
	Output   string `json:"output,omitempty"`
	// OutFile is set when the output was written to a file instead.
	OutFile string `json:"out_file,omitempty"`
}

// ValidateData is returned by validate.
type ValidateData struct {
	Format  string         `json:"format"`
	Valid   bool           `json:"valid"`
	Type    string         `json:"type,omitempty"`
	Length  *int           `json:"length,omitempty"`
	Keys    *int           `json:"keys,omitempty"`
	Error   string         `json:"error,omitempty"`
	Line    int            `json:"line,omitempty"`
	Column  int            `json:"column,omitempty"`
	Details []DetailRecord `json:"details"`
}

// DetailRecord is one labeled line of a validation result.
type DetailRecord struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DetectData is returned by detect.
type DetectData struct {
	Format string `json:"format"`
}

// ConfigData is returned by config show.
type ConfigData struct {
	Path   string      `json:"config_path"`
	Exists bool        `json:"exists"`
	Config interface{} `json:"config"`
}

// ConfigValueData is returned by config get and config set.
type ConfigValueData struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
	Path  string      `json:"config_path,omitempty"`
}

// VersionData represents the data returned by the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version,omitempty"`
}
