// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the fmtkit packages.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth, StringWidth, PadRight: column-aware text layout
//   - FirstLine, CountLines: summaries of multi-line text
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	// Fit a status message into the footer
//	status := util.TruncateWidth(msg, width-2)
//
//	// Write converter output without leaving a half-written file behind
//	err := util.AtomicWriteFile(path, data, 0644)
package util
