// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package toolkit holds the behavior behind the fmtkit tool panels.
//
// A Controller owns the active tab and the converter's declared input
// format. Everything else is passed in per call: the text of the input
// fields, and the output to copy. No results are cached between calls.
//
// # Panels
//
//   - converter: JSON to YAML and back, with format auto-detection
//   - json-validator: syntax check plus a shallow summary
//   - yaml-validator: same, for YAML
//
// # Notifications
//
// User-facing messages go through a Notifier. The TUI shows them as toasts,
// the CLI prints them to stderr, and tests record them.
//
// # Usage
//
//	ctl, err := toolkit.New(toolkit.Options{Notifier: toasts})
//	if err != nil {
//	    return err
//	}
//	ctl.AutoDetect(input)
//	conv := ctl.Convert(input)
//	if !conv.Skipped {
//	    output = conv.Output
//	}
package toolkit
