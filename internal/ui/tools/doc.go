// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tools is the full-screen terminal UI: a JSON/YAML converter and
// two validators on tabs, with toasts for feedback.
//
// # Architecture
//
// Model follows the Elm architecture used by Bubble Tea. All actions are
// delegated to a toolkit.Controller; the model owns only editors, panes
// and layout. Controller notifications land in a components.ToastManager.
//
// # Keys
//
//	Ctrl+N / Ctrl+P   next / previous tab
//	F1 F2 F3          converter, JSON validator, YAML validator
//	Ctrl+R            convert (validate on validator tabs)
//	Ctrl+F            toggle declared input format
//	Ctrl+Y            copy converter output
//	Ctrl+E            validate
//	Tab               switch converter focus between input and output
//	F4 or ?           help
//	Ctrl+C            quit
//
// Clipboard writes run as a tea.Cmd so a slow system clipboard never
// blocks rendering.
package tools
