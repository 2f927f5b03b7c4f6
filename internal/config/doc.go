// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for fmtkit.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - UIConfig: startup tab, declared format, theme, toasts
//   - ClipboardConfig: OSC 52 fallback and write timeout
//   - LoggingConfig: log level and TUI log file
//   - WatchConfig: reconversion debounce for `fmtkit watch`
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (FMTKIT_*)
//   - ~/.fmtkit/config.toml
//   - ~/.fmtkit/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	tab := cfg.UI.DefaultTab
//	level := cfg.Logging.Level
package config
