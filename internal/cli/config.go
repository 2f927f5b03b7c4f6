// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - the config command.
//
// Command: config [subcommand]
// Short:   View and modify configuration
//
// Subcommands:
//   show (default)      Display the effective configuration
//   path                Show the configuration file path
//   init [--force]      Write a default configuration file
//   get <key>           Print one value
//   set <key> <value>   Change one value in the file
//
// Examples:
//   fmtkit config
//   fmtkit config get ui.default_tab
//   fmtkit config set ui.theme light
//   fmtkit config set clipboard.osc52 false
//   fmtkit config init --force
//
// show and get report the effective values, environment overrides
// included. set edits the file only.

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jeranaias/fmtkit/internal/config"
)

// HandleConfig handles "fmtkit config".
func HandleConfig(env *Env, args Args) error {
	path, err := env.configPath()
	if err != nil {
		return &ConfigError{Err: err}
	}

	switch args.Subcommand {
	case "", "show":
		return handleConfigShow(env, args, path)
	case "path":
		return handleConfigPath(env, args, path)
	case "init":
		return handleConfigInit(env, args, path)
	case "get":
		return handleConfigGet(env, args, path)
	case "set":
		return handleConfigSet(env, args, path)
	default:
		return ErrInvalidValue("subcommand", args.Subcommand, "show, path, init, get or set")
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isJSONConfig(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".json")
}

// =============================================================================
// SHOW / PATH
// =============================================================================

func handleConfigShow(env *Env, args Args, path string) error {
	exists := fileExists(path)
	if args.JSON {
		return NewJSONResponse("config", ConfigData{Path: path, Exists: exists, Config: env.Config}).Print(env.Stdout)
	}

	fmt.Fprintln(env.Stdout, TitleStyle.Render("fmtkit configuration"))
	fmt.Fprintln(env.Stdout, RenderSeparator(50))
	for _, key := range config.GetAllKeys() {
		val, err := env.Config.Get(key)
		if err != nil {
			continue
		}
		fmt.Fprintf(env.Stdout, "%s%s\n", RenderLabel(key, 24), ValueStyle.Render(fmt.Sprint(val)))
	}
	fmt.Fprintln(env.Stdout, RenderSeparator(50))
	note := "(not created, using defaults)"
	if exists {
		note = ""
	}
	fmt.Fprintf(env.Stdout, "%s%s %s\n", RenderLabel("file", 24), path, DimStyle.Render(note))
	return nil
}

func handleConfigPath(env *Env, args Args, path string) error {
	if args.JSON {
		return NewJSONResponse("config", ConfigData{Path: path, Exists: fileExists(path)}).Print(env.Stdout)
	}
	_, err := fmt.Fprintln(env.Stdout, path)
	return err
}

// =============================================================================
// INIT
// =============================================================================

func handleConfigInit(env *Env, args Args, path string) error {
	if fileExists(path) && !args.Force {
		return &ValidationError{
			Field:   "config",
			Value:   path,
			Reason:  "file already exists",
			Example: "fmtkit config init --force",
		}
	}

	cfg := config.Default()
	if err := saveConfigFile(cfg, path); err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	env.Logger.Info().Str("path", path).Msg("config initialized")

	if args.JSON {
		return NewJSONResponse("config", ConfigData{Path: path, Exists: true, Config: cfg}).Print(env.Stdout)
	}
	fmt.Fprintf(env.Stdout, "%s wrote %s\n", RenderStatus("ok"), path)
	return nil
}

// =============================================================================
// GET / SET
// =============================================================================

func knownKey(key string) bool {
	for _, k := range config.GetAllKeys() {
		if k == key {
			return true
		}
	}
	return false
}

func handleConfigGet(env *Env, args Args, path string) error {
	key := strings.ToLower(args.ConfigKey)
	if key == "" {
		return ErrMissingArgument("KEY", "fmtkit config get ui.default_tab")
	}
	if !knownKey(key) {
		return ErrNotFound("config key", key)
	}
	val, err := env.Config.Get(key)
	if err != nil {
		return ErrNotFound("config key", key)
	}

	if args.JSON {
		return NewJSONResponse("config", ConfigValueData{Key: key, Value: val, Path: path}).Print(env.Stdout)
	}
	_, err = fmt.Fprintln(env.Stdout, val)
	return err
}

func handleConfigSet(env *Env, args Args, path string) error {
	key := strings.ToLower(args.ConfigKey)
	if key == "" || args.ConfigVal == "" {
		return ErrMissingArgument("KEY VALUE", "fmtkit config set ui.theme light")
	}
	if !knownKey(key) {
		return ErrNotFound("config key", key)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		return &ConfigError{Path: path, Err: err}
	}

	current, err := cfg.Get(key)
	if err != nil {
		return ErrNotFound("config key", key)
	}
	var value interface{} = strings.TrimSpace(args.ConfigVal)
	if _, isBool := current.(bool); isBool {
		b, err := ParseBoolString(args.ConfigVal)
		if err != nil {
			return ErrInvalidValue(key, args.ConfigVal, "true or false")
		}
		value = b
	}
	if err := cfg.Set(key, value); err != nil {
		return ErrInvalidValue(key, args.ConfigVal, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	if err := saveConfigFile(cfg, path); err != nil {
		return &ConfigError{Path: path, Err: err}
	}

	val, _ := cfg.Get(key)
	env.Logger.Info().Str("key", key).Interface("value", val).Msg("config updated")
	if args.JSON {
		return NewJSONResponse("config", ConfigValueData{Key: key, Value: val, Path: path}).Print(env.Stdout)
	}
	fmt.Fprintf(env.Stdout, "%s %s = %v\n", RenderStatus("ok"), key, val)
	return nil
}

// loadConfigFile reads the file alone, without environment overrides, so
// that saving it does not persist them.
func loadConfigFile(path string) (*config.Config, error) {
	cfg := config.Default()
	var err error
	if isJSONConfig(path) {
		err = config.LoadJSON(cfg, path)
	} else {
		err = config.LoadTOML(cfg, path)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	return cfg, err
}

func saveConfigFile(cfg *config.Config, path string) error {
	if isJSONConfig(path) {
		return config.SaveJSON(cfg, path)
	}
	return config.SaveTOML(cfg, path)
}
