// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for fmtkit.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.fmtkit/config.toml
//   - ~/.fmtkit/config.json
//   - Built-in defaults
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/jeranaias/fmtkit/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete fmtkit configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	UI        UIConfig        `toml:"ui" json:"ui"`
	Clipboard ClipboardConfig `toml:"clipboard" json:"clipboard"`
	Logging   LoggingConfig   `toml:"logging" json:"logging"`
	Watch     WatchConfig     `toml:"watch" json:"watch"`
}

// UIConfig contains TUI settings.
type UIConfig struct {
	// DefaultTab is the tab shown at startup: converter, json-validator, yaml-validator
	DefaultTab string `toml:"default_tab" json:"default_tab"`
	// DefaultFormat is the converter's declared input format: json, yaml
	DefaultFormat string `toml:"default_format" json:"default_format"`
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// Highlight enables syntax highlighting of converter output
	Highlight bool `toml:"highlight" json:"highlight"`
	// AutoDetect re-detects the input format on every edit
	AutoDetect bool `toml:"auto_detect" json:"auto_detect"`
	// ToastSeconds is how long notifications stay on screen
	ToastSeconds int `toml:"toast_seconds" json:"toast_seconds"`
}

// ClipboardConfig controls copy behavior.
type ClipboardConfig struct {
	// OSC52 enables the terminal escape-sequence fallback
	OSC52 bool `toml:"osc52" json:"osc52"`
	// TimeoutMs bounds the system clipboard write
	TimeoutMs int `toml:"timeout_ms" json:"timeout_ms"`
}

// LoggingConfig controls the diagnostic log.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error, off
	Level string `toml:"level" json:"level"`
	// File is the TUI log file; empty means ~/.fmtkit/fmtkit.log
	File string `toml:"file" json:"file"`
}

// WatchConfig controls `fmtkit watch`.
type WatchConfig struct {
	// DebounceMs is the minimum interval between reconversions
	DebounceMs int `toml:"debounce_ms" json:"debounce_ms"`
}

// Valid values shared with Validate.
var (
	validTabs    = []string{"converter", "json-validator", "yaml-validator"}
	validFormats = []string{"json", "yaml"}
	validThemes  = []string{"dark", "light", "auto"}
	validLevels  = []string{"debug", "info", "warn", "error", "off"}
)

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		UI: UIConfig{
			DefaultTab:    "converter",
			DefaultFormat: "json",
			Theme:         "auto",
			Highlight:     true,
			AutoDetect:    true,
			ToastSeconds:  3,
		},

		Clipboard: ClipboardConfig{
			OSC52:     true,
			TimeoutMs: 2000,
		},

		Logging: LoggingConfig{
			Level: "warn",
		},

		Watch: WatchConfig{
			DebounceMs: 250,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the fmtkit configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".fmtkit"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LogPath returns the TUI log file path, honoring logging.file.
func (c *Config) LogPath() (string, error) {
	if c.Logging.File != "" {
		return c.Logging.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "fmtkit.log"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			return LoadFromPath(tomlPath)
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			return LoadFromPath(jsonPath)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file on top of cfg.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// LoadJSON loads configuration from a JSON file on top of cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
// Keys missing from the file keep their default values.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// normalize lowercases enum-like fields and fills blanks from defaults.
func (c *Config) normalize() {
	defaults := Default()

	c.UI.DefaultTab = strings.ToLower(strings.TrimSpace(c.UI.DefaultTab))
	c.UI.DefaultFormat = strings.ToLower(strings.TrimSpace(c.UI.DefaultFormat))
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.UI.DefaultTab == "" {
		c.UI.DefaultTab = defaults.UI.DefaultTab
	}
	if c.UI.DefaultFormat == "yml" {
		c.UI.DefaultFormat = "yaml"
	}
	if c.UI.DefaultFormat == "" {
		c.UI.DefaultFormat = defaults.UI.DefaultFormat
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration to a TOML file atomically.
func SaveTOML(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("# fmtkit configuration file\n")
	buf.WriteString("# Generated by `fmtkit config init` - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON writes the configuration to a JSON file atomically.
func SaveJSON(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	oneOf := func(field, value string, allowed []string) {
		for _, a := range allowed {
			if strings.EqualFold(value, a) {
				return
			}
		}
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("invalid value '%s', must be one of: %s", value, strings.Join(allowed, ", ")),
		})
	}
	inRange := func(field string, value, lo, hi int) {
		if value < lo || value > hi {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("value %d out of range [%d, %d]", value, lo, hi),
			})
		}
	}

	oneOf("ui.default_tab", c.UI.DefaultTab, validTabs)
	oneOf("ui.default_format", c.UI.DefaultFormat, validFormats)
	oneOf("ui.theme", c.UI.Theme, validThemes)
	inRange("ui.toast_seconds", c.UI.ToastSeconds, 1, 60)

	inRange("clipboard.timeout_ms", c.Clipboard.TimeoutMs, 100, 60000)

	oneOf("logging.level", c.Logging.Level, validLevels)

	inRange("watch.debounce_ms", c.Watch.DebounceMs, 0, 60000)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies FMTKIT_* environment variables:
//   - FMTKIT_DEFAULT_TAB: overrides ui.default_tab
//   - FMTKIT_DEFAULT_FORMAT: overrides ui.default_format
//   - FMTKIT_OSC52: overrides clipboard.osc52
//   - FMTKIT_LOG_LEVEL: overrides logging.level
//   - FMTKIT_LOG_FILE: overrides logging.file
func (c *Config) ApplyEnvOverrides() {
	if tab := os.Getenv("FMTKIT_DEFAULT_TAB"); tab != "" {
		c.UI.DefaultTab = tab
	}

	if f := os.Getenv("FMTKIT_DEFAULT_FORMAT"); f != "" {
		c.UI.DefaultFormat = f
	}

	if v := os.Getenv("FMTKIT_OSC52"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Clipboard.OSC52 = b
		}
	}

	if level := os.Getenv("FMTKIT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	if file := os.Getenv("FMTKIT_LOG_FILE"); file != "" {
		c.Logging.File = file
	}

	c.normalize()
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "ui.default_tab").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if strings.TrimSpace(key) == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct {
				return reflect.Value{}, fmt.Errorf("field '%s' is a section, not a value", key)
			}
			return field, nil
		}

		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}

	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}

	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			boolVal := strVal == "1" || strings.ToLower(strVal) == "true" || strings.ToLower(strVal) == "yes"
			field.SetBool(boolVal)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}

	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"ui.default_tab",
		"ui.default_format",
		"ui.theme",
		"ui.highlight",
		"ui.auto_detect",
		"ui.toast_seconds",
		"clipboard.osc52",
		"clipboard.timeout_ms",
		"logging.level",
		"logging.file",
		"watch.debounce_ms",
	}
}

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns the configuration as indented JSON.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfigMu.Lock()
		if globalConfig == nil {
			globalConfig = cfg
		}
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	SetGlobal(cfg)
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
