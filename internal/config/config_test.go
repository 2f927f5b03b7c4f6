// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// isolate points the home directory at a temp dir and clears FMTKIT_* vars.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, k := range []string{
		"FMTKIT_DEFAULT_TAB", "FMTKIT_DEFAULT_FORMAT", "FMTKIT_OSC52",
		"FMTKIT_LOG_LEVEL", "FMTKIT_LOG_FILE",
	} {
		t.Setenv(k, "")
	}
	return home
}

// TestConfig_ConcurrentAccess tests that Global() and SetGlobal() can be
// safely called concurrently.
// Run with: go test -race -v ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	isolate(t)
	ResetGlobalForTesting()

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			c := Default()
			c.Version = "test"
			SetGlobal(c)
		}()

		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}

	wg.Wait()
}

// TestConfig_ConcurrentReload tests concurrent ReloadGlobal and Global calls.
func TestConfig_ConcurrentReload(t *testing.T) {
	isolate(t)
	ResetGlobalForTesting()
	_ = Global()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = ReloadGlobal()
		}()
	}
	for i := 0; i < 80; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}

// TestConfig_GlobalInitialization tests that Global() loads defaults when no
// config file exists.
func TestConfig_GlobalInitialization(t *testing.T) {
	isolate(t)
	ResetGlobalForTesting()

	cfg := Global()
	if cfg == nil {
		t.Fatal("Global() returned nil")
	}
	if cfg.UI.DefaultTab != "converter" {
		t.Errorf("expected default tab 'converter', got '%s'", cfg.UI.DefaultTab)
	}
}

// TestConfig_SetGlobalOverwrites tests that SetGlobal replaces the global config.
func TestConfig_SetGlobalOverwrites(t *testing.T) {
	isolate(t)
	ResetGlobalForTesting()
	_ = Global()

	custom := Default()
	custom.Version = "custom-version"
	SetGlobal(custom)

	if got := Global().Version; got != "custom-version" {
		t.Errorf("Expected version 'custom-version', got '%s'", got)
	}
}

// TestConfig_Default tests that Default() returns a valid config.
func TestConfig_Default(t *testing.T) {
	cfg := Default()

	if cfg.UI.DefaultTab != "converter" {
		t.Errorf("Expected default tab 'converter', got '%s'", cfg.UI.DefaultTab)
	}
	if cfg.UI.DefaultFormat != "json" {
		t.Errorf("Expected default format 'json', got '%s'", cfg.UI.DefaultFormat)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected log level 'warn', got '%s'", cfg.Logging.Level)
	}
	if !cfg.Clipboard.OSC52 {
		t.Error("OSC 52 fallback should be enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

// TestConfig_Validate tests configuration validation.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid default config", func(c *Config) {}, false},
		{"invalid tab", func(c *Config) { c.UI.DefaultTab = "history" }, true},
		{"yaml validator tab", func(c *Config) { c.UI.DefaultTab = "yaml-validator" }, false},
		{"invalid format", func(c *Config) { c.UI.DefaultFormat = "toml" }, true},
		{"invalid theme", func(c *Config) { c.UI.Theme = "neon" }, true},
		{"toast too short", func(c *Config) { c.UI.ToastSeconds = 0 }, true},
		{"clipboard timeout too low", func(c *Config) { c.Clipboard.TimeoutMs = 10 }, true},
		{"invalid log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"log level off", func(c *Config) { c.Logging.Level = "off" }, false},
		{"negative debounce", func(c *Config) { c.Watch.DebounceMs = -1 }, true},
		{"zero debounce", func(c *Config) { c.Watch.DebounceMs = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestConfig_ValidateCollectsAllErrors checks every failure is reported.
func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	c := Default()
	c.UI.DefaultTab = "nope"
	c.Logging.Level = "loud"

	err := c.Validate()
	var verrs ValidateErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidateErrors, got %T", err)
	}
	if len(verrs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(verrs), err)
	}
	if verrs[0].Field != "ui.default_tab" || verrs[1].Field != "logging.level" {
		t.Errorf("unexpected fields: %v", err)
	}
}

// TestConfig_EnvOverrides tests the FMTKIT_* variables.
func TestConfig_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("FMTKIT_DEFAULT_TAB", "JSON-Validator")
	t.Setenv("FMTKIT_DEFAULT_FORMAT", "yml")
	t.Setenv("FMTKIT_OSC52", "false")
	t.Setenv("FMTKIT_LOG_LEVEL", "DEBUG")
	t.Setenv("FMTKIT_LOG_FILE", "/tmp/fmtkit-test.log")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.UI.DefaultTab != "json-validator" {
		t.Errorf("default tab = %q", cfg.UI.DefaultTab)
	}
	if cfg.UI.DefaultFormat != "yaml" {
		t.Errorf("default format = %q", cfg.UI.DefaultFormat)
	}
	if cfg.Clipboard.OSC52 {
		t.Error("FMTKIT_OSC52=false should disable the fallback")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
	if path, _ := cfg.LogPath(); path != "/tmp/fmtkit-test.log" {
		t.Errorf("log path = %q", path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("overridden config should validate: %v", err)
	}
}

// TestConfig_EnvOverrideIgnoresBadBool keeps the file value on junk input.
func TestConfig_EnvOverrideIgnoresBadBool(t *testing.T) {
	isolate(t)
	t.Setenv("FMTKIT_OSC52", "maybe")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if !cfg.Clipboard.OSC52 {
		t.Error("unparseable FMTKIT_OSC52 should be ignored")
	}
}

// TestConfig_SaveLoadTOML tests a TOML round trip through disk.
func TestConfig_SaveLoadTOML(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.UI.DefaultTab = "yaml-validator"
	cfg.UI.Highlight = false
	cfg.Watch.DebounceMs = 1000

	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# fmtkit configuration file") {
		t.Error("saved file should start with the header comment")
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if loaded.UI.DefaultTab != "yaml-validator" || loaded.UI.Highlight || loaded.Watch.DebounceMs != 1000 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

// TestConfig_SaveLoadJSON tests a JSON round trip through disk.
func TestConfig_SaveLoadJSON(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.UI.DefaultFormat = "yaml"
	if err := SaveJSON(cfg, path); err != nil {
		t.Fatalf("SaveJSON() error = %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if loaded.UI.DefaultFormat != "yaml" {
		t.Errorf("default format = %q", loaded.UI.DefaultFormat)
	}
}

// TestConfig_PartialFileKeepsDefaults checks missing keys fall back to defaults.
func TestConfig_PartialFileKeepsDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\ntheme = \"Light\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("theme = %q, want light", cfg.UI.Theme)
	}
	if cfg.UI.DefaultTab != "converter" || cfg.Clipboard.TimeoutMs != 2000 {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

// TestConfig_UnknownKeysRejected catches typos in config files.
func TestConfig_UnknownKeysRejected(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\ndefault_tabb = \"converter\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFromPath(path)
	if err == nil || !strings.Contains(err.Error(), "ui.default_tabb") {
		t.Errorf("expected unknown key error, got %v", err)
	}
}

// TestConfig_LoadFromHome tests Load picks up ~/.fmtkit/config.toml.
func TestConfig_LoadFromHome(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".fmtkit")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[logging]\nlevel = \"error\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("log level = %q, want error", cfg.Logging.Level)
	}
}

// TestConfig_GetSet tests Get and Set methods with dot notation.
func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	val, err := cfg.Get("ui.default_tab")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if val != "converter" {
		t.Errorf("Get('ui.default_tab') = %v, want 'converter'", val)
	}

	if err := cfg.Set("watch.debounce_ms", "500"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if cfg.Watch.DebounceMs != 500 {
		t.Errorf("debounce = %d, want 500", cfg.Watch.DebounceMs)
	}

	if err := cfg.Set("clipboard.osc52", "no"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if cfg.Clipboard.OSC52 {
		t.Error("Set('clipboard.osc52', 'no') should disable it")
	}

	if _, err := cfg.Get("invalid.key"); err == nil {
		t.Error("Get() with invalid key should return error")
	}
	if _, err := cfg.Get("ui"); err == nil {
		t.Error("Get() on a section should return error")
	}
	if err := cfg.Set("watch.debounce_ms", "soon"); err == nil {
		t.Error("Set() with a non-integer should return error")
	}
}

// TestConfig_GetAllKeysResolve checks every advertised key is gettable.
func TestConfig_GetAllKeysResolve(t *testing.T) {
	cfg := Default()
	for _, key := range GetAllKeys() {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("Get(%q) error = %v", key, err)
		}
	}
}

// TestConfig_Clone tests that Clone creates an independent copy.
func TestConfig_Clone(t *testing.T) {
	original := Default()
	clone := original.Clone()
	clone.UI.Theme = "light"

	if original.UI.Theme != "auto" {
		t.Error("Clone should create an independent copy")
	}
}
