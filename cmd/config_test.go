// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "growthref.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}

	if cfg.Defaults.Format != formatText || cfg.Logging.Level != "info" || cfg.Curve.Points != 50 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
[defaults]
sex = "female"
format = "json"

[logging]
level = "debug"

[curve]
points = 12
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Defaults.Sex != "female" || cfg.Defaults.Format != formatJSON {
		t.Fatalf("unexpected defaults %+v", cfg.Defaults)
	}

	if cfg.Logging.Level != "debug" || cfg.Curve.Points != 12 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadConfigKeepsUnsetDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(writeConfig(t, "[defaults]\nsex = \"male\"\n"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Defaults.Format != formatText || cfg.Curve.Points != 50 {
		t.Fatalf("expected built-in defaults to survive, got %+v", cfg)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(writeConfig(t, "[defaults]\ncolour = \"blue\"\n"))
	if !errors.Is(err, errUnknownConfigKeys) {
		t.Fatalf("expected errUnknownConfigKeys, got %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "format", modify: func(c *Config) { c.Defaults.Format = "xml" }},
		{name: "sex", modify: func(c *Config) { c.Defaults.Sex = "other" }},
		{name: "curve points", modify: func(c *Config) { c.Curve.Points = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(cfg)

			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected invalid %s to be rejected", tt.name)
			}
		})
	}
}
