/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/growthref/growth"
	"github.com/humaidq/growthref/logging"
)

// Config holds the defaults read from the optional TOML config file.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Logging  LoggingConfig  `toml:"logging"`
	Curve    CurveConfig    `toml:"curve"`
}

// DefaultsConfig holds values used when the matching flag is not set.
type DefaultsConfig struct {
	Sex    string `toml:"sex"`
	Format string `toml:"format"`
}

// LoggingConfig configures the log output.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// CurveConfig configures reference curve sampling.
type CurveConfig struct {
	Points int `toml:"points"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{Format: formatText},
		Logging:  LoggingConfig{Level: "info"},
		Curve:    CurveConfig{Points: growth.DefaultCurveRange.Points},
	}
}

// LoadConfig reads a TOML config file on top of the built-in defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return nil, fmt.Errorf("%w in %s: %s", errUnknownConfigKeys, path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Validate checks the values that are not validated by the growth package.
func (c *Config) Validate() error {
	if err := validateFormat(c.Defaults.Format); err != nil {
		return err
	}

	if c.Defaults.Sex != "" {
		if _, err := growth.ParseSex(c.Defaults.Sex); err != nil {
			return fmt.Errorf("invalid default sex: %w", err)
		}
	}

	if c.Curve.Points < 2 {
		return fmt.Errorf("%w, got %d", errInvalidCurvePoints, c.Curve.Points)
	}

	return nil
}

type configKey struct{}

// Before loads the config file, applies global flag overrides and sets the
// log level. The resulting config travels in the context.
func Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg := DefaultConfig()

	if path := cmd.String("config"); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return ctx, err
		}

		cfg = loaded
	}

	if cmd.IsSet("log-level") {
		cfg.Logging.Level = cmd.String("log-level")
	}

	if cmd.IsSet("format") {
		cfg.Defaults.Format = cmd.String("format")
	}

	if err := cfg.Validate(); err != nil {
		return ctx, err
	}

	if err := logging.SetLevel(cfg.Logging.Level); err != nil {
		return ctx, err
	}

	appLogger.Debug("Configuration loaded", "config", cmd.String("config"), "format", cfg.Defaults.Format)

	return context.WithValue(ctx, configKey{}, cfg), nil
}

func configFrom(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey{}).(*Config); ok {
		return cfg
	}

	return DefaultConfig()
}

// resolveSex prefers the --sex flag and falls back to the configured default.
func resolveSex(ctx context.Context, cmd *cli.Command) (growth.Sex, error) {
	value := cmd.String("sex")
	if value == "" {
		value = configFrom(ctx).Defaults.Sex
	}

	if value == "" {
		return "", errSexRequired
	}

	return growth.ParseSex(value)
}
