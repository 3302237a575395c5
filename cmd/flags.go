/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "github.com/urfave/cli/v3"

// GlobalFlags returns the flags shared by every command. They are read by
// Before.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Sources: cli.EnvVars("GROWTHREF_CONFIG"),
			Usage:   "Path to a TOML config file",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Sources: cli.EnvVars("GROWTHREF_LOG_LEVEL"),
			Usage:   "Log level (debug, info, warn, error)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"o"},
			Sources: cli.EnvVars("GROWTHREF_FORMAT"),
			Usage:   "Output format (text, json, yaml)",
		},
	}
}
