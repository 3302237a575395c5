/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/growthref/cmd"
)

func main() {
	app := &cli.Command{
		Name:   "growthref",
		Usage:  "Growthref - Pediatric growth reference calculator",
		Flags:  cmd.GlobalFlags(),
		Before: cmd.Before,
		Commands: []*cli.Command{
			cmd.CmdCompute,
			cmd.CmdAssess,
			cmd.CmdCurve,
			cmd.CmdTables,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
