/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/growthref/growth"
)

// CmdCurve prints the standard percentile curves of one reference table.
var CmdCurve = newCurveCommand()

func newCurveCommand() *cli.Command {
	return &cli.Command{
		Name:  "curve",
		Usage: "Print percentile reference curves for plotting",
		Flags: []cli.Flag{
			sexFlag(),
			typeFlag(),
			&cli.FloatFlag{
				Name:  "from",
				Usage: "First age in months",
				Value: growth.DefaultCurveRange.FromMonths,
			},
			&cli.FloatFlag{
				Name:  "to",
				Usage: "Last age in months",
				Value: growth.DefaultCurveRange.ToMonths,
			},
			&cli.IntFlag{
				Name:    "points",
				Sources: cli.EnvVars("GROWTHREF_CURVE_POINTS"),
				Usage:   "Number of evenly spaced ages (defaults to the config value)",
			},
		},
		Action: curve,
	}
}

type curveReport struct {
	Sex         growth.Sex             `json:"sex" yaml:"sex"`
	Type        growth.MeasurementType `json:"type" yaml:"type"`
	Percentiles []float64              `json:"percentiles" yaml:"percentiles"`
	Points      []growth.CurvePoint    `json:"points" yaml:"points"`
}

func curve(ctx context.Context, cmd *cli.Command) error {
	cfg := configFrom(ctx)

	sex, err := resolveSex(ctx, cmd)
	if err != nil {
		return err
	}

	kind, err := growth.ParseMeasurementType(cmd.String("type"))
	if err != nil {
		return err
	}

	r := growth.CurveRange{
		FromMonths: cmd.Float("from"),
		ToMonths:   cmd.Float("to"),
		Points:     cfg.Curve.Points,
	}

	if cmd.IsSet("points") {
		r.Points = int(cmd.Int("points"))
	}

	engine, err := loadEngine()
	if err != nil {
		return err
	}

	points, err := engine.ReferenceCurve(sex, kind, r)
	if err != nil {
		return fmt.Errorf("failed to build %s curve: %w", kind, err)
	}

	w := cmd.Root().Writer
	if cfg.Defaults.Format == formatText {
		return renderCurve(w, sex, kind, points)
	}

	return writeStructured(w, cfg.Defaults.Format, curveReport{
		Sex:         sex,
		Type:        kind,
		Percentiles: growth.StandardPercentiles,
		Points:      points,
	})
}
