/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/growthref/growth"
)

const dateLayout = "2006-01-02"

// CmdCompute evaluates one measurement against the reference tables.
var CmdCompute = newComputeCommand()

func newComputeCommand() *cli.Command {
	return &cli.Command{
		Name:  "compute",
		Usage: "Compute the Z-score and percentile of one measurement",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:     "value",
				Usage:    "Measured value in the unit of the measurement type",
				Required: true,
			},
			typeFlag(),
			sexFlag(),
			&cli.FloatFlag{
				Name:  "age-months",
				Usage: "Chronological age in months",
			},
			&cli.StringFlag{
				Name:  "birth-date",
				Usage: "Birth date (YYYY-MM-DD), used instead of --age-months",
			},
			measuredOnFlag(),
			gestationFlag(),
		},
		Action: compute,
	}
}

func sexFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "sex",
		Sources: cli.EnvVars("GROWTHREF_SEX"),
		Usage:   "Patient sex (male or female)",
	}
}

func typeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "type",
		Aliases:  []string{"t"},
		Usage:    "Measurement type (weight, height, head_circumference, bmi)",
		Required: true,
	}
}

func gestationFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "gestational-weeks",
		Sources: cli.EnvVars("GROWTHREF_GESTATIONAL_WEEKS"),
		Usage:   "Gestational age at birth in completed weeks",
	}
}

func measuredOnFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "measured-on",
		Usage: "Measurement date (YYYY-MM-DD), defaults to today",
	}
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errInvalidDate, value)
	}

	return t, nil
}

// measurementDate returns --measured-on, or today in UTC.
func measurementDate(cmd *cli.Command, now time.Time) (time.Time, error) {
	if value := cmd.String("measured-on"); value != "" {
		return parseDate(value)
	}

	y, m, d := now.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func gestationalWeeks(cmd *cli.Command) *int {
	if !cmd.IsSet("gestational-weeks") {
		return nil
	}

	weeks := int(cmd.Int("gestational-weeks"))

	return &weeks
}

// ageFromFlags resolves the chronological age either directly or from
// birth and measurement dates.
func ageFromFlags(cmd *cli.Command, now time.Time) (float64, error) {
	hasAge, hasBirth := cmd.IsSet("age-months"), cmd.String("birth-date") != ""

	switch {
	case hasAge && hasBirth:
		return 0, errAgeAndBirthDate
	case hasAge:
		return cmd.Float("age-months"), nil
	case !hasBirth:
		return 0, errAgeRequired
	}

	birth, err := parseDate(cmd.String("birth-date"))
	if err != nil {
		return 0, err
	}

	measured, err := measurementDate(cmd, now)
	if err != nil {
		return 0, err
	}

	if err := growth.ValidateDates(birth, measured, now); err != nil {
		return 0, err
	}

	return growth.ChronologicalAgeMonths(birth, measured), nil
}

func loadEngine() (*growth.Engine, error) {
	engine, err := growth.NewDefault()
	if err != nil {
		var cfgErr *growth.ConfigurationError
		if errors.As(err, &cfgErr) {
			for _, issue := range cfgErr.Issues {
				referenceLogger.Error("Reference table issue", "issue", issue)
			}
		}

		return nil, fmt.Errorf("failed to load reference tables: %w", err)
	}

	return engine, nil
}

func compute(ctx context.Context, cmd *cli.Command) error {
	cfg := configFrom(ctx)

	sex, err := resolveSex(ctx, cmd)
	if err != nil {
		return err
	}

	kind, err := growth.ParseMeasurementType(cmd.String("type"))
	if err != nil {
		return err
	}

	age, err := ageFromFlags(cmd, time.Now())
	if err != nil {
		return err
	}

	engine, err := loadEngine()
	if err != nil {
		return err
	}

	result, err := engine.Compute(growth.Input{
		Value:               cmd.Float("value"),
		AgeMonths:           age,
		Type:                kind,
		Sex:                 sex,
		GestationalAgeWeeks: gestationalWeeks(cmd),
	})
	if err != nil {
		return fmt.Errorf("failed to compute %s: %w", kind, err)
	}

	cliLogger.Debug("Computed measurement", "type", kind, "sex", sex,
		"age_months", result.EffectiveAgeMonths(), "z", result.ZScore, "percentile", result.Percentile)

	w := cmd.Root().Writer
	if cfg.Defaults.Format == formatText {
		return renderResult(w, result)
	}

	return writeStructured(w, cfg.Defaults.Format, result)
}
