/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/growthref/session"
)

// CmdAssess records one visit for a patient and prints the assessment.
var CmdAssess = newAssessCommand()

func newAssessCommand() *cli.Command {
	return &cli.Command{
		Name:  "assess",
		Usage: "Assess height, weight, BMI and head circumference from one visit",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "first-name",
				Usage:    "Patient first name",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "last-name",
				Usage:    "Patient last name",
				Required: true,
			},
			sexFlag(),
			&cli.StringFlag{
				Name:     "birth-date",
				Usage:    "Birth date (YYYY-MM-DD)",
				Required: true,
			},
			measuredOnFlag(),
			gestationFlag(),
			&cli.FloatFlag{
				Name:  "height",
				Usage: "Length or height in cm",
			},
			&cli.FloatFlag{
				Name:  "weight",
				Usage: "Weight in kg",
			},
			&cli.FloatFlag{
				Name:  "head",
				Usage: "Head circumference in cm",
			},
			&cli.BoolFlag{
				Name:  "csv",
				Usage: "Export the records as CSV instead of a report",
			},
		},
		Action: assess,
	}
}

type assessmentReport struct {
	Patient    session.Patient  `json:"patient" yaml:"patient"`
	Records    []session.Record `json:"records" yaml:"records"`
	Assessment string           `json:"assessment" yaml:"assessment"`
}

func assess(ctx context.Context, cmd *cli.Command) error {
	cfg := configFrom(ctx)
	now := time.Now()

	sex, err := resolveSex(ctx, cmd)
	if err != nil {
		return err
	}

	birth, err := parseDate(cmd.String("birth-date"))
	if err != nil {
		return err
	}

	measured, err := measurementDate(cmd, now)
	if err != nil {
		return err
	}

	engine, err := loadEngine()
	if err != nil {
		return err
	}

	s, err := session.New(engine, session.Patient{
		FirstName:           cmd.String("first-name"),
		LastName:            cmd.String("last-name"),
		Sex:                 sex,
		BirthDate:           birth,
		GestationalAgeWeeks: gestationalWeeks(cmd),
	}, session.WithClock(func() time.Time { return now }))
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	records, err := s.Submit(session.Visit{
		Date:       measured,
		HeightCm:   cmd.Float("height"),
		WeightKg:   cmd.Float("weight"),
		HeadCircCm: cmd.Float("head"),
	})
	if err != nil {
		if len(records) == 0 {
			return fmt.Errorf("%w: %w", errNoRecordedMeasurement, err)
		}

		cliLogger.Warn("Some measurements were rejected", "err", err)
	}

	w := cmd.Root().Writer

	if cmd.Bool("csv") {
		return s.WriteCSV(w)
	}

	if cfg.Defaults.Format == formatText {
		return renderRecords(w, s.Patient(), s.Records(), s.Assessment())
	}

	return writeStructured(w, cfg.Defaults.Format, assessmentReport{
		Patient:    s.Patient(),
		Records:    s.Records(),
		Assessment: s.Assessment(),
	})
}
