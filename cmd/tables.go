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

// CmdTables checks the embedded reference data and summarises each table.
var CmdTables = newTablesCommand()

func newTablesCommand() *cli.Command {
	return &cli.Command{
		Name:   "tables",
		Usage:  "Validate and summarise the reference tables",
		Action: tables,
	}
}

type tableSummary struct {
	Sex         growth.Sex             `json:"sex" yaml:"sex"`
	Type        growth.MeasurementType `json:"type" yaml:"type"`
	Entries     int                    `json:"entries" yaml:"entries"`
	FromMonths  float64                `json:"from_months" yaml:"from_months"`
	ToMonths    float64                `json:"to_months" yaml:"to_months"`
	FirstMedian float64                `json:"first_median" yaml:"first_median"`
	LastMedian  float64                `json:"last_median" yaml:"last_median"`
	Unit        string                 `json:"unit" yaml:"unit"`
	MinValue    float64                `json:"min_value" yaml:"min_value"`
	MaxValue    float64                `json:"max_value" yaml:"max_value"`
}

func summarizeTables(store *growth.Store) ([]tableSummary, error) {
	summaries := make([]tableSummary, 0, len(growth.Sexes)*len(growth.MeasurementTypes))

	for _, sex := range growth.Sexes {
		for _, kind := range growth.MeasurementTypes {
			t, err := store.Table(sex, kind)
			if err != nil {
				return nil, err
			}

			bounds, ok := growth.Bounds(kind)
			if !ok {
				return nil, fmt.Errorf("%w: %q", growth.ErrUnknownMeasurementType, kind)
			}

			first, last := t.Entry(0), t.Entry(t.Len()-1)
			summaries = append(summaries, tableSummary{
				Sex:         sex,
				Type:        kind,
				Entries:     t.Len(),
				FromMonths:  first.AgeMonths,
				ToMonths:    last.AgeMonths,
				FirstMedian: first.M,
				LastMedian:  last.M,
				Unit:        kind.Unit(),
				MinValue:    bounds.Min,
				MaxValue:    bounds.Max,
			})
		}
	}

	return summaries, nil
}

func tables(ctx context.Context, cmd *cli.Command) error {
	cfg := configFrom(ctx)

	engine, err := loadEngine()
	if err != nil {
		return err
	}

	summaries, err := summarizeTables(engine.Store())
	if err != nil {
		return fmt.Errorf("failed to summarise reference tables: %w", err)
	}

	referenceLogger.Info("Reference tables valid", "tables", len(summaries))

	w := cmd.Root().Writer
	if cfg.Defaults.Format == formatText {
		return renderTableSummaries(w, summaries)
	}

	return writeStructured(w, cfg.Defaults.Format, summaries)
}
