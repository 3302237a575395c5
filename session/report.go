/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package session

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/humaidq/growthref/growth"
)

// Assessment summarises the latest measurement of each type.
func (s *Session) Assessment() string {
	latest := s.Latest()
	if len(latest) == 0 {
		return "No measurements available for assessment."
	}

	var concerns []string

	normal := 0

	for _, kind := range growth.MeasurementTypes {
		r, ok := latest[kind]
		if !ok {
			continue
		}

		p := r.Result.Percentile

		switch {
		case p < 5:
			concerns = append(concerns, fmt.Sprintf("Low %s percentile (%.1f%%) may indicate need for further evaluation", kind.DisplayName(), p))
		case p > 95:
			concerns = append(concerns, fmt.Sprintf("High %s percentile (%.1f%%) may warrant monitoring", kind.DisplayName(), p))
		default:
			normal++
		}
	}

	switch {
	case len(concerns) == 0:
		return "All growth parameters are within normal ranges. Growth pattern appears appropriate for age."
	case float64(normal) > float64(len(latest))/2:
		return "Most growth parameters are normal. Areas for attention: " + strings.Join(concerns, "; ")
	default:
		return "Several growth parameters require attention: " + strings.Join(concerns, "; ") +
			". Recommend consultation with pediatrician."
	}
}

// CSVHeader is the header row written by WriteCSV.
var CSVHeader = []string{"Date", "Age (months)", "Measurement", "Value", "Percentile", "Assessment"}

// WriteCSV exports the measurement history.
func (s *Session) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range s.records {
		row := []string{
			r.Date.Format("2006-01-02"),
			fmt.Sprintf("%.1f", r.Result.ChronologicalAgeMonths),
			r.Result.Type.DisplayName(),
			fmt.Sprintf("%.1f", r.Result.Value),
			fmt.Sprintf("%.1f%%", r.Result.Percentile),
			r.Band.Label,
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	return nil
}
