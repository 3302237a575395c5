/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/humaidq/growthref/growth"
	"github.com/humaidq/growthref/session"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}

	return fmt.Errorf("%w, got %q", errInvalidFormat, format)
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush YAML: %w", err)
		}

		return nil
	}

	return fmt.Errorf("%w, got %q", errInvalidFormat, format)
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A")).Width(18)
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	severityStyle = map[growth.SeverityTier]lipgloss.Style{
		growth.SeverityNormal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		growth.SeverityModerate: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		growth.SeveritySevere:   lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		growth.SeverityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
	}
	bandStyle = map[growth.BandStatus]lipgloss.Style{
		growth.BandNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		growth.BandMonitor: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		growth.BandConcern: lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})
}

func field(label, value string) string {
	return labelStyle.Render(label) + " " + value + "\n"
}

func formatAge(r *growth.GrowthResult) string {
	age := fmt.Sprintf("%.2f months", r.ChronologicalAgeMonths)
	if r.AdjustedAgeMonths != nil {
		age += fmt.Sprintf(" (adjusted %.2f)", *r.AdjustedAgeMonths)
	}

	return age
}

// renderResult writes a single growth result as text.
func renderResult(w io.Writer, r *growth.GrowthResult) error {
	classification := severityStyle[r.Severity].Render(r.Classification)
	band := growth.PercentileBand(r.Percentile)

	out := titleStyle.Render(r.Type.DisplayName()) + "\n" +
		field("Sex", string(r.Sex)) +
		field("Age", formatAge(r)) +
		field("Value", fmt.Sprintf("%.2f %s", r.Value, r.Type.Unit())) +
		field("Z-score", fmt.Sprintf("%.3f", r.ZScore)) +
		field("Percentile", fmt.Sprintf("%.1f", r.Percentile)) +
		field("Classification", fmt.Sprintf("%s (%s)", classification, r.Severity)) +
		field("Band", bandStyle[band.Status].Render(band.Label)) +
		field("LMS", fmt.Sprintf("L=%.4f M=%.4f S=%.5f", r.LMS.L, r.LMS.M, r.LMS.S))

	if r.IsAbnormal {
		out += field("Attention", severityStyle[r.Severity].Render("abnormal result"))
	}

	_, err := io.WriteString(w, out)

	return err
}

// renderRecords writes a session's records followed by its assessment.
func renderRecords(w io.Writer, patient session.Patient, records []session.Record, assessment string) error {
	t := newTable("Date", "Age (months)", "Adjusted age", "Measurement", "Value", "Z", "Percentile", "Classification", "Assessment")

	for _, r := range records {
		adjusted := "-"
		if r.Result.AdjustedAgeMonths != nil {
			adjusted = fmt.Sprintf("%.1f", *r.Result.AdjustedAgeMonths)
		}

		t.Row(
			r.Date.Format(dateLayout),
			fmt.Sprintf("%.1f", r.Result.ChronologicalAgeMonths),
			adjusted,
			r.Result.Type.DisplayName(),
			fmt.Sprintf("%.1f %s", r.Result.Value, r.Result.Type.Unit()),
			fmt.Sprintf("%.2f", r.Result.ZScore),
			fmt.Sprintf("%.1f%%", r.Result.Percentile),
			severityStyle[r.Result.Severity].Render(r.Result.Classification),
			bandStyle[r.Band.Status].Render(r.Band.Label),
		)
	}

	out := titleStyle.Render(patient.FullName()) + "\n" +
		field("Sex", string(patient.Sex)) +
		field("Birth date", patient.BirthDate.Format(dateLayout))

	if patient.GestationalAgeWeeks != nil {
		out += field("Gestation", fmt.Sprintf("%d weeks", *patient.GestationalAgeWeeks))
	}

	out += t.String() + "\n\n" + assessment + "\n"

	_, err := io.WriteString(w, out)

	return err
}

// renderCurve writes reference curve points as a table.
func renderCurve(w io.Writer, sex growth.Sex, kind growth.MeasurementType, points []growth.CurvePoint) error {
	headers := []string{"Age (months)"}
	for _, p := range growth.StandardPercentiles {
		headers = append(headers, "P"+strconv.FormatFloat(p, 'f', -1, 64))
	}

	t := newTable(headers...)

	for _, pt := range points {
		row := []string{fmt.Sprintf("%.2f", pt.AgeMonths)}
		for _, v := range pt.Values {
			row = append(row, fmt.Sprintf("%.2f", v))
		}

		t.Row(row...)
	}

	out := titleStyle.Render(fmt.Sprintf("%s (%s, %s)", kind.DisplayName(), sex, kind.Unit())) + "\n" + t.String() + "\n"

	_, err := io.WriteString(w, out)

	return err
}

// renderTableSummaries writes one line per reference table.
func renderTableSummaries(w io.Writer, summaries []tableSummary) error {
	t := newTable("Sex", "Measurement", "Entries", "Ages (months)", "M first", "M last", "Accepted values")

	for _, s := range summaries {
		t.Row(
			string(s.Sex),
			string(s.Type),
			strconv.Itoa(s.Entries),
			fmt.Sprintf("%g-%g", s.FromMonths, s.ToMonths),
			fmt.Sprintf("%.4f", s.FirstMedian),
			fmt.Sprintf("%.4f", s.LastMedian),
			fmt.Sprintf("%g-%g %s", s.MinValue, s.MaxValue, s.Unit),
		)
	}

	_, err := io.WriteString(w, t.String()+"\n")

	return err
}
