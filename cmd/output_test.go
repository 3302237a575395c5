// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/humaidq/growthref/growth"
	"github.com/humaidq/growthref/session"
)

func TestWriteStructured(t *testing.T) {
	t.Parallel()

	entry := growth.LMSEntry{AgeMonths: 12, L: 0.05, M: 17.3, S: 0.082}

	var buf bytes.Buffer
	if err := writeStructured(&buf, formatYAML, entry); err != nil {
		t.Fatalf("writeStructured failed: %v", err)
	}

	if !strings.Contains(buf.String(), "age_months: 12") {
		t.Fatalf("expected yaml tags in output, got %q", buf.String())
	}

	buf.Reset()

	if err := writeStructured(&buf, formatJSON, entry); err != nil {
		t.Fatalf("writeStructured failed: %v", err)
	}

	if !strings.Contains(buf.String(), `"m": 17.3`) {
		t.Fatalf("expected indented json, got %q", buf.String())
	}

	if err := writeStructured(&buf, "xml", entry); !errors.Is(err, errInvalidFormat) {
		t.Fatalf("expected errInvalidFormat, got %v", err)
	}
}

func TestRenderResultFlagsAbnormal(t *testing.T) {
	t.Parallel()

	adjusted := 4.2
	result := &growth.GrowthResult{
		Value:                  5.1,
		Type:                   growth.MeasurementWeight,
		Sex:                    growth.SexMale,
		ChronologicalAgeMonths: 6,
		AdjustedAgeMonths:      &adjusted,
		ZScore:                 -2.5,
		Percentile:             0.6,
		Classification:         growth.LabelVeryLow,
		Severity:               growth.SeveritySevere,
		IsAbnormal:             true,
	}

	var buf bytes.Buffer
	if err := renderResult(&buf, result); err != nil {
		t.Fatalf("renderResult failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"adjusted 4.20", growth.LabelVeryLow, "abnormal result", "Low - Clinical Concern"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output %q", want, out)
		}
	}
}

func TestRenderRecordsShowsChronologicalAge(t *testing.T) {
	t.Parallel()

	adjusted := 4.2
	weeks := 32
	birth := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	records := []session.Record{{
		Date: birth.AddDate(0, 6, 0),
		Result: &growth.GrowthResult{
			Value:                  42,
			Type:                   growth.MeasurementHeadCircumference,
			Sex:                    growth.SexFemale,
			ChronologicalAgeMonths: 6.03,
			AdjustedAgeMonths:      &adjusted,
			Percentile:             50,
			Classification:         growth.LabelNormal,
			Severity:               growth.SeverityNormal,
		},
		Band: growth.PercentileBand(50),
	}}

	patient := session.Patient{FirstName: "Sam", LastName: "Doe", Sex: growth.SexFemale, BirthDate: birth, GestationalAgeWeeks: &weeks}

	var buf bytes.Buffer
	if err := renderRecords(&buf, patient, records, "ok"); err != nil {
		t.Fatalf("renderRecords failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Age (months)", "Adjusted age", " 6.0 ", " 4.2 ", "32 weeks"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output %q", want, out)
		}
	}
}
