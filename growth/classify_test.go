// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package growth

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind     MeasurementType
		z        float64
		label    string
		severity SeverityTier
	}{
		{MeasurementWeight, -4, LabelExtremelyLow, SeverityCritical},
		{MeasurementWeight, -3, LabelVeryLow, SeveritySevere},
		{MeasurementWeight, -2.5, LabelVeryLow, SeveritySevere},
		{MeasurementWeight, -2, LabelMildlyLow, SeverityModerate},
		{MeasurementHeight, -1, LabelNormal, SeverityNormal},
		{MeasurementHeight, 0, LabelNormal, SeverityNormal},
		{MeasurementHeight, 1, LabelNormal, SeverityNormal},
		{MeasurementHeadCircumference, 1.5, LabelHigh, SeverityModerate},
		{MeasurementHeadCircumference, 2, LabelHigh, SeverityModerate},
		{MeasurementHeadCircumference, 3, LabelVeryHigh, SeveritySevere},
		{MeasurementHeadCircumference, 3.01, LabelExtremelyHigh, SeverityCritical},
		{MeasurementBMI, -2.01, LabelSevereUnderweight, SeveritySevere},
		{MeasurementBMI, -2, LabelModerateUnderweight, SeverityModerate},
		{MeasurementBMI, -1, LabelHealthyWeight, SeverityNormal},
		{MeasurementBMI, 1, LabelHealthyWeight, SeverityNormal},
		{MeasurementBMI, 2, LabelOverweight, SeverityModerate},
		{MeasurementBMI, 4, LabelObese, SeveritySevere},
	}

	for _, tc := range cases {
		got := Classify(tc.kind, tc.z)
		if got.Label != tc.label || got.Severity != tc.severity {
			t.Fatalf("Classify(%s, %v) = %+v, want %s/%s", tc.kind, tc.z, got, tc.label, tc.severity)
		}
	}
}

func TestSeverityAbnormal(t *testing.T) {
	t.Parallel()

	if SeverityNormal.Abnormal() {
		t.Fatal("normal tier reported abnormal")
	}

	for _, s := range []SeverityTier{SeverityModerate, SeveritySevere, SeverityCritical} {
		if !s.Abnormal() {
			t.Fatalf("%s tier not reported abnormal", s)
		}
	}
}

func TestPercentileBand(t *testing.T) {
	t.Parallel()

	cases := []struct {
		percentile float64
		status     BandStatus
	}{
		{0.01, BandConcern},
		{4.99, BandConcern},
		{5, BandMonitor},
		{24.9, BandMonitor},
		{25, BandNormal},
		{75, BandNormal},
		{75.1, BandMonitor},
		{95, BandMonitor},
		{95.1, BandConcern},
	}

	for _, tc := range cases {
		if got := PercentileBand(tc.percentile); got.Status != tc.status {
			t.Fatalf("PercentileBand(%v) = %+v, want %s", tc.percentile, got, tc.status)
		}
	}
}
