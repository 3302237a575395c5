/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

// Classification labels for BMI-for-age.
const (
	LabelSevereUnderweight   = "severe underweight"
	LabelModerateUnderweight = "moderate underweight"
	LabelHealthyWeight       = "healthy weight"
	LabelOverweight          = "overweight"
	LabelObese               = "obese"
)

// Classification labels for weight, height and head circumference.
const (
	LabelExtremelyLow  = "extremely low"
	LabelVeryLow       = "very low"
	LabelMildlyLow     = "mildly low"
	LabelNormal        = "normal"
	LabelHigh          = "high"
	LabelVeryHigh      = "very high"
	LabelExtremelyHigh = "extremely high"
)

// Classify assigns a clinical label and severity tier to a Z-score.
// BMI-for-age uses weight-status bands; every other type uses symmetric
// standard-deviation bands.
func Classify(kind MeasurementType, z float64) Classification {
	if kind == MeasurementBMI {
		return classifyBMI(z)
	}

	switch {
	case z < -3:
		return Classification{Label: LabelExtremelyLow, Severity: SeverityCritical}
	case z < -2:
		return Classification{Label: LabelVeryLow, Severity: SeveritySevere}
	case z < -1:
		return Classification{Label: LabelMildlyLow, Severity: SeverityModerate}
	case z <= 1:
		return Classification{Label: LabelNormal, Severity: SeverityNormal}
	case z <= 2:
		return Classification{Label: LabelHigh, Severity: SeverityModerate}
	case z <= 3:
		return Classification{Label: LabelVeryHigh, Severity: SeveritySevere}
	default:
		return Classification{Label: LabelExtremelyHigh, Severity: SeverityCritical}
	}
}

func classifyBMI(z float64) Classification {
	switch {
	case z < -2:
		return Classification{Label: LabelSevereUnderweight, Severity: SeveritySevere}
	case z < -1:
		return Classification{Label: LabelModerateUnderweight, Severity: SeverityModerate}
	case z <= 1:
		return Classification{Label: LabelHealthyWeight, Severity: SeverityNormal}
	case z <= 2:
		return Classification{Label: LabelOverweight, Severity: SeverityModerate}
	default:
		return Classification{Label: LabelObese, Severity: SeveritySevere}
	}
}

// BandStatus is the traffic-light status of a percentile band
type BandStatus string

// BandStatus values.
const (
	BandNormal  BandStatus = "normal"
	BandMonitor BandStatus = "monitor"
	BandConcern BandStatus = "concern"
)

// Band is a coarse percentile category used in summaries and reports
type Band struct {
	Label  string     `json:"label" yaml:"label"`
	Status BandStatus `json:"status" yaml:"status"`
}

// PercentileBand places a percentile into one of five report bands.
func PercentileBand(percentile float64) Band {
	switch {
	case percentile < 5:
		return Band{Label: "Low - Clinical Concern", Status: BandConcern}
	case percentile < 25:
		return Band{Label: "Lower Normal Range", Status: BandMonitor}
	case percentile <= 75:
		return Band{Label: "Normal Range", Status: BandNormal}
	case percentile <= 95:
		return Band{Label: "Upper Normal Range", Status: BandMonitor}
	default:
		return Band{Label: "High - Clinical Concern", Status: BandConcern}
	}
}
