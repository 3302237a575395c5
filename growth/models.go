/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import "fmt"

// Sex represents biological sex for growth reference tables
type Sex string

// Sex values represent supported biological-sex categories.
const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Sexes lists every sex with reference tables.
var Sexes = []Sex{SexMale, SexFemale}

// ParseSex converts user input into a Sex.
func ParseSex(s string) (Sex, error) {
	switch Sex(s) {
	case SexMale, SexFemale:
		return Sex(s), nil
	}

	switch s {
	case "m", "M", "Male", "boy":
		return SexMale, nil
	case "f", "F", "Female", "girl":
		return SexFemale, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownSex, s)
}

// MeasurementType identifies the growth reference a value is compared against
type MeasurementType string

// MeasurementType values, each evaluated "for age".
const (
	MeasurementWeight            MeasurementType = "weight"
	MeasurementHeight            MeasurementType = "height"
	MeasurementHeadCircumference MeasurementType = "head_circumference"
	MeasurementBMI               MeasurementType = "bmi"
)

// MeasurementTypes lists every measurement type in display order.
var MeasurementTypes = []MeasurementType{
	MeasurementWeight,
	MeasurementHeight,
	MeasurementHeadCircumference,
	MeasurementBMI,
}

// ParseMeasurementType converts user input into a MeasurementType.
func ParseMeasurementType(s string) (MeasurementType, error) {
	switch MeasurementType(s) {
	case MeasurementWeight, MeasurementHeight, MeasurementHeadCircumference, MeasurementBMI:
		return MeasurementType(s), nil
	}

	switch s {
	case "weight_age", "weight-for-age":
		return MeasurementWeight, nil
	case "length", "height_age", "height-for-age":
		return MeasurementHeight, nil
	case "head", "head_age", "head-circumference":
		return MeasurementHeadCircumference, nil
	case "bmi_age", "bmi-for-age":
		return MeasurementBMI, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMeasurementType, s)
}

// DisplayName returns the human readable chart name.
func (t MeasurementType) DisplayName() string {
	switch t {
	case MeasurementWeight:
		return "Weight for Age"
	case MeasurementHeight:
		return "Height for Age"
	case MeasurementHeadCircumference:
		return "Head Circumference for Age"
	case MeasurementBMI:
		return "BMI for Age"
	}

	return string(t)
}

// Unit returns the unit values of this type are recorded in.
func (t MeasurementType) Unit() string {
	switch t {
	case MeasurementWeight:
		return "kg"
	case MeasurementHeight, MeasurementHeadCircumference:
		return "cm"
	case MeasurementBMI:
		return "kg/m²"
	}

	return ""
}

// LMSEntry is one row of a Box-Cox power-normal growth reference
type LMSEntry struct {
	AgeMonths float64 `json:"age_months" yaml:"age_months"`
	L         float64 `json:"l" yaml:"l"`
	M         float64 `json:"m" yaml:"m"`
	S         float64 `json:"s" yaml:"s"`
}

// SeverityTier grades how far a result lies from the reference median
type SeverityTier string

// SeverityTier values in increasing order of concern.
const (
	SeverityNormal   SeverityTier = "normal"
	SeverityModerate SeverityTier = "moderate"
	SeveritySevere   SeverityTier = "severe"
	SeverityCritical SeverityTier = "critical"
)

// Abnormal reports whether the tier warrants clinical attention.
func (s SeverityTier) Abnormal() bool {
	return s == SeverityModerate || s == SeveritySevere || s == SeverityCritical
}

// Classification is the clinical label assigned to a Z-score
type Classification struct {
	Label    string       `json:"label" yaml:"label"`
	Severity SeverityTier `json:"severity" yaml:"severity"`
}

// GrowthResult is the outcome of evaluating a single measurement
type GrowthResult struct {
	Value                  float64         `json:"value" yaml:"value"`
	Type                   MeasurementType `json:"type" yaml:"type"`
	Sex                    Sex             `json:"sex" yaml:"sex"`
	ChronologicalAgeMonths float64         `json:"chronological_age_months" yaml:"chronological_age_months"`
	AdjustedAgeMonths      *float64        `json:"adjusted_age_months,omitempty" yaml:"adjusted_age_months,omitempty"`
	ZScore                 float64         `json:"z_score" yaml:"z_score"`
	Percentile             float64         `json:"percentile" yaml:"percentile"`
	Classification         string          `json:"classification" yaml:"classification"`
	Severity               SeverityTier    `json:"severity" yaml:"severity"`
	LMS                    LMSEntry        `json:"lms" yaml:"lms"`
	IsAbnormal             bool            `json:"is_abnormal" yaml:"is_abnormal"`
}

// EffectiveAgeMonths returns the age the reference was evaluated at.
func (r *GrowthResult) EffectiveAgeMonths() float64 {
	if r.AdjustedAgeMonths != nil {
		return *r.AdjustedAgeMonths
	}

	return r.ChronologicalAgeMonths
}
