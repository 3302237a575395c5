/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import (
	"fmt"
	"math"
	"time"
)

// MeasurementBounds is the clinically plausible range for a measurement type
type MeasurementBounds struct {
	Min float64
	Max float64
}

var measurementBounds = map[MeasurementType]MeasurementBounds{
	MeasurementWeight:            {Min: 0.5, Max: 150},
	MeasurementHeight:            {Min: 30, Max: 200},
	MeasurementBMI:               {Min: 10, Max: 40},
	MeasurementHeadCircumference: {Min: 20, Max: 65},
}

const (
	// bmiDecimals is the precision derived BMI values are rounded to.
	bmiDecimals = 1

	// MaxAgeMonths is the oldest age accepted for a measurement.
	MaxAgeMonths = 60
	maxAgeDays   = 365 * 5
)

// Bounds returns the accepted range for a measurement type.
func Bounds(kind MeasurementType) (MeasurementBounds, bool) {
	b, ok := measurementBounds[kind]
	return b, ok
}

// InRange reports whether value lies within its type's bounds.
func InRange(value float64, kind MeasurementType) bool {
	b, ok := measurementBounds[kind]
	if !ok {
		return false
	}

	return value >= b.Min && value <= b.Max
}

// ValidateMeasurement rejects values outside their type's bounds.
func ValidateMeasurement(value float64, kind MeasurementType) error {
	b, ok := measurementBounds[kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMeasurementType, kind)
	}

	if math.IsNaN(value) || value < b.Min || value > b.Max {
		return &ValidationError{
			Field:  string(kind),
			Value:  value,
			Reason: fmt.Sprintf("outside %g-%g %s", b.Min, b.Max, kind.Unit()),
		}
	}

	return nil
}

// ValidateAge rejects ages that cannot be evaluated.
func ValidateAge(months float64) error {
	if math.IsNaN(months) || months < 0 {
		return &ValidationError{Field: "age_months", Value: months, Reason: "age cannot be negative"}
	}

	if months > MaxAgeMonths {
		return &ValidationError{
			Field:  "age_months",
			Value:  months,
			Reason: fmt.Sprintf("exceeds %d months supported by these growth charts", MaxAgeMonths),
		}
	}

	return nil
}

// ValidatePlausibility rejects values more than PlausibleSDs coefficient
// of variation steps away from the median.
func ValidatePlausibility(value float64, lms LMSEntry) error {
	lo := lms.M * (1 - PlausibleSDs*lms.S)
	hi := lms.M * (1 + PlausibleSDs*lms.S)

	if value < lo || value > hi {
		return &ValidationError{
			Field:  "value",
			Value:  value,
			Reason: fmt.Sprintf("outside plausible range %.2f-%.2f at %.1f months", lo, hi, lms.AgeMonths),
			Err:    ErrImplausibleValue,
		}
	}

	return nil
}

// CalculateBMI derives BMI from weight and height, rounded to one decimal.
func CalculateBMI(weightKg, heightCm float64) (float64, error) {
	if err := ValidateMeasurement(weightKg, MeasurementWeight); err != nil {
		return 0, err
	}

	if err := ValidateMeasurement(heightCm, MeasurementHeight); err != nil {
		return 0, err
	}

	heightM := heightCm / 100
	bmi := roundTo(weightKg/(heightM*heightM), bmiDecimals)

	if err := ValidateMeasurement(bmi, MeasurementBMI); err != nil {
		return 0, err
	}

	return bmi, nil
}

// ValidateDates checks a birth and measurement date pair against now. Dates
// are compared by calendar day, matching how ages are counted.
func ValidateDates(birth, measured, now time.Time) error {
	switch {
	case elapsedDays(now, birth) > 0:
		return &ValidationError{Field: "birth_date", Reason: "birth date cannot be in the future"}
	case elapsedDays(birth, measured) < 0:
		return &ValidationError{Field: "measurement_date", Reason: "measurement date cannot be before birth date"}
	case elapsedDays(birth, measured) > maxAgeDays:
		return &ValidationError{
			Field:  "measurement_date",
			Value:  float64(elapsedDays(birth, measured)),
			Reason: "patient age exceeds recommended range for these growth charts",
		}
	}

	return nil
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
