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

const (
	// DaysPerMonth is the average month length used as the month unit.
	DaysPerMonth = 30.436875
	// WeeksPerMonth converts weeks of prematurity into months.
	WeeksPerMonth = 4.345

	// TermGestationWeeks is the full-term reference gestation.
	TermGestationWeeks = 40
	// PretermThresholdWeeks is the gestation below which age is adjusted.
	PretermThresholdWeeks = 37

	MinGestationalWeeks = 22
	MaxGestationalWeeks = 44
)

// AdjustedAge is the outcome of a prematurity correction
type AdjustedAge struct {
	ChronologicalMonths float64
	AdjustedMonths      float64
	WasAdjusted         bool
}

// ChronologicalAgeMonths returns elapsed whole days between the dates
// divided by DaysPerMonth.
func ChronologicalAgeMonths(birth, measured time.Time) float64 {
	return float64(elapsedDays(birth, measured)) / DaysPerMonth
}

// elapsedDays counts calendar days, ignoring the time of day and DST.
func elapsedDays(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	return int(math.Round(b.Sub(a).Hours() / 24))
}

// AdjustAge computes the chronological age between two dates and corrects
// it for prematurity.
func AdjustAge(birth, measured time.Time, gestationalWeeks int) (AdjustedAge, error) {
	if elapsedDays(birth, measured) < 0 {
		return AdjustedAge{}, &ValidationError{
			Field:  "measurement_date",
			Value:  float64(elapsedDays(birth, measured)),
			Reason: "measurement date cannot be before birth date",
		}
	}

	return AdjustMonths(ChronologicalAgeMonths(birth, measured), gestationalWeeks)
}

// AdjustMonths corrects a chronological age in months for prematurity.
// Infants born at 37 weeks or later are not adjusted.
func AdjustMonths(chronologicalMonths float64, gestationalWeeks int) (AdjustedAge, error) {
	if err := ValidateGestationalAge(gestationalWeeks); err != nil {
		return AdjustedAge{}, err
	}

	age := AdjustedAge{
		ChronologicalMonths: chronologicalMonths,
		AdjustedMonths:      chronologicalMonths,
	}

	if gestationalWeeks >= PretermThresholdWeeks {
		return age, nil
	}

	weeksPreterm := math.Max(0, float64(TermGestationWeeks-gestationalWeeks))
	age.AdjustedMonths = math.Max(0, chronologicalMonths-weeksPreterm/WeeksPerMonth)
	age.WasAdjusted = true

	return age, nil
}

// ValidateGestationalAge rejects gestational ages outside the supported
// range.
func ValidateGestationalAge(weeks int) error {
	if weeks < MinGestationalWeeks || weeks > MaxGestationalWeeks {
		return &ValidationError{
			Field:  "gestational_age_weeks",
			Value:  float64(weeks),
			Reason: fmt.Sprintf("outside %d-%d weeks", MinGestationalWeeks, MaxGestationalWeeks),
			Err:    ErrInvalidGestationalAge,
		}
	}

	return nil
}
