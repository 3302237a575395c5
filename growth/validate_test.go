// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package growth

import (
	"errors"
	"testing"
	"time"
)

func TestValidateMeasurementBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind     MeasurementType
		min, max float64
	}{
		{MeasurementWeight, 0.5, 150},
		{MeasurementHeight, 30, 200},
		{MeasurementBMI, 10, 40},
		{MeasurementHeadCircumference, 20, 65},
	}

	for _, tc := range cases {
		for _, v := range []float64{tc.min, tc.max, (tc.min + tc.max) / 2} {
			if err := ValidateMeasurement(v, tc.kind); err != nil {
				t.Fatalf("%s: expected %v to be valid, got %v", tc.kind, v, err)
			}

			if !InRange(v, tc.kind) {
				t.Fatalf("%s: InRange(%v) = false", tc.kind, v)
			}
		}

		if b, ok := Bounds(tc.kind); !ok || b.Min != tc.min || b.Max != tc.max {
			t.Fatalf("%s: unexpected bounds %+v", tc.kind, b)
		}

		for _, v := range []float64{0, tc.min - 0.01, tc.max + 0.01, -1} {
			err := ValidateMeasurement(v, tc.kind)

			var vErr *ValidationError
			if !errors.As(err, &vErr) || !errors.Is(err, ErrValidation) {
				t.Fatalf("%s: expected ValidationError for %v, got %v", tc.kind, v, err)
			}

			if InRange(v, tc.kind) {
				t.Fatalf("%s: InRange(%v) = true", tc.kind, v)
			}
		}
	}
}

func TestValidateMeasurementUnknownType(t *testing.T) {
	t.Parallel()

	if _, ok := Bounds(MeasurementType("arm_span")); ok {
		t.Fatal("expected no bounds for an unknown type")
	}

	if err := ValidateMeasurement(10, MeasurementType("arm_span")); !errors.Is(err, ErrUnknownMeasurementType) {
		t.Fatalf("expected ErrUnknownMeasurementType, got %v", err)
	}
}

func TestCalculateBMI(t *testing.T) {
	t.Parallel()

	bmi, err := CalculateBMI(10, 75)
	if err != nil {
		t.Fatalf("CalculateBMI failed: %v", err)
	}

	if bmi != 17.8 {
		t.Fatalf("expected 17.8, got %v", bmi)
	}

	if _, err := CalculateBMI(0, 75); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for zero weight, got %v", err)
	}

	if _, err := CalculateBMI(10, 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for zero height, got %v", err)
	}

	// 45 kg at 100 cm is a BMI of 45, outside the BMI bounds
	if _, err := CalculateBMI(45, 100); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for out of range BMI, got %v", err)
	}
}

func TestValidateAge(t *testing.T) {
	t.Parallel()

	for _, months := range []float64{0, 12.5, 36, MaxAgeMonths} {
		if err := ValidateAge(months); err != nil {
			t.Fatalf("expected %v months to be valid, got %v", months, err)
		}
	}

	for _, months := range []float64{-0.1, MaxAgeMonths + 1} {
		if err := ValidateAge(months); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation for %v months, got %v", months, err)
		}
	}
}

func TestValidateDates(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	birth := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	if err := ValidateDates(birth, now, now); err != nil {
		t.Fatalf("expected valid dates, got %v", err)
	}

	cases := map[string][2]time.Time{
		"future birth":       {now.AddDate(0, 0, 1), now.AddDate(0, 0, 2)},
		"measured pre-birth": {birth, birth.AddDate(0, 0, -1)},
		"older than 5 years": {birth.AddDate(-6, 0, 0), birth},
	}

	for name, dates := range cases {
		if err := ValidateDates(dates[0], dates[1], now); !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", name, err)
		}
	}
}

func TestValidateDatesSameDay(t *testing.T) {
	t.Parallel()

	birth := time.Date(2025, time.March, 3, 18, 0, 0, 0, time.UTC)
	measured := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

	if err := ValidateDates(birth, measured, measured); err != nil {
		t.Fatalf("expected a same-day measurement to be valid, got %v", err)
	}

	age, err := AdjustAge(birth, measured, 40)
	if err != nil {
		t.Fatalf("AdjustAge failed: %v", err)
	}

	if age.ChronologicalMonths != 0 {
		t.Fatalf("expected age 0 on the birth date, got %v", age.ChronologicalMonths)
	}

	if err := ValidateDates(birth, measured.AddDate(0, 0, -1), measured); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for the day before birth, got %v", err)
	}
}
