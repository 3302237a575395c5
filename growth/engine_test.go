// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package growth

import (
	"errors"
	"sync"
	"testing"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	engine, err := NewDefault()
	if err != nil {
		t.Fatalf("NewDefault failed: %v", err)
	}

	return engine
}

func TestComputeMaleBMIAtTwelveMonths(t *testing.T) {
	t.Parallel()

	result, err := newTestEngine(t).Compute(Input{
		Value:     17.0,
		AgeMonths: 12,
		Type:      MeasurementBMI,
		Sex:       SexMale,
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	assertFloatClose(t, result.ZScore, -0.213, 0.001)
	assertFloatClose(t, result.Percentile, 41.6, 0.05)

	if result.Classification != LabelHealthyWeight {
		t.Fatalf("expected %q, got %q", LabelHealthyWeight, result.Classification)
	}

	if result.IsAbnormal || result.Severity != SeverityNormal {
		t.Fatalf("expected normal result, got %s abnormal=%v", result.Severity, result.IsAbnormal)
	}

	want := LMSEntry{AgeMonths: 12, L: 0.05, M: 17.30, S: 0.082}
	if result.LMS != want {
		t.Fatalf("expected LMS %+v, got %+v", want, result.LMS)
	}

	if result.AdjustedAgeMonths != nil {
		t.Fatalf("expected no adjusted age, got %v", *result.AdjustedAgeMonths)
	}

	if result.EffectiveAgeMonths() != 12 {
		t.Fatalf("expected effective age 12, got %v", result.EffectiveAgeMonths())
	}
}

func TestComputeRejectsZeroValue(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	for _, kind := range MeasurementTypes {
		result, err := engine.Compute(Input{Value: 0, AgeMonths: 6, Type: kind, Sex: SexFemale})
		if result != nil {
			t.Fatalf("%s: expected no result, got %+v", kind, result)
		}

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("%s: expected ValidationError, got %v", kind, err)
		}

		if errors.Is(err, ErrInvalidMeasurement) {
			t.Fatalf("%s: zero value reached the transform stage", kind)
		}
	}
}

func TestComputeRejectsImplausibleValue(t *testing.T) {
	t.Parallel()

	// within weight bounds but far above M(1+4S) at 12 months
	result, err := newTestEngine(t).Compute(Input{Value: 30, AgeMonths: 12, Type: MeasurementWeight, Sex: SexMale})
	if result != nil {
		t.Fatalf("expected no result, got %+v", result)
	}

	if !errors.Is(err, ErrValidation) || !errors.Is(err, ErrImplausibleValue) {
		t.Fatalf("expected implausible validation error, got %v", err)
	}
}

func TestComputePretermAdjustment(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	term, err := engine.Compute(Input{
		Value: 7.0, AgeMonths: 6, Type: MeasurementWeight, Sex: SexMale,
		GestationalAgeWeeks: intPtr(40),
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if term.AdjustedAgeMonths != nil {
		t.Fatal("term infant should not carry an adjusted age")
	}

	preterm, err := engine.Compute(Input{
		Value: 7.0, AgeMonths: 6, Type: MeasurementWeight, Sex: SexMale,
		GestationalAgeWeeks: intPtr(32),
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if preterm.AdjustedAgeMonths == nil {
		t.Fatal("expected adjusted age for 32 weeks")
	}

	assertFloatClose(t, *preterm.AdjustedAgeMonths, 6-8/WeeksPerMonth, 1e-12)

	if preterm.ChronologicalAgeMonths != 6 {
		t.Fatalf("expected chronological age preserved, got %v", preterm.ChronologicalAgeMonths)
	}

	if preterm.LMS.AgeMonths != *preterm.AdjustedAgeMonths {
		t.Fatalf("expected LMS resolved at adjusted age, got %v", preterm.LMS.AgeMonths)
	}

	// the same weight is a higher percentile for a younger effective age
	if preterm.Percentile <= term.Percentile {
		t.Fatalf("expected preterm percentile %v above term %v", preterm.Percentile, term.Percentile)
	}
}

func TestComputeRejectsInvalidGestationalAge(t *testing.T) {
	t.Parallel()

	_, err := newTestEngine(t).Compute(Input{
		Value: 7.0, AgeMonths: 6, Type: MeasurementWeight, Sex: SexMale,
		GestationalAgeWeeks: intPtr(20),
	})
	if !errors.Is(err, ErrInvalidGestationalAge) {
		t.Fatalf("expected ErrInvalidGestationalAge, got %v", err)
	}
}

func TestComputeAgeBeyondTableClamps(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	result, err := engine.Compute(Input{Value: 96, AgeMonths: 48, Type: MeasurementHeight, Sex: SexMale})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if result.LMS.AgeMonths != MaxTableAgeMonths {
		t.Fatalf("expected LMS from %d months, got %v", MaxTableAgeMonths, result.LMS.AgeMonths)
	}

	if _, err := engine.Compute(Input{Value: 96, AgeMonths: -1, Type: MeasurementHeight, Sex: SexMale}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for negative age, got %v", err)
	}
}

func TestComputeUnknownSex(t *testing.T) {
	t.Parallel()

	_, err := newTestEngine(t).Compute(Input{Value: 7, AgeMonths: 6, Type: MeasurementWeight, Sex: Sex("x")})
	if !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("expected ErrTableNotFound, got %v", err)
	}
}

func TestComputeConcurrent(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	want, err := engine.Compute(Input{Value: 10.2, AgeMonths: 14.5, Type: MeasurementWeight, Sex: SexFemale})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	var wg sync.WaitGroup

	errs := make(chan error, 32)

	for range 32 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			got, err := engine.Compute(Input{Value: 10.2, AgeMonths: 14.5, Type: MeasurementWeight, Sex: SexFemale})
			if err != nil {
				errs <- err
				return
			}

			if got.ZScore != want.ZScore || got.Percentile != want.Percentile || got == want {
				errs <- errors.New("concurrent result differs or is shared")
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatal(err)
	}
}

func TestReferenceCurve(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	points, err := engine.ReferenceCurve(SexFemale, MeasurementHeadCircumference, DefaultCurveRange)
	if err != nil {
		t.Fatalf("ReferenceCurve failed: %v", err)
	}

	if len(points) != DefaultCurveRange.Points {
		t.Fatalf("expected %d points, got %d", DefaultCurveRange.Points, len(points))
	}

	assertFloatClose(t, points[0].AgeMonths, 0, 1e-12)
	assertFloatClose(t, points[len(points)-1].AgeMonths, 36, 1e-9)

	for _, pt := range points {
		if len(pt.Values) != len(StandardPercentiles) {
			t.Fatalf("expected %d values, got %d", len(StandardPercentiles), len(pt.Values))
		}

		for i := 1; i < len(pt.Values); i++ {
			if pt.Values[i] <= pt.Values[i-1] {
				t.Fatalf("values at %.2f months not increasing: %v", pt.AgeMonths, pt.Values)
			}
		}
	}

	table := mustTable(t, SexFemale, MeasurementHeadCircumference)
	assertFloatClose(t, points[0].Values[3], table.Entry(0).M, 1e-9)
}

func TestReferenceCurveRejectsBadRange(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	for _, r := range []CurveRange{
		{FromMonths: 0, ToMonths: 36, Points: 1},
		{FromMonths: 12, ToMonths: 6, Points: 10},
	} {
		if _, err := engine.ReferenceCurve(SexMale, MeasurementWeight, r); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", r, err)
		}
	}

	if _, err := engine.ReferenceCurve(SexMale, MeasurementType("x"), DefaultCurveRange); !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("expected ErrTableNotFound, got %v", err)
	}
}
