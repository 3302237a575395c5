/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import "fmt"

// Engine evaluates measurements against a reference Store. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	store *Store
}

// New returns an Engine backed by store.
func New(store *Store) *Engine {
	return &Engine{store: store}
}

// NewDefault returns an Engine backed by the embedded reference data.
func NewDefault() (*Engine, error) {
	store, err := DefaultStore()
	if err != nil {
		return nil, err
	}

	return New(store), nil
}

// Store returns the reference store the engine reads from.
func (e *Engine) Store() *Store {
	return e.store
}

// Input describes one measurement to evaluate
type Input struct {
	Value               float64
	AgeMonths           float64
	Type                MeasurementType
	Sex                 Sex
	GestationalAgeWeeks *int
}

// Compute validates, age-adjusts and evaluates a single measurement.
// Validation failures return a *ValidationError and no result.
func (e *Engine) Compute(in Input) (*GrowthResult, error) {
	if err := ValidateMeasurement(in.Value, in.Type); err != nil {
		return nil, err
	}

	if err := ValidateAge(in.AgeMonths); err != nil {
		return nil, err
	}

	result := &GrowthResult{
		Value:                  in.Value,
		Type:                   in.Type,
		Sex:                    in.Sex,
		ChronologicalAgeMonths: in.AgeMonths,
	}

	effectiveAge := in.AgeMonths

	if in.GestationalAgeWeeks != nil {
		age, err := AdjustMonths(in.AgeMonths, *in.GestationalAgeWeeks)
		if err != nil {
			return nil, err
		}

		if age.WasAdjusted {
			adjusted := age.AdjustedMonths
			result.AdjustedAgeMonths = &adjusted
			effectiveAge = adjusted
		}
	}

	table, err := e.store.Table(in.Sex, in.Type)
	if err != nil {
		return nil, err
	}

	lms, err := Resolve(table, effectiveAge)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve LMS for %s/%s: %w", in.Sex, in.Type, err)
	}

	if err := ValidatePlausibility(in.Value, lms); err != nil {
		return nil, err
	}

	z, percentile, err := Evaluate(in.Value, lms)
	if err != nil {
		return nil, err
	}

	class := Classify(in.Type, z)

	result.ZScore = z
	result.Percentile = percentile
	result.Classification = class.Label
	result.Severity = class.Severity
	result.LMS = lms
	result.IsAbnormal = class.Severity.Abnormal()

	return result, nil
}

// StandardPercentiles are the percentile lines drawn on growth charts.
var StandardPercentiles = []float64{3, 10, 25, 50, 75, 90, 97}

// CurveRange selects the evaluation points of a reference curve
type CurveRange struct {
	FromMonths float64
	ToMonths   float64
	Points     int
}

// DefaultCurveRange spans the whole table domain.
var DefaultCurveRange = CurveRange{FromMonths: MinTableAgeMonths, ToMonths: MaxTableAgeMonths, Points: 50}

// CurvePoint holds the reference values at one age, aligned with
// StandardPercentiles.
type CurvePoint struct {
	AgeMonths float64   `json:"age_months" yaml:"age_months"`
	Values    []float64 `json:"values" yaml:"values"`
}

// ReferenceCurve returns percentile curve values at evenly spaced ages,
// for plotting overlays.
func (e *Engine) ReferenceCurve(sex Sex, kind MeasurementType, r CurveRange) ([]CurvePoint, error) {
	if r.Points < 2 || r.ToMonths <= r.FromMonths {
		return nil, fmt.Errorf("%w: curve range %g-%g with %d points", ErrValidation, r.FromMonths, r.ToMonths, r.Points)
	}

	table, err := e.store.Table(sex, kind)
	if err != nil {
		return nil, err
	}

	step := (r.ToMonths - r.FromMonths) / float64(r.Points-1)
	points := make([]CurvePoint, 0, r.Points)

	for i := range r.Points {
		age := r.FromMonths + float64(i)*step

		lms, err := Resolve(table, age)
		if err != nil {
			return nil, err
		}

		values := make([]float64, len(StandardPercentiles))
		for j, p := range StandardPercentiles {
			v, err := ReferenceValue(p, lms)
			if err != nil {
				return nil, fmt.Errorf("failed to compute P%g at %.2f months: %w", p, age, err)
			}

			values[j] = v
		}

		points = append(points, CurvePoint{AgeMonths: age, Values: values})
	}

	return points, nil
}
