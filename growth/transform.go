/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import (
	"fmt"
	"math"
)

const (
	// lambdaEpsilon is the |L| below which the log form of Box-Cox is used.
	lambdaEpsilon = 1e-6

	// PlausibleSDs bounds accepted values to M(1±kS).
	PlausibleSDs = 4

	MinZScore = -5.0
	MaxZScore = 5.0

	MinPercentile = 0.01
	MaxPercentile = 99.99
)

// Evaluate converts a measurement into a Z-score and percentile against
// the given LMS parameters.
func Evaluate(value float64, lms LMSEntry) (z, percentile float64, err error) {
	if !(value > 0) || !(lms.M > 0) || !(lms.S > 0) {
		return 0, 0, fmt.Errorf("%w: value=%g M=%g S=%g", ErrInvalidMeasurement, value, lms.M, lms.S)
	}

	if err := ValidatePlausibility(value, lms); err != nil {
		return 0, 0, err
	}

	z = clamp(zScore(value, lms), MinZScore, MaxZScore)
	percentile = clamp(NormalCDF(z)*100, MinPercentile, MaxPercentile)

	return z, percentile, nil
}

// zScore applies the Box-Cox transform. Overflow or a domain error in the
// power form falls back to the logarithmic form.
func zScore(value float64, lms LMSEntry) float64 {
	logZ := math.Log(value/lms.M) / lms.S
	if math.Abs(lms.L) <= lambdaEpsilon {
		return logZ
	}

	z := (math.Pow(value/lms.M, lms.L) - 1) / (lms.L * lms.S)
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return logZ
	}

	return z
}

// NormalCDF is the standard normal cumulative distribution function.
func NormalCDF(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}

// NormalQuantile is the inverse of NormalCDF for p in (0, 1).
func NormalQuantile(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}

// ReferenceValue returns the measurement that lies at the given percentile
// of the LMS distribution.
func ReferenceValue(percentile float64, lms LMSEntry) (float64, error) {
	if !(percentile > 0 && percentile < 100) {
		return 0, fmt.Errorf("%w: percentile %g outside (0, 100)", ErrInvalidMeasurement, percentile)
	}

	if !(lms.M > 0) || !(lms.S > 0) {
		return 0, fmt.Errorf("%w: M=%g S=%g", ErrInvalidMeasurement, lms.M, lms.S)
	}

	z := NormalQuantile(percentile / 100)

	if math.Abs(lms.L) <= lambdaEpsilon {
		return lms.M * math.Exp(lms.S*z), nil
	}

	base := 1 + lms.L*lms.S*z
	if base <= 0 {
		return 0, fmt.Errorf("%w: percentile %g has no value for L=%g", ErrInvalidMeasurement, percentile, lms.L)
	}

	return lms.M * math.Pow(base, 1/lms.L), nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
