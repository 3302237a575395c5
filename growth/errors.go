/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration marks reference data that cannot be used at all.
	ErrConfiguration = errors.New("reference table configuration error")
	// ErrValidation marks input outside clinically plausible bounds.
	ErrValidation = errors.New("measurement validation failed")

	ErrInvalidMeasurement     = errors.New("invalid measurement")
	ErrInvalidGestationalAge  = errors.New("gestational age must be between 22 and 44 weeks")
	ErrImplausibleValue       = errors.New("value is implausible for the reference distribution")
	ErrTableNotFound          = errors.New("reference table not found")
	ErrEmptyTable             = errors.New("reference table is empty")
	ErrUnknownSex             = errors.New("unknown sex")
	ErrUnknownMeasurementType = errors.New("unknown measurement type")
)

// ConfigurationError lists every problem found while loading reference tables
type ConfigurationError struct {
	Issues []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %d issue(s): %s", ErrConfiguration, len(e.Issues), strings.Join(e.Issues, "; "))
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// ValidationError describes a rejected input. No calculation is performed.
type ValidationError struct {
	Field  string
	Value  float64
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s=%g: %s", ErrValidation, e.Field, e.Value, e.Reason)
}

// Unwrap allows matching both ErrValidation and the specific cause.
func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrValidation, e.Err}
	}

	return []error{ErrValidation}
}
