/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errSexRequired           = errors.New("sex is required (set via --sex, GROWTHREF_SEX or the config file)")
	errAgeRequired           = errors.New("either --age-months or --birth-date is required")
	errAgeAndBirthDate       = errors.New("--age-months and --birth-date are mutually exclusive")
	errInvalidFormat         = errors.New("format must be one of: text, json, yaml")
	errInvalidDate           = errors.New("dates must use the YYYY-MM-DD format")
	errUnknownConfigKeys     = errors.New("config file contains unknown keys")
	errInvalidCurvePoints    = errors.New("curve points must be at least 2")
	errNoRecordedMeasurement = errors.New("no measurement could be recorded")
)
