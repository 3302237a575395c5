/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package session

import "errors"

var (
	errNameRequired            = errors.New("first and last name are required")
	errUnknownSex              = errors.New("sex must be male or female")
	errHeightAndWeightRequired = errors.New("please enter both height and weight for basic growth assessment")
	errNoMeasurements          = errors.New("no measurements submitted")
	errEngineRequired          = errors.New("growth engine is required")
)
