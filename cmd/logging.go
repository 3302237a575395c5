/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "github.com/humaidq/growthref/logging"

var appLogger = logging.Logger(logging.SourceApp)
var cliLogger = logging.Logger(logging.SourceCLI)
var referenceLogger = logging.Logger(logging.SourceReference)
