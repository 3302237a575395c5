/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package logging

import (
	"fmt"
	stdlog "log"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Log source tags used in structured logger contexts.
const (
	SourceApp       = "app"
	SourceCLI       = "cli"
	SourceReference = "reference"
	SourceSession   = "session"
)

var (
	initOnce   sync.Once
	baseLogger *log.Logger

	// loggers derived with With copy the level, so SetLevel tracks them.
	derivedMu sync.Mutex
	derived   []*log.Logger
)

// Init configures the base logger and stdlib log output. Logs go to
// stderr so command output on stdout stays machine readable.
func Init() {
	initOnce.Do(func() {
		baseLogger = log.NewWithOptions(os.Stderr, log.Options{
			TimeFunction:    log.NowUTC,
			TimeFormat:      time.RFC3339Nano,
			Level:           log.InfoLevel,
			ReportTimestamp: true,
			Formatter:       log.LogfmtFormatter,
		})

		stdLogger := baseLogger.With("source", SourceApp).StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel})

		stdlog.SetFlags(0)
		stdlog.SetOutput(stdLogger.Writer())
	})
}

// SetLevel changes the minimum level of every logger derived from the
// base logger.
func SetLevel(level string) error {
	Init()

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	derivedMu.Lock()
	defer derivedMu.Unlock()

	baseLogger.SetLevel(lvl)

	for _, l := range derived {
		l.SetLevel(lvl)
	}

	return nil
}

// Logger returns a logfmt logger tagged with the provided source.
func Logger(source string) *log.Logger {
	Init()

	derivedMu.Lock()
	defer derivedMu.Unlock()

	l := baseLogger.With("source", source)
	derived = append(derived, l)

	return l
}
