// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexfluent

package main

import (
	"io"
	"log"
)

// logger writes diagnostics to stderr; debug output needs --verbose.
type logger struct {
	debugLogger *log.Logger
	warnLogger  *log.Logger
	verbose     bool
}

func newLogger(w io.Writer, verbose bool) *logger {
	return &logger{
		debugLogger: log.New(w, "[DEBUG] ", log.LstdFlags),
		warnLogger:  log.New(w, "[WARN] ", log.LstdFlags),
		verbose:     verbose,
	}
}

// Debugf logs a debug message when verbose output is enabled.
func (l *logger) Debugf(format string, args ...any) {
	if !l.verbose {
		return
	}

	l.debugLogger.Printf(format, args...)
}

// Warnf logs a warning message.
func (l *logger) Warnf(format string, args ...any) {
	l.warnLogger.Printf(format, args...)
}
