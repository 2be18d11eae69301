// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// a command-line constructor and run-scoped helpers used throughout the
// settings sync tool.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and derive run-scoped
// loggers via WithRunID.
package logger

import (
	"io"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewCLILogger constructs a human-readable single-line *Logger for
// command-line use. Entries below level are dropped; an unparsable level
// falls back to Info.
func NewCLILogger(role string, level string, out io.Writer) *Logger {
	setCallerFormat()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	console := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: "15:04:05",
		PartsExclude: []string{
			zerolog.CallerFieldName,
		},
	}

	logger := zerolog.New(console).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

func setCallerFormat() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithRunID returns a child *Logger that tags every entry with runID.
func (l *Logger) WithRunID(runID string) *Logger {
	return &Logger{l.With().Str("run_id", runID).Logger()}
}
