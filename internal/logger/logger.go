// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// bedrock-server-manager application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Informational entries are written to the "out" stream and error-level
// entries to the "err" stream, mirroring a console program's stdout/stderr
// split.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Format selects the log encoding.
type Format string

const (
	// FormatJSON writes one JSON object per line.
	FormatJSON Format = "json"
	// FormatConsole writes human-readable lines without colors.
	FormatConsole Format = "console"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// Options configures [New].
type Options struct {
	// Level is the minimum level that is written.
	Level zerolog.Level
	// Format is the output encoding; empty means FormatJSON.
	Format Format
	// Out receives entries below error level. Nil means os.Stdout.
	Out io.Writer
	// ErrOut receives error, fatal and panic entries. Nil means os.Stderr.
	ErrOut io.Writer
}

// New constructs a *Logger for the given role label (e.g. "bedrock-server").
//
// Every entry carries:
//   - a "role" field set to role;
//   - a "run_id" field unique to this logger instance, so the lines of one
//     process start can be told apart in shared log files;
//   - a "time" timestamp;
//   - a "func" caller field with the fully-qualified function name.
func New(role string, opts Options) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	out, errOut := opts.Out, opts.ErrOut
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	if opts.Format == FormatConsole {
		out = zerolog.ConsoleWriter{Out: out, NoColor: true}
		errOut = zerolog.ConsoleWriter{Out: errOut, NoColor: true}
	}

	logger := zerolog.New(newStreamWriter(out, errOut)).
		Level(opts.Level).
		With().
		Str("role", role).
		Str("run_id", newRunID()).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// newRunID prefers a time-ordered v7 UUID and falls back to a random v4.
func newRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
