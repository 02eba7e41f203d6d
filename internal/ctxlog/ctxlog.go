// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-carried structured logger built on
// slog. The log level is read from an environment variable derived from
// the executable name: for an executable named "rim" the variable is
// "RIM_LOG_LEVEL", accepting DEBUG, INFO, WARN or ERROR. Anything else
// defaults to WARN.
package ctxlog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type loggerKey struct{}

// LevelVar holds the process-wide log level.
var LevelVar = &slog.LevelVar{}

// DefaultLogger writes colorized human-readable records to stdout.
var DefaultLogger = slog.New(NewPretty(os.Stdout, &slog.HandlerOptions{
	Level: LevelVar,
}))

// JSONLogger writes JSON records to stdout, for machine consumption.
var JSONLogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
	Level: LevelVar,
}))

func init() {
	LevelVar.Set(levelFromEnv())
}

// New returns a context carrying the given logger. A nil logger selects
// DefaultLogger.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger carried by ctx, or DefaultLogger.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Debug logs a debug message with the logger carried by ctx.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Info logs an info message with the logger carried by ctx.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Warn logs a warning message with the logger carried by ctx.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs an error message with the logger carried by ctx.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

func levelFromEnv() slog.Level {
	exec, _ := os.Executable()
	exec = strings.TrimSuffix(filepath.Base(exec), ".exe")

	envName := strings.ToUpper(exec) + "_LOG_LEVEL"

	switch os.Getenv(envName) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
