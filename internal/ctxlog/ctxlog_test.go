// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NilLoggerUsesDefault(t *testing.T) {
	ctx := New(context.Background(), nil)

	assert.Same(t, DefaultLogger, Logger(ctx))
}

func TestNew_CarriesProvidedLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))

	ctx := New(context.Background(), logger)

	assert.Same(t, logger, Logger(ctx))
}

func TestLogger_EmptyContextReturnsDefault(t *testing.T) {
	assert.Same(t, DefaultLogger, Logger(context.Background()))
}

func TestContextHelpers(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	ctx := New(context.Background(), logger)

	Debug(ctx, "debug message")
	Info(ctx, "info message")
	Warn(ctx, "warn message")
	Error(ctx, "error message", "code", 3)

	out := buf.String()
	assert.Contains(t, out, "debug message")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
	assert.Contains(t, out, "code=3")
}

func TestPrettyHandler_Handle(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := NewPretty(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(handler)

	logger.Info("position updated", "pos", 42.5, "style", "len")

	out := buf.String()
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "position updated")
	assert.Contains(t, out, "pos")
	assert.Contains(t, out, "42.5")
}

func TestPrettyHandler_NoAttrsNoJSON(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	logger := slog.New(NewPretty(buf, nil))

	logger.Warn("bare message")

	out := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasSuffix(out, "bare message"), "got %q", out)
}

func TestPrettyHandler_Levels(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewPretty(buf, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelError))
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	logger := slog.New(NewPretty(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.With("component", "tracker").WithGroup("update").Info("applied", "delta", 1.5)

	out := buf.String()
	assert.Contains(t, out, "component")
	assert.Contains(t, out, "update.delta")
}

func TestLevelFromEnv_DefaultsToWarn(t *testing.T) {
	// The test binary name will not have a matching env var set.
	require.Equal(t, slog.LevelWarn, levelFromEnv())
}
