// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker listens for OS termination signals so the CLI can
// shut down cleanly. The first signal of a type is treated as a polite
// request; the watchdog cancels the application context on the second
// signal of the same type.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/surechen/rim/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New creates a buffered channel subscribed to the given signals, or to
// the default termination signals when none are supplied.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "subscribing", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}
