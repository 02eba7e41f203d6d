// Copyright (c) surechen 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"os/signal"

	"github.com/surechen/rim/internal/ctxlog"
)

// Watch monitors sigCh and cancels the context on the second signal of a
// given type. It returns when the channel is closed or the cancel fires.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := seen[sig]; ok {
			ctxlog.Info(ctx, "watchdog", "detail", "second signal received, terminating", "signal", sig.String())

			// Unregister before closing so a signal landing during
			// shutdown has nowhere to be delivered.
			signal.Stop(sigCh)
			close(sigCh)
			cancel()

			return
		}

		ctxlog.Info(ctx, "watchdog", "detail", "first signal received, send again to terminate", "signal", sig.String())

		seen[sig] = struct{}{}
	}
}
