// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/broom/internal/ctxlog"
)

// Watch cancels the context on the first signal received on sigCh and exits
// the process on a second signal of the same type.
// It returns when sigCh is closed.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := seen[sig]; ok {
			ctxlog.Warn(ctx, "watchdog", "detail", "received second signal of type, exiting", "signal", sig.String())
			exit(ExitCodeInterrupted)

			return
		}

		ctxlog.Warn(ctx, "watchdog", "detail", "received signal, stopping the sweep", "signal", sig.String())

		seen[sig] = struct{}{}

		cancel()
	}
}
