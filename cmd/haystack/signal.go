package main

import (
	"context"
	"os/signal"
)

// notifyContext cancels the returned context on the first shutdown signal.
// serve drains in-flight requests and build stops scheduling new files.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
