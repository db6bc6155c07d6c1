package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"campaignhub/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (storage backend + seed + use cases).
// 3) Serve HTTP until SIGINT/SIGTERM.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.BuildAPI(ctx)
	if err != nil {
		slog.Error("api bootstrap failed", "event", "bootstrap_api_failed", "error", err.Error())
		os.Exit(1)
	}

	runErr := app.Run(ctx)
	if err := app.Close(); err != nil {
		slog.Error("api close failed", "event", "bootstrap_api_close_failed", "error", err.Error())
	}
	if runErr != nil {
		slog.Error("api stopped with error", "event", "bootstrap_api_failed", "error", runErr.Error())
		os.Exit(1)
	}
}
