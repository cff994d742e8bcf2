// Package main runs the KERJA workspace HTTP API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yukikurage/kerja-workspace/internal/app"
	"github.com/yukikurage/kerja-workspace/internal/config"
	"github.com/yukikurage/kerja-workspace/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

// run starts the server and returns the process exit status.
func run(ctx context.Context) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		return 1
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		return 1
	}
	defer func() {
		_ = log.Sync()
	}()

	a, err := app.Open(cfg, log)
	if err != nil {
		log.Errorw("startup failed", "error", err)
		return 1
	}
	defer func() {
		_ = a.Close()
	}()

	if err := a.Serve(ctx); err != nil {
		log.Errorw("server error", "error", err)
		return 1
	}
	return 0
}
