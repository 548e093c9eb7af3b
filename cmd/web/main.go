package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/hockey-league/internal/app"
	"github.com/riskibarqy/hockey-league/internal/config"
	"github.com/riskibarqy/hockey-league/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(config.ServiceWeb)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("service", cfg.ServiceName)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	stopObservability, err := app.StartObservability(cfg, logger)
	if err != nil {
		logger.Error("start observability", "error", err)
		os.Exit(1)
	}
	defer stopObservability()

	srv, err := app.NewWebServer(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Serve(ctx, srv, logger); err != nil {
		logger.Error("web server stopped with error", "error", err)
		os.Exit(1)
	}
}
