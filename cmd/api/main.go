// cmd/api/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-agent/internal/app"
	"weather-agent/internal/config"
	"weather-agent/internal/server"
)

var BuildVersion = "dev" // set via -ldflags

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()
	logger.Info("starting weather api", "build", BuildVersion, "env", cfg.AppEnv)

	a := app.NewFromConfig(cfg, logger)
	// two upstream calls plus headroom
	srv := server.NewHTTPServer(cfg.GetServerAddr(), a.Handler(), 2*cfg.Weather.Timeout+15*time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Serve(ctx, srv, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
