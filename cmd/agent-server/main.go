// cmd/agent-server/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-agent/internal/agent"
	"weather-agent/internal/config"
	mysqlrepo "weather-agent/internal/repositories/mysql"
	"weather-agent/internal/server"
	"weather-agent/internal/util"
)

var BuildVersion = "dev" // set via -ldflags

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()
	logger.Info("starting agent server", "build", BuildVersion, "model", cfg.LLM.Model)

	orch, err := agent.NewFromConfig(cfg, logger)
	if err != nil {
		logger.Error("init orchestrator", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var runs *mysqlrepo.RunsRepo
	if cfg.MySQL.DSN != "" {
		repo, conn, err := mysqlrepo.OpenRunsRepo(ctx, cfg.MySQL)
		if err != nil {
			logger.Warn("run history disabled", "error", err)
		} else {
			defer conn.Close()
			runs = repo
		}
	} else {
		logger.Warn("DB_DSN empty; run history disabled")
	}

	// two model rounds plus the tool call
	askTimeout := 2*cfg.LLM.Timeout + 2*cfg.Weather.Timeout
	h := server.NewRouter(server.Deps{
		Agent:      orch,
		Runs:       runs,
		Admin:      cfg.Admin,
		APIKey:     cfg.Agent.APIKey,
		AskTimeout: askTimeout,
		Logger:     logger,
		Clock:      util.RealClock{},
	})

	srv := server.NewHTTPServer(cfg.GetAgentAddr(), h, askTimeout+10*time.Second)
	if err := server.Serve(ctx, srv, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
