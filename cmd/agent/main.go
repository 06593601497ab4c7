// cmd/agent/main.go
// One-shot run: ask the model, let it call get_weather once, print the answer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-agent/internal/agent"
	"weather-agent/internal/config"
	mysqlrepo "weather-agent/internal/repositories/mysql"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	prompt := flag.String("prompt", cfg.Agent.Prompt, "question for the assistant")
	flag.Parse()

	logger := cfg.NewLogger()
	if err := run(cfg, logger, *prompt); err != nil {
		logger.Error("agent run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, prompt string) error {
	orch, err := agent.NewFromConfig(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	res, runErr := orch.Run(ctx, prompt)
	recordRun(ctx, cfg, logger, prompt, start, res, runErr)
	if runErr != nil {
		return runErr
	}

	fmt.Printf("Assistant: %s\n", res.Answer)
	return nil
}

func recordRun(ctx context.Context, cfg *config.Config, logger *slog.Logger, prompt string, start time.Time, res *agent.Result, runErr error) {
	if cfg.MySQL.DSN == "" {
		return
	}
	repo, conn, err := mysqlrepo.OpenRunsRepo(ctx, cfg.MySQL)
	if err != nil {
		logger.Warn("run history unavailable", "error", err)
		return
	}
	defer conn.Close()

	run := mysqlrepo.Run{
		Prompt:     prompt,
		Status:     mysqlrepo.RunStatusOK,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if runErr != nil {
		run.Status = mysqlrepo.RunStatusError
		run.Error = runErr.Error()
	}
	if res != nil {
		run.Answer = res.Answer
		if res.ToolCall != nil {
			run.ToolName = res.ToolCall.Name
			run.ToolArguments = res.ToolCall.Arguments
		}
	}
	if _, err := repo.Insert(ctx, run); err != nil {
		logger.Warn("record agent run failed", "error", err)
	}
}
