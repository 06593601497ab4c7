// internal/handlers/http/ask_handler.go
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"weather-agent/internal/agent"
	"weather-agent/internal/middleware"
	mysqlrepo "weather-agent/internal/repositories/mysql"
	"weather-agent/internal/util"
)

type AskRequest struct {
	Question string `json:"question"`
}

type AskResponse struct {
	ID       string                `json:"id"`
	Answer   string                `json:"answer"`
	ToolCall *agent.ToolInvocation `json:"tool_call,omitempty"`
}

type AgentRunner interface {
	Run(ctx context.Context, prompt string) (*agent.Result, error)
}

type RunRecorder interface {
	Insert(ctx context.Context, run mysqlrepo.Run) (mysqlrepo.Run, error)
}

type AskDeps struct {
	Agent    AgentRunner
	Recorder RunRecorder // optional
	Logger   *slog.Logger
	Clock    util.Clock
	Timeout  time.Duration // whole run; 0 keeps the request context as is
}

func NewAskHandler(deps AskDeps) http.HandlerFunc {
	if deps.Clock == nil {
		deps.Clock = util.RealClock{}
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req AskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			util.WriteError(w, http.StatusBadRequest, util.BadInput("bad json"))
			return
		}
		question := strings.TrimSpace(req.Question)
		if question == "" {
			util.WriteError(w, http.StatusBadRequest, util.BadInput("question required",
				util.ErrorDetail{Path: "question", Message: "Required"}))
			return
		}

		ctx := r.Context()
		if _, ok := ctx.Deadline(); !ok && deps.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, deps.Timeout)
			defer cancel()
		}

		id := util.NewID()
		start := deps.Clock.Now()
		res, runErr := deps.Agent.Run(ctx, question)

		record(ctx, deps, mysqlrepo.Run{
			ID:         id,
			Prompt:     question,
			CreatedAt:  start,
			DurationMs: deps.Clock.Now().Sub(start).Milliseconds(),
		}, res, runErr)

		if runErr != nil {
			deps.Logger.ErrorContext(ctx, "agent run failed",
				"request_id", middleware.RequestIDFromContext(ctx), "run_id", id, "error", runErr)
			util.WriteError(w, http.StatusBadGateway, util.APIError{Error: "agent run failed"})
			return
		}

		util.WriteJSON(w, http.StatusOK, AskResponse{ID: id, Answer: res.Answer, ToolCall: res.ToolCall})
	}
}

// record stores the outcome when a recorder is configured. A failed write is only logged.
func record(ctx context.Context, deps AskDeps, run mysqlrepo.Run, res *agent.Result, runErr error) {
	if deps.Recorder == nil {
		return
	}
	run.Status = mysqlrepo.RunStatusOK
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
	if _, err := deps.Recorder.Insert(context.WithoutCancel(ctx), run); err != nil {
		deps.Logger.WarnContext(ctx, "record agent run failed", "run_id", run.ID, "error", err)
	}
}
