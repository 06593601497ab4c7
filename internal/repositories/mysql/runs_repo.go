// internal/repositories/mysql/runs_repo.go
// Audit trail of agent runs. Write-mostly; rows are never fed back to the model.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"weather-agent/internal/util"
)

const (
	RunStatusOK    = "ok"
	RunStatusError = "error"

	defaultRunLimit = 20
	maxRunLimit     = 200
)

type RunsRepo struct {
	DB    *sql.DB
	Clock util.Clock
}

type Run struct {
	ID            string    `json:"id"`
	Prompt        string    `json:"prompt"`
	Answer        string    `json:"answer,omitempty"`
	ToolName      string    `json:"tool_name,omitempty"`
	ToolArguments string    `json:"tool_arguments,omitempty"`
	Status        string    `json:"status"`
	Error         string    `json:"error,omitempty"`
	DurationMs    int64     `json:"duration_ms"`
	CreatedAt     time.Time `json:"created_at"`
}

type RunFilter struct {
	Statuses []string // optional: IN (...)
	Limit    int
}

const createRunsTable = `
CREATE TABLE IF NOT EXISTS agent_runs (
	id             CHAR(36)     NOT NULL PRIMARY KEY,
	prompt         TEXT         NOT NULL,
	answer         TEXT         NULL,
	tool_name      VARCHAR(64)  NULL,
	tool_arguments TEXT         NULL,
	status         VARCHAR(16)  NOT NULL,
	error          TEXT         NULL,
	duration_ms    BIGINT       NOT NULL DEFAULT 0,
	created_at     DATETIME(3)  NOT NULL,
	KEY idx_agent_runs_created (created_at)
)`

func (r *RunsRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, createRunsTable); err != nil {
		return fmt.Errorf("create agent_runs: %w", err)
	}
	return nil
}

// Insert stores run. Missing ID and CreatedAt are filled in.
func (r *RunsRepo) Insert(ctx context.Context, run Run) (Run, error) {
	if run.ID == "" {
		run.ID = util.NewID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = r.now()
	}
	if run.Status == "" {
		run.Status = RunStatusOK
	}

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO agent_runs (id, prompt, answer, tool_name, tool_arguments, status, error, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Prompt, nullIfEmpty(run.Answer), nullIfEmpty(run.ToolName), nullIfEmpty(run.ToolArguments),
		run.Status, nullIfEmpty(run.Error), run.DurationMs, run.CreatedAt,
	)
	if err != nil {
		return Run{}, fmt.Errorf("insert agent run: %w", err)
	}
	return run, nil
}

// ListRecent returns runs newest first.
func (r *RunsRepo) ListRecent(ctx context.Context, f RunFilter) ([]Run, error) {
	if f.Limit <= 0 {
		f.Limit = defaultRunLimit
	}
	if f.Limit > maxRunLimit {
		f.Limit = maxRunLimit
	}

	var sb strings.Builder
	var args []any

	sb.WriteString(`
		SELECT id, prompt, answer, tool_name, tool_arguments, status, error, duration_ms, created_at
		FROM agent_runs
		WHERE 1=1`)
	if len(f.Statuses) > 0 {
		sb.WriteString(` AND status IN (` + placeholders(len(f.Statuses)) + `)`)
		for _, s := range f.Statuses {
			args = append(args, s)
		}
	}
	sb.WriteString(` ORDER BY created_at DESC, id DESC LIMIT ?`)
	args = append(args, f.Limit)

	rows, err := r.DB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query agent runs: %w", err)
	}
	defer rows.Close()

	out := make([]Run, 0, f.Limit)
	for rows.Next() {
		var (
			run                            Run
			answer, tool, toolArgs, errMsg sql.NullString
		)
		if err := rows.Scan(&run.ID, &run.Prompt, &answer, &tool, &toolArgs, &run.Status, &errMsg, &run.DurationMs, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan agent run: %w", err)
		}
		run.Answer = answer.String
		run.ToolName = tool.String
		run.ToolArguments = toolArgs.String
		run.Error = errMsg.String
		out = append(out, run)
	}
	return out, rows.Err()
}

func (r *RunsRepo) now() time.Time {
	if r.Clock == nil {
		return util.RealClock{}.Now()
	}
	return r.Clock.Now()
}

// placeholders returns "?,?,...,?" with n markers.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
