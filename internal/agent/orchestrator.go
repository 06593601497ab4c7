// internal/agent/orchestrator.go
// Two-round tool-call exchange: ask the model, run at most one tool, ask again.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"weather-agent/internal/llm"
)

const tracerName = "weather-agent/internal/agent"

// ToolInvocation is the single tool call the orchestrator acts on.
type ToolInvocation struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Result of one run. ToolCall is nil when the model answered directly.
type Result struct {
	Prompt     string          `json:"prompt"`
	Answer     string          `json:"answer"`
	ToolCall   *ToolInvocation `json:"tool_call,omitempty"`
	ToolOutput json.RawMessage `json:"tool_output,omitempty"`
}

type Orchestrator struct {
	llm    llm.Completer
	model  string
	tools  *Toolbox
	logger *slog.Logger
	tracer trace.Tracer
}

func NewOrchestrator(c llm.Completer, model string, tools *Toolbox, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		llm:    c,
		model:  model,
		tools:  tools,
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

// Run drives one independent exchange. Every failure is fatal to the run.
func (o *Orchestrator) Run(ctx context.Context, prompt string) (*Result, error) {
	ctx, span := o.tracer.Start(ctx, "agent.run", trace.WithAttributes(attribute.String("llm.model", o.model)))
	defer span.End()

	res, err := o.run(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if res.ToolCall != nil {
		span.SetAttributes(attribute.String("tool.name", res.ToolCall.Name))
	}
	return res, nil
}

func (o *Orchestrator) run(ctx context.Context, prompt string) (*Result, error) {
	history := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	}

	// ---- round 1: tools offered, model decides ----
	first, err := o.complete(ctx, openai.ChatCompletionRequest{
		Model:      o.model,
		Messages:   history,
		Tools:      o.tools.Declarations(),
		ToolChoice: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("round 1: %w", err)
	}
	msg := first.Choices[0].Message

	call, ignored := firstToolCall(msg)
	if call == nil {
		return &Result{Prompt: prompt, Answer: msg.Content}, nil
	}
	if ignored > 0 {
		o.logger.WarnContext(ctx, "model requested several tool calls; only the first is executed",
			"executed", call.Name, "ignored", ignored)
	}
	o.logger.InfoContext(ctx, "tool call", "id", call.ID, "name", call.Name, "arguments", call.Arguments)

	output, err := o.tools.Execute(ctx, *call)
	if err != nil {
		return nil, err
	}

	// ---- round 2: tool result appended, no tools offered ----
	history = append(history, msg, openai.ChatCompletionMessage{
		Role:       openai.ChatMessageRoleTool,
		ToolCallID: call.ID,
		Content:    string(output),
	})
	second, err := o.complete(ctx, openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: history,
	})
	if err != nil {
		return nil, fmt.Errorf("round 2: %w", err)
	}

	return &Result{
		Prompt:     prompt,
		Answer:     second.Choices[0].Message.Content,
		ToolCall:   call,
		ToolOutput: output,
	}, nil
}

func (o *Orchestrator) complete(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	resp, err := o.llm.CreateChatCompletion(ctx, req)
	if err != nil {
		return resp, err
	}
	if len(resp.Choices) == 0 {
		return resp, llm.ErrNoChoices
	}
	return resp, nil
}

// firstToolCall narrows the model's tool calls to at most one. The second return
// value counts the calls that were dropped.
func firstToolCall(msg openai.ChatCompletionMessage) (*ToolInvocation, int) {
	if len(msg.ToolCalls) == 0 {
		return nil, 0
	}
	tc := msg.ToolCalls[0]
	return &ToolInvocation{
		ID:        tc.ID,
		Name:      tc.Function.Name,
		Arguments: tc.Function.Arguments,
	}, len(msg.ToolCalls) - 1
}
