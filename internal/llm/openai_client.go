// internal/llm/openai_client.go
// Model completion endpoint client built on go-openai.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"weather-agent/internal/config"
)

// ErrNoChoices is returned when the endpoint answers without any completion.
var ErrNoChoices = errors.New("no completion choices")

// Completer is the single call the orchestrator needs from a model endpoint.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client wraps openai.Client with the configured model and a default deadline.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

var _ Completer = (*Client)(nil)

// NewClient builds a client from configuration loaded at process start.
func NewClient(cfg config.LLMConfig) (*Client, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, errors.New("OPENAI_API_KEY not set")
	}

	oc := openai.DefaultConfig(key)
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		oc.BaseURL = strings.TrimRight(base, "/")
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gpt-4.1-mini"
	}

	return &Client{
		api:     openai.NewClientWithConfig(oc),
		model:   model,
		timeout: cfg.Timeout,
	}, nil
}

func (c *Client) Model() string { return c.model }

// CreateChatCompletion fills in the model when req leaves it empty and bounds the
// call by the configured timeout unless ctx already carries a deadline.
func (c *Client) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if req.Model == "" {
		req.Model = c.model
	}

	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return openai.ChatCompletionResponse{}, fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return openai.ChatCompletionResponse{}, ErrNoChoices
	}
	return resp, nil
}
