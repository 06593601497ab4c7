// internal/agent/setup.go
package agent

import (
	"log/slog"
	"net/http"

	"weather-agent/internal/config"
	"weather-agent/internal/llm"
)

// NewFromConfig builds an orchestrator talking to the configured model endpoint
// and weather API. The tool call gets two upstream timeouts, one per NWS sub-request.
func NewFromConfig(cfg *config.Config, logger *slog.Logger) (*Orchestrator, error) {
	if err := cfg.RequireLLM(); err != nil {
		return nil, err
	}
	client, err := llm.NewClient(cfg.LLM)
	if err != nil {
		return nil, err
	}

	endpoint := NewWeatherEndpoint(cfg.Agent.WeatherAPIURL, &http.Client{Timeout: 2 * cfg.Weather.Timeout})
	tools, err := NewToolbox(DefaultExecutors(endpoint))
	if err != nil {
		return nil, err
	}
	return NewOrchestrator(client, client.Model(), tools, logger), nil
}
