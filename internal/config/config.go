// internal/config/config.go
// Process configuration: optional .env + config.yaml, overridden by environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppName string
	AppEnv  string
	Server  ServerConfig
	Log     LogConfig
	LLM     LLMConfig
	Weather WeatherConfig
	Agent   AgentConfig
	MySQL   MySQLConfig
	Admin   AdminConfig
}

type ServerConfig struct {
	Port      int // weather API
	AgentPort int // agent HTTP surface
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// LLMConfig carries the model endpoint credential; it is read once here and
// handed to llm.NewClient.
type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// WeatherConfig configures the upstream NWS client.
type WeatherConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

type AgentConfig struct {
	WeatherAPIURL string // base URL of the weather API the tool call hits
	Prompt        string // default question for cmd/agent
	APIKey        string // required on POST /ask when set
}

type MySQLConfig struct {
	DSN     string
	MaxOpen int
	MaxIdle int
}

type AdminConfig struct {
	User      string
	PassHash  string // bcrypt
	JWTSecret string
}

var envBindings = map[string][]string{
	"appname":             {"APP_NAME"},
	"appenv":              {"APP_ENV"},
	"server.port":         {"PORT", "APP_PORT"},
	"server.agentport":    {"AGENT_PORT"},
	"log.level":           {"LOG_LEVEL"},
	"log.format":          {"LOG_FORMAT"},
	"llm.apikey":          {"OPENAI_API_KEY"},
	"llm.baseurl":         {"OPENAI_BASE_URL", "OPENAI_API_BASE"},
	"llm.model":           {"OPENAI_MODEL"},
	"llm.timeout":         {"LLM_TIMEOUT"},
	"weather.baseurl":     {"NWS_BASE_URL"},
	"weather.useragent":   {"NWS_USER_AGENT"},
	"weather.timeout":     {"UPSTREAM_TIMEOUT"},
	"agent.weatherapiurl": {"WEATHER_API_URL"},
	"agent.prompt":        {"AGENT_PROMPT"},
	"agent.apikey":        {"AGENT_API_KEY"},
	"mysql.dsn":           {"DB_DSN", "DB_DSN_DOCKER"},
	"mysql.maxopen":       {"MYSQL_MAX_OPEN_CONNS"},
	"mysql.maxidle":       {"MYSQL_MAX_IDLE_CONNS"},
	"admin.user":          {"ADMIN_USER"},
	"admin.passhash":      {"ADMIN_PASS_HASH"},
	"admin.jwtsecret":     {"ADMIN_JWT_SECRET"},
}

// Load reads configuration rooted at the working directory.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom reads dir/.env (exported into the environment when a variable is
// not already set), then dir/config.yaml or dir/config/config.yaml, then env.
func LoadFrom(dir string) (*Config, error) {
	if err := loadDotEnv(filepath.Join(dir, ".env")); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.AddConfigPath(filepath.Join(dir, "config"))

	v.SetDefault("appname", "weather-agent")
	v.SetDefault("appenv", "development")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.agentport", 8090)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("llm.baseurl", "https://api.openai.com/v1")
	v.SetDefault("llm.model", "gpt-4.1-mini")
	v.SetDefault("llm.timeout", "60s")
	v.SetDefault("weather.baseurl", "https://api.weather.gov")
	v.SetDefault("weather.useragent", "weather-app/1.0")
	v.SetDefault("weather.timeout", "15s")
	v.SetDefault("agent.weatherapiurl", "http://localhost:3000")
	v.SetDefault("agent.prompt", "What's the weather like in New York City?")
	v.SetDefault("mysql.maxopen", 10)
	v.SetDefault("mysql.maxidle", 5)

	for key, names := range envBindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	ev := viper.New()
	ev.SetConfigFile(path)
	ev.SetConfigType("env")
	if err := ev.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	for _, k := range ev.AllKeys() {
		name := strings.ToUpper(k)
		if _, set := os.LookupEnv(name); set {
			continue
		}
		if err := os.Setenv(name, ev.GetString(k)); err != nil {
			return fmt.Errorf("export %s: %w", name, err)
		}
	}
	return nil
}

// RequireLLM fails when the model endpoint credential is absent.
func (c *Config) RequireLLM() error {
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return errors.New("OPENAI_API_KEY is not set")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) GetAgentAddr() string {
	return fmt.Sprintf(":%d", c.Server.AgentPort)
}

// NewLogger creates a slog.Logger writing to stdout.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(c.Log.Level)}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler).With("app", c.AppName)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
