// internal/server/router.go
// chi router for the agent HTTP surface.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"weather-agent/internal/config"
	hh "weather-agent/internal/handlers/http"
	"weather-agent/internal/middleware"
	mysqlrepo "weather-agent/internal/repositories/mysql"
	"weather-agent/internal/util"
)

type Deps struct {
	Agent      hh.AgentRunner
	Runs       *mysqlrepo.RunsRepo // nil without a database
	Admin      config.AdminConfig
	APIKey     string
	AskTimeout time.Duration
	Logger     *slog.Logger
	Clock      util.Clock
}

func NewRouter(d Deps) http.Handler {
	var (
		recorder hh.RunRecorder
		lister   hh.RunLister
	)
	if d.Runs != nil {
		recorder, lister = d.Runs, d.Runs
	}
	stats := middleware.NewRequestStats()

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover(d.Logger), middleware.Logging(d.Logger, stats), hh.CORS)
	r.NotFound(hh.NotFoundHandler)
	r.MethodNotAllowed(hh.MethodNotAllowedHandler)

	r.Get("/healthz", hh.HealthHandler)
	r.Get("/metrics", hh.MetricsHandler(stats))

	r.With(middleware.APIKey(d.APIKey)).Post("/ask", hh.NewAskHandler(hh.AskDeps{
		Agent:    d.Agent,
		Recorder: recorder,
		Logger:   d.Logger,
		Clock:    d.Clock,
		Timeout:  d.AskTimeout,
	}))
	r.Post("/login", hh.NewLoginHandler(d.Admin, d.Clock))

	r.Group(func(admin chi.Router) {
		admin.Use(middleware.AdminJWTAuth(d.Admin.JWTSecret))
		admin.Get("/runs", hh.NewRunsHandler(lister, d.Logger))
	})

	return r
}
