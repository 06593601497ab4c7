// internal/handlers/http/runs_handler.go
package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	mysqlrepo "weather-agent/internal/repositories/mysql"
	"weather-agent/internal/util"
)

type RunLister interface {
	ListRecent(ctx context.Context, f mysqlrepo.RunFilter) ([]mysqlrepo.Run, error)
}

// NewRunsHandler serves GET /runs?limit=&status=. A nil lister means no database.
func NewRunsHandler(lister RunLister, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if lister == nil {
			util.WriteError(w, http.StatusServiceUnavailable, util.APIError{Error: "run history not configured"})
			return
		}

		var f mysqlrepo.RunFilter
		if s := strings.TrimSpace(r.URL.Query().Get("limit")); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 {
				util.WriteError(w, http.StatusBadRequest, util.BadInput("invalid limit",
					util.ErrorDetail{Path: "limit", Message: "Expected positive integer"}))
				return
			}
			f.Limit = n
		}
		for _, st := range strings.Split(r.URL.Query().Get("status"), ",") {
			if st = strings.TrimSpace(st); st != "" {
				f.Statuses = append(f.Statuses, st)
			}
		}

		runs, err := lister.ListRecent(r.Context(), f)
		if err != nil {
			logger.ErrorContext(r.Context(), "list runs failed", "error", err)
			util.WriteError(w, http.StatusInternalServerError, util.Internal("Failed to list runs"))
			return
		}
		util.WriteJSON(w, http.StatusOK, map[string]any{"runs": runs})
	}
}
