// internal/repositories/mysql/open.go
package mysql

import (
	"context"
	"database/sql"
	"time"

	"weather-agent/internal/config"
	"weather-agent/internal/util"
	"weather-agent/pkg/db"
)

// OpenRunsRepo connects with cfg and makes sure agent_runs exists.
// Callers close the returned *sql.DB.
func OpenRunsRepo(ctx context.Context, cfg config.MySQLConfig) (*RunsRepo, *sql.DB, error) {
	conn, err := db.NewMySQL(ctx, cfg.DSN, db.Options{
		MaxOpen:     cfg.MaxOpen,
		MaxIdle:     cfg.MaxIdle,
		PingRetries: 5,
		RetryDelay:  2 * time.Second,
	})
	if err != nil {
		return nil, nil, err
	}
	repo := &RunsRepo{DB: conn, Clock: util.RealClock{}}
	if err := repo.EnsureSchema(ctx); err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return repo, conn, nil
}
