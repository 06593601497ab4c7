// pkg/db/mysql.go
// MySQL connection helper (database/sql + go-sql-driver/mysql)

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

type Options struct {
	MaxOpen     int
	MaxIdle     int
	PingRetries int           // 0 means a single ping
	RetryDelay  time.Duration // between pings
}

// NewMySQL opens dsn with parseTime forced on and waits until the server answers.
func NewMySQL(ctx context.Context, dsn string, opt Options) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	if cfg.Loc == nil {
		cfg.Loc = time.UTC
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if opt.MaxOpen > 0 {
		db.SetMaxOpenConns(opt.MaxOpen)
	}
	if opt.MaxIdle > 0 {
		db.SetMaxIdleConns(opt.MaxIdle)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	// retry so a freshly started container has time to come up
	var pingErr error
	for i := 0; i <= opt.PingRetries; i++ {
		if pingErr = db.PingContext(ctx); pingErr == nil {
			return db, nil
		}
		if i == opt.PingRetries {
			break
		}
		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, ctx.Err()
		case <-time.After(opt.RetryDelay):
		}
	}
	_ = db.Close()
	return nil, fmt.Errorf("mysql not ready: %w", pingErr)
}
