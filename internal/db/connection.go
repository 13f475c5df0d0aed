// Package db provides database connection and management utilities.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/benx421/interview-ledger/internal/config"

	// Register the pgx driver under "pgx" for DB_DRIVER=pgx
	_ "github.com/jackc/pgx/v5/stdlib"
	// Register the lib/pq driver under "postgres"
	_ "github.com/lib/pq"
)

// connectPingTimeout bounds the startup reachability check.
const connectPingTimeout = 10 * time.Second

// DB is the ledger store: a pooled Postgres connection that also hands out
// transactions through WithTx.
type DB struct {
	*sql.DB
	logger *slog.Logger
}

// Connect opens the pool with cfg.Driver and verifies the server answers.
// Both registered drivers accept the keyword DSN built by config.
func Connect(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	logger = logger.With(
		slog.String("driver", cfg.Driver),
		slog.String("host", cfg.Host),
		slog.String("database", cfg.DBName),
	)
	logger.Info("connecting to ledger store")

	pool, err := sql.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", cfg.Driver, err)
	}
	configurePool(pool, cfg)

	pingCtx, cancel := context.WithTimeout(ctx, connectPingTimeout)
	defer cancel()

	if err := pool.PingContext(pingCtx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("failed to reach %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	logger.Info("ledger store ready",
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
	)

	return &DB{DB: pool, logger: logger}, nil
}

func configurePool(pool *sql.DB, cfg *config.DatabaseConfig) {
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)
}

// Close releases every pooled connection.
func (db *DB) Close() error {
	db.logger.Info("closing ledger store")
	return db.DB.Close()
}
