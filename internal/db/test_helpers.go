package db

import (
	"database/sql"
	"log/slog"
)

// NewTestDB wraps sqlDB, typically a go-sqlmock connection, so services and
// the router can be exercised without a real Postgres. Logs are discarded.
func NewTestDB(sqlDB *sql.DB) *DB {
	return &DB{
		DB:     sqlDB,
		logger: slog.New(slog.DiscardHandler),
	}
}
