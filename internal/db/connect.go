package db

import (
	"context"

	"taskboard/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect builds the process-wide connection pool and verifies the database
// is reachable. The pool is passed down explicitly; nothing else holds it.
func Connect(dsn string) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("database connected")
	return pool
}
