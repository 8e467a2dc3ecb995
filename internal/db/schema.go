package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// "user" is quoted because it is a reserved word in postgres.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS "user" (
		id            TEXT PRIMARY KEY,
		email         TEXT UNIQUE NOT NULL,
		name          TEXT,
		password_hash TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS task (
		id          BIGSERIAL PRIMARY KEY,
		user_id     TEXT NOT NULL,
		title       VARCHAR(200) NOT NULL,
		description VARCHAR(1000) NOT NULL DEFAULT '',
		completed   BOOLEAN NOT NULL DEFAULT FALSE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_task_user_id ON task (user_id)`,
}

// InitSchema creates the task and user tables if they do not exist yet.
// Safe to run on every startup.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
