// Package db provides PostgreSQL storage for analysis history and
// skill-frequency tracking. The matching core never depends on this
// package; results are handed over after scoring completes.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the storage tables if they do not exist
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			candidate_name TEXT NOT NULL DEFAULT '',
			resume_filename TEXT NOT NULL,
			jd_filename TEXT NOT NULL,
			score INTEGER NOT NULL,
			lexical_score DOUBLE PRECISION NOT NULL,
			semantic_score DOUBLE PRECISION NOT NULL,
			combined_score DOUBLE PRECISION NOT NULL,
			verdict TEXT NOT NULL,
			matched_skills JSONB NOT NULL DEFAULT '[]',
			missing_skills JSONB NOT NULL DEFAULT '[]',
			improvement_plan JSONB NOT NULL DEFAULT '[]',
			categories JSONB NOT NULL DEFAULT '[]',
			resume_word_count INTEGER NOT NULL DEFAULT 0,
			jd_word_count INTEGER NOT NULL DEFAULT 0,
			is_archived BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS skill_tracking (
			skill_name TEXT PRIMARY KEY,
			skill_category TEXT NOT NULL DEFAULT 'unknown',
			frequency_in_jds INTEGER NOT NULL DEFAULT 0,
			frequency_in_resumes INTEGER NOT NULL DEFAULT 0,
			last_seen TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses (created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
