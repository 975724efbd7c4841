package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createSnapshotsTable = `
CREATE TABLE IF NOT EXISTS snapshots (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// SnapshotRepository implements domain.SnapshotRepository using PostgreSQL
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository creates a new SnapshotRepository and makes sure its table exists
func NewSnapshotRepository(ctx context.Context, pool *pgxpool.Pool) (*SnapshotRepository, error) {
	if _, err := pool.Exec(ctx, createSnapshotsTable); err != nil {
		return nil, fmt.Errorf("failed to create snapshots table: %w", err)
	}
	return &SnapshotRepository{pool: pool}, nil
}

// Get returns the blob stored under key
func (r *SnapshotRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.pool.QueryRow(ctx, `SELECT value FROM snapshots WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("failed to get snapshot: %w", err)
	}
	return value, nil
}

// Put upserts the blob stored under key
func (r *SnapshotRepository) Put(ctx context.Context, key string, value string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO snapshots (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to put snapshot: %w", err)
	}
	return nil
}

var _ domain.SnapshotRepository = (*SnapshotRepository)(nil)
