package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/rs/zerolog/log"

	_ "modernc.org/sqlite"
)

// SnapshotRepository stores snapshot blobs in a local SQLite file
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository opens (creating if needed) the database at dbPath and migrates it
func NewSnapshotRepository(dbPath string) (*SnapshotRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	log.Debug().Str("path", dbPath).Msg("SQLite snapshot store ready")

	return &SnapshotRepository{db: db}, nil
}

// Close releases the database handle
func (r *SnapshotRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Get returns the blob stored under key
func (r *SnapshotRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM snapshots WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get snapshot: %w", err)
	}
	return value, nil
}

// Put upserts the blob stored under key
func (r *SnapshotRepository) Put(ctx context.Context, key string, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("put snapshot: %w", err)
	}
	return nil
}

var _ domain.SnapshotRepository = (*SnapshotRepository)(nil)
