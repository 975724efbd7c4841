// Package repository selects the snapshot store named by the configuration.
package repository

import (
	"context"
	"fmt"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/config"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/repository/memory"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/repository/postgres"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/repository/sqlite"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/repository/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Open connects to the configured snapshot store. The returned close
// function releases its resources and is never nil.
func Open(ctx context.Context, cfg *config.Config) (domain.SnapshotRepository, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		log.Warn().Msg("Using in-memory storage, data is lost on exit")
		return memory.NewSnapshotRepository(), func() {}, nil

	case config.StorageSQLite:
		repo, err := sqlite.NewSnapshotRepository(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		log.Info().Str("path", cfg.SQLitePath).Msg("Connected to SQLite store")
		return repo, func() {
			if err := repo.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close SQLite store")
			}
		}, nil

	case config.StoragePostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		repo, err := postgres.NewSnapshotRepository(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Msg("Connected to database")
		return repo, pool.Close, nil

	case config.StorageS3:
		repo, err := storage.NewS3SnapshotRepository(ctx, cfg.S3)
		if err != nil {
			return nil, nil, fmt.Errorf("open s3 store: %w", err)
		}
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("Connected to S3 store")
		return repo, func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
