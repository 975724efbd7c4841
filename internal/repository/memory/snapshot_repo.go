package memory

import (
	"context"
	"sync"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
)

// SnapshotRepository keeps snapshot blobs in process memory
type SnapshotRepository struct {
	mu    sync.RWMutex
	blobs map[string]string
}

// NewSnapshotRepository creates an empty in-memory store
func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{blobs: make(map[string]string)}
}

func (r *SnapshotRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.blobs[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return value, nil
}

func (r *SnapshotRepository) Put(ctx context.Context, key string, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.blobs[key] = value
	return nil
}

var _ domain.SnapshotRepository = (*SnapshotRepository)(nil)
