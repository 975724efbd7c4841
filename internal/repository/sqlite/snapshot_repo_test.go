package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*SnapshotRepository, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "data", "wealthflow.db")
	repo, err := NewSnapshotRepository(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo, dbPath
}

func TestSnapshotRepository_GetMissing(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.Get(context.Background(), "wealthflow_data")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSnapshotRepository_PutUpserts(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "wealthflow_data", `{"a":1}`))
	require.NoError(t, repo.Put(ctx, "wealthflow_data", `{"a":2}`))

	got, err := repo.Get(ctx, "wealthflow_data")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, got)
}

func TestSnapshotRepository_PersistsAcrossReopen(t *testing.T) {
	repo, dbPath := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "wealthflow_data", "stored"))
	require.NoError(t, repo.Close())

	reopened, err := NewSnapshotRepository(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "wealthflow_data")
	require.NoError(t, err)
	assert.Equal(t, "stored", got)
}
