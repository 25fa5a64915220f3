package storage

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	applog "budgethub/internal/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRepositoryPutAndGet(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "db", "budgethub.db")

	repo, err := NewSQLiteRepository(dbPath, nil)
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.Get(ctx, "ledger")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Put(ctx, "ledger", []byte(`{"v":1}`)))
	require.NoError(t, repo.Put(ctx, "ledger", []byte(`{"v":2}`)))

	got, err := repo.Get(ctx, "ledger")
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(got))
}

func TestSQLiteRepositoryReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "budgethub.db")

	repo, err := NewSQLiteRepository(dbPath, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Put(ctx, "ledger", []byte("persisted")))
	require.NoError(t, repo.Close())

	// Migrations are idempotent and data survives a reopen
	repo, err = NewSQLiteRepository(dbPath, nil)
	require.NoError(t, err)
	defer repo.Close()

	got, err := repo.Get(ctx, "ledger")
	require.NoError(t, err)
	assert.Equal(t, "persisted", string(got))
}

func TestSQLiteRepositoryLogsAsStorage(t *testing.T) {
	var buf bytes.Buffer
	logger := applog.New(applog.Config{Output: &buf, Level: slog.LevelDebug, Component: applog.ComponentBackend})

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "budgethub.db"), logger)
	require.NoError(t, err)
	defer repo.Close()

	require.NoError(t, repo.Put(context.Background(), "ledger", []byte("{}")))

	assert.Contains(t, buf.String(), "Snapshot saved to SQLite")
	assert.Contains(t, buf.String(), "component=storage")
	assert.Contains(t, buf.String(), "key=ledger")
}
