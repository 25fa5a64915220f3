package backend

import (
	"context"
	"path/filepath"
	"testing"

	"budgethub/internal/config"
	"budgethub/internal/storage"
	"budgethub/internal/storage/jsonfile"
	"budgethub/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBackend(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name   string
		config Config
		check  func(t *testing.T, kv storage.KV)
	}{
		{
			name:   "memory",
			config: Config{Type: MemoryBackend},
			check: func(t *testing.T, kv storage.KV) {
				assert.IsType(t, &memory.Store{}, kv)
			},
		},
		{
			name:   "file",
			config: Config{Type: FileBackend, DataDirectory: filepath.Join(dir, "files")},
			check: func(t *testing.T, kv storage.KV) {
				require.IsType(t, &jsonfile.Store{}, kv)
				assert.Equal(t, filepath.Join(dir, "files"), kv.(*jsonfile.Store).Dir())
			},
		},
		{
			name:   "sqlite",
			config: Config{Type: SQLiteBackend, SQLiteDBPath: filepath.Join(dir, "db", "test.db")},
			check: func(t *testing.T, kv storage.KV) {
				assert.IsType(t, &storage.SQLiteRepository{}, kv)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			res, err := NewFactory(nil).CreateBackend(ctx, tt.config)
			require.NoError(t, err)
			defer res.Close()

			tt.check(t, res.Store)

			require.NoError(t, res.Store.Put(ctx, "k", []byte("v")))
			got, err := res.Store.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, "v", string(got))
		})
	}
}

func TestCreateBackendInvalid(t *testing.T) {
	f := NewFactory(nil)
	for _, cfg := range []Config{
		{Type: "redis"},
		{Type: FileBackend},
		{Type: SQLiteBackend},
	} {
		_, err := f.CreateBackend(context.Background(), cfg)
		assert.Error(t, err, "%+v", cfg)
	}
}

func TestFromAppConfig(t *testing.T) {
	_, err := FromAppConfig(nil)
	assert.Error(t, err)

	_, err = FromAppConfig(&config.Config{DataBackend: "postgres"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[memory file sqlite]")

	cfg, err := FromAppConfig(&config.Config{DataBackend: "sqlite", SQLiteDBPath: "x.db", DataDir: "d"})
	require.NoError(t, err)
	assert.Equal(t, Config{Type: SQLiteBackend, SQLiteDBPath: "x.db", DataDirectory: "d"}, cfg)

	assert.Len(t, GetBackendTypes(), 3)
	for _, bt := range GetBackendTypes() {
		assert.True(t, bt.IsValid())
	}
}
