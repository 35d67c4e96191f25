package toml

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTripAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gp", "state.toml")
	store, err := NewStore(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "graph-tester-tenantId", "contoso.onmicrosoft.com"))
	require.NoError(t, store.Put(ctx, "graph-tester-appId", "11111111-2222-3333-4444-555555555555"))

	reopened, err := NewStore(path)
	require.NoError(t, err)

	got, err := reopened.Get(ctx, "graph-tester-tenantId")
	require.NoError(t, err)
	assert.Equal(t, "contoso.onmicrosoft.com", got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
}

func TestStoreMissingFileAndKey(t *testing.T) {
	t.Parallel()

	store, err := NewStore(filepath.Join(t.TempDir(), "state.toml"))
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "graph-tester-userObjectId")
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Delete(context.Background(), "graph-tester-userObjectId"))
	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr), "deleting a missing key does not create the file")
}

func TestStoreDeleteRemovesKey(t *testing.T) {
	t.Parallel()

	store, err := NewStore(filepath.Join(t.TempDir(), "state.toml"))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "graph-tester-appId", "app"))
	require.NoError(t, store.Delete(ctx, "graph-tester-appId"))

	_, err = store.Get(ctx, "graph-tester-appId")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 9\n"), 0o600))

	store, err := NewStore(path)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "graph-tester-appId")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported state schema version 9")
}

func TestStoreRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("values = [\n"), 0o600))

	store, err := NewStore(path)
	require.NoError(t, err)

	err = store.Put(context.Background(), "k", "v")
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode state file")
}

func TestStoreConcurrentWritersShareLock(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.toml")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store, err := NewStore(path)
			if !assert.NoError(t, err) {
				return
			}
			assert.NoError(t, store.Put(context.Background(), "key-"+strconv.Itoa(i), "v"))
		}(i)
	}
	wg.Wait()

	store, err := NewStore(path)
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		got, err := store.Get(context.Background(), "key-"+strconv.Itoa(i))
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	}
}

func TestNewStoreRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := NewStore("")
	require.Error(t, err)
}
