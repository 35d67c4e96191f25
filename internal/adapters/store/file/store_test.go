package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "session key is empty"},
		{name: "whitespace", key: "   ", wantErr: "session key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid session key"},
		{name: "traversal", key: "../escape", wantErr: "invalid session key"},
		{name: "parent", key: "..", wantErr: "invalid session key"},
		{name: "nested", key: "a/b", wantErr: "invalid session key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "gp")
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), "graph-tester-appSecret", "s3cr3t"))

	got, err := store.Get(context.Background(), "graph-tester-appSecret")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", got)

	dirInfo, err := os.Stat(root)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	fileInfo, err := os.Stat(filepath.Join(root, "graph-tester-appSecret"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fileInfo.Mode().Perm())
}

func TestStoreGetMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Get(context.Background(), "graph-tester-appSecret")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreDeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	require.NoError(t, store.Put(context.Background(), "k", "v"))

	require.NoError(t, store.Delete(context.Background(), "k"))
	require.NoError(t, store.Delete(context.Background(), "k"))

	_, err := store.Get(context.Background(), "k")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreHonoursCanceledContext(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.Put(ctx, "k", "v"), context.Canceled)
}

func TestStorePutOverwritesWithoutLeavingStagingFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewStore(dir)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "graph-tester-appSecret", "first"))
	require.NoError(t, store.Put(ctx, "graph-tester-appSecret", "second"))

	got, err := store.Get(ctx, "graph-tester-appSecret")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "graph-tester-appSecret", entries[0].Name())
}

func TestStoreGetUnderRegularFileReturnsNotFound(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "gp")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := NewStore(blocker).Get(context.Background(), "k")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
