package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "graph-tester-tenantId")
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Put(ctx, "graph-tester-tenantId", "contoso"))
	got, err := store.Get(ctx, "graph-tester-tenantId")
	require.NoError(t, err)
	assert.Equal(t, "contoso", got)

	require.NoError(t, store.Delete(ctx, "graph-tester-tenantId"))
	require.NoError(t, store.Delete(ctx, "graph-tester-tenantId"))
	assert.Zero(t, store.Len())
}

func TestStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Put(context.Background(), "k", "v")
			_, _ = store.Get(context.Background(), "k")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, store.Len())
}
