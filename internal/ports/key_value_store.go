package ports

import "context"

// KeyValueStore is a string store. Get returns domain.ErrNotFound for a
// missing key and Delete of a missing key is not an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
