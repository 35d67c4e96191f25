// Package chain serves session values from the runtime directory and
// drops to process memory when the directory cannot be used.
package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/graph-presence-cli/internal/adapters/store/file"
	memorystore "github.com/bnema/graph-presence-cli/internal/adapters/store/memory"
	"github.com/bnema/graph-presence-cli/internal/ports"
)

// ErrMissingTier is returned by New when either tier is nil.
var ErrMissingTier = errors.New("session store tier is nil")

// Store tries the runtime tier first; the memory tier only sees a call
// when the runtime tier failed for a reason other than cancellation.
type Store struct {
	runtime ports.KeyValueStore
	memory  ports.KeyValueStore
}

var _ ports.KeyValueStore = (*Store)(nil)

func New(runtime ports.KeyValueStore, memory ports.KeyValueStore) (*Store, error) {
	if runtime == nil || memory == nil {
		return nil, ErrMissingTier
	}
	return &Store{runtime: runtime, memory: memory}, nil
}

func NewSessionStore(runtimeDir string) (*Store, error) {
	return New(filestore.NewStore(runtimeDir), memorystore.NewStore())
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	return s.untilOK("put", func(tier ports.KeyValueStore) error {
		return tier.Put(ctx, key, value)
	})
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.untilOK("get", func(tier ports.KeyValueStore) error {
		got, err := tier.Get(ctx, key)
		if err == nil {
			value = got
		}
		return err
	})
	return value, err
}

// Delete hits both tiers: an earlier Put may have landed in memory.
func (s *Store) Delete(ctx context.Context, key string) error {
	runtimeErr := s.runtime.Delete(ctx, key)
	if interrupted(runtimeErr) {
		return runtimeErr
	}
	memoryErr := s.memory.Delete(ctx, key)
	if runtimeErr == nil && memoryErr == nil {
		return nil
	}
	return tierFailure("delete", runtimeErr, memoryErr)
}

func (s *Store) untilOK(op string, call func(ports.KeyValueStore) error) error {
	runtimeErr := call(s.runtime)
	if runtimeErr == nil || interrupted(runtimeErr) {
		return runtimeErr
	}
	memoryErr := call(s.memory)
	if memoryErr == nil {
		return nil
	}
	return tierFailure(op, runtimeErr, memoryErr)
}

func tierFailure(op string, runtimeErr, memoryErr error) error {
	var errs []error
	if runtimeErr != nil {
		errs = append(errs, fmt.Errorf("runtime tier: %w", runtimeErr))
	}
	if memoryErr != nil {
		errs = append(errs, fmt.Errorf("memory tier: %w", memoryErr))
	}
	return fmt.Errorf("session %s: %w", op, errors.Join(errs...))
}

func interrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
