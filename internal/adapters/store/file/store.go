// Package file keeps session-scoped values as one file per key under a
// runtime directory the OS clears when the login session ends.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/bnema/graph-presence-cli/internal/ports"
)

const (
	dirPerm   = 0o700
	valuePerm = 0o600
)

type Store struct {
	dir string
	mu  sync.RWMutex
}

var _ ports.KeyValueStore = (*Store)(nil)

func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// Put replaces the value through a temp file and rename, so readers never
// observe a half-written secret.
func (s *Store) Put(ctx context.Context, key string, value string) error {
	name, err := s.keyFile(ctx, key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("prepare runtime dir %s: %w", s.dir, err)
	}
	tmp, err := os.CreateTemp(s.dir, "."+filepath.Base(name)+".*")
	if err != nil {
		return fmt.Errorf("stage %q: %w", key, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := tmp.Chmod(valuePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("stage %q: %w", key, err)
	}
	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("stage %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("stage %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return fmt.Errorf("store %q: %w", key, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	name, err := s.keyFile(ctx, key)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := os.ReadFile(name)
	switch {
	case err == nil:
		return string(raw), nil
	case absent(err):
		return "", fmt.Errorf("%q: %w", key, domain.ErrNotFound)
	default:
		return "", fmt.Errorf("load %q: %w", key, err)
	}
}

func (s *Store) Delete(ctx context.Context, key string) error {
	name, err := s.keyFile(ctx, key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(name); err != nil && !absent(err) {
		return fmt.Errorf("forget %q: %w", key, err)
	}
	return nil
}

// keyFile maps a key to its file. Keys are flat names: separators and dot
// entries are refused.
func (s *Store) keyFile(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := strings.TrimSpace(key)
	if name == "" {
		return "", errors.New("session key is empty")
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid session key %q", key)
	}
	return filepath.Join(s.dir, name), nil
}

// absent also covers a dir path that is a regular file.
func absent(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
