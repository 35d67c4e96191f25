package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/bnema/graph-presence-cli/internal/ports"
)

const (
	KeyTenantID     = "graph-tester-tenantId"
	KeyAppID        = "graph-tester-appId"
	KeyUserObjectID = "graph-tester-userObjectId"
	KeyAppSecret    = "graph-tester-appSecret"
)

// StoredFields are the operator inputs that survive a restart.
type StoredFields struct {
	TenantID     string
	AppID        string
	AppSecret    string
	UserObjectID string
}

// SessionStore splits operator input between a durable tier and a
// session-scoped tier. Only the app secret goes to the session tier. Tokens
// and fetched records are never written here.
type SessionStore struct {
	durable ports.KeyValueStore
	session ports.KeyValueStore
}

func NewSessionStore(durable ports.KeyValueStore, session ports.KeyValueStore) *SessionStore {
	return &SessionStore{durable: durable, session: session}
}

func (s *SessionStore) Load(ctx context.Context) (StoredFields, error) {
	var fields StoredFields
	var err error

	if fields.TenantID, err = readOptional(ctx, s.durable, KeyTenantID); err != nil {
		return StoredFields{}, err
	}
	if fields.AppID, err = readOptional(ctx, s.durable, KeyAppID); err != nil {
		return StoredFields{}, err
	}
	if fields.UserObjectID, err = readOptional(ctx, s.durable, KeyUserObjectID); err != nil {
		return StoredFields{}, err
	}
	if fields.AppSecret, err = readOptional(ctx, s.session, KeyAppSecret); err != nil {
		return StoredFields{}, err
	}

	return fields, nil
}

func (s *SessionStore) SetTenantID(ctx context.Context, value string) error {
	return writeOrRemove(ctx, s.durable, KeyTenantID, value)
}

func (s *SessionStore) SetAppID(ctx context.Context, value string) error {
	return writeOrRemove(ctx, s.durable, KeyAppID, value)
}

func (s *SessionStore) SetUserObjectID(ctx context.Context, value string) error {
	return writeOrRemove(ctx, s.durable, KeyUserObjectID, value)
}

func (s *SessionStore) SetAppSecret(ctx context.Context, value string) error {
	return writeOrRemove(ctx, s.session, KeyAppSecret, value)
}

// Clear removes all four keys, attempting every removal even when one fails.
func (s *SessionStore) Clear(ctx context.Context) error {
	var errs []error
	for _, key := range []string{KeyTenantID, KeyAppID, KeyUserObjectID} {
		if err := s.durable.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", key, err))
		}
	}
	if err := s.session.Delete(ctx, KeyAppSecret); err != nil {
		errs = append(errs, fmt.Errorf("remove %s: %w", KeyAppSecret, err))
	}
	return errors.Join(errs...)
}

func readOptional(ctx context.Context, store ports.KeyValueStore, key string) (string, error) {
	value, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return value, nil
}

func writeOrRemove(ctx context.Context, store ports.KeyValueStore, key, value string) error {
	if value == "" {
		if err := store.Delete(ctx, key); err != nil {
			return fmt.Errorf("remove %s: %w", key, err)
		}
		return nil
	}
	if err := store.Put(ctx, key, value); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}
