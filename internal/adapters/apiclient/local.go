// Package apiclient provides ports.PresenceAPI implementations: one that runs
// the endpoints in-process and one that talks to a running "gp serve".
package apiclient

import (
	"context"

	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/bnema/graph-presence-cli/internal/ports"
)

type endpoints interface {
	Token(ctx context.Context, req domain.TokenRequest) domain.APIResponse
	Presence(ctx context.Context, req domain.PresenceRequest) domain.APIResponse
}

// Local calls the endpoints directly. It never returns an error.
type Local struct {
	endpoints endpoints
}

var _ ports.PresenceAPI = (*Local)(nil)

func NewLocal(e endpoints) *Local {
	return &Local{endpoints: e}
}

func (l *Local) Token(ctx context.Context, req domain.TokenRequest) (domain.APIResponse, error) {
	return l.endpoints.Token(ctx, req), nil
}

func (l *Local) Presence(ctx context.Context, req domain.PresenceRequest) (domain.APIResponse, error) {
	return l.endpoints.Presence(ctx, req), nil
}
