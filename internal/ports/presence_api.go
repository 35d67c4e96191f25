package ports

import (
	"context"

	"github.com/bnema/graph-presence-cli/internal/domain"
)

// PresenceAPI is the /api/token and /api/presence surface as seen by a client.
// An error is returned only when no response could be obtained at all.
type PresenceAPI interface {
	Token(ctx context.Context, req domain.TokenRequest) (domain.APIResponse, error)
	Presence(ctx context.Context, req domain.PresenceRequest) (domain.APIResponse, error)
}
