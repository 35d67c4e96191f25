package ports

import (
	"context"

	"github.com/bnema/graph-presence-cli/internal/domain"
)

type TokenAcquirer interface {
	AcquireToken(ctx context.Context, creds domain.Credentials) (string, error)
}

// PresenceGateway performs one remote call. Read actions return the decoded
// JSON payload; mutations return nil on success.
type PresenceGateway interface {
	Call(ctx context.Context, call domain.GatewayCall) (any, error)
}
