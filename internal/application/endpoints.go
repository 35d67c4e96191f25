package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/bnema/graph-presence-cli/internal/logging"
	"github.com/bnema/graph-presence-cli/internal/ports"
)

const (
	subsystemEndpoints = "endpoints"

	msgMissingTokenParams    = "Missing required parameters"
	msgMissingPresenceParams = "Missing required parameters: token, userObjectId, action"
	msgInternalServerError   = "Internal server error"
)

// Endpoints implements the two relay endpoints. Each call makes at most one
// outbound request and keeps no state between calls.
type Endpoints struct {
	acquirer ports.TokenAcquirer
	gateway  ports.PresenceGateway
}

func NewEndpoints(acquirer ports.TokenAcquirer, gateway ports.PresenceGateway) *Endpoints {
	return &Endpoints{acquirer: acquirer, gateway: gateway}
}

func (e *Endpoints) Token(ctx context.Context, req domain.TokenRequest) domain.APIResponse {
	if !req.Credentials().Complete() {
		return errorResponse(http.StatusBadRequest, msgMissingTokenParams)
	}

	token, err := e.acquirer.AcquireToken(ctx, req.Credentials())
	if err != nil {
		return responseForError("token", err)
	}

	return domain.APIResponse{
		StatusCode: http.StatusOK,
		Body:       map[string]any{"access_token": token},
	}
}

func (e *Endpoints) Presence(ctx context.Context, req domain.PresenceRequest) domain.APIResponse {
	if req.Token == "" || req.UserObjectID == "" || req.Action == "" {
		return errorResponse(http.StatusBadRequest, msgMissingPresenceParams)
	}

	action, err := domain.ParseAction(req.Action)
	if err != nil {
		return responseForError("presence", err)
	}

	payload, err := e.gateway.Call(ctx, domain.GatewayCall{
		Token:  req.Token,
		UserID: req.UserObjectID,
		Action: action,
		Body:   req.Body,
	})
	if err != nil {
		return responseForError("presence "+string(action), err)
	}

	if action.Mutates() {
		return domain.APIResponse{StatusCode: http.StatusOK, Body: map[string]any{"success": true}}
	}
	return domain.APIResponse{StatusCode: http.StatusOK, Body: payload}
}

func responseForError(op string, err error) domain.APIResponse {
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		return errorResponse(http.StatusBadRequest, validation.Error())
	}

	if status, ok := domain.RemoteStatus(err); ok {
		logging.Warn(subsystemEndpoints, "%s: upstream answered %d", op, status)
		return errorResponse(status, err.Error())
	}

	logging.Error(subsystemEndpoints, err, "%s failed", op)
	return errorResponse(http.StatusInternalServerError, msgInternalServerError)
}

func errorResponse(status int, message string) domain.APIResponse {
	return domain.APIResponse{StatusCode: status, Body: map[string]any{"error": message}}
}
