package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/bnema/graph-presence-cli/internal/ports"
)

const (
	pathToken    = "/api/token"
	pathPresence = "/api/presence"

	maxBodyBytes = 1 << 20
)

// Remote posts to the relay endpoints of a gp server.
type Remote struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.PresenceAPI = (*Remote)(nil)

func NewRemote(baseURL string, client *http.Client) *Remote {
	if client == nil {
		client = http.DefaultClient
	}
	return &Remote{baseURL: strings.TrimRight(baseURL, "/"), httpClient: client}
}

func (r *Remote) Token(ctx context.Context, req domain.TokenRequest) (domain.APIResponse, error) {
	return r.post(ctx, pathToken, req)
}

func (r *Remote) Presence(ctx context.Context, req domain.PresenceRequest) (domain.APIResponse, error) {
	return r.post(ctx, pathPresence, req)
}

func (r *Remote) post(ctx context.Context, path string, payload any) (domain.APIResponse, error) {
	op := http.MethodPost + " " + path

	encoded, err := json.Marshal(payload)
	if err != nil {
		return domain.APIResponse{}, &domain.UnexpectedError{Err: fmt.Errorf("encode %s body: %w", path, err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return domain.APIResponse{}, &domain.UnexpectedError{Err: fmt.Errorf("create %s request: %w", path, err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return domain.APIResponse{}, &domain.NetworkError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	var body any
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return domain.APIResponse{}, &domain.UnexpectedError{Err: fmt.Errorf("decode %s response (status %d): %w", path, resp.StatusCode, err)}
	}

	return domain.APIResponse{StatusCode: resp.StatusCode, Body: body}, nil
}
