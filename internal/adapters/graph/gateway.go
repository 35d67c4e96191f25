package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/bnema/graph-presence-cli/internal/ports"
)

const (
	DefaultAPIBaseURL = "https://graph.microsoft.com/v1.0"

	maxResponseBytes = 1 << 20
)

type route struct {
	method         string
	path           func(userID string) string
	returnsPayload bool
}

func userPath(suffix string) func(string) string {
	return func(userID string) string {
		return "/users/" + url.PathEscape(userID) + suffix
	}
}

var routes = map[domain.Action]route{
	domain.ActionGetPresence: {
		method:         http.MethodPost,
		path:           func(string) string { return "/communications/getPresencesByUserId" },
		returnsPayload: true,
	},
	domain.ActionSetPresence:                {method: http.MethodPost, path: userPath("/presence/setPresence")},
	domain.ActionClearPresence:              {method: http.MethodPost, path: userPath("/presence/clearPresence")},
	domain.ActionSetUserPreferredPresence:   {method: http.MethodPost, path: userPath("/presence/setUserPreferredPresence")},
	domain.ActionClearUserPreferredPresence: {method: http.MethodPost, path: userPath("/presence/clearUserPreferredPresence")},
	domain.ActionGetUser:                    {method: http.MethodGet, path: userPath(""), returnsPayload: true},
}

// Gateway maps presence actions onto Graph API calls.
type Gateway struct {
	BaseURL    string
	HTTPClient *http.Client
}

var _ ports.PresenceGateway = Gateway{}

func (g Gateway) Call(ctx context.Context, call domain.GatewayCall) (any, error) {
	if call.Token == "" || call.UserID == "" || call.Action == "" {
		return nil, &domain.ValidationError{
			Fields:  missingCallFields(call),
			Message: "Missing required parameters: token, userObjectId, action",
		}
	}

	rt, ok := routes[call.Action]
	if !ok {
		return nil, &domain.ValidationError{
			Fields:  []string{"action"},
			Message: "Unknown action: " + string(call.Action),
			Err:     domain.ErrUnknownAction,
		}
	}

	endpoint, err := g.endpoint(rt.path(call.UserID))
	if err != nil {
		return nil, &domain.UnexpectedError{Err: err}
	}

	body := call.Body
	switch {
	case rt.method == http.MethodGet:
		body = nil
	case body == nil && call.Action == domain.ActionGetPresence:
		body = map[string]any{"ids": []string{call.UserID}}
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &domain.ValidationError{Fields: []string{"body"}, Message: "body is not valid JSON", Err: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, rt.method, endpoint, reader)
	if err != nil {
		return nil, &domain.UnexpectedError{Err: fmt.Errorf("create %s request: %w", call.Action, err)}
	}
	req.Header.Set("Authorization", "Bearer "+call.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient().Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Op: "graph " + string(call.Action), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	limited := io.LimitReader(resp.Body, maxResponseBytes)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		text, _ := io.ReadAll(limited)
		return nil, &domain.RemoteAPIError{StatusCode: resp.StatusCode, Body: string(text)}
	}

	if !rt.returnsPayload {
		_, _ = io.Copy(io.Discard, limited)
		return nil, nil
	}

	var payload any
	if err := json.NewDecoder(limited).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, &domain.UnexpectedError{Err: fmt.Errorf("decode %s response: %w", call.Action, err)}
	}
	return payload, nil
}

func (g Gateway) endpoint(path string) (string, error) {
	base := g.BaseURL
	if base == "" {
		base = DefaultAPIBaseURL
	}
	if err := checkBaseURL(base); err != nil {
		return "", err
	}
	return strings.TrimRight(base, "/") + path, nil
}

func (g Gateway) httpClient() *http.Client {
	if g.HTTPClient != nil {
		return g.HTTPClient
	}
	return http.DefaultClient
}

func missingCallFields(call domain.GatewayCall) []string {
	var missing []string
	if call.Token == "" {
		missing = append(missing, "token")
	}
	if call.UserID == "" {
		missing = append(missing, "userObjectId")
	}
	if call.Action == "" {
		missing = append(missing, "action")
	}
	return missing
}
