package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEndpoints struct {
	token    domain.APIResponse
	presence domain.APIResponse
	gotReq   domain.PresenceRequest
}

func (s *stubEndpoints) Token(context.Context, domain.TokenRequest) domain.APIResponse {
	return s.token
}

func (s *stubEndpoints) Presence(_ context.Context, req domain.PresenceRequest) domain.APIResponse {
	s.gotReq = req
	return s.presence
}

func TestLocalPassesResponsesThrough(t *testing.T) {
	t.Parallel()

	stub := &stubEndpoints{
		token:    domain.APIResponse{StatusCode: http.StatusBadRequest, Body: map[string]any{"error": "Missing required parameters"}},
		presence: domain.APIResponse{StatusCode: http.StatusOK, Body: map[string]any{"success": true}},
	}
	local := NewLocal(stub)

	resp, err := local.Token(context.Background(), domain.TokenRequest{})
	require.NoError(t, err)
	assert.Equal(t, stub.token, resp)

	resp, err = local.Presence(context.Background(), domain.PresenceRequest{Token: "t", UserObjectID: "u", Action: "clearPresence"})
	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, "clearPresence", stub.gotReq.Action)
}

func TestRemotePostsJSONAndDecodesReply(t *testing.T) {
	t.Parallel()

	type received struct {
		path        string
		contentType string
		body        map[string]any
	}
	got := make(chan received, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := received{path: r.URL.Path, contentType: r.Header.Get("Content-Type")}
		_ = json.NewDecoder(r.Body).Decode(&rec.body)
		got <- rec
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"OAuth error: 401 invalid_client"}`))
	}))
	t.Cleanup(srv.Close)

	remote := NewRemote(srv.URL+"/", srv.Client())
	resp, err := remote.Token(context.Background(), domain.TokenRequest{TenantID: "t", AppID: "a", AppSecret: "s"})

	require.NoError(t, err)
	rec := <-got
	assert.Equal(t, "/api/token", rec.path)
	assert.Equal(t, "application/json", rec.contentType)
	assert.Equal(t, map[string]any{"tenantId": "t", "appId": "a", "appSecret": "s"}, rec.body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "OAuth error: 401 invalid_client", resp.ErrorMessage())
}

func TestRemoteTransportFailureIsNetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewRemote(url, nil).Presence(context.Background(), domain.PresenceRequest{Token: "t", UserObjectID: "u", Action: "getPresence"})

	var netErr *domain.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "POST /api/presence", netErr.Op)
}

func TestRemoteUndecodableReplyIsUnexpected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>proxy error</html>"))
	}))
	t.Cleanup(srv.Close)

	_, err := NewRemote(srv.URL, srv.Client()).Presence(context.Background(), domain.PresenceRequest{})

	var unexpected *domain.UnexpectedError
	require.ErrorAs(t, err, &unexpected)
}
