package graph

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquirerEmptySecretFailsWithoutNetworkCall(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	acquirer := Acquirer{LoginBaseURL: server.URL, HTTPClient: server.Client()}

	_, err := acquirer.AcquireToken(context.Background(), domain.Credentials{TenantID: "tenant", AppID: "app"})

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, []string{"appSecret"}, validation.Fields)
	assert.Zero(t, calls.Load())
}

func TestAcquirerSendsClientCredentialsForm(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var gotPath string
	var gotForm url.Values
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotForm, _ = url.ParseQuery(string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"abc","token_type":"Bearer","expires_in":3599}`))
	}))
	defer server.Close()

	acquirer := Acquirer{LoginBaseURL: server.URL, HTTPClient: server.Client()}

	token, err := acquirer.AcquireToken(context.Background(), domain.Credentials{
		TenantID:  "contoso.onmicrosoft.com",
		AppID:     "app-id",
		AppSecret: "app-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "/contoso.onmicrosoft.com/oauth2/v2.0/token", gotPath)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "client_credentials", gotForm.Get("grant_type"))
	assert.Equal(t, "app-id", gotForm.Get("client_id"))
	assert.Equal(t, "app-secret", gotForm.Get("client_secret"))
	assert.Equal(t, DefaultScope, gotForm.Get("scope"))
}

func TestAcquirerMapsProviderRejectionToRemoteAuthError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"AADSTS7000215: Invalid client secret provided."}`))
	}))
	defer server.Close()

	acquirer := Acquirer{LoginBaseURL: server.URL, HTTPClient: server.Client()}

	_, err := acquirer.AcquireToken(context.Background(), domain.Credentials{TenantID: "t", AppID: "a", AppSecret: "wrong"})

	var authErr *domain.RemoteAuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
	assert.Contains(t, authErr.Body, "invalid_client")
	assert.Contains(t, err.Error(), "OAuth error: 401")
}

func TestAcquirerMapsTransportFailureToNetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	acquirer := Acquirer{LoginBaseURL: baseURL}

	_, err := acquirer.AcquireToken(context.Background(), domain.Credentials{TenantID: "t", AppID: "a", AppSecret: "s"})

	var netErr *domain.NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestAcquirerRejectsBadBaseURL(t *testing.T) {
	t.Parallel()

	acquirer := Acquirer{LoginBaseURL: "ftp://login.example"}

	_, err := acquirer.AcquireToken(context.Background(), domain.Credentials{TenantID: "t", AppID: "a", AppSecret: "s"})

	var unexpected *domain.UnexpectedError
	require.ErrorAs(t, err, &unexpected)
}

func TestClassifyTokenErrorFallsBackToUnexpected(t *testing.T) {
	t.Parallel()

	err := classifyTokenError(errors.New("oauth2: server response missing access_token"))

	var unexpected *domain.UnexpectedError
	require.ErrorAs(t, err, &unexpected)
}
