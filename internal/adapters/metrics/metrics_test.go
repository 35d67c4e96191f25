package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportCountsUpstreamCalls(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer upstream.Close()

	m := New()
	client := &http.Client{Transport: m.Transport(UpstreamGraph, nil)}

	resp, err := client.Get(upstream.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues(UpstreamGraph, "418", "get")))
}

func TestObserveRequestAndPresenceAction(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveRequest("/api/presence", http.StatusBadRequest, time.Now())
	m.ObservePresenceAction("getPresence", http.StatusOK)
	m.ObservePresenceAction("setPresence", http.StatusForbidden)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.APIRequests.WithLabelValues("/api/presence", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PresenceActions.WithLabelValues("getPresence", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PresenceActions.WithLabelValues("setPresence", "error")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObservePresenceAction("getUser", http.StatusOK)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(string(body), `gp_presence_actions_total{action="getUser",outcome="success"} 1`))
}
