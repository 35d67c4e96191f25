package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/bnema/graph-presence-cli/internal/adapters/apiclient"
	"github.com/bnema/graph-presence-cli/internal/adapters/graph"
	"github.com/bnema/graph-presence-cli/internal/adapters/render/console"
	"github.com/bnema/graph-presence-cli/internal/adapters/store/memory"
	"github.com/bnema/graph-presence-cli/internal/application"
	"github.com/bnema/graph-presence-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell(t *testing.T, f *fakeGraph) (*shell, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	endpoints := application.NewEndpoints(graph.Acquirer{LoginBaseURL: f.URL}, graph.Gateway{BaseURL: f.URL})
	clock := ports.SystemClock{}
	controller := application.NewController(
		apiclient.NewLocal(endpoints),
		application.NewSessionStore(memory.NewStore(), memory.NewStore()),
		application.NewLogbook(clock),
		console.NewNotifier(out),
		clock,
	)

	return &shell{
		controller: controller,
		out:        out,
		readSecret: func() (string, error) { return "s3cr3t", nil },
	}, out
}

func TestShellFullSession(t *testing.T) {
	f := newFakeGraph(t)
	sh, out := newTestShell(t, f)
	ctx := context.Background()

	for _, line := range []string{
		"set tenant tenant-1",
		"set app app-1",
		"set secret",
		"set user user-1",
		"token",
	} {
		require.NoError(t, sh.exec(ctx, line), line)
	}

	state := sh.controller.Snapshot()
	assert.Equal(t, "s3cr3t", state.AppSecret)
	assert.Equal(t, f.token, state.Token)
	require.NotNil(t, state.User)
	assert.Equal(t, "Ada Lovelace", state.User.DisplayName)
	require.NotNil(t, state.Presence)
	assert.Equal(t, "InACall", state.Presence.Activity)
	assert.Contains(t, out.String(), "Token acquired and user data retrieved")

	out.Reset()
	require.NoError(t, sh.exec(ctx, "session 3"))
	require.NoError(t, sh.exec(ctx, "set-presence"))
	call, ok := f.find("/users/user-1/presence/setPresence")
	require.True(t, ok)
	assert.Equal(t, "Away", call.Body["availability"])
	assert.Equal(t, "PT5M", call.Body["expirationDuration"])

	out.Reset()
	require.NoError(t, sh.exec(ctx, "logs"))
	assert.Contains(t, out.String(), "/api/presence (setPresence)")
	assert.NotContains(t, out.String(), f.token)
}

func TestShellReportsInputErrors(t *testing.T) {
	f := newFakeGraph(t)
	sh, out := newTestShell(t, f)
	ctx := context.Background()

	assert.ErrorContains(t, sh.exec(ctx, "session x"), "not a number")
	assert.ErrorContains(t, sh.exec(ctx, "preferred 42"), "preferred presence option must be between 0 and 5")
	assert.ErrorContains(t, sh.exec(ctx, "set colour blue"), "unknown field")
	assert.ErrorContains(t, sh.exec(ctx, "frobnicate"), "unknown command")
	assert.ErrorIs(t, sh.exec(ctx, "exit"), errExit)

	require.NoError(t, sh.exec(ctx, "presence"))
	assert.Contains(t, out.String(), "Please provide a user object ID")
	assert.Empty(t, f.recorded())
}

func TestHoldsSecret(t *testing.T) {
	assert.True(t, holdsSecret("set secret hunter2"))
	assert.False(t, holdsSecret("set secret"))
	assert.False(t, holdsSecret("set tenant t"))
}
