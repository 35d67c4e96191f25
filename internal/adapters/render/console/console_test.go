package console

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/graph-presence-cli/internal/application"
	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmptyState(t *testing.T) {
	output, err := Render(application.State{ExpirationDuration: "PT5M"}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Graph Presence")
	assert.Contains(t, output, "no token")
	assert.Contains(t, output, "tenant id: (not set)")
	assert.Contains(t, output, "session presence: Available for PT5M")
	assert.Contains(t, output, "preferred presence: Available")
	assert.Contains(t, output, "No user or presence loaded.")
}

func TestRenderLoadedStateMasksSecretAndToken(t *testing.T) {
	state := application.State{
		TenantID:        "tenant-1",
		AppID:           "app-1",
		AppSecret:       "super-secret-value",
		UserObjectID:    "user-1",
		Token:           "eyJ.secret.token",
		SessionOption:   2,
		PreferredOption: 5,
		User:            &domain.User{ID: "user-1", DisplayName: "Ada Lovelace", UserPrincipalName: "ada@contoso.com", JobTitle: "Engineer"},
		Presence: &domain.Presence{
			Availability:  domain.AvailabilityDoNotDisturb,
			Activity:      "Presenting",
			StatusMessage: &domain.StatusMessage{Content: "Heads down"},
		},
	}

	output, err := Render(state, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "token acquired")
	assert.Contains(t, output, "app secret: ********")
	assert.NotContains(t, output, "super-secret-value")
	assert.NotContains(t, output, "eyJ.secret.token")
	assert.Contains(t, output, "Busy / InAConferenceCall")
	assert.Contains(t, output, "Offline / OffWork")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "job title: Engineer")
	assert.Contains(t, output, "⊘ DoNotDisturb")
	assert.Contains(t, output, "status: Heads down")
}

func TestRenderShowToken(t *testing.T) {
	output, err := Render(application.State{Token: "raw-token"}, RenderOptions{ShowToken: true})

	require.NoError(t, err)
	assert.Contains(t, output, "token: raw-token")
}

func TestRenderLogs(t *testing.T) {
	assert.Contains(t, RenderLogs(nil, LogOptions{}), "No API calls logged yet")

	entries := []domain.APILogEntry{
		{
			ID:        "2",
			Timestamp: time.Date(2026, 3, 1, 10, 0, 2, 0, time.UTC),
			Method:    "POST",
			Endpoint:  "/api/presence (getPresence)",
			Request:   map[string]any{"token": domain.RedactionMarker, "action": "getPresence"},
			Response:  map[string]any{"error": "Graph API Error: 403 - denied"},
			Status:    domain.LogStatusError,
			Duration:  42 * time.Millisecond,
		},
		{
			ID:        "1",
			Timestamp: time.Date(2026, 3, 1, 10, 0, 1, 0, time.UTC),
			Method:    "POST",
			Endpoint:  "/api/token",
			Status:    domain.LogStatusSuccess,
			Duration:  120 * time.Millisecond,
		},
	}

	summary := RenderLogs(entries, LogOptions{})
	assert.Contains(t, summary, "API log (2)")
	assert.Contains(t, summary, "/api/presence (getPresence)")
	assert.Contains(t, summary, "42ms")
	assert.Contains(t, summary, "success")
	assert.NotContains(t, summary, "Graph API Error")

	detail := RenderLogs(entries, LogOptions{Detail: true})
	assert.Contains(t, detail, domain.RedactionMarker)
	assert.Contains(t, detail, "Graph API Error")
}

func TestRenderPresenceOptionsMarksSelection(t *testing.T) {
	output := RenderPresenceOptions("Session presence", domain.SessionPresenceOptions, 1)

	assert.Contains(t, output, "Session presence")
	assert.Contains(t, output, "1*")
	assert.Contains(t, output, "InAConferenceCall")
	assert.NotContains(t, output, "0*")
}

func TestNotifierWritesOneLinePerNotification(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier(&buf)

	n.Notify(domain.Notification{Title: "Success", Description: "App token acquired successfully"})
	n.Notify(domain.Notification{Title: "Error", Description: "Please provide a user object ID", Variant: domain.NotificationDestructive})

	assert.Contains(t, buf.String(), "Success App token acquired successfully\n")
	assert.Contains(t, buf.String(), "Error Please provide a user object ID\n")
}

func TestRunWithSpinnerReturnsActionError(t *testing.T) {
	var out bytes.Buffer
	wantErr := errors.New("boom")

	err := RunWithSpinner(context.Background(), &out, "Fetching presence...", func(context.Context) error {
		time.Sleep(200 * time.Millisecond)
		return wantErr
	})

	require.ErrorIs(t, err, wantErr)
	assert.Contains(t, out.String(), "Fetching presence...")
}
