package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/bnema/graph-presence-cli/internal/ports"
)

const (
	endpointToken = "/api/token"

	msgNeedCredentials = "Please provide tenant ID, app ID, and app secret"
	msgNeedToken       = "Please acquire an app token first"
	msgNeedUser        = "Please provide a user object ID"
)

// State is the operator-facing state. Snapshot returns an independent copy.
type State struct {
	TenantID     string
	AppID        string
	AppSecret    string
	UserObjectID string

	Token    string
	User     *domain.User
	Presence *domain.Presence

	SessionOption      int
	ExpirationDuration string
	PreferredOption    int

	Busy bool
}

func (s State) Credentials() domain.Credentials {
	return domain.Credentials{TenantID: s.TenantID, AppID: s.AppID, AppSecret: s.AppSecret}
}

func (s State) clone() State {
	out := s
	if s.User != nil {
		user := *s.User
		out.User = &user
	}
	if s.Presence != nil {
		presence := *s.Presence
		if s.Presence.StatusMessage != nil {
			message := *s.Presence.StatusMessage
			presence.StatusMessage = &message
		}
		out.Presence = &presence
	}
	return out
}

// Controller owns the operator state and runs one action sequence at a time.
// A second action started while one is running fails with domain.ErrBusy.
type Controller struct {
	mu    sync.Mutex
	state State

	api      ports.PresenceAPI
	store    *SessionStore
	logs     *Logbook
	notifier ports.Notifier
	clock    ports.Clock
}

func NewController(api ports.PresenceAPI, store *SessionStore, logs *Logbook, notifier ports.Notifier, clock ports.Clock) *Controller {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logs == nil {
		logs = NewLogbook(clock)
	}
	if notifier == nil {
		notifier = discardNotifier{}
	}

	return &Controller{
		state:    State{ExpirationDuration: domain.DefaultExpirationDuration},
		api:      api,
		store:    store,
		logs:     logs,
		notifier: notifier,
		clock:    clock,
	}
}

// Load restores stored operator input.
func (c *Controller) Load(ctx context.Context) error {
	fields, err := c.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load stored fields: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.TenantID = fields.TenantID
	c.state.AppID = fields.AppID
	c.state.AppSecret = fields.AppSecret
	c.state.UserObjectID = fields.UserObjectID
	return nil
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

func (c *Controller) Logs() []domain.APILogEntry {
	return c.logs.Entries()
}

func (c *Controller) SetTenantID(ctx context.Context, value string) error {
	c.mu.Lock()
	c.state.TenantID = value
	c.mu.Unlock()
	return c.store.SetTenantID(ctx, value)
}

func (c *Controller) SetAppID(ctx context.Context, value string) error {
	c.mu.Lock()
	c.state.AppID = value
	c.mu.Unlock()
	return c.store.SetAppID(ctx, value)
}

func (c *Controller) SetAppSecret(ctx context.Context, value string) error {
	c.mu.Lock()
	c.state.AppSecret = value
	c.mu.Unlock()
	return c.store.SetAppSecret(ctx, value)
}

func (c *Controller) SetUserObjectID(ctx context.Context, value string) error {
	c.mu.Lock()
	c.state.UserObjectID = value
	c.mu.Unlock()
	return c.store.SetUserObjectID(ctx, value)
}

func (c *Controller) SelectSessionPresence(index int) error {
	if index < 0 || index >= len(domain.SessionPresenceOptions) {
		return &domain.ValidationError{
			Fields:  []string{"sessionPresence"},
			Message: fmt.Sprintf("session presence option must be between 0 and %d", len(domain.SessionPresenceOptions)-1),
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SessionOption = index
	return nil
}

func (c *Controller) SelectPreferredPresence(index int) error {
	if index < 0 || index >= len(domain.PreferredPresenceOptions) {
		return &domain.ValidationError{
			Fields:  []string{"preferredPresence"},
			Message: fmt.Sprintf("preferred presence option must be between 0 and %d", len(domain.PreferredPresenceOptions)-1),
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.PreferredOption = index
	return nil
}

// SetExpirationDuration stores the ISO-8601 duration passed to setPresence.
// The remote service validates it.
func (c *Controller) SetExpirationDuration(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.ExpirationDuration = value
}

// ClearStoredData removes every stored field and resets the in-memory
// credentials, token, user and presence together.
func (c *Controller) ClearStoredData(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	err := c.store.Clear(ctx)

	c.mu.Lock()
	c.state.TenantID = ""
	c.state.AppID = ""
	c.state.AppSecret = ""
	c.state.UserObjectID = ""
	c.state.Token = ""
	c.state.User = nil
	c.state.Presence = nil
	c.mu.Unlock()

	if err != nil {
		c.notifyError("Error", err.Error())
		return fmt.Errorf("clear stored data: %w", err)
	}
	c.notify("Success", "All stored authentication data has been cleared")
	return nil
}

func (c *Controller) ClearLogs() {
	c.logs.Clear()
	c.notify("Success", "API logs cleared")
}

// GetToken acquires a token. When a user id is already known it then looks
// the user up and fetches presence with the new token.
func (c *Controller) GetToken(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	return c.acquireToken(ctx, true)
}

// EnsureToken acquires a token only when none is held, without follow-up calls.
func (c *Controller) EnsureToken(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	if c.Snapshot().Token != "" {
		return nil
	}
	return c.acquireToken(ctx, false)
}

func (c *Controller) WhoAmI(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	if err := c.requireUser(); err != nil {
		return err
	}

	payload, err := c.call(ctx, domain.ActionGetUser, nil, "")
	if err != nil {
		return err
	}
	if user, ok := domain.UserFromPayload(payload); ok {
		c.mu.Lock()
		c.state.User = &user
		c.mu.Unlock()
	}
	c.notify("Success", "User information retrieved successfully")
	return nil
}

func (c *Controller) GetPresence(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	if err := c.requireUser(); err != nil {
		return err
	}
	return c.fetchPresence(ctx, "", true)
}

func (c *Controller) SetSessionPresence(ctx context.Context) error {
	snapshot := c.Snapshot()
	option := domain.SessionPresenceOptions[snapshot.SessionOption]
	expiration := snapshot.ExpirationDuration
	if expiration == "" {
		expiration = domain.DefaultExpirationDuration
	}

	return c.mutate(ctx, domain.ActionSetPresence, map[string]any{
		"sessionId":          snapshot.AppID,
		"availability":       string(option.Availability),
		"activity":           option.Activity,
		"expirationDuration": expiration,
	}, "User presence set successfully")
}

func (c *Controller) ClearSessionPresence(ctx context.Context) error {
	return c.mutate(ctx, domain.ActionClearPresence, map[string]any{
		"sessionId": c.Snapshot().AppID,
	}, "User presence cleared successfully")
}

func (c *Controller) SetPreferredPresence(ctx context.Context) error {
	option := domain.PreferredPresenceOptions[c.Snapshot().PreferredOption]

	return c.mutate(ctx, domain.ActionSetUserPreferredPresence, map[string]any{
		"availability": string(option.Availability),
		"activity":     option.Activity,
	}, "User preferred presence set successfully")
}

func (c *Controller) ClearPreferredPresence(ctx context.Context) error {
	return c.mutate(ctx, domain.ActionClearUserPreferredPresence, nil, "User preferred presence cleared successfully")
}

// mutate runs a presence mutation and, on success, re-fetches presence
// before the action is considered finished.
func (c *Controller) mutate(ctx context.Context, action domain.Action, body any, successMessage string) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	if err := c.requireUser(); err != nil {
		return err
	}

	if _, err := c.call(ctx, action, body, ""); err != nil {
		return err
	}
	c.notify("Success", successMessage)

	return c.fetchPresence(ctx, "", true)
}

func (c *Controller) acquireToken(ctx context.Context, chain bool) error {
	snapshot := c.Snapshot()
	creds := snapshot.Credentials()
	if !creds.Complete() {
		c.notifyError("Error", msgNeedCredentials)
		return &domain.ValidationError{Message: msgNeedCredentials}
	}

	req := domain.TokenRequest{TenantID: creds.TenantID, AppID: creds.AppID, AppSecret: creds.AppSecret}
	start := c.clock.Now()
	resp, err := c.api.Token(ctx, req)
	duration := c.clock.Now().Sub(start)

	if err != nil {
		c.logs.Record(http.MethodPost, endpointToken,
			map[string]any{"tenantId": creds.TenantID, "appId": creds.AppID},
			map[string]any{"error": err.Error()}, domain.LogStatusError, duration)
		c.notifyError("Authentication Error", err.Error())
		return err
	}

	token := accessToken(resp.Body)
	if !resp.OK() || token == "" {
		c.logs.Record(http.MethodPost, endpointToken, req, resp.Body, domain.LogStatusError, duration)
		failure := responseFailure(resp, "Failed to acquire token")
		c.notifyError("Authentication Error", failure.Error())
		return failure
	}

	c.logs.Record(http.MethodPost, endpointToken, req, resp.Body, domain.LogStatusSuccess, duration)

	c.mu.Lock()
	c.state.Token = token
	c.mu.Unlock()
	c.notify("Success", "App token acquired successfully")

	if !chain || snapshot.UserObjectID == "" {
		return nil
	}

	// Follow-up failures are already logged and notified; the token stays.
	if payload, err := c.call(ctx, domain.ActionGetUser, nil, token); err == nil {
		if user, ok := domain.UserFromPayload(payload); ok {
			c.mu.Lock()
			c.state.User = &user
			c.mu.Unlock()
		}
	}
	_ = c.fetchPresence(ctx, token, false)

	c.notify("Complete", "Token acquired and user data retrieved")
	return nil
}

// fetchPresence loads presence for the current user. token overrides the
// held token when non-empty.
func (c *Controller) fetchPresence(ctx context.Context, token string, announce bool) error {
	userID := c.Snapshot().UserObjectID
	payload, err := c.call(ctx, domain.ActionGetPresence, map[string]any{"ids": []string{userID}}, token)
	if err != nil {
		return err
	}

	presence, ok := domain.FirstPresence(payload)
	if !ok {
		if announce {
			c.notifyError("Warning", "No presence data found for the specified user")
		}
		return nil
	}

	c.mu.Lock()
	c.state.Presence = &presence
	c.mu.Unlock()
	if announce {
		c.notify("Success", "Presence data retrieved successfully")
	}
	return nil
}

// call issues one presence request and records exactly one log entry.
func (c *Controller) call(ctx context.Context, action domain.Action, body any, token string) (any, error) {
	snapshot := c.Snapshot()
	if token == "" {
		token = snapshot.Token
	}
	if token == "" {
		c.notifyError("Error", msgNeedToken)
		return nil, &domain.ValidationError{Fields: []string{"token"}, Message: msgNeedToken}
	}
	if snapshot.UserObjectID == "" {
		c.notifyError("Error", msgNeedUser)
		return nil, &domain.ValidationError{Fields: []string{"userObjectId"}, Message: msgNeedUser}
	}

	req := domain.PresenceRequest{
		Token:        token,
		UserObjectID: snapshot.UserObjectID,
		Action:       string(action),
		Body:         body,
	}
	endpoint := fmt.Sprintf("/api/presence (%s)", action)

	start := c.clock.Now()
	resp, err := c.api.Presence(ctx, req)
	duration := c.clock.Now().Sub(start)

	if err != nil {
		c.logs.Record(http.MethodPost, endpoint,
			map[string]any{"action": string(action), "body": body},
			map[string]any{"error": err.Error()}, domain.LogStatusError, duration)
		c.notifyError("API Error", err.Error())
		return nil, err
	}

	if !resp.OK() {
		c.logs.Record(http.MethodPost, endpoint, req, resp.Body, domain.LogStatusError, duration)
		failure := responseFailure(resp, fmt.Sprintf("HTTP %d", resp.StatusCode))
		c.notifyError("API Error", failure.Error())
		return nil, failure
	}

	c.logs.Record(http.MethodPost, endpoint, req, resp.Body, domain.LogStatusSuccess, duration)
	return resp.Body, nil
}

func (c *Controller) requireUser() error {
	if c.Snapshot().UserObjectID == "" {
		c.notifyError("Error", msgNeedUser)
		return &domain.ValidationError{Fields: []string{"userObjectId"}, Message: msgNeedUser}
	}
	return nil
}

func (c *Controller) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Busy {
		return domain.ErrBusy
	}
	c.state.Busy = true
	return nil
}

func (c *Controller) end() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Busy = false
}

func (c *Controller) notify(title, description string) {
	c.notifier.Notify(domain.Notification{Title: title, Description: description, Variant: domain.NotificationDefault})
}

func (c *Controller) notifyError(title, description string) {
	c.notifier.Notify(domain.Notification{Title: title, Description: description, Variant: domain.NotificationDestructive})
}

// responseFailure turns a failed endpoint reply into the error an operator sees.
func responseFailure(resp domain.APIResponse, fallback string) error {
	message := resp.ErrorMessage()
	if message == "" {
		message = fallback
	}
	if resp.OK() {
		return &domain.UnexpectedError{Err: errors.New(message)}
	}
	return &RelayError{StatusCode: resp.StatusCode, Message: message}
}

// RelayError is a non-2xx reply from /api/token or /api/presence. Its text is
// the error message the endpoint returned.
type RelayError struct {
	StatusCode int
	Message    string
}

func (e *RelayError) Error() string {
	return e.Message
}

func accessToken(body any) string {
	if m, ok := body.(map[string]any); ok {
		if token, ok := m["access_token"].(string); ok {
			return token
		}
	}
	return ""
}

type discardNotifier struct{}

func (discardNotifier) Notify(domain.Notification) {}
