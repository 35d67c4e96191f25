package graph

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/bnema/graph-presence-cli/internal/ports"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	DefaultLoginBaseURL = "https://login.microsoftonline.com"
	DefaultScope        = "https://graph.microsoft.com/.default"
)

// Acquirer requests app-only tokens with the client-credentials grant.
type Acquirer struct {
	LoginBaseURL string
	Scope        string
	HTTPClient   *http.Client
}

var _ ports.TokenAcquirer = Acquirer{}

func (a Acquirer) AcquireToken(ctx context.Context, creds domain.Credentials) (string, error) {
	if err := creds.Validate(); err != nil {
		return "", err
	}

	tokenURL, err := a.tokenURL(creds.TenantID)
	if err != nil {
		return "", &domain.UnexpectedError{Err: err}
	}

	cfg := clientcredentials.Config{
		ClientID:     creds.AppID,
		ClientSecret: creds.AppSecret,
		TokenURL:     tokenURL,
		Scopes:       []string{a.scope()},
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	token, err := cfg.Token(context.WithValue(ctx, oauth2.HTTPClient, a.httpClient()))
	if err != nil {
		return "", classifyTokenError(err)
	}

	return token.AccessToken, nil
}

func (a Acquirer) tokenURL(tenantID string) (string, error) {
	base := a.LoginBaseURL
	if base == "" {
		base = DefaultLoginBaseURL
	}
	if err := checkBaseURL(base); err != nil {
		return "", err
	}

	return strings.TrimRight(base, "/") + "/" + url.PathEscape(tenantID) + "/oauth2/v2.0/token", nil
}

func (a Acquirer) scope() string {
	if a.Scope != "" {
		return a.Scope
	}
	return DefaultScope
}

func (a Acquirer) httpClient() *http.Client {
	if a.HTTPClient != nil {
		return a.HTTPClient
	}
	return http.DefaultClient
}

func classifyTokenError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		return &domain.RemoteAuthError{
			StatusCode: retrieveErr.Response.StatusCode,
			Body:       string(retrieveErr.Body),
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &domain.NetworkError{Op: "request token", Err: err}
	}

	return &domain.UnexpectedError{Err: fmt.Errorf("request token: %w", err)}
}

func checkBaseURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("base url must use http or https")
	}
	if parsed.Host == "" {
		return errors.New("base url host is required")
	}
	return nil
}
