package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrBusy          = errors.New("another action is still running")
	ErrUnknownAction = errors.New("unknown action")
)

// ValidationError reports missing or malformed input. It is raised before any
// network call is made.
type ValidationError struct {
	Fields  []string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) > 0 {
		return "missing required fields: " + strings.Join(e.Fields, ", ")
	}
	return "invalid input"
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// RemoteAuthError is a non-2xx answer from the identity provider.
type RemoteAuthError struct {
	StatusCode int
	Body       string
}

func (e *RemoteAuthError) Error() string {
	return fmt.Sprintf("OAuth error: %d %s", e.StatusCode, e.Body)
}

// RemoteAPIError is a non-2xx answer from the presence API.
type RemoteAPIError struct {
	StatusCode int
	Body       string
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("Graph API Error: %d - %s", e.StatusCode, e.Body)
}

type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("network error: %v", e.Err)
	}
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected error: %v", e.Err)
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

// RemoteStatus returns the upstream status code carried by a remote error.
func RemoteStatus(err error) (int, bool) {
	var authErr *RemoteAuthError
	if errors.As(err, &authErr) {
		return authErr.StatusCode, true
	}
	var apiErr *RemoteAPIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}
	return 0, false
}
