// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stackapi

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingURL indicates no instance URL was configured.
	ErrMissingURL = errors.New("missing instance URL")

	// ErrMissingToken indicates a hosted instance was configured without an
	// API access token.
	ErrMissingToken = errors.New("missing API token (required for stackoverflowteams.com instances)")

	// ErrMissingKey indicates a self-managed instance was configured without
	// an API key.
	ErrMissingKey = errors.New("missing API key (required for Enterprise instances)")

	// ErrMissingTeam indicates a hosted URL without a /c/<team> path.
	ErrMissingTeam = errors.New("missing team name in URL (expected https://stackoverflowteams.com/c/TEAM-NAME)")

	// ErrConnection indicates the connectivity test against the API failed.
	ErrConnection = errors.New("unable to connect to API")

	// ErrUnauthorized indicates the API rejected the supplied credentials.
	ErrUnauthorized = errors.New("API credentials rejected")
)

// APIError is returned for any non-200 API response. It keeps the raw body
// and request URL so the caller can print a full diagnostic.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string

	// ErrorID, ErrorName and ErrorMessage come from the API error wrapper
	// when the body could be decoded.
	ErrorID      int
	ErrorName    string
	ErrorMessage string

	// Err is an optional sentinel describing the failing stage.
	Err error
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s failed with status code %d", e.Method, e.URL, e.StatusCode)
	if e.ErrorName != "" {
		fmt.Fprintf(&b, " (%s", e.ErrorName)
		if e.ErrorMessage != "" {
			fmt.Fprintf(&b, ": %s", e.ErrorMessage)
		}
		b.WriteString(")")
	} else if e.Body != "" {
		fmt.Fprintf(&b, ": %s", strings.TrimSpace(e.Body))
	}
	return b.String()
}

// Unwrap exposes the stage sentinel and ErrUnauthorized for credential
// failures so callers can match with errors.Is.
func (e *APIError) Unwrap() []error {
	var errs []error
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.isAuthFailure() {
		errs = append(errs, ErrUnauthorized)
	}
	return errs
}

// isAuthFailure reports 401/403 HTTP statuses and the API's own
// authentication error ids (access_token_required, invalid_access_token,
// access_denied, access_token_compromised, key_required). The API reports
// most of these with HTTP 400.
func (e *APIError) isAuthFailure() bool {
	switch e.StatusCode {
	case 401, 403:
		return true
	}
	switch e.ErrorID {
	case 401, 402, 403, 405, 406:
		return true
	}
	return false
}
