// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stackapi is a client for the Stack Overflow for Teams API v2.3.
// It detects the instance type from the URL, authenticates with a static
// token or key, verifies connectivity (falling back to unverified TLS once
// if needed), creates response filters and pages through questions and
// articles while obeying server backoff hints.
package stackapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/so4t-csv-connector/internal/httputil"
	"github.com/pdiddy/so4t-csv-connector/pkg/types"
)

// teamsAPIBase is the API root for hosted (stackoverflowteams.com)
// instances. Declared as a var so tests can substitute an httptest server.
var teamsAPIBase = "https://api.stackoverflowteams.com/2.3"

const (
	hostedDomain = "stackoverflowteams.com"
	apiPath      = "/api/2.3"

	tokenHeader = "X-API-Access-Token"
	keyHeader   = "X-API-Key"

	// PageSize is the number of items requested per page. 100 is the API
	// maximum.
	PageSize = 100
)

// Instance identifies how a Stack Overflow for Teams site is hosted.
type Instance string

const (
	// InstanceHosted is a Basic or Business team on stackoverflowteams.com.
	InstanceHosted Instance = "hosted"
	// InstanceSelfManaged is an Enterprise site on its own domain.
	InstanceSelfManaged Instance = "self-managed"
)

// DetectInstance classifies rawURL and, for hosted teams, extracts the
// team slug from the /c/<team> path segment.
func DetectInstance(rawURL string) (Instance, string) {
	if !strings.Contains(rawURL, hostedDomain) {
		return InstanceSelfManaged, ""
	}
	_, rest, found := strings.Cut(rawURL, "/c/")
	if !found {
		return InstanceHosted, ""
	}
	slug, _, _ := strings.Cut(rest, "/")
	return InstanceHosted, strings.TrimSpace(slug)
}

// Client talks to one Stack Overflow for Teams instance. It is not safe
// for concurrent use.
type Client struct {
	http      *http.Client
	instance  Instance
	apiBase   string
	teamSlug  string
	header    string
	secret    string
	userAgent string
	insecure  bool
	w         io.Writer

	// wait pauses for a server backoff hint. Tests replace it to observe
	// the requested delay without sleeping.
	wait func(ctx context.Context, seconds int) error
}

// NewClient validates cfg and builds a client without touching the
// network. It fails fast when the URL or the credential required by the
// detected instance type is missing. Progress lines go to w.
func NewClient(httpClient *http.Client, cfg types.ClientConfig, w io.Writer) (*Client, error) {
	rawURL := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if rawURL == "" {
		return nil, ErrMissingURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if w == nil {
		w = io.Discard
	}

	c := &Client{
		http:      httpClient,
		userAgent: cfg.UserAgent,
		w:         w,
		wait:      httputil.WaitBackoff,
	}

	instance, slug := DetectInstance(rawURL)
	c.instance = instance
	switch instance {
	case InstanceHosted:
		if slug == "" {
			return nil, ErrMissingTeam
		}
		if cfg.Token == "" {
			return nil, ErrMissingToken
		}
		c.apiBase = teamsAPIBase
		c.teamSlug = slug
		c.header = tokenHeader
		c.secret = cfg.Token
	default:
		if cfg.Key == "" {
			return nil, ErrMissingKey
		}
		c.apiBase = rawURL + apiPath
		c.header = keyHeader
		c.secret = cfg.Key
	}

	return c, nil
}

// Connect builds a client with NewClient and verifies connectivity with
// TestConnection before returning it.
func Connect(ctx context.Context, httpClient *http.Client, cfg types.ClientConfig, w io.Writer) (*Client, error) {
	c, err := NewClient(httpClient, cfg, w)
	if err != nil {
		return nil, err
	}
	if err := c.TestConnection(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Instance returns the detected instance type.
func (c *Client) Instance() Instance { return c.instance }

// APIBase returns the API root the client sends requests to.
func (c *Client) APIBase() string { return c.apiBase }

// Insecure reports whether TLS certificate verification was disabled
// after a failed connection test.
func (c *Client) Insecure() bool { return c.insecure }

// TestConnection calls the lightweight /tags endpoint. If the request
// fails with a TLS error, it retries once with certificate verification
// disabled and keeps that setting for every later call.
func (c *Client) TestConnection(ctx context.Context) error {
	fmt.Fprintln(c.w, "Testing API 2.3 connection...")

	req, err := c.newRequest(ctx, "/tags", url.Values{})
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil && !c.insecure && httputil.IsTLSError(err) {
		fmt.Fprintln(c.w, "SSL error. Trying again without SSL verification...")
		c.http = httputil.WithoutVerification(c.http)
		c.insecure = true
		resp, err = c.http.Do(req.Clone(ctx))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := newAPIError(req, resp)
		apiErr.Err = ErrConnection
		return apiErr
	}

	io.Copy(io.Discard, resp.Body)
	fmt.Fprintln(c.w, "API connection successful")
	return nil
}

// newRequest builds a GET for endpoint with params, adding the team slug
// on hosted instances and the auth and User-Agent headers.
func (c *Client) newRequest(ctx context.Context, endpoint string, params url.Values) (*http.Request, error) {
	if c.teamSlug != "" {
		params.Set("team", c.teamSlug)
	}

	reqURL := c.apiBase + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set(c.header, c.secret)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return req, nil
}

// apiErrorBody is the API error wrapper returned with non-200 responses.
type apiErrorBody struct {
	ErrorID      int    `json:"error_id"`
	ErrorName    string `json:"error_name"`
	ErrorMessage string `json:"error_message"`
}

// newAPIError drains resp and builds an *APIError describing it.
func newAPIError(req *http.Request, resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	apiErr := &APIError{
		Method:     req.Method,
		URL:        req.URL.String(),
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}

	var eb apiErrorBody
	if json.Unmarshal(body, &eb) == nil {
		apiErr.ErrorID = eb.ErrorID
		apiErr.ErrorName = eb.ErrorName
		apiErr.ErrorMessage = eb.ErrorMessage
	}
	return apiErr
}
