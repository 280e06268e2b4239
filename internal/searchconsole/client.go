package searchconsole

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/searchconsole-cli/internal/logger"
)

const (
	// WebmastersBaseURL is the Webmasters API v3 endpoint.
	WebmastersBaseURL = "https://www.googleapis.com/webmasters/v3"

	// SearchConsoleBaseURL is the Search Console API v1 endpoint.
	SearchConsoleBaseURL = "https://searchconsole.googleapis.com/v1"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Credentials holds the secrets returned by a CredentialsProvider.
type Credentials struct {
	// APIKey is the Google API key sent as the `key` query parameter.
	APIKey string
}

// CredentialsProvider supplies API credentials at call time.
// Implementations may read from flags, the environment or a config store.
// The client never caches what a provider returns.
type CredentialsProvider interface {
	Credentials(ctx context.Context) (Credentials, error)
}

// Client is a thin facade over the Search Console REST APIs.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	creds      CredentialsProvider

	webmastersBase    string
	searchConsoleBase string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithBaseURLs overrides the two API base URLs. Used by tests to point the
// client at a local server.
func WithBaseURLs(webmasters, searchConsole string) Option {
	return func(c *Client) {
		if webmasters != "" {
			c.webmastersBase = strings.TrimSuffix(webmasters, "/")
		}
		if searchConsole != "" {
			c.searchConsoleBase = strings.TrimSuffix(searchConsole, "/")
		}
	}
}

// New creates a Search Console client that authenticates with an API key
// obtained from creds on each call. A nil provider is allowed; requests
// are then sent unauthenticated and the remote service rejects them.
func New(creds CredentialsProvider, opts ...Option) *Client {
	c := &Client{
		httpClient:        &http.Client{Timeout: DefaultTimeout},
		creds:             creds,
		webmastersBase:    WebmastersBaseURL,
		searchConsoleBase: SearchConsoleBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewWithTokenSource creates a client whose transport carries OAuth
// credentials from ts. No API key injection happens in this mode; the
// oauth2 transport owns authentication.
func NewWithTokenSource(ctx context.Context, ts oauth2.TokenSource, opts ...Option) *Client {
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout

	c := &Client{
		httpClient:        tc,
		webmastersBase:    WebmastersBaseURL,
		searchConsoleBase: SearchConsoleBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// escapePath percent-encodes a path segment with no characters treated as
// safe. Reserved characters such as '/' and ':' (both present in property
// URLs and sc-domain identifiers) are fully escaped, and space encodes as
// %20, never '+'.
func escapePath(segment string) string {
	return strings.ReplaceAll(url.QueryEscape(segment), "+", "%20")
}

// apiKeyParams returns a copy of params with the `key` credential added.
// The input is never mutated, and a caller-supplied `key` wins over the
// provider's. Credential failures are logged and the key is omitted; the
// remote service then answers with an authentication error, which is the
// intended failure mode.
func (c *Client) apiKeyParams(ctx context.Context, params url.Values) url.Values {
	out := make(url.Values, len(params)+1)
	for k, vs := range params {
		out[k] = append([]string(nil), vs...)
	}

	if c.creds == nil || out.Has("key") {
		return out
	}

	creds, err := c.creds.Credentials(ctx)
	if err != nil {
		logger.Debug("searchconsole: credentials unavailable, sending request without API key: %v", err)
		return out
	}
	if creds.APIKey == "" {
		logger.Debug("searchconsole: empty API key, sending request without it")
		return out
	}

	out.Set("key", creds.APIKey)
	return out
}

// do builds and executes one API request. path must already be
// percent-encoded. body, when non-nil, is marshalled as JSON; out, when
// non-nil, receives the decoded JSON response. Empty and no-content
// responses decode into nothing.
func (c *Client) do(ctx context.Context, method, base, path string, params url.Values, body, out any) error {
	endpoint := base + path
	if q := c.apiKeyParams(ctx, params); len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var payload io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	// Authentication travels in the query string; no Authorization or
	// other default headers are produced.
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	logger.Debug("searchconsole: %s %s%s [req %s]", method, base, path, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		logger.Debug("searchconsole: %s %s failed [req %s]: %v", method, path, requestID, err)
		return err
	}

	logger.Debug("searchconsole: %s %s -> %d [req %s]", method, path, resp.StatusCode, requestID)

	if out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// get issues a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, base, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, base, path, params, nil, out)
}

// post issues a POST request with a JSON body.
func (c *Client) post(ctx context.Context, base, path string, params url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, base, path, params, body, out)
}

// put issues a bodyless PUT request. The Search Console API uses PUT for
// its idempotent create-or-replace calls (sites.add, sitemaps.submit).
func (c *Client) put(ctx context.Context, base, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodPut, base, path, params, nil, out)
}

// delete issues a DELETE request. Success is a no-content response.
func (c *Client) delete(ctx context.Context, base, path string, params url.Values) error {
	return c.do(ctx, http.MethodDelete, base, path, params, nil, nil)
}
