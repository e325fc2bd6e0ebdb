// Package client executes GraphQL queries against the platform
// backend: marshal the request, attach the bearer token, retry
// transient failures, and hand back either typed results or an error.
// Everything downstream of it assumes pre-validated shapes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/seriv/go-xp-dashboard/internal/data/cache"
	"github.com/seriv/go-xp-dashboard/internal/util"
)

var (
	// ErrUnauthorized means the token was missing, expired or revoked.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrGraphQL wraps errors reported in the response errors array.
	ErrGraphQL = errors.New("graphql error")
)

const (
	defaultMaxRetries = 3
	defaultBackoff    = 500 * time.Millisecond
	requestTimeout    = 30 * time.Second
)

// Client is a GraphQL executor bound to one endpoint and one session.
type Client struct {
	httpClient *http.Client
	endpoint   string
	authHeader string
	maxRetries int
	responses  *cache.ResponseCache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, mainly for
// tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithResponseCache memoizes raw responses for serve mode.
func WithResponseCache(rc *cache.ResponseCache) Option {
	return func(c *Client) { c.responses = rc }
}

// WithMaxRetries bounds the retry loop for transient failures.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxRetries = n
		}
	}
}

// New creates a client for the endpoint using the given Authorization
// header value.
func New(endpoint, authHeader string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		endpoint:   endpoint,
		authHeader: authHeader,
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Execute runs a query and decodes the data payload into out. HTTP
// 401 maps to ErrUnauthorized so callers can prompt for a fresh login;
// server-side errors surface as ErrGraphQL. 5xx responses and network
// failures are retried with backoff up to the configured bound.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := sonic.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	key := cacheKey(body)
	if data, ok := c.responses.Get(key); ok {
		util.LogDebug("GraphQL response served from cache")
		return decode(data, out)
	}

	var respBody []byte
	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(defaultBackoff * time.Duration(attempt)):
			}
			util.LogDebugf("Retrying GraphQL request, attempt %d/%d", attempt+1, c.maxRetries)
		}

		respBody, lastErr = c.post(ctx, body)
		if lastErr == nil {
			break
		}
		if !retryable(lastErr) {
			return lastErr
		}
	}
	if lastErr != nil {
		return fmt.Errorf("request failed after %d attempts: %w", c.maxRetries, lastErr)
	}

	c.responses.Set(key, respBody)
	return decode(respBody, out)
}

// transientError marks failures worth retrying.
type transientError struct{ err error }

func (t *transientError) Error() string { return t.err.Error() }
func (t *transientError) Unwrap() error { return t.err }

func retryable(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

func (c *Client) post(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authHeader != "" {
		req.Header.Set("Authorization", c.authHeader)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &transientError{err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &transientError{err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode >= 500:
		return nil, &transientError{err: fmt.Errorf("server returned status %d", resp.StatusCode)}
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	return data, nil
}

func decode(data []byte, out any) error {
	var env envelope
	if err := sonic.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if len(env.Errors) > 0 {
		msgs := make([]string, 0, len(env.Errors))
		for _, e := range env.Errors {
			msgs = append(msgs, e.Message)
		}
		return fmt.Errorf("%w: %s", ErrGraphQL, strings.Join(msgs, "; "))
	}
	if out == nil {
		return nil
	}
	if err := sonic.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decoding data payload: %w", err)
	}
	return nil
}

// cacheKey fingerprints a request; the marshaled body already covers
// both query text and variables.
func cacheKey(body []byte) string {
	return string(body)
}
