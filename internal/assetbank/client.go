// Package assetbank provides a rate-limited, retrying client for the
// Asset Bank REST API.
//
// The API follows a resource-per-URL convention: list endpoints return
// arrays of links rather than embedded objects, so most catalog reads
// cost one extra fetch per item. All reads funnel through a single
// fetch primitive that joins relative paths to the configured host,
// waits for the rate limiter, and retries transient failures.
package assetbank

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/assetbridgeapp/assetbridge-server/internal/ratelimit"
)

const (
	// DefaultRateLimit is the published limit for shared Asset Bank
	// hosting, in requests per second. Dedicated hosting allows 15.
	DefaultRateLimit = 2

	// HTTP client settings
	defaultTimeout = 30 * time.Second
)

// Options configures a Client.
type Options struct {
	// APIHost is the Asset Bank instance base URL. A trailing slash is
	// stripped.
	APIHost string

	// AccessToken is the bearer token for all requests.
	AccessToken string

	// RateLimit is the outbound requests-per-second ceiling.
	// Non-positive values fall back to DefaultRateLimit.
	RateLimit int
}

// Client is a rate-limited Asset Bank API client. It holds no state
// beyond its configuration and limiter; all results are owned by the
// caller.
type Client struct {
	http    *http.Client
	limiter *ratelimit.Limiter
	logger  *slog.Logger
	host    string
	token   string

	// backoffBase is the first retry delay; shortened in tests.
	backoffBase time.Duration
}

// New creates a new Asset Bank client. Missing host or token is a
// configuration error and fails immediately, before any request is
// attempted.
func New(opts Options, logger *slog.Logger) (*Client, error) {
	if opts.APIHost == "" {
		return nil, ErrMissingHost
	}
	if opts.AccessToken == "" {
		return nil, ErrMissingToken
	}

	limit := opts.RateLimit
	if limit <= 0 {
		limit = DefaultRateLimit
	}

	return &Client{
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter:     ratelimit.New(limit, time.Second),
		logger:      logger,
		host:        strings.TrimSuffix(opts.APIHost, "/"),
		token:       opts.AccessToken,
		backoffBase: time.Second,
	}, nil
}

// get fetches a resource by relative path or absolute URL and returns
// the raw body. An empty URL short-circuits to nil without a request.
func (c *Client) get(ctx context.Context, apiURL string) ([]byte, error) {
	if apiURL == "" {
		return nil, nil
	}

	target := c.resolveURL(apiURL)

	return c.withRetry(ctx, target, func() ([]byte, error) {
		return c.doRequest(ctx, target)
	})
}

// resolveURL joins a relative path to the configured host. Absolute
// URLs pass through unchanged; asset records embed fully qualified
// links to content and list-value resources.
func (c *Client) resolveURL(apiURL string) string {
	if isAbsoluteURL(apiURL) {
		return apiURL
	}
	return c.host + apiURL
}

func isAbsoluteURL(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}

// doRequest executes a single rate-limited GET against the target URL.
func (c *Client) doRequest(ctx context.Context, target string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	c.logger.Debug("asset bank request", "url", target)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitError{URL: target}
	default:
		return nil, &APIError{StatusCode: resp.StatusCode, URL: target}
	}
}

// fetchJSON fetches a resource and decodes it into T. A 2xx response
// that fails to parse resolves to nil: the failure is logged and
// callers must treat nil as "no usable payload", not as an error.
func fetchJSON[T any](ctx context.Context, c *Client, apiURL string) (*T, error) {
	body, err := c.get(ctx, apiURL)
	if err != nil || body == nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		c.logger.Warn("discarding unparsable response", "url", apiURL, "error", err)
		return nil, nil
	}

	return &out, nil
}

// GetByURL fetches an ad-hoc resource URL embedded in an asset record,
// such as the plain-text redirect target behind contentUrlUrl.
func GetByURL[T any](ctx context.Context, c *Client, apiURL string) (*T, error) {
	return fetchJSON[T](ctx, c, apiURL)
}
