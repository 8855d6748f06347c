package knowshowgo

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// DefaultBaseURL is the address used when Config.BaseURL is empty.
const DefaultBaseURL = "http://localhost:3000"

// Doer executes a single HTTP request. *http.Client satisfies it; tests and
// callers can substitute any transport. The client delegates all timeout,
// redirect, and proxy behavior to the supplied implementation.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds configuration for the KnowShowGo client. The zero value (or a
// nil *Config) selects all defaults.
type Config struct {
	// BaseURL is the root address of the KnowShowGo service. Trailing
	// slashes are stripped. Defaults to DefaultBaseURL.
	BaseURL string

	// HTTPClient performs the outbound calls. Defaults to
	// http.DefaultClient. The client itself enforces no timeouts and
	// performs no retries; inject a configured *http.Client for either.
	HTTPClient Doer

	// Logger receives one debug entry per completed request. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Client calls the KnowShowGo REST API. It holds only immutable
// configuration, so a single Client is safe for concurrent use; every method
// issues exactly one HTTP request.
type Client struct {
	baseURL    string
	httpClient Doer
	logger     *slog.Logger
}

// NewClient creates a new KnowShowGo client with the provided configuration.
func NewClient(config *Config) *Client {
	if config == nil {
		config = &Config{}
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// BaseURL returns the configured service address with trailing slashes
// stripped.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HealthCheck calls GET /health and returns the service's health report.
func (c *Client) HealthCheck(ctx context.Context) (map[string]interface{}, error) {
	body, err := c.Do(ctx, http.MethodGet, "/health", RequestOptions{})
	if err != nil {
		return nil, err
	}
	return objectBody(body)
}
