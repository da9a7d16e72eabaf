// Package explorer provides a client for Etherscan-compatible block explorer
// REST APIs. Explorers expose account history, token transfers, and contract
// metadata that no JSON-RPC node method can answer; every response arrives in
// the conventional {status, message, result} envelope handled here.
package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	xhttp "github.com/gabapcia/chainflow/internal/pkg/transport/http"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrExplorerError indicates that the explorer answered the HTTP request but
// reported an application-level failure in the response envelope.
var ErrExplorerError = errors.New("explorer error")

// noTransactionsFound is the one status "0" message that does not signal a
// failure: it is how explorers report an empty history.
const noTransactionsFound = "No transactions found"

// response is the envelope every Etherscan-compatible endpoint returns.
// status "1" means success; status "0" means an application-level error
// unless the message is the literal empty-history marker.
type response struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// Err returns an error when the envelope reports an application-level
// failure, wrapping ErrExplorerError with the explorer's message.
func (r response) Err() error {
	if r.Status != "0" || r.Message == noTransactionsFound {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrExplorerError, r.Message)
}

// Client defines the interface for querying an Etherscan-compatible block
// explorer API.
type Client interface {
	// Query performs a GET against the explorer for the given module/action
	// pair with the extra query params, returning the raw result payload.
	// An empty history is returned as the raw "[]" the explorer sends, not
	// as an error.
	Query(ctx context.Context, module, action string, params map[string]string) (json.RawMessage, error)
}

// client is the default Client implementation over a retryable HTTP client.
type client struct {
	baseURL    string                // explorer API base URL (e.g., https://api.cronoscan.com/api)
	apiKey     string                // API key appended to every request; may be empty
	httpClient *retryablehttp.Client // the HTTP client used to perform requests
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Query implements the Client interface.
func (c *client) Query(ctx context.Context, module, action string, params map[string]string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("module", module)
	query.Set("action", action)
	for k, v := range params {
		query.Set(k, v)
	}
	if c.apiKey != "" {
		query.Set("apikey", c.apiKey)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// config holds internal settings for the underlying retryable HTTP client.
type config struct {
	timeout time.Duration // maximum duration for a single HTTP request
}

// Option defines a functional option for configuring the explorer client.
type Option func(*config)

// WithTimeout sets the maximum duration allowed for a single HTTP request.
// Default: 10 seconds; explorer endpoints are slower than node RPCs.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// NewClient constructs a Client for the explorer API rooted at baseURL.
// apiKey may be empty for explorers that allow anonymous access.
func NewClient(baseURL, apiKey string, opts ...Option) *client {
	cfg := config{
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: xhttp.NewClient(xhttp.WithTimeout(cfg.timeout)),
	}
}
