package feed

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
)

// Client wraps a single outbound call to the upstream feed API with a
// per-attempt timeout and exponential backoff with jitter. Transport-level
// failures and a fixed set of status codes are retried; any other status
// is returned as-is so the caller can make provider-specific decisions.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
}

// ClientConfig holds retry and timeout settings for the fetch client
type ClientConfig struct {
	Timeout    time.Duration // per-attempt timeout, default 15s
	MaxRetries int           // extra attempts after the first, default 3
	BaseDelay  time.Duration // default 1s
	MaxDelay   time.Duration // default 10s
}

// Response is the outcome of one upstream call with the body fully read
type Response struct {
	StatusCode int
	Body       []byte
}

// retryable status codes, everything else is handed back to the caller
var retryableStatus = map[int]struct{}{
	http.StatusRequestTimeout:      {},
	http.StatusTooManyRequests:     {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
}

// NewClient creates a fetch client with the given retry settings
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.BaseDelay == 0 {
		cfg.BaseDelay = time.Second
	}
	if cfg.MaxDelay == 0 {
		cfg.MaxDelay = 10 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.BaseDelay,
		maxDelay:   cfg.MaxDelay,
	}
}

// Get issues a GET request with retries. The label identifies the call in
// retry logs. On a retryable failure it backs off and tries again, up to
// maxRetries extra attempts; exhausting them returns the last error.
func (c *Client) Get(ctx context.Context, reqURL, label string, header http.Header) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.backoffDelay(attempt)
			lgr.Printf("[WARN] retrying %s: %v (attempt %d/%d, delay %v)", label, lastErr, attempt, c.maxRetries, delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("%s: %w", label, ctx.Err())
			}
		}

		resp, err := c.attempt(ctx, reqURL, header)
		if err != nil {
			lastErr = err // transport error or per-attempt timeout, retryable
			continue
		}

		if _, ok := retryableStatus[resp.StatusCode]; ok {
			lastErr = fmt.Errorf("upstream status %d", resp.StatusCode)
			continue
		}

		// success or a status the caller must interpret
		return resp, nil
	}

	return nil, fmt.Errorf("%s: retries exhausted: %w", label, lastErr)
}

// attempt performs a single request under the per-attempt timeout
func (c *Client) attempt(ctx context.Context, reqURL string, header http.Header) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// backoffDelay computes the pause before retry attempt n (n>=1):
// min(baseDelay * 2^n + random(0, 1s), maxDelay)
func (c *Client) backoffDelay(attempt int) time.Duration {
	backoff := c.baseDelay * (1 << attempt)
	if backoff > c.maxDelay {
		return c.maxDelay
	}
	jitter := time.Duration(rand.Int63n(int64(time.Second))) //nolint:gosec // non-cryptographic jitter
	if backoff+jitter > c.maxDelay {
		return c.maxDelay
	}
	return backoff + jitter
}
