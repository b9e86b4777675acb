// ABOUTME: Standard HTTP client used for asset downloads, one attempt per request
// ABOUTME: Sets a browser-like User-Agent and optionally paces requests with a rate limiter

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"framelocal/core/interfaces"
)

const defaultUserAgent = "Mozilla/5.0 (compatible; FramerMirror/1.1; +https://github.com/)"

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
	limiter   *rate.Limiter
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// An empty userAgent falls back to the default browser-like string. A
// requestsPerSecond of zero disables pacing.
func NewStandardHTTPClient(timeout time.Duration, userAgent string, requestsPerSecond float64) *StandardHTTPClient {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	var limiter *rate.Limiter
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}

	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		limiter:   limiter,
	}
}

// Get performs a single HTTP GET request. Failures are returned as-is, never
// retried; callers decide how a failed fetch affects the batch.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
