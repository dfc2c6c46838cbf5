// pkg/nuget/client.go
package nuget

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client handles HTTP requests to NuGet feeds
type Client struct {
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient creates a feed client with the default timeout and user agent
func NewClient() *Client {
	return NewClientWithTimeout(DefaultTimeout)
}

// NewClientWithTimeout creates a new client with custom timeout
func NewClientWithTimeout(timeout time.Duration) *Client {
	return NewClientWithHTTP(&http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}, DefaultUserAgent)
}

// NewClientWithHTTP wraps an existing transport configuration
func NewClientWithHTTP(httpClient *http.Client, userAgent string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		httpClient: httpClient,
		userAgent:  userAgent,
	}
}

// SetRateLimit throttles requests to rps per second. Zero or less disables it.
func (c *Client) SetRateLimit(rps float64) {
	if rps <= 0 {
		c.limiter = nil
		return
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
}

// UserAgent returns the User-Agent header sent with every request
func (c *Client) UserAgent() string {
	return c.userAgent
}

// Get performs an HTTP GET request. Any non-2xx response is returned as a
// *FeedError carrying the status code.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &FeedError{URL: url, Err: fmt.Errorf("waiting for rate limiter: %w", err)}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FeedError{URL: url, Err: fmt.Errorf("creating request: %w", err)}
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FeedError{URL: url, Err: fmt.Errorf("performing request: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &FeedError{URL: url, StatusCode: resp.StatusCode}
	}

	return resp, nil
}

// GetString fetches a URL and returns the body as a string
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FeedError{URL: url, Err: fmt.Errorf("reading body: %w", err)}
	}

	return string(body), nil
}
