package http_client

import (
	"context"
	"net/http"
	"time"
)

// Client is a thin wrapper around http.Client that threads a context and a
// header set through every request. Each outbound provider gets its own
// instance with an explicit timeout so a hung upstream can never stall a
// request indefinitely.
type Client struct {
	httpClient *http.Client
}

func New(timeout time.Duration) *Client {
	return &Client{httpClient: &http.Client{Timeout: timeout}}
}

// Get issues a GET request with the given headers. The caller owns the
// response body.
func (c *Client) Get(ctx context.Context, rawURL string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	return c.httpClient.Do(req)
}

// BrowserHeaders returns the header set required by endpoints that reject
// unheaded requests (Yahoo Finance rejects clients without a browser-like
// User-Agent).
func BrowserHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		"Accept":          "application/json",
		"Accept-Language": "en-US,en;q=0.9",
		"Connection":      "keep-alive",
	}
}
