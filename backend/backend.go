package backend

import (
	"context"
	"io"
	"net/http"
)

// Client sends requests to the third-party APIs being proxied.
type Client struct {
	httpClient *http.Client
}

// NewBackendClient creates a Client. No client-side timeout is set; the
// caller's context and the upstream bound how long a call may take.
func NewBackendClient() *Client {
	return &Client{
		httpClient: &http.Client{},
	}
}

// NewBackendClientWith wraps an existing http.Client.
func NewBackendClientWith(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// Forward sends a single request to url and returns the response. The caller
// owns resp.Body.
func (c *Client) Forward(ctx context.Context, method, url string, headers http.Header, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	// Copy headers.
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
