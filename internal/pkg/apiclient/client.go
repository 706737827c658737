// Package apiclient is the calling side of the session-refresh dance: an
// HTTP client that intercepts 401 responses, refreshes the session exactly
// once per storm of concurrent failures, and replays the original requests.
package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

const (
	defaultTimeout = 60 * time.Second
	refreshPath    = "/api/auth/refresh"
	authPathMarker = "/auth/"
)

type Client struct {
	http    *http.Client
	baseURL string
	refresh *refreshCoordinator
}

// New builds a client with a cookie jar (tokens travel only as cookies) and
// the blanket request timeout. Timeouts surface as plain request failures,
// they are not retried.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		http: &http.Client{
			Jar:     jar,
			Timeout: defaultTimeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		refresh: &refreshCoordinator{},
	}, nil
}

func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

func (c *Client) Post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.Do(req)
}

// Do executes the request. On a 401 it refreshes the session (single-flight
// across the client) and replays the request once. A 401 from an auth
// endpoint propagates untouched, which keeps refresh from refreshing itself.
// Every other status passes through unmodified.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	// Keep the body replayable before the first attempt.
	if req.Body != nil && req.GetBody == nil {
		data, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
		req.Body = io.NopCloser(bytes.NewReader(data))
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized || strings.Contains(req.URL.Path, authPathMarker) {
		return resp, nil
	}

	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if err := c.refresh.do(func() error {
		return c.refreshSession(req.Context())
	}); err != nil {
		return nil, err
	}

	return c.http.Do(cloneRequest(req))
}

func (c *Client) refreshSession(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refreshPath, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("session refresh failed with status %d", resp.StatusCode)
	}
	return nil
}

func cloneRequest(req *http.Request) *http.Request {
	clone := req.Clone(req.Context())
	if req.GetBody != nil {
		if body, err := req.GetBody(); err == nil {
			clone.Body = body
		}
	}
	return clone
}
