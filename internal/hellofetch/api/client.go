// Package api is the HTTP side of a fetch cycle: a typed client for the
// fixed data endpoint.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mistakeknot/hellofetch/internal/hellofetch/fetch"
	"github.com/mistakeknot/hellofetch/pkg/httpapi"
)

const (
	DefaultBaseURL  = "http://127.0.0.1:8097"
	DefaultEndpoint = "/api/data"
	DefaultTimeout  = 30 * time.Second

	requestIDHeader = "X-Request-ID"
	maxBodyBytes    = 1 << 20
)

// StatusError is returned for any non-2xx reply.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Code, e.Body)
}

// Response is the body shape the endpoint answers with.
type Response struct {
	Data *fetch.Payload `json:"data"`
}

// Client fetches the data endpoint. It satisfies fetch.Client.
type Client struct {
	baseURL    string
	endpoint   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithEndpoint overrides the path requested on every Get.
func WithEndpoint(path string) Option {
	return func(c *Client) {
		if path = httpapi.NormalizePath(path); path != "" {
			c.endpoint = path
		}
	}
}

// WithTimeout sets the request timeout. Zero leaves the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates a client for baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:  baseURL,
		endpoint: DefaultEndpoint,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL is the full address Get requests.
func (c *Client) URL() string {
	return c.baseURL + c.endpoint
}

// Get performs one GET against the endpoint and decodes the payload.
func (c *Client) Get(ctx context.Context) (fetch.Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), nil)
	if err != nil {
		return fetch.Payload{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fetch.Payload{}, fmt.Errorf("GET %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fetch.Payload{}, &StatusError{
			Method: http.MethodGet,
			Path:   c.endpoint,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(body)),
		}
	}

	var out Response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&out); err != nil {
		return fetch.Payload{}, fmt.Errorf("decode response: %w", err)
	}
	if out.Data == nil {
		return fetch.Payload{}, fmt.Errorf("decode response: missing data")
	}
	return *out.Data, nil
}

var _ fetch.Client = (*Client)(nil)
