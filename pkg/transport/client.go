package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// HeaderRequestID is attached to every outgoing request when the caller did
// not supply a correlation header of their own.
const HeaderRequestID = "X-Request-Id"

// Client is the default Transport backed by net/http. The zero value is not
// usable; create instances with NewClient or NewClientFromConfig. A Client is
// safe for concurrent use and reuses its connection pool across requests.
type Client struct {
	client    *http.Client
	userAgent string
}

var _ Transport = (*Client)(nil)

// NewClient creates a client with pooled connections and conservative
// defaults. Options override individual settings.
func NewClient(opts ...ClientOption) *Client {
	cfg := defaultClientOptions()
	for _, opt := range opts {
		opt(cfg)
	}

	client := cfg.httpClient
	if client == nil {
		client = &http.Client{
			Timeout: cfg.timeout,
			Transport: &http.Transport{
				MaxIdleConns:        cfg.maxIdleConns,
				MaxIdleConnsPerHost: cfg.maxIdleConnsPerHost,
				IdleConnTimeout:     cfg.idleConnTimeout,
			},
		}
	}

	return &Client{client: client, userAgent: cfg.userAgent}
}

// Send issues a single request and drains the response body. Non-2xx
// statuses are failures by this client's policy and are returned as
// *StatusError with the drained response attached for diagnostics.
//
// The target and options are validated before any network activity: an
// empty or unparsable target, an unsupported method, or a body on a bodyless
// method all fail fast with typed errors.
func (c *Client) Send(ctx context.Context, target string, opts Options) (*Response, error) {
	if target == "" {
		return nil, ErrEmptyTarget
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}

	method := opts.Method
	if method == "" {
		method = MethodGet
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, string(opts.Method))
	}
	if method.Bodyless() && len(opts.Body) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrBodyNotAllowed, method)
	}

	var body io.Reader
	if len(opts.Body) > 0 {
		body = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, string(method), target, body)
	if err != nil {
		return nil, fmt.Errorf("transport: build request: %w", err)
	}

	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get(HeaderRequestID) == "" {
		req.Header.Set(HeaderRequestID, uuid.NewString())
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if len(opts.Body) > 0 && req.Header.Get("Content-Type") == "" {
		contentType := opts.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transport: send request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("transport: read response body: %w", err)
	}

	raw := NewResponse(resp.StatusCode, resp.Header, payload)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status, Response: raw}
	}

	return raw, nil
}
