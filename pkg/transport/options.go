package transport

import (
	"net/http"
	"time"
)

type clientOptions struct {
	timeout             time.Duration
	userAgent           string
	maxIdleConns        int
	maxIdleConnsPerHost int
	idleConnTimeout     time.Duration
	httpClient          *http.Client
}

func defaultClientOptions() *clientOptions {
	return &clientOptions{
		timeout:             30 * time.Second,
		userAgent:           "fetchstate/1.0",
		maxIdleConns:        100,
		maxIdleConnsPerHost: 10,
		idleConnTimeout:     90 * time.Second,
	}
}

// ClientOption configures a Client during construction.
type ClientOption func(*clientOptions)

// WithTimeout sets the per-request timeout. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header applied when the caller supplied
// none. Empty values are ignored.
func WithUserAgent(ua string) ClientOption {
	return func(o *clientOptions) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}

// WithConnectionPool tunes the pooled http.Transport. Non-positive values
// leave the corresponding default untouched.
func WithConnectionPool(maxIdle, maxIdlePerHost int, idleTimeout time.Duration) ClientOption {
	return func(o *clientOptions) {
		if maxIdle > 0 {
			o.maxIdleConns = maxIdle
		}
		if maxIdlePerHost > 0 {
			o.maxIdleConnsPerHost = maxIdlePerHost
		}
		if idleTimeout > 0 {
			o.idleConnTimeout = idleTimeout
		}
	}
}

// WithHTTPClient replaces the underlying http.Client entirely, for custom
// transports, proxies, or testing. Nil clients are ignored.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(o *clientOptions) {
		if client != nil {
			o.httpClient = client
		}
	}
}
