package transport

import "context"

// Method is the HTTP verb subset the transport supports.
type Method string

const (
	MethodGet    Method = "GET"
	MethodHead   Method = "HEAD"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// Bodyless reports whether the method must not carry a request body.
func (m Method) Bodyless() bool {
	return m == MethodGet || m == MethodHead
}

// Valid reports whether m is one of the supported verbs.
func (m Method) Valid() bool {
	switch m {
	case MethodGet, MethodHead, MethodPost, MethodPut, MethodDelete:
		return true
	default:
		return false
	}
}

// Options describes a single request. The zero value issues a GET with no
// headers and no body.
type Options struct {
	// Method defaults to MethodGet when empty.
	Method Method

	// Headers are applied to the outgoing request verbatim.
	Headers map[string]string

	// Body is the request payload. Only valid for methods that allow one.
	Body []byte

	// ContentType overrides the Content-Type header for bodied requests.
	// Defaults to application/json when a body is present.
	ContentType string
}

// Transport issues one cancellable request and resolves to the raw response.
// Cancellation is driven by the context: once it fires, the implementation
// must abandon the request and return an error. Implementations decide their
// own failure policy (the default Client treats non-2xx statuses as errors).
type Transport interface {
	Send(ctx context.Context, target string, opts Options) (*Response, error)
}
