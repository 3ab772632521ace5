package transport

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Response is a fully drained transport result. The body is read eagerly so
// the value stays usable after the request context has been released.
type Response struct {
	StatusCode int
	Header     http.Header
	body       []byte
}

// NewResponse builds a Response from already-read parts. Intended for custom
// Transport implementations and tests.
func NewResponse(statusCode int, header http.Header, body []byte) *Response {
	return &Response{StatusCode: statusCode, Header: header, body: body}
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("transport: decode response body: %w", err)
	}
	return nil
}

// Bytes returns the raw response body.
func (r *Response) Bytes() []byte {
	return r.body
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.body)
}
