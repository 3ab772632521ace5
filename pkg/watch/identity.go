package watch

import (
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrymomot/fetchstate/pkg/transport"
)

// Identity is the normalized change-detection key for one request: the
// target, the method, and the flattened header pairs. The request body is
// not part of the identity. Two identities compare equal structurally, never
// by incidental object identity, so rebuilding the same options map on every
// evaluation does not restart the request.
type Identity struct {
	target  string
	method  transport.Method
	headers []headerPair
}

type headerPair struct {
	key   string
	value string
}

// NewIdentity derives the identity of a request from its target and options.
// Header keys are canonicalized and sorted so map iteration order and header
// casing cannot produce spurious identity changes.
func NewIdentity(target string, opts transport.Options) Identity {
	id := Identity{target: target, method: opts.Method}
	if id.method == "" {
		id.method = transport.MethodGet
	}

	if len(opts.Headers) > 0 {
		id.headers = make([]headerPair, 0, len(opts.Headers))
		for k, v := range opts.Headers {
			id.headers = append(id.headers, headerPair{key: http.CanonicalHeaderKey(k), value: v})
		}
		slices.SortFunc(id.headers, func(a, b headerPair) int {
			if c := strings.Compare(a.key, b.key); c != 0 {
				return c
			}
			return strings.Compare(a.value, b.value)
		})
	}

	return id
}

// Empty reports whether the identity describes "no request desired".
func (id Identity) Empty() bool {
	return id.target == ""
}

// Target returns the request target URL.
func (id Identity) Target() string {
	return id.target
}

// Method returns the normalized request method.
func (id Identity) Method() transport.Method {
	return id.method
}

// Equal reports whether two identities describe the same request.
func (id Identity) Equal(other Identity) bool {
	if id.target != other.target || id.method != other.method {
		return false
	}
	return slices.Equal(id.headers, other.headers)
}
