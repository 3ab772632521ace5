package watch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fetchstate/pkg/transport"
	"github.com/dmitrymomot/fetchstate/pkg/watch"
)

func TestNewIdentity_Normalization(t *testing.T) {
	t.Parallel()

	t.Run("defaults method to GET", func(t *testing.T) {
		t.Parallel()

		id := watch.NewIdentity("https://api.test/x", transport.Options{})
		assert.Equal(t, transport.MethodGet, id.Method())
		assert.Equal(t, "https://api.test/x", id.Target())
	})

	t.Run("header order does not matter", func(t *testing.T) {
		t.Parallel()

		a := watch.NewIdentity("https://api.test/x", transport.Options{
			Headers: map[string]string{"Authorization": "token", "Accept": "application/json"},
		})
		b := watch.NewIdentity("https://api.test/x", transport.Options{
			Headers: map[string]string{"Accept": "application/json", "Authorization": "token"},
		})
		assert.True(t, a.Equal(b))
	})

	t.Run("header casing is canonicalized", func(t *testing.T) {
		t.Parallel()

		a := watch.NewIdentity("https://api.test/x", transport.Options{
			Headers: map[string]string{"x-api-key": "k"},
		})
		b := watch.NewIdentity("https://api.test/x", transport.Options{
			Headers: map[string]string{"X-Api-Key": "k"},
		})
		assert.True(t, a.Equal(b))
	})

	t.Run("body is not part of the identity", func(t *testing.T) {
		t.Parallel()

		a := watch.NewIdentity("https://api.test/x", transport.Options{
			Method: transport.MethodPost,
			Body:   []byte(`{"a":1}`),
		})
		b := watch.NewIdentity("https://api.test/x", transport.Options{
			Method: transport.MethodPost,
			Body:   []byte(`{"a":2}`),
		})
		assert.True(t, a.Equal(b))
	})
}

func TestIdentity_Equal(t *testing.T) {
	t.Parallel()

	base := watch.NewIdentity("https://api.test/x", transport.Options{
		Method:  transport.MethodGet,
		Headers: map[string]string{"Accept": "application/json"},
	})

	tests := []struct {
		name  string
		other watch.Identity
		want  bool
	}{
		{
			name: "same identity",
			other: watch.NewIdentity("https://api.test/x", transport.Options{
				Headers: map[string]string{"Accept": "application/json"},
			}),
			want: true,
		},
		{
			name: "different target",
			other: watch.NewIdentity("https://api.test/y", transport.Options{
				Headers: map[string]string{"Accept": "application/json"},
			}),
			want: false,
		},
		{
			name: "different method",
			other: watch.NewIdentity("https://api.test/x", transport.Options{
				Method:  transport.MethodDelete,
				Headers: map[string]string{"Accept": "application/json"},
			}),
			want: false,
		},
		{
			name: "different header value",
			other: watch.NewIdentity("https://api.test/x", transport.Options{
				Headers: map[string]string{"Accept": "text/plain"},
			}),
			want: false,
		},
		{
			name: "extra header",
			other: watch.NewIdentity("https://api.test/x", transport.Options{
				Headers: map[string]string{"Accept": "application/json", "X-Extra": "1"},
			}),
			want: false,
		},
		{
			name:  "no headers",
			other: watch.NewIdentity("https://api.test/x", transport.Options{}),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, base.Equal(tt.other))
			assert.Equal(t, tt.want, tt.other.Equal(base))
		})
	}
}

func TestIdentity_Empty(t *testing.T) {
	t.Parallel()

	assert.True(t, watch.NewIdentity("", transport.Options{}).Empty())
	assert.False(t, watch.NewIdentity("https://api.test/x", transport.Options{}).Empty())
}
