package transport

import (
	"time"

	"github.com/dmitrymomot/fetchstate/pkg/config"
)

// Config holds environment-driven client settings.
type Config struct {
	Timeout             time.Duration `env:"FETCHSTATE_HTTP_TIMEOUT" envDefault:"30s"`
	UserAgent           string        `env:"FETCHSTATE_HTTP_USER_AGENT" envDefault:"fetchstate/1.0"`
	MaxIdleConns        int           `env:"FETCHSTATE_HTTP_MAX_IDLE_CONNS" envDefault:"100"`
	MaxIdleConnsPerHost int           `env:"FETCHSTATE_HTTP_MAX_IDLE_CONNS_PER_HOST" envDefault:"10"`
	IdleConnTimeout     time.Duration `env:"FETCHSTATE_HTTP_IDLE_CONN_TIMEOUT" envDefault:"90s"`
}

// NewClientFromConfig builds a Client from explicit configuration values.
func NewClientFromConfig(cfg Config) *Client {
	return NewClient(
		WithTimeout(cfg.Timeout),
		WithUserAgent(cfg.UserAgent),
		WithConnectionPool(cfg.MaxIdleConns, cfg.MaxIdleConnsPerHost, cfg.IdleConnTimeout),
	)
}

// NewClientFromEnv loads Config from environment variables and builds a
// Client from it.
func NewClientFromEnv() (*Client, error) {
	cfg, err := config.Load[Config]()
	if err != nil {
		return nil, err
	}
	return NewClientFromConfig(cfg), nil
}
