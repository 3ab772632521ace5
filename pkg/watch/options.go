package watch

import (
	"log/slog"

	"github.com/dmitrymomot/fetchstate/pkg/logger"
)

type options struct {
	logger *slog.Logger
	buffer int
}

func defaultOptions() *options {
	return &options{
		logger: logger.Discard(),
		buffer: 8,
	}
}

// Option configures a Watcher during construction.
type Option func(*options)

// WithLogger sets the logger used for lifecycle diagnostics. Transitions are
// logged at debug level. Nil loggers are ignored, keeping the discard
// default.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithSubscriberBuffer sets the channel buffer for subscriptions created by
// Subscribe. Non-positive values are ignored.
func WithSubscriberBuffer(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.buffer = size
		}
	}
}
