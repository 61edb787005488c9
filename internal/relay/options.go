package relay

import "github.com/dmitrymomot/formrelay/pkg/metrics"

// DefaultMaxBodySize caps the accepted POST /send body.
const DefaultMaxBodySize int64 = 100 << 10 // 100 KiB

// Option configures the relay handlers.
type Option func(*options)

type options struct {
	metrics     *metrics.Relay
	maxBodySize int64
}

func newOptions(opts ...Option) options {
	o := options{maxBodySize: DefaultMaxBodySize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMetrics records every provider call on m.
func WithMetrics(m *metrics.Relay) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithMaxBodySize overrides the POST /send body limit.
func WithMaxBodySize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodySize = n
		}
	}
}
