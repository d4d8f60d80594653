package memdb

import (
	"time"
)

const (
	// DefaultMemSize the default map size used for storing data.
	DefaultMemSize = 100
)

type config struct {
	memSize int
	now     func() time.Time
}

func newConfig(opts []Option) *config {
	cfg := &config{
		memSize: DefaultMemSize,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

type Option func(*config)

// WithMemSize allows us to specify a custom mem size for store maps
func WithMemSize(memSize int) Option {
	return func(c *config) {
		if memSize >= 0 {
			c.memSize = memSize
		}
	}
}

// WithClock replaces the wall clock used for session bookkeeping.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}
