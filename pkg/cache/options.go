package cache

import "time"

// DefaultMaxSize is the entry limit used when no positive size is configured.
const DefaultMaxSize = 100

type options struct {
	maxSize int
	now     func() time.Time
}

type Option func(*options)

// WithMaxSize limits the number of entries. Values <= 0 fall back to DefaultMaxSize.
func WithMaxSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSize = n
		}
	}
}

// WithClock replaces the wall clock used for timestamps and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
