package cache

import "time"

// Entry represents a cached value with the moment it was stored and how long it stays valid.
type Entry[T any] struct {
	Data      T             `json:"data"`
	Timestamp time.Time     `json:"timestamp"`
	TTL       time.Duration `json:"ttl"`
}

// ValidAt reports whether the entry is still valid at now.
// A zero or negative TTL makes the entry expired immediately.
func (e Entry[T]) ValidAt(now time.Time) bool {
	return now.Sub(e.Timestamp) < e.TTL
}
