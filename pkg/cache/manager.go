package cache

import (
	"encoding/json"
	"sync"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Manager is a bounded in-memory store of TTL-scoped entries.
//
// Entries keep their insertion order. When the store is full and a new key is
// written, the oldest inserted key is evicted (FIFO, reads do not reorder).
// Expiry is lazy: expired entries are dropped by Get and ClearExpired only.
type Manager[T any] struct {
	mu      sync.Mutex
	entries *orderedmap.OrderedMap[string, Entry[T]]
	maxSize int
	now     func() time.Time
	stats   Stats
}

func New[T any](opts ...Option) *Manager[T] {
	o := options{
		maxSize: DefaultMaxSize,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Manager[T]{
		entries: orderedmap.New[string, Entry[T]](),
		maxSize: o.maxSize,
		now:     o.now,
	}
}

// Get returns the cached value for key. A missing or expired key counts as a
// miss and returns the zero value; expired entries are removed.
func (m *Manager[T]) Get(key string) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero T

	ent, ok := m.entries.Get(key)
	if !ok {
		m.recordMiss()
		return zero, false
	}

	if !ent.ValidAt(m.now()) {
		m.entries.Delete(key)
		m.recordMiss()
		return zero, false
	}

	m.stats.Hits++
	m.stats.updateHitRate()
	return ent.Data, true
}

// Set stores data under key for ttl. Updating an existing key never evicts.
func (m *Manager[T]) Set(key string, data T, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries.Get(key); !exists && m.entries.Len() >= m.maxSize {
		if oldest := m.entries.Oldest(); oldest != nil {
			m.entries.Delete(oldest.Key)
		}
	}

	m.entries.Set(key, Entry[T]{
		Data:      data,
		Timestamp: m.now(),
		TTL:       ttl,
	})
	m.syncSize()
}

// Has reports whether key holds a valid entry. It neither records stats nor evicts.
func (m *Manager[T]) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	ent, ok := m.entries.Get(key)
	return ok && ent.ValidAt(m.now())
}

func (m *Manager[T]) Delete(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, removed := m.entries.Delete(key)
	m.syncSize()
	return removed
}

// Clear removes every entry. Hit and miss counters are kept.
func (m *Manager[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = orderedmap.New[string, Entry[T]]()
	m.syncSize()
}

// ClearExpired removes expired entries and returns how many were dropped.
func (m *Manager[T]) ClearExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	var expired []string
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		if !pair.Value.ValidAt(now) {
			expired = append(expired, pair.Key)
		}
	}
	for _, key := range expired {
		m.entries.Delete(key)
	}
	m.syncSize()

	return len(expired)
}

// Keys returns every stored key in insertion order, expired ones included.
func (m *Manager[T]) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]string, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// ValidKeys returns the keys whose entries have not expired yet.
func (m *Manager[T]) ValidKeys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	keys := make([]string, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.ValidAt(now) {
			keys = append(keys, pair.Key)
		}
	}
	return keys
}

// Stats returns a snapshot of the counters.
func (m *Manager[T]) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stats
}

func (m *Manager[T]) ResetStats() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stats = Stats{}
	m.syncSize()
}

func (m *Manager[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.entries.Len()
}

// MaxSize returns the entry limit the manager was built with.
func (m *Manager[T]) MaxSize() int {
	return m.maxSize
}

// ApproxSize estimates the memory held by cached values as the sum of their
// JSON encodings. Values that cannot be encoded are skipped. Diagnostics only.
func (m *Manager[T]) ApproxSize() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		raw, err := json.Marshal(pair.Value.Data)
		if err != nil {
			continue
		}
		total += len(raw)
	}
	return total
}

func (m *Manager[T]) recordMiss() {
	m.stats.Misses++
	m.stats.Size = m.entries.Len()
	m.stats.updateHitRate()
}

func (m *Manager[T]) syncSize() {
	m.stats.Size = m.entries.Len()
}
