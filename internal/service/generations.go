package service

import (
	"sync"
	"time"

	"github.com/vladislavprovich/drivehub/pkg/fetcher"
)

// generations counts refreshes and invalidations per cache key. A fetch that
// started under an older generation must not store its result.
type generations struct {
	mu    sync.Mutex
	byKey map[string]uint64
}

func (g *generations) current(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.byKey[key]
}

func (g *generations) advance(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.byKey == nil {
		g.byKey = make(map[string]uint64)
	}
	g.byKey[key]++

	return g.byKey[key]
}

// storeIf calls store only while key is still at gen.
func (g *generations) storeIf(key string, gen uint64, store func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.byKey[key] != gen {
		return false
	}
	store()

	return true
}

// guardedStore drops writes issued after its generation has been superseded.
type guardedStore[T any] struct {
	fetcher.Store[T]
	gens *generations
	gen  uint64
}

func guard[T any](gens *generations, store fetcher.Store[T], key string) guardedStore[T] {
	return guardedStore[T]{Store: store, gens: gens, gen: gens.current(key)}
}

func (s guardedStore[T]) Set(key string, data T, ttl time.Duration) {
	s.gens.storeIf(key, s.gen, func() {
		s.Store.Set(key, data, ttl)
	})
}
