package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavprovich/drivehub/pkg/cache"
)

// ErrCanceled is returned by a query load that was cancelled by Cancel or
// superseded by a newer load of the same query. It wraps context.Canceled.
var ErrCanceled = fmt.Errorf("fetch canceled: %w", context.Canceled)

// Producer builds a fresh value on cache miss.
type Producer[T any] func(ctx context.Context) (T, error)

// Store is the part of the cache a fetch needs.
type Store[T any] interface {
	Get(key string) (T, bool)
	Set(key string, data T, ttl time.Duration)
	Delete(key string) bool
}

var _ Store[int] = (*cache.Manager[int])(nil)

// Fetch returns the cached value for key or calls produce and caches its result for ttl.
// Failed produce calls are never cached.
func Fetch[T any](ctx context.Context, store Store[T], key string, ttl time.Duration, produce Producer[T]) (T, error) {
	if data, ok := store.Get(key); ok {
		return data, nil
	}

	data, err := produce(ctx)
	if err != nil {
		var zero T
		return zero, wrapError(key, err)
	}

	store.Set(key, data, ttl)
	return data, nil
}

func wrapError(key string, err error) error {
	if errors.Is(err, ErrCanceled) {
		return err
	}
	return fmt.Errorf("fetch %q: %w", key, err)
}
