package fetcher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is used by queries built without WithTTL.
const DefaultTTL = 5 * time.Minute

// State is a snapshot of the last settled load of a query.
type State[T any] struct {
	Data      T
	Err       error
	Loading   bool
	FromCache bool
	UpdatedAt time.Time
}

type QueryOption func(*queryOptions)

type queryOptions struct {
	ttl     time.Duration
	enabled bool
	logger  *slog.Logger
	now     func() time.Time
}

func WithTTL(ttl time.Duration) QueryOption {
	return func(o *queryOptions) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// WithEnabled(false) makes the query skip the cache and always call the producer.
func WithEnabled(enabled bool) QueryOption {
	return func(o *queryOptions) {
		o.enabled = enabled
	}
}

func WithLogger(logger *slog.Logger) QueryOption {
	return func(o *queryOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Query binds a cache key to a producer. Starting a load cancels the previous
// in-flight load of the same query. Separate queries on the same key are not
// de-duplicated.
type Query[T any] struct {
	store   Store[T]
	key     string
	produce Producer[T]
	opts    queryOptions

	mu     sync.Mutex
	token  string
	cancel context.CancelFunc
	state  State[T]
}

func NewQuery[T any](store Store[T], key string, produce Producer[T], opts ...QueryOption) *Query[T] {
	o := queryOptions{
		ttl:     DefaultTTL,
		enabled: true,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Query[T]{
		store:   store,
		key:     key,
		produce: produce,
		opts:    o,
	}
}

func (q *Query[T]) Key() string {
	return q.key
}

// Load returns the cached value when valid, otherwise runs the producer and
// caches its result. A load that gets superseded returns ErrCanceled and
// leaves both the cache and the state untouched.
func (q *Query[T]) Load(ctx context.Context) (T, error) {
	var zero T

	if q.opts.enabled {
		if data, ok := q.store.Get(q.key); ok {
			q.mu.Lock()
			q.stopLocked()
			q.state = State[T]{Data: data, FromCache: true, UpdatedAt: q.opts.now()}
			q.mu.Unlock()
			return data, nil
		}
	}

	loadCtx, token := q.begin(ctx)
	q.opts.logger.DebugContext(ctx, "fetch started",
		slog.String("key", q.key),
		slog.String("token", token),
	)

	data, err := q.produce(loadCtx)

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.token != token {
		q.opts.logger.DebugContext(ctx, "fetch canceled",
			slog.String("key", q.key),
			slog.String("token", token),
		)
		return zero, ErrCanceled
	}
	q.stopLocked()

	if err != nil {
		err = wrapError(q.key, err)
		q.state = State[T]{Err: err, UpdatedAt: q.opts.now()}
		return zero, err
	}

	if q.opts.enabled {
		q.store.Set(q.key, data, q.opts.ttl)
	}
	q.state = State[T]{Data: data, UpdatedAt: q.opts.now()}

	return data, nil
}

// Refetch drops the cached value and loads a fresh one.
func (q *Query[T]) Refetch(ctx context.Context) (T, error) {
	q.Invalidate()
	return q.Load(ctx)
}

// Invalidate removes the cached value without loading.
func (q *Query[T]) Invalidate() bool {
	return q.store.Delete(q.key)
}

// Cancel aborts the in-flight load, if any.
func (q *Query[T]) Cancel() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.stopLocked()
}

func (q *Query[T]) State() State[T] {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.state
}

func (q *Query[T]) begin(ctx context.Context) (context.Context, string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.stopLocked()

	loadCtx, cancel := context.WithCancel(ctx)
	q.token = uuid.NewString()
	q.cancel = cancel
	q.state.Loading = true
	q.state.Err = nil

	return loadCtx, q.token
}

func (q *Query[T]) stopLocked() {
	if q.cancel != nil {
		q.cancel()
	}
	q.cancel = nil
	q.token = ""
	q.state.Loading = false
}
