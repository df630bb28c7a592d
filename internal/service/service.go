package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/vladislavprovich/drivehub/pkg/cache"
	"github.com/vladislavprovich/drivehub/pkg/client/catalogue"
)

type InstructorService interface {
	GetInstructorByID(ctx context.Context, req *GetInstructorByIDRequest) (*Instructor, error)
	ListInstructors(ctx context.Context, req *ListInstructorsRequest) (*InstructorList, error)
	RefreshInstructor(ctx context.Context, req *GetInstructorByIDRequest) (*Instructor, error)
	InvalidateInstructor(ctx context.Context, id string) bool
	CacheStats(ctx context.Context) *CacheStatsResponse
	ClearExpired(ctx context.Context) *ClearExpiredResponse
	ResetStats(ctx context.Context)
	ClearCache(ctx context.Context)
	Health(ctx context.Context) *HealthResponse
}

// Caches groups the cache managers the service reads through. They are created
// once by the caller and shared for the process lifetime.
type Caches struct {
	Instructors *cache.Manager[*Instructor]
	Lists       *cache.Manager[*InstructorList]
}

var _ InstructorService = (*Service)(nil)

// DefaultFetchTimeout bounds a shared upstream fetch once it no longer follows
// the context of the caller that started it.
const DefaultFetchTimeout = 10 * time.Second

type Option func(*Service)

// WithFetchTimeout sets the deadline of a shared upstream fetch. Values <= 0 are ignored.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

type Service struct {
	logger              *slog.Logger
	client              catalogue.Client
	caches              Caches
	ttl                 time.Duration
	fetchTimeout        time.Duration
	group               singleflight.Group
	gens                generations
	convectorToClient   *ConvectorToClient
	convectorFromClient *ConvectorFromClient
}

func NewInstructorService(
	_ context.Context,
	log *slog.Logger,
	client catalogue.Client,
	caches Caches,
	ttl time.Duration,
	opts ...Option,
) *Service {
	s := &Service{
		logger:              log,
		client:              client,
		caches:              caches,
		ttl:                 ttl,
		fetchTimeout:        DefaultFetchTimeout,
		convectorToClient:   NewConvectorToClient(),
		convectorFromClient: NewConvectorFromClient(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// shared runs fetch at most once per key across concurrent callers. The fetch
// runs detached from ctx so a caller that goes away does not fail the callers
// still waiting on it; each caller stops waiting when its own ctx is done.
func (s *Service) shared(
	ctx context.Context,
	key string,
	fetch func(ctx context.Context) (any, error),
) (any, bool, error) {
	ch := s.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()

		return fetch(fetchCtx)
	})

	select {
	case res := <-ch:
		return res.Val, res.Shared, res.Err
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}
