package service

import (
	"context"
	"log/slog"

	"github.com/vladislavprovich/drivehub/pkg/cache"
)

func (s *Service) InvalidateInstructor(ctx context.Context, id string) bool {
	key := instructorKey(id)
	s.gens.advance(key)
	s.group.Forget(key)

	removed := s.caches.Instructors.Delete(key)
	s.logger.InfoContext(ctx, "InvalidateInstructor",
		slog.String("key", key),
		slog.Bool("removed", removed),
	)

	return removed
}

func (s *Service) CacheStats(_ context.Context) *CacheStatsResponse {
	return &CacheStatsResponse{
		Instructors: statsOf(s.caches.Instructors),
		Lists:       statsOf(s.caches.Lists),
	}
}

func (s *Service) ClearExpired(ctx context.Context) *ClearExpiredResponse {
	resp := &ClearExpiredResponse{
		Instructors: s.caches.Instructors.ClearExpired(),
		Lists:       s.caches.Lists.ClearExpired(),
	}
	s.logger.InfoContext(ctx, "ClearExpired", slog.Any("removed", resp))

	return resp
}

func (s *Service) ResetStats(ctx context.Context) {
	s.caches.Instructors.ResetStats()
	s.caches.Lists.ResetStats()
	s.logger.InfoContext(ctx, "ResetStats")
}

// ClearCache drops every cached entry. Hit and miss counters survive.
func (s *Service) ClearCache(ctx context.Context) {
	s.caches.Instructors.Clear()
	s.caches.Lists.Clear()
	s.logger.InfoContext(ctx, "ClearCache")
}

func statsOf[T any](m *cache.Manager[T]) CacheStats {
	return CacheStats{
		Stats:       m.Stats(),
		MaxSize:     m.MaxSize(),
		ApproxBytes: m.ApproxSize(),
		ValidKeys:   m.ValidKeys(),
	}
}
