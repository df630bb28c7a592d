package worker_test

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavprovich/drivehub/internal/worker"
	"github.com/vladislavprovich/drivehub/pkg/cache"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) ClearExpired() int {
	s.calls.Add(1)
	return 0
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestJanitor_Sweep(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	instructors := cache.New[string](cache.WithClock(clock))
	lists := cache.New[int](cache.WithClock(clock))

	instructors.Set("a", "x", time.Second)
	instructors.Set("b", "y", time.Hour)
	lists.Set("l", 1, time.Second)

	j := worker.NewJanitor(newLogger(), time.Minute, map[string]worker.Sweeper{
		"instructors": instructors,
		"lists":       lists,
	})

	now = now.Add(time.Minute)
	removed := j.Sweep(context.Background())

	assert.Equal(t, map[string]int{"instructors": 1, "lists": 1}, removed)
	assert.Equal(t, []string{"b"}, instructors.Keys())
	assert.Zero(t, lists.Len())

	m := j.Metrics()
	assert.Equal(t, int64(1), m.Sweeps)
	assert.Equal(t, int64(2), m.Removed)
	assert.False(t, m.LastSweepAt.IsZero())
}

func TestJanitor_StartStop(t *testing.T) {
	sweeper := &countingSweeper{}
	j := worker.NewJanitor(newLogger(), 5*time.Millisecond, map[string]worker.Sweeper{"c": sweeper})

	ctx := context.Background()
	require.NoError(t, j.Start(ctx))
	assert.ErrorIs(t, j.Start(ctx), worker.ErrAlreadyStarted)

	assert.Eventually(t, func() bool {
		return sweeper.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, j.Stop(stopCtx))

	calls := sweeper.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, sweeper.calls.Load())

	// stopping twice is a no-op
	require.NoError(t, j.Stop(stopCtx))
}

func TestJanitor_DisabledInterval(t *testing.T) {
	sweeper := &countingSweeper{}
	j := worker.NewJanitor(newLogger(), 0, map[string]worker.Sweeper{"c": sweeper})

	require.NoError(t, j.Start(context.Background()))
	time.Sleep(20 * time.Millisecond)

	assert.Zero(t, sweeper.calls.Load())
	require.NoError(t, j.Stop(context.Background()))
}
