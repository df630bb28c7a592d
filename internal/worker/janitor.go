package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Sweeper drops expired entries and reports how many were removed.
type Sweeper interface {
	ClearExpired() int
}

// JanitorMetrics contains sweep counters.
type JanitorMetrics struct {
	Sweeps      int64     `json:"sweeps"`
	Removed     int64     `json:"removed"`
	LastSweepAt time.Time `json:"last_sweep_at"`
}

// Janitor periodically calls ClearExpired on registered caches. Caches expire
// entries lazily on their own; the janitor only bounds how long dead entries
// keep occupying slots.
type Janitor struct {
	logger   *slog.Logger
	interval time.Duration
	sweepers map[string]Sweeper

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	metrics atomic.Value // holds JanitorMetrics
}

var ErrAlreadyStarted = errors.New("janitor already started")

func NewJanitor(logger *slog.Logger, interval time.Duration, sweepers map[string]Sweeper) *Janitor {
	j := &Janitor{
		logger:   logger,
		interval: interval,
		sweepers: sweepers,
	}
	j.metrics.Store(JanitorMetrics{})

	return j
}

// Start launches the sweep loop. A non-positive interval leaves the janitor idle.
func (j *Janitor) Start(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.interval <= 0 {
		j.logger.InfoContext(ctx, "cache janitor disabled")
		return nil
	}
	if j.cancel != nil {
		return ErrAlreadyStarted
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	j.cancel = cancel
	j.done = make(chan struct{})

	go j.loop(loopCtx, j.done)

	j.logger.InfoContext(ctx, "cache janitor started", slog.Duration("interval", j.interval))
	return nil
}

// Stop halts the loop and waits for it to exit or for ctx to expire.
func (j *Janitor) Stop(ctx context.Context) error {
	j.mu.Lock()
	cancel, done := j.cancel, j.done
	j.cancel, j.done = nil, nil
	j.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		j.logger.InfoContext(ctx, "cache janitor stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sweep runs one pass over every sweeper and returns the removed count per name.
func (j *Janitor) Sweep(ctx context.Context) map[string]int {
	removed := make(map[string]int, len(j.sweepers))
	total := 0
	for name, s := range j.sweepers {
		n := s.ClearExpired()
		removed[name] = n
		total += n
	}

	m := j.Metrics()
	m.Sweeps++
	m.Removed += int64(total)
	m.LastSweepAt = time.Now()
	j.metrics.Store(m)

	if total > 0 {
		j.logger.DebugContext(ctx, "cache janitor sweep", slog.Any("removed", removed))
	}

	return removed
}

func (j *Janitor) Metrics() JanitorMetrics {
	m, _ := j.metrics.Load().(JanitorMetrics)
	return m
}

func (j *Janitor) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}
