package scheduler

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ferrovia/breachpath/segcache"
	"github.com/ferrovia/breachpath/segment"
)

// Scheduler runs a bounded pool of Segment Enumerator workers, resuming
// from an already-populated segcache.Cache where possible.
type Scheduler struct {
	enumerator *segment.Enumerator
	cache      *segcache.Cache
	workers    int
	logger     zerolog.Logger
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the structured logger used for per-key progress lines.
// The zero value is zerolog.Nop(), a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scheduler) { s.logger = logger }
}

// NewScheduler builds a Scheduler whose worker pool is sized
// max(1, runtime.NumCPU()-reservedProcessors).
func NewScheduler(enum *segment.Enumerator, cache *segcache.Cache, reservedProcessors int, opts ...Option) *Scheduler {
	workers := runtime.NumCPU() - reservedProcessors
	if workers < 1 {
		workers = 1
	}

	s := &Scheduler{enumerator: enum, cache: cache, workers: workers, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run dispatches every key to the worker pool and blocks until all are
// ready. It returns the successfully resolved entries and, separately, the
// errors for keys that failed outright (after one cache-write retry).
func (s *Scheduler) Run(ctx context.Context, keys []segment.SegmentKey) (map[segment.SegmentKey]segment.SegmentEntry, map[segment.SegmentKey]error) {
	queues := newQueueState(keys)

	work := make(chan segment.SegmentKey, len(keys))
	for _, k := range keys {
		work <- k
	}
	close(work)

	var mu sync.Mutex
	results := make(map[segment.SegmentKey]segment.SegmentEntry, len(keys))
	failures := make(map[segment.SegmentKey]error)

	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < s.workers; i++ {
		eg.Go(func() error {
			for key := range work {
				select {
				case <-ctx.Done():
					return nil
				default:
				}

				queues.moveToWorking(key)
				entry, err := s.processKey(key)
				queues.moveToReady(key)

				mu.Lock()
				if err != nil {
					failures[key] = err
				} else {
					results[key] = entry
				}
				waiting, working, ready := queues.Counts()
				mu.Unlock()

				s.logger.Info().
					Str("from", key.From).Str("to", key.To).
					Int("waiting", waiting).Int("working", working).Int("ready", ready).
					Err(err).
					Msg("segment key processed")
			}

			return nil
		})
	}
	_ = eg.Wait()

	return results, failures
}

// processKey resolves one key, consulting the cache first, then the
// enumerator, applying the per-error-kind handling spec.md §7 describes.
func (s *Scheduler) processKey(key segment.SegmentKey) (segment.SegmentEntry, error) {
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	entry, err := s.enumerator.Enumerate(key.From, key.To)
	switch {
	case errors.Is(err, segment.ErrUnknownNode):
		s.logger.Warn().Str("from", key.From).Str("to", key.To).Msg("unknown node referenced by segment key")

		return segment.SegmentEntry{Key: key}, nil
	case errors.Is(err, segment.ErrInternalInconsistency):
		return segment.SegmentEntry{}, fmt.Errorf("scheduler: processKey(%s,%s): %w", key.From, key.To, err)
	case err != nil:
		return segment.SegmentEntry{}, fmt.Errorf("scheduler: processKey(%s,%s): %w", key.From, key.To, err)
	}

	if putErr := s.cache.Put(entry); putErr != nil {
		if putErr2 := s.cache.Put(entry); putErr2 != nil {
			return segment.SegmentEntry{}, fmt.Errorf("scheduler: processKey(%s,%s): cache write failed twice: %w", key.From, key.To, putErr2)
		}
	}

	return entry, nil
}
