package preload

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"asset-loader/core/middleware/activity"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LoadFunc loads one object key through the shared loader. Both the critical
// batch and the idle warmer go through it, so warmed keys land in the same
// cache that serves requests.
type LoadFunc func(ctx context.Context, key string) error

// hintTimeout bounds a single background warm triggered by a client hint.
const hintTimeout = time.Minute

// Warmer drives opportunistic cache warming. All of its work is best-effort:
// a key that fails to warm is logged and skipped, never propagated.
type Warmer struct {
	load   LoadFunc
	logger *zap.Logger

	criticalKeys []string
	idleKeys     []string
	concurrency  int
	idleAfter    time.Duration
	interval     time.Duration
}

// NewWarmer creates a warmer from the preload configuration.
func NewWarmer(load LoadFunc, logger *zap.Logger, cfg Config) *Warmer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Warmer{
		load:         load,
		logger:       logger,
		criticalKeys: cfg.CriticalKeys(),
		idleKeys:     cfg.IdleKeys(),
		concurrency:  cfg.concurrency(),
		idleAfter:    cfg.IdleAfter(),
		interval:     cfg.IdleInterval(),
	}
}

// WarmCritical loads every configured critical-path key with bounded
// parallelism. A failing key is logged and does not stop the batch.
func (w *Warmer) WarmCritical(ctx context.Context) (loaded, failed int) {
	if len(w.criticalKeys) == 0 {
		return 0, 0
	}

	var ok, bad int32
	g := new(errgroup.Group)
	g.SetLimit(w.concurrency)

	for _, key := range w.criticalKeys {
		key := key
		g.Go(func() error {
			if err := w.load(ctx, key); err != nil {
				atomic.AddInt32(&bad, 1)
				w.logger.Warn("Critical preload failed",
					zap.String("key", key),
					zap.Error(err),
				)
				return nil
			}
			atomic.AddInt32(&ok, 1)
			return nil
		})
	}
	_ = g.Wait()

	w.logger.Info("Critical preload finished",
		zap.Int32("loaded", ok),
		zap.Int32("failed", bad),
	)
	return int(ok), int(bad)
}

// Hint warms one key in the background and returns immediately. Used when a
// client signals it will likely need an asset soon.
func (w *Warmer) Hint(key string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), hintTimeout)
		defer cancel()

		if err := w.load(ctx, key); err != nil {
			w.logger.Warn("Hinted preload failed",
				zap.String("key", key),
				zap.Error(err),
			)
			return
		}
		w.logger.Debug("Hinted preload done", zap.String("key", key))
	}()
}

// Subscription is the handle on a running idle warmer.
type Subscription struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// Stop terminates the idle warmer and waits until it has exited. Safe to call
// more than once.
func (s *Subscription) Stop() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}

// StartIdleWarmer starts a goroutine that warms the configured idle queue one
// key per tick, but only while the tracker reports a quiet server. The
// goroutine exits once the queue drains or Stop is called.
func (w *Warmer) StartIdleWarmer(tracker *activity.Tracker) *Subscription {
	sub := &Subscription{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	queue := make([]string, len(w.idleKeys))
	copy(queue, w.idleKeys)

	go func() {
		defer close(sub.done)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for len(queue) > 0 {
			select {
			case <-sub.stop:
				return
			case <-ticker.C:
				if !tracker.IdleFor(w.idleAfter) {
					continue
				}

				key := queue[0]
				queue = queue[1:]

				ctx, cancel := context.WithTimeout(context.Background(), hintTimeout)
				if err := w.load(ctx, key); err != nil {
					w.logger.Warn("Idle preload failed",
						zap.String("key", key),
						zap.Error(err),
					)
				} else {
					w.logger.Debug("Idle preload done", zap.String("key", key))
				}
				cancel()
			}
		}
		w.logger.Info("Idle preload queue drained")
	}()

	return sub
}
