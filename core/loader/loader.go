package loader

import (
	"context"
	"sort"
	"sync"
	"time"

	"asset-loader/core/timing"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Resolver maps a resource identifier to its loaded value. It is injected so
// the loader stays independent of any particular backend (object storage in
// production, stubs in tests).
type Resolver func(ctx context.Context, id string) (any, error)

// Loader memoizes resolved resources, de-duplicates concurrent loads for the
// same identifier, and retries transient failures with linear backoff.
//
// Construct one Loader at application start and share it; all state lives on
// the instance.
type Loader struct {
	resolve  Resolver
	logger   *zap.Logger
	recorder *timing.Recorder

	maxAttempts int
	backoff     time.Duration

	mu       sync.RWMutex
	cache    map[string]any
	inFlight map[string]struct{}
	sf       singleflight.Group
}

// Stats is a snapshot of the loader state.
type Stats struct {
	CachedCount   int      `json:"cached_count"`
	InFlightCount int      `json:"in_flight_count"`
	CachedIDs     []string `json:"cached_ids"`
}

// New creates a loader around the given resolver.
func New(resolve Resolver, logger *zap.Logger, recorder *timing.Recorder, cfg Config) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = timing.NewRecorder(logger)
	}
	return &Loader{
		resolve:     resolve,
		logger:      logger,
		recorder:    recorder,
		maxAttempts: cfg.attempts(),
		backoff:     cfg.backoffBase(),
		cache:       make(map[string]any),
		inFlight:    make(map[string]struct{}),
	}
}

// Load resolves id with the configured default attempt budget.
func (l *Loader) Load(ctx context.Context, id string) (any, error) {
	return l.LoadAttempts(ctx, id, l.maxAttempts)
}

// LoadAttempts resolves id, retrying up to maxAttempts times with linear
// backoff between attempts. A cached value is returned immediately.
// Concurrent callers for the same identifier share one underlying attempt
// sequence and one outcome; the attempt budget of the caller that started the
// sequence wins.
func (l *Loader) LoadAttempts(ctx context.Context, id string, maxAttempts int) (any, error) {
	// Fast path: already resolved.
	l.mu.RLock()
	if v, ok := l.cache[id]; ok {
		l.mu.RUnlock()
		return v, nil
	}
	l.mu.RUnlock()

	if maxAttempts <= 0 {
		maxAttempts = l.maxAttempts
	}

	v, err, _ := l.sf.Do(id, func() (any, error) {
		// Double-check after winning the flight; a previous flight may have
		// populated the cache while we queued.
		l.mu.RLock()
		if v, ok := l.cache[id]; ok {
			l.mu.RUnlock()
			return v, nil
		}
		l.mu.RUnlock()

		l.markInFlight(id)
		defer l.unmarkInFlight(id)

		v, err := l.run(ctx, id, maxAttempts)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.cache[id] = v
		l.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// run executes the bounded retry sequence for id. The failed identifier is
// not remembered; singleflight drops the key once this returns, so the next
// caller starts a fresh sequence.
func (l *Loader) run(ctx context.Context, id string, maxAttempts int) (any, error) {
	label := "load:" + id

	var last error
	attempt := 0
	for attempt < maxAttempts {
		attempt++

		end := l.recorder.Start(label)
		v, err := l.resolve(ctx, id)
		end()

		if err == nil {
			if attempt > 1 {
				l.logger.Info("Resource loaded after retry",
					zap.String("id", id),
					zap.Int("attempt", attempt),
				)
			}
			return v, nil
		}
		last = err
		l.logger.Warn("Load attempt failed",
			zap.String("id", id),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", maxAttempts),
			zap.Error(err),
		)

		if attempt == maxAttempts {
			break
		}
		// Linear backoff: wait attempt*base before the next try.
		if err := l.sleep(ctx, time.Duration(attempt)*l.backoff); err != nil {
			last = err
			break
		}
	}

	return nil, &LoadError{ID: id, Attempts: attempt, Last: last}
}

func (l *Loader) sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (l *Loader) markInFlight(id string) {
	l.mu.Lock()
	l.inFlight[id] = struct{}{}
	l.mu.Unlock()
}

func (l *Loader) unmarkInFlight(id string) {
	l.mu.Lock()
	delete(l.inFlight, id)
	l.mu.Unlock()
}

// Stats reports the current cache and in-flight state. CachedIDs is sorted.
func (l *Loader) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]string, 0, len(l.cache))
	for id := range l.cache {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return Stats{
		CachedCount:   len(l.cache),
		InFlightCount: len(l.inFlight),
		CachedIDs:     ids,
	}
}

// ClearCache drops every cached entry and forgets in-flight bookkeeping, so
// the next Load for any identifier starts a fresh attempt sequence. An attempt
// sequence that is already running completes normally and re-inserts its
// result into the cache.
func (l *Loader) ClearCache() {
	l.mu.Lock()
	for id := range l.inFlight {
		l.sf.Forget(id)
		delete(l.inFlight, id)
	}
	l.cache = make(map[string]any)
	l.mu.Unlock()

	l.logger.Info("Loader cache cleared")
}
