package loader_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"asset-loader/core/loader"
	"asset-loader/core/timing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fastConfig keeps backoff short so retry tests stay quick.
func fastConfig() loader.Config {
	return loader.Config{MaxAttempts: 3, BackoffMillis: 10}
}

func newLoader(t *testing.T, resolve loader.Resolver, cfg loader.Config) *loader.Loader {
	t.Helper()
	return loader.New(resolve, zap.NewNop(), timing.NewRecorder(nil), cfg)
}

func TestLoad_CachesValue(t *testing.T) {
	var calls int32
	resolve := func(ctx context.Context, id string) (any, error) {
		atomic.AddInt32(&calls, 1)
		return "value-" + id, nil
	}
	l := newLoader(t, resolve, fastConfig())

	first, err := l.Load(context.Background(), "clothing")
	require.NoError(t, err)
	assert.Equal(t, "value-clothing", first)

	second, err := l.Load(context.Background(), "clothing")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// The resolver must not run again for a cached identifier.
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestLoad_DeduplicatesConcurrentCallers(t *testing.T) {
	var calls int32
	entered := make(chan struct{})
	release := make(chan struct{})

	resolve := func(ctx context.Context, id string) (any, error) {
		atomic.AddInt32(&calls, 1)
		close(entered)
		<-release
		return "shared", nil
	}
	l := newLoader(t, resolve, fastConfig())

	var wg sync.WaitGroup
	results := make([]any, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = l.Load(context.Background(), "shared-id")
		}(i)
	}

	// Wait until the first caller is inside the resolver, give the second
	// caller time to join the in-flight operation, then let it finish.
	<-entered
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, "shared", results[0])
	assert.Equal(t, "shared", results[1])
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "both callers must share one attempt sequence")
}

func TestLoad_RetryBound(t *testing.T) {
	var calls int32
	cause := errors.New("storage unavailable")
	resolve := func(ctx context.Context, id string) (any, error) {
		atomic.AddInt32(&calls, 1)
		return nil, cause
	}
	l := newLoader(t, resolve, fastConfig())

	_, err := l.Load(context.Background(), "broken")
	require.Error(t, err)

	var loadErr *loader.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "broken", loadErr.ID)
	assert.Equal(t, 3, loadErr.Attempts)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "a permanently failing resolver runs exactly maxAttempts times")
}

func TestLoad_BackoffIsLinear(t *testing.T) {
	var mu sync.Mutex
	var stamps []time.Time
	resolve := func(ctx context.Context, id string) (any, error) {
		mu.Lock()
		stamps = append(stamps, time.Now())
		mu.Unlock()
		return nil, errors.New("boom")
	}
	l := newLoader(t, resolve, loader.Config{MaxAttempts: 3, BackoffMillis: 50})

	_, err := l.Load(context.Background(), "slow")
	require.Error(t, err)
	require.Len(t, stamps, 3)

	gap1 := stamps[1].Sub(stamps[0])
	gap2 := stamps[2].Sub(stamps[1])

	// Attempt 1 failing waits ~1x base, attempt 2 failing waits ~2x base.
	assert.GreaterOrEqual(t, gap1, 45*time.Millisecond)
	assert.GreaterOrEqual(t, gap2, 90*time.Millisecond)
	assert.Greater(t, gap2, gap1)
}

func TestLoad_FailureIsNotSticky(t *testing.T) {
	var calls int32
	var failing int32 = 1
	resolve := func(ctx context.Context, id string) (any, error) {
		atomic.AddInt32(&calls, 1)
		if atomic.LoadInt32(&failing) == 1 {
			return nil, errors.New("transient")
		}
		return "recovered", nil
	}
	l := newLoader(t, resolve, fastConfig())

	_, err := l.Load(context.Background(), "flaky")
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))

	// The identifier is forgotten after a terminal failure; the next call
	// starts a fresh attempt sequence.
	atomic.StoreInt32(&failing, 0)
	v, err := l.Load(context.Background(), "flaky")
	require.NoError(t, err)
	assert.Equal(t, "recovered", v)
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
}

func TestLoad_SucceedsAfterRetries(t *testing.T) {
	var calls int32
	resolve := func(ctx context.Context, id string) (any, error) {
		n := atomic.AddInt32(&calls, 1)
		if n < 3 {
			return nil, fmt.Errorf("attempt %d failed", n)
		}
		return "third time lucky", nil
	}
	l := newLoader(t, resolve, fastConfig())

	v, err := l.Load(context.Background(), "eventually")
	require.NoError(t, err)
	assert.Equal(t, "third time lucky", v)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestLoad_ContextCancelledDuringBackoff(t *testing.T) {
	var calls int32
	resolve := func(ctx context.Context, id string) (any, error) {
		atomic.AddInt32(&calls, 1)
		return nil, errors.New("boom")
	}
	l := newLoader(t, resolve, loader.Config{MaxAttempts: 3, BackoffMillis: 200})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := l.Load(ctx, "cancelled")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "cancellation during backoff stops further attempts")
}

func TestClearCache(t *testing.T) {
	var calls int32
	resolve := func(ctx context.Context, id string) (any, error) {
		atomic.AddInt32(&calls, 1)
		return "v", nil
	}
	l := newLoader(t, resolve, fastConfig())

	_, err := l.Load(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, 1, l.Stats().CachedCount)

	l.ClearCache()
	assert.Equal(t, 0, l.Stats().CachedCount)

	_, err = l.Load(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "clearing the cache makes the next load hit the resolver again")
}

func TestStats(t *testing.T) {
	blocked := make(chan struct{})
	entered := make(chan struct{})
	resolve := func(ctx context.Context, id string) (any, error) {
		if id == "pending" {
			close(entered)
			<-blocked
		}
		return "v-" + id, nil
	}
	l := newLoader(t, resolve, fastConfig())

	_, err := l.Load(context.Background(), "b")
	require.NoError(t, err)
	_, err = l.Load(context.Background(), "a")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = l.Load(context.Background(), "pending")
	}()
	<-entered

	stats := l.Stats()
	assert.Equal(t, 2, stats.CachedCount)
	assert.Equal(t, 1, stats.InFlightCount)
	assert.Equal(t, []string{"a", "b"}, stats.CachedIDs)

	close(blocked)
	<-done

	stats = l.Stats()
	assert.Equal(t, 3, stats.CachedCount)
	assert.Equal(t, 0, stats.InFlightCount)
}

func TestLoadAttempts_ZeroFallsBackToDefault(t *testing.T) {
	var calls int32
	resolve := func(ctx context.Context, id string) (any, error) {
		atomic.AddInt32(&calls, 1)
		return nil, errors.New("boom")
	}
	l := newLoader(t, resolve, loader.Config{MaxAttempts: 2, BackoffMillis: 5})

	_, err := l.LoadAttempts(context.Background(), "x", 0)
	require.Error(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
