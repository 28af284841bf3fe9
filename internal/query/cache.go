package query

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/nexhomes/nexcms/internal/logging"
	"github.com/nexhomes/nexcms/pkg/interfaces"
)

const (
	defaultStaleTime  = 30 * time.Second
	defaultRetryCount = 1
	defaultCapacity   = 256
)

// FetchFunc loads fresh data for one query key.
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	value     any
	fetchedAt time.Time
	lastErr   error
}

type call struct {
	done  chan struct{}
	value any
	err   error
}

// Cache deduplicates concurrent fetches per key and serves cached values with
// stale-while-revalidate semantics: data younger than the stale time is served
// directly, older data is served immediately while one background refetch
// runs, and a missing key blocks every caller on a single shared fetch.
type Cache struct {
	mu       sync.Mutex
	entries  *expirable.LRU[string, *entry]
	inflight map[string]*call

	staleTime      time.Duration
	retryCount     int
	disabled       bool
	refetchOnMount bool
	now            func() time.Time
	logger         interfaces.Logger
}

// Option configures the cache at construction time.
type Option func(*Cache)

// WithStaleTime sets how long a cached value is served without revalidation.
func WithStaleTime(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.staleTime = d
		}
	}
}

// WithRefetchOnMount controls whether serving a stale entry also kicks off a
// background revalidation. When false, stale data is served as-is and only
// invalidation forces a refetch.
func WithRefetchOnMount(enabled bool) Option {
	return func(c *Cache) {
		c.refetchOnMount = enabled
	}
}

// WithDisabled bypasses cached entries entirely; every Fetch runs its loader
// with the configured retry budget. Deduplication of concurrent fetches for
// the same key stays active.
func WithDisabled(disabled bool) Option {
	return func(c *Cache) {
		c.disabled = disabled
	}
}

// WithRetryCount sets how many immediate retries follow a failed fetch.
func WithRetryCount(n int) Option {
	return func(c *Cache) {
		if n >= 0 {
			c.retryCount = n
		}
	}
}

// WithCapacity bounds the number of retained entries; least recently used
// entries are evicted first.
func WithCapacity(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.entries = expirable.NewLRU[string, *entry](n, nil, 0)
		}
	}
}

// WithLogger injects the cache logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock overrides the clock used for staleness checks.
func WithClock(clock func() time.Time) Option {
	return func(c *Cache) {
		if clock != nil {
			c.now = clock
		}
	}
}

// New constructs a query cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries:        expirable.NewLRU[string, *entry](defaultCapacity, nil, 0),
		inflight:       make(map[string]*call),
		staleTime:      defaultStaleTime,
		retryCount:     defaultRetryCount,
		refetchOnMount: true,
		now:            time.Now,
		logger:         logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the cached value for key, loading it with fn when absent. The
// boolean reports whether the returned value is stale; stale values trigger
// one background revalidation. An error is returned only when no cached value
// exists and every attempt failed.
func (c *Cache) Fetch(ctx context.Context, key Key, fn FetchFunc) (any, bool, error) {
	k := key.String()

	c.mu.Lock()
	if e, ok := c.entries.Get(k); ok && !c.disabled {
		if c.now().Sub(e.fetchedAt) <= c.staleTime {
			c.mu.Unlock()
			return e.value, false, nil
		}
		if c.refetchOnMount {
			c.revalidateLocked(ctx, k, fn)
		}
		c.mu.Unlock()
		return e.value, true, nil
	}

	if pending, ok := c.inflight[k]; ok {
		c.mu.Unlock()
		select {
		case <-pending.done:
			return pending.value, false, pending.err
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
	}

	pending := &call{done: make(chan struct{})}
	c.inflight[k] = pending
	c.mu.Unlock()

	value, err := c.attempt(ctx, k, fn)
	pending.value, pending.err = value, err

	c.mu.Lock()
	delete(c.inflight, k)
	if err == nil && !c.disabled {
		c.entries.Add(k, &entry{value: value, fetchedAt: c.now()})
	}
	c.mu.Unlock()

	close(pending.done)
	return value, false, err
}

// attempt runs fn with the configured number of immediate retries and returns
// the last error when every attempt fails.
func (c *Cache) attempt(ctx context.Context, k string, fn FetchFunc) (any, error) {
	var lastErr error
	for i := 0; i <= c.retryCount; i++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return nil, lastErr
			}
			return nil, err
		}
		value, err := fn(ctx)
		if err == nil {
			return value, nil
		}
		lastErr = err
		c.logger.Debug("query.fetch_failed", "key", k, "attempt", i+1, "error", err)
	}
	return nil, lastErr
}

// revalidateLocked starts one background refetch for a stale key unless one is
// already running. A failed revalidation keeps the stale entry and records the
// error; the cached value stays served.
func (c *Cache) revalidateLocked(ctx context.Context, k string, fn FetchFunc) {
	if _, ok := c.inflight[k]; ok {
		return
	}
	pending := &call{done: make(chan struct{})}
	c.inflight[k] = pending

	// The caller's request may finish before the refetch does.
	bg := context.WithoutCancel(ctx)
	go func() {
		value, err := c.attempt(bg, k, fn)
		pending.value, pending.err = value, err

		c.mu.Lock()
		delete(c.inflight, k)
		if err == nil {
			c.entries.Add(k, &entry{value: value, fetchedAt: c.now()})
		} else if e, ok := c.entries.Get(k); ok {
			e.lastErr = err
			c.logger.Warn("query.revalidate_failed", "key", k, "error", err)
		}
		c.mu.Unlock()

		close(pending.done)
	}()
}

// LastError returns the most recent background failure for a key, if any. A
// successful revalidation clears it.
func (c *Cache) LastError(key Key) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries.Get(key.String()); ok {
		return e.lastErr
	}
	return nil
}

// Set primes the cache with a known-fresh value, e.g. the response of a
// mutation that already carries the new state.
func (c *Cache) Set(key Key, value any) {
	c.mu.Lock()
	c.entries.Add(key.String(), &entry{value: value, fetchedAt: c.now()})
	c.mu.Unlock()
}

// Invalidate drops one key; the next Fetch loads it fresh.
func (c *Cache) Invalidate(key Key) {
	c.mu.Lock()
	c.entries.Remove(key.String())
	c.mu.Unlock()
}

// InvalidatePrefix drops every key that starts with the given segments, so
// invalidating {"projects"} also drops {"projects","status","ongoing"}.
func (c *Cache) InvalidatePrefix(prefix Key) int {
	p := prefix.String()
	c.mu.Lock()
	defer c.mu.Unlock()

	dropped := 0
	for _, k := range c.entries.Keys() {
		if k == p || strings.HasPrefix(k, p+":") {
			c.entries.Remove(k)
			dropped++
		}
	}
	return dropped
}

// Clear drops every cached entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries.Purge()
	c.mu.Unlock()
}

// Fetch loads a typed value through the cache. It fails when the cached value
// for key was stored with a different type.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fn func(ctx context.Context) (T, error)) (T, bool, error) {
	value, stale, err := c.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		var zero T
		return zero, stale, err
	}
	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, stale, fmt.Errorf("query: key %q holds %T", key.String(), value)
	}
	return typed, stale, nil
}
