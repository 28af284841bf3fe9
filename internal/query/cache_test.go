package query_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nexhomes/nexcms/internal/query"
)

func TestKeyString(t *testing.T) {
	if got := (query.Key{"projects", "status", "ongoing"}).String(); got != "projects:status:ongoing" {
		t.Errorf("String() = %q", got)
	}
	if !(query.Key{"projects", "status"}).HasPrefix(query.Key{"projects"}) {
		t.Errorf("HasPrefix(projects) = false")
	}
	if (query.Key{"projectsx"}).HasPrefix(query.Key{"projects"}) {
		t.Errorf("HasPrefix matched across a segment boundary")
	}
}

func TestFetchCachesWithinStaleTime(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32
	c := query.New(query.WithStaleTime(time.Minute))

	fn := func(context.Context) ([]string, error) {
		calls.Add(1)
		return []string{"a", "b"}, nil
	}

	for i := 0; i < 3; i++ {
		got, stale, err := query.Fetch(ctx, c, query.Key{"projects"}, fn)
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if stale {
			t.Errorf("fresh value reported stale")
		}
		if len(got) != 2 {
			t.Errorf("Fetch() = %v", got)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("fetch ran %d times, want 1", got)
	}
}

func TestConcurrentFetchesShareOneCall(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32
	release := make(chan struct{})
	c := query.New()

	fn := func(context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 42, nil
	}

	const workers = 16
	var wg sync.WaitGroup
	results := make([]int, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _, errs[i] = query.Fetch(ctx, c, query.Key{"services"}, fn)
		}(i)
	}

	// Give every worker a chance to either start the call or join it.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("fetch ran %d times under contention, want 1", got)
	}
	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("worker %d error = %v", i, errs[i])
		}
		if results[i] != 42 {
			t.Errorf("worker %d result = %d", i, results[i])
		}
	}
}

func TestFetchRetriesAndSurfacesLastError(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32
	c := query.New(query.WithRetryCount(2))

	errFinal := errors.New("attempt 3 failed")
	fn := func(context.Context) (int, error) {
		n := calls.Add(1)
		if n < 3 {
			return 0, errors.New("transient")
		}
		return 0, errFinal
	}

	_, _, err := query.Fetch(ctx, c, query.Key{"news"}, fn)
	if !errors.Is(err, errFinal) {
		t.Fatalf("Fetch() error = %v, want the final attempt's error", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("fetch ran %d times, want 1 + 2 retries", got)
	}

	// Failures are not cached; the next call tries again and succeeds.
	ok := func(context.Context) (int, error) { return 7, nil }
	got, _, err := query.Fetch(ctx, c, query.Key{"news"}, ok)
	if err != nil || got != 7 {
		t.Errorf("Fetch() after failure = (%d, %v), want (7, nil)", got, err)
	}
}

func TestStaleValueServedWhileRevalidating(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	advance := func(d time.Duration) {
		mu.Lock()
		now = now.Add(d)
		mu.Unlock()
	}

	var calls atomic.Int32
	done := make(chan struct{}, 1)
	c := query.New(query.WithStaleTime(30*time.Second), query.WithClock(clock))

	fn := func(context.Context) (any, error) {
		n := calls.Add(1)
		select {
		case done <- struct{}{}:
		default:
		}
		return int(n), nil
	}

	if v, stale, _ := c.Fetch(ctx, query.Key{"jobs"}, fn); stale || v != 1 {
		t.Fatalf("first Fetch() = (%v, stale=%t)", v, stale)
	}
	<-done

	advance(31 * time.Second)
	v, stale, err := c.Fetch(ctx, query.Key{"jobs"}, fn)
	if err != nil {
		t.Fatalf("stale Fetch() error = %v", err)
	}
	if !stale || v != 1 {
		t.Fatalf("stale Fetch() = (%v, stale=%t), want cached value flagged stale", v, stale)
	}

	// After the background revalidation lands, the fresh value is served.
	<-done
	deadline := time.After(time.Second)
	for {
		v, stale, _ := c.Fetch(ctx, query.Key{"jobs"}, fn)
		if !stale && v == 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("revalidated value never served, last = (%v, stale=%t)", v, stale)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestStaleValueRetainedWhenRevalidationFails(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	var calls atomic.Int32
	done := make(chan struct{}, 2)
	c := query.New(query.WithStaleTime(30*time.Second), query.WithRetryCount(0), query.WithClock(clock))

	errDown := errors.New("backend down")
	fn := func(context.Context) (any, error) {
		defer func() { done <- struct{}{} }()
		if calls.Add(1) == 1 {
			return "cached", nil
		}
		return nil, errDown
	}

	if _, _, err := c.Fetch(ctx, query.Key{"inquiries"}, fn); err != nil {
		t.Fatalf("seed Fetch() error = %v", err)
	}
	<-done

	mu.Lock()
	now = now.Add(time.Minute)
	mu.Unlock()

	v, stale, err := c.Fetch(ctx, query.Key{"inquiries"}, fn)
	if err != nil || !stale || v != "cached" {
		t.Fatalf("stale Fetch() = (%v, stale=%t, err=%v)", v, stale, err)
	}
	<-done

	// The stale value survives the failed refetch and the error is recorded.
	v, stale, err = c.Fetch(ctx, query.Key{"inquiries"}, fn)
	if err != nil || v != "cached" {
		t.Fatalf("Fetch() after failed revalidation = (%v, err=%v)", v, err)
	}
	_ = stale
	if got := c.LastError(query.Key{"inquiries"}); !errors.Is(got, errDown) {
		t.Errorf("LastError() = %v, want the revalidation failure", got)
	}
}

func TestInvalidatePrefix(t *testing.T) {
	c := query.New()
	c.Set(query.Key{"projects"}, 1)
	c.Set(query.Key{"projects", "status", "ongoing"}, 2)
	c.Set(query.Key{"projectsummary"}, 3)

	if dropped := c.InvalidatePrefix(query.Key{"projects"}); dropped != 2 {
		t.Fatalf("InvalidatePrefix dropped %d entries, want 2", dropped)
	}

	var calls atomic.Int32
	count := func(context.Context) (any, error) { calls.Add(1); return 0, nil }
	if _, _, err := c.Fetch(context.Background(), query.Key{"projectsummary"}, count); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("unrelated key was invalidated")
	}
}

func TestFetchTypeMismatch(t *testing.T) {
	c := query.New()
	c.Set(query.Key{"projects"}, "not-an-int")

	_, _, err := query.Fetch(context.Background(), c, query.Key{"projects"}, func(context.Context) (int, error) {
		return 0, nil
	})
	if err == nil {
		t.Fatalf("Fetch() accepted a mistyped cache entry")
	}
}

func TestDisabledCacheFetchesEveryTime(t *testing.T) {
	var calls atomic.Int32
	c := query.New(query.WithDisabled(true))

	for i := 0; i < 3; i++ {
		v, stale, err := c.Fetch(context.Background(), query.Key{"projects"}, func(context.Context) (any, error) {
			return int(calls.Add(1)), nil
		})
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if stale {
			t.Fatalf("disabled cache reported a stale value")
		}
		if v.(int) != i+1 {
			t.Fatalf("Fetch() = %v, want %d", v, i+1)
		}
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 loader calls, got %d", calls.Load())
	}
}

func TestStaleValueServedWithoutRefetchWhenDisabledOnMount(t *testing.T) {
	var now time.Time
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	var calls atomic.Int32
	c := query.New(
		query.WithStaleTime(10*time.Second),
		query.WithRefetchOnMount(false),
		query.WithClock(clock),
	)

	load := func(context.Context) (any, error) { return int(calls.Add(1)), nil }
	if _, _, err := c.Fetch(context.Background(), query.Key{"projects"}, load); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	mu.Lock()
	now = now.Add(time.Minute)
	mu.Unlock()

	v, stale, err := c.Fetch(context.Background(), query.Key{"projects"}, load)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !stale {
		t.Fatal("expected the aged entry to be reported stale")
	}
	if v.(int) != 1 {
		t.Fatalf("Fetch() = %v, want cached 1", v)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected no revalidation, loader ran %d times", calls.Load())
	}
}
