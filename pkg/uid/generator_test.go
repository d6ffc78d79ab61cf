package uid

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestNextSameMillisecond(t *testing.T) {
	g := NewGenerator()
	g.now = func() int64 { return 1000 }

	a := g.Next(context.Background())
	b := g.Next(context.Background())
	if a.Unique() != b.Unique() {
		t.Fatalf("discriminant changed between calls: %d vs %d", a.Unique(), b.Unique())
	}
	if a.Time() != 1000 || b.Time() != 1000 {
		t.Fatalf("times = %d, %d, want 1000", a.Time(), b.Time())
	}
	if a.Count() != math.MinInt16 {
		t.Fatalf("first count = %d, want %d", a.Count(), math.MinInt16)
	}
	if b.Count() != a.Count()+1 {
		t.Fatalf("counts not consecutive: %d then %d", a.Count(), b.Count())
	}
}

func TestGeneratedCarriesRealTimestamp(t *testing.T) {
	// A generated UID must not collide with the well-known forms, whose
	// timestamp is always zero.
	u := NewGenerator().Next(context.Background())
	if u.Time() == 0 {
		t.Fatalf("generated UID has zero timestamp")
	}
}

func TestNextDistinctSequential(t *testing.T) {
	g := NewGenerator()
	seen := make(map[UID]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		u := g.Next(context.Background())
		if _, dup := seen[u]; dup {
			t.Fatalf("duplicate UID %v at iteration %d", u, i)
		}
		seen[u] = struct{}{}
	}
}

func TestNextDistinctConcurrent(t *testing.T) {
	g := NewGenerator()
	const workers, per = 8, 2000

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[UID]struct{}, workers*per)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]UID, 0, per)
			for j := 0; j < per; j++ {
				local = append(local, g.Next(context.Background()))
			}
			mu.Lock()
			for _, u := range local {
				seen[u] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	if len(seen) != workers*per {
		t.Fatalf("got %d distinct UIDs, want %d", len(seen), workers*per)
	}
}

func TestSequenceExhaustionWaitsNextMs(t *testing.T) {
	g := NewGenerator()
	var ms atomic.Int64
	ms.Store(2000)
	g.now = ms.Load

	_ = g.Next(context.Background())
	g.mu.Lock()
	g.seq = maxSeq
	g.mu.Unlock()

	last := g.Next(context.Background())
	if last.Count() != math.MaxInt16 {
		t.Fatalf("count = %d, want %d", last.Count(), math.MaxInt16)
	}

	done := make(chan UID, 1)
	go func() { done <- g.Next(context.Background()) }()

	// Let the goroutine reach the wait loop before moving the clock.
	time.AfterFunc(10*time.Millisecond, func() { ms.Store(2001) })

	select {
	case u := <-done:
		if u.Time() != 2001 {
			t.Fatalf("time = %d, want 2001", u.Time())
		}
		if u.Count() != math.MinInt16 {
			t.Fatalf("count = %d, want fresh block start %d", u.Count(), math.MinInt16)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timeout waiting for exhaustion handling")
	}
	if s := g.Stats(); s.ClockWaits == 0 {
		t.Fatalf("expected clock waits to be recorded")
	}
}

func TestClockRegressionAdvancesTimestamp(t *testing.T) {
	g := NewGenerator()
	var ms atomic.Int64
	ms.Store(1000)
	g.now = ms.Load

	a := g.Next(context.Background())
	g.mu.Lock()
	g.seq = maxSeq + 1
	g.mu.Unlock()
	ms.Store(900) // clock went backwards

	b := g.Next(context.Background())
	if b.Time() != 1001 {
		t.Fatalf("time = %d, want 1001", b.Time())
	}
	if a.Compare(b) >= 0 {
		t.Fatalf("expected b after a despite regression")
	}
	if s := g.Stats(); s.ClockRetreats != 1 {
		t.Fatalf("ClockRetreats = %d, want 1", s.ClockRetreats)
	}
}

func TestLazyInitDrawsDiscriminantOnce(t *testing.T) {
	g := NewGenerator()
	draws := 0
	g.rand = func() int32 { draws++; return 0x1234 }
	g.now = func() int64 { return 5 }

	a := g.Next(context.Background())
	b := g.Next(context.Background())
	if draws != 1 {
		t.Fatalf("discriminant drawn %d times, want 1", draws)
	}
	if a.Unique() != 0x1234 || b.Unique() != 0x1234 {
		t.Fatalf("uniques = %d, %d, want 0x1234", a.Unique(), b.Unique())
	}
}

func TestCanceledContextStillGenerates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGenerator()
	var ms atomic.Int64
	ms.Store(3000)
	g.now = ms.Load

	_ = g.Next(ctx)
	g.mu.Lock()
	g.seq = maxSeq + 1
	g.mu.Unlock()

	done := make(chan UID, 1)
	go func() { done <- g.Next(ctx) }()
	time.AfterFunc(10*time.Millisecond, func() { ms.Store(3001) })

	select {
	case u := <-done:
		if u.Time() != 3001 {
			t.Fatalf("time = %d, want 3001", u.Time())
		}
		if ctx.Err() == nil {
			t.Fatalf("cancellation should remain observable after Next")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("canceled context abandoned generation")
	}
}

func TestStatsCounts(t *testing.T) {
	g := NewGenerator()
	for i := 0; i < 5; i++ {
		_ = g.Next(context.Background())
	}
	s := g.Stats()
	if s.Generated != 5 {
		t.Fatalf("Generated = %d, want 5", s.Generated)
	}
}

func TestPackageDefault(t *testing.T) {
	a := Next(context.Background())
	b := Next(context.Background())
	if a == b {
		t.Fatalf("package generator returned duplicate UIDs")
	}
	if s := Default().Stats(); s.Generated < 2 {
		t.Fatalf("package counter = %d, want at least 2", s.Generated)
	}
}
