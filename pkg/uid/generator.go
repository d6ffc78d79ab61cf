package uid

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/binary"
	"math"
	"os"
	"sync"
	"time"
)

// Sequence bounds for one millisecond of UID space. The running sequence is
// kept in an int32 so that "every 16-bit value issued" is distinguishable
// from "fresh millisecond" at the exhaustion check.
const (
	minSeq = int32(math.MinInt16)
	maxSeq = int32(math.MaxInt16)
)

// clockTick is how long an exhausted generator waits before re-reading the
// clock. The wall clock moves past the stored millisecond within a few ticks.
const clockTick = time.Millisecond

// Generator mints UIDs that are pairwise distinct for the life of the
// generator. All state lives behind one mutex: a host discriminant drawn once
// from a random source, the millisecond currently being carved up, and the
// next sequence number within it. The zero value is ready to use.
type Generator struct {
	mu     sync.Mutex
	init   bool
	unique int32
	lastMs int64
	seq    int32

	generated uint64
	waits     uint64
	retreats  uint64

	// overridable in tests
	now  func() int64
	rand func() int32
}

// NewGenerator creates a Generator with its own discriminant and sequence
// space, independent of the package-level default.
func NewGenerator() *Generator { return &Generator{} }

// Next returns a UID distinct from every other UID this generator has
// returned or will return.
//
// The timestamp only moves when the 16-bit sequence space for the current
// millisecond is used up. At that point Next adopts a fresh clock reading,
// sleeping in ~1ms steps (without holding the lock) until the clock leaves
// the stored millisecond; if the clock went backwards instead, the stored
// millisecond is bumped by one so issued timestamps never regress.
//
// Cancelling ctx never abandons generation: the wait wakes early once to
// observe the cancellation, then keeps retrying until a UID is produced.
// Callers that must stop on cancellation check ctx.Err after Next returns.
func (g *Generator) Next(ctx context.Context) UID {
	done := ctx.Done()

	g.mu.Lock()
	if !g.init {
		g.unique = g.drawUnique()
		g.lastMs = g.nowMilli()
		g.seq = minSeq
		g.init = true
	}
	for g.seq > maxSeq {
		ms := g.nowMilli()
		if ms == g.lastMs {
			g.waits++
			g.mu.Unlock()
			if sleepTick(done) {
				// Woken by cancellation; later waits run on the plain
				// timer so a closed done channel cannot spin the loop.
				done = nil
			}
			g.mu.Lock()
			continue
		}
		if ms < g.lastMs {
			// Clock went backwards; keep issued timestamps monotonic.
			ms = g.lastMs + 1
			g.retreats++
		}
		g.lastMs = ms
		g.seq = minSeq
	}
	u := UID{unique: g.unique, time: g.lastMs, count: int16(g.seq)}
	g.seq++
	g.generated++
	g.mu.Unlock()
	return u
}

// Stats is a snapshot of generator counters.
type Stats struct {
	// Generated is the number of UIDs issued.
	Generated uint64
	// ClockWaits is the number of ~1ms sleeps spent waiting for the clock to
	// leave an exhausted millisecond.
	ClockWaits uint64
	// ClockRetreats counts timestamp advances where the clock had moved
	// backwards and the stored millisecond was bumped instead.
	ClockRetreats uint64
}

// Stats returns a consistent snapshot of the generator's counters.
func (g *Generator) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Stats{Generated: g.generated, ClockWaits: g.waits, ClockRetreats: g.retreats}
}

func (g *Generator) nowMilli() int64 {
	if g.now != nil {
		return g.now()
	}
	return time.Now().UnixMilli()
}

func (g *Generator) drawUnique() int32 {
	if g.rand != nil {
		return g.rand()
	}
	return randomUnique()
}

func sleepTick(done <-chan struct{}) bool {
	t := time.NewTimer(clockTick)
	defer t.Stop()
	select {
	case <-t.C:
		return false
	case <-done:
		return true
	}
}

// randomUnique draws the host discriminant. It only needs to resist
// accidental collision between processes on one host, not prediction.
func randomUnique() int32 {
	var b [4]byte
	if _, err := cryptorand.Read(b[:]); err == nil {
		return int32(binary.BigEndian.Uint32(b[:]))
	}
	// Fall back to time and pid so the discriminant still varies across
	// processes.
	return int32(time.Now().UnixNano()) ^ int32(uint32(os.Getpid())<<16)
}

// std is the package-level generator behind Next and Default. It gives the
// process one shared sequence space.
var std = NewGenerator()

// Default returns the package-level generator.
func Default() *Generator { return std }

// Next returns a UID from the package-level generator.
func Next(ctx context.Context) UID { return std.Next(ctx) }
