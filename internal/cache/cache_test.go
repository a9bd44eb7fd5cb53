package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestStore_RoundTrip(t *testing.T) {
	s := New(4, time.Minute)
	k := Key{Kind: "ohlcv", Symbol: "2330.TW", Start: "2024-01-01", End: "2024-01-31"}

	if _, ok := s.Get(k); ok {
		t.Fatalf("expected miss on empty store")
	}

	val := []string{"a", "b"}
	s.Put(k, val)

	got, ok := s.Get(k)
	if !ok {
		t.Fatalf("expected hit after Put")
	}
	if gs, ok := got.([]string); !ok || len(gs) != 2 || gs[0] != "a" {
		t.Fatalf("unexpected value: %#v", got)
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	s := New(4, 600*time.Second)

	// Mock the clock
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	k := Key{Kind: "div", Symbol: "AAPL", Start: "2024-01-01", End: "2024-06-01"}
	s.Put(k, "payload")

	// Just before expiry: still a hit
	current = current.Add(599 * time.Second)
	if _, ok := s.Get(k); !ok {
		t.Fatalf("expected hit before TTL expiry")
	}

	// At expiry: behaves as a miss
	current = current.Add(1 * time.Second)
	if _, ok := s.Get(k); ok {
		t.Fatalf("expected miss after TTL expiry")
	}

	// The lapsed entry must also be dropped from the store
	if s.Len() != 0 {
		t.Fatalf("expired entry not removed, len=%d", s.Len())
	}
}

func TestStore_PutResetsTTL(t *testing.T) {
	s := New(4, 10*time.Second)
	current := time.Unix(0, 0)
	s.now = func() time.Time { return current }

	k := Key{Kind: "info", Symbol: "SPY"}
	s.Put(k, 1)

	current = current.Add(8 * time.Second)
	s.Put(k, 2) // re-store refreshes expiry

	current = current.Add(8 * time.Second)
	got, ok := s.Get(k)
	if !ok || got.(int) != 2 {
		t.Fatalf("expected refreshed entry with value 2, got %v ok=%v", got, ok)
	}
}

func TestStore_CapacityEvictsLRU(t *testing.T) {
	s := New(2, time.Minute)

	k1 := Key{Kind: "ohlcv", Symbol: "A"}
	k2 := Key{Kind: "ohlcv", Symbol: "B"}
	k3 := Key{Kind: "ohlcv", Symbol: "C"}

	s.Put(k1, 1)
	s.Put(k2, 2)

	// Touch k1 so k2 becomes least recently used
	if _, ok := s.Get(k1); !ok {
		t.Fatalf("expected k1 hit")
	}

	s.Put(k3, 3) // overflow evicts k2

	if _, ok := s.Get(k2); ok {
		t.Fatalf("expected k2 evicted")
	}
	if _, ok := s.Get(k1); !ok {
		t.Fatalf("k1 should survive eviction")
	}
	if _, ok := s.Get(k3); !ok {
		t.Fatalf("k3 should be present")
	}
	if s.Len() != 2 {
		t.Fatalf("len=%d, want 2", s.Len())
	}
}

func TestStore_EmptyValueIsCached(t *testing.T) {
	s := New(4, time.Minute)
	k := Key{Kind: "split", Symbol: "NOSPLITS", Start: "2024-01-01", End: "2024-02-01"}

	s.Put(k, []string{})

	got, ok := s.Get(k)
	if !ok {
		t.Fatalf("empty result must still be cached")
	}
	if gs := got.([]string); len(gs) != 0 {
		t.Fatalf("expected empty slice, got %#v", gs)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New(64, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				k := Key{Kind: "ohlcv", Symbol: fmt.Sprintf("S%d", j%32)}
				s.Put(k, j)
				s.Get(k)
			}
		}(i)
	}
	wg.Wait()

	if s.Len() > 64 {
		t.Fatalf("capacity exceeded: %d", s.Len())
	}
}
