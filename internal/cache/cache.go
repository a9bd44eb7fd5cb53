// Package cache provides the in-memory result cache shared by all
// endpoints: a fixed-capacity, fixed-TTL store keyed by request parameters.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Key identifies one cached fetch result. Kind is the record kind
// ("ohlcv", "div", "split", "info"), Symbol the canonical symbol, and
// Start/End the requested date strings. Info entries leave Start/End empty.
// Keys are value types and never mutated after creation.
type Key struct {
	Kind   string
	Symbol string
	Start  string
	End    string
}

// entry holds one cached value together with its absolute expiry time.
type entry struct {
	key       Key
	value     any
	expiresAt time.Time
}

// Store is a mutex-guarded LRU cache with a uniform TTL per entry.
//
// Eviction is purely time- and capacity-driven: entries lapse when their
// TTL passes (checked lazily on read) and the least recently used entry
// is dropped when an insert would exceed the capacity. There is no
// explicit delete or invalidation path.
//
// Empty fetch results are stored like any other value so that symbols
// with no data in range do not trigger repeated upstream calls.
type Store struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int

	ll    *list.List            // front = most recently used
	items map[Key]*list.Element // each element holds *entry

	now func() time.Time // injectable for TTL tests
}

// New creates a Store with the given capacity and TTL.
// maxEntries and ttl must both be positive.
func New(maxEntries int, ttl time.Duration) *Store {
	return &Store{
		ttl:        ttl,
		maxEntries: maxEntries,
		ll:         list.New(),
		items:      make(map[Key]*list.Element, maxEntries),
		now:        time.Now,
	}
}

// Get returns the value stored under k, if present and not expired.
// A hit refreshes the entry's LRU position but not its TTL.
func (s *Store) Get(k Key) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.items[k]
	if !ok {
		return nil, false
	}
	e := el.Value.(*entry)
	if !s.now().Before(e.expiresAt) {
		// Lapsed entries behave as misses and are dropped in place.
		s.removeElement(el)
		return nil, false
	}
	s.ll.MoveToFront(el)
	return e.value, true
}

// Put stores v under k with the uniform TTL, replacing any existing entry
// and resetting its expiry. If the insert would exceed the capacity, the
// least recently used entry is evicted first.
func (s *Store) Put(k Key, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt := s.now().Add(s.ttl)

	if el, ok := s.items[k]; ok {
		s.ll.MoveToFront(el)
		e := el.Value.(*entry)
		e.value = v
		e.expiresAt = expiresAt
		return
	}

	el := s.ll.PushFront(&entry{key: k, value: v, expiresAt: expiresAt})
	s.items[k] = el

	if s.ll.Len() > s.maxEntries {
		if oldest := s.ll.Back(); oldest != nil {
			s.removeElement(oldest)
		}
	}
}

// Len reports the number of entries currently held, including entries
// whose TTL has lapsed but which have not been read since.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ll.Len()
}

// removeElement drops an element from both the list and the index.
// Caller must hold s.mu.
func (s *Store) removeElement(el *list.Element) {
	s.ll.Remove(el)
	delete(s.items, el.Value.(*entry).key)
}
