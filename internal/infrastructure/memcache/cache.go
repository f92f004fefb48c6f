package memcache

import (
	"sort"
	"sync"
	"time"

	"github.com/avatarctic/catalog-edge/internal/core/ports"
)

const (
	DefaultCapacity = 100
	DefaultTTL      = 5 * time.Minute
)

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

type entry struct {
	value     any
	createdAt time.Time
	ttl       time.Duration
	hits      int
	// seq is the insertion order of the key; overwrites keep it.
	seq uint64
}

func (e *entry) expired(now time.Time) bool {
	return e.ttl <= 0 || now.Sub(e.createdAt) > e.ttl
}

// Store is a fixed-capacity key/value cache with per-entry TTL and least-used eviction.
// When a new key arrives at capacity the entry with the fewest hits is dropped, oldest
// insertion first on ties. This approximates LFU, not LRU.
type Store struct {
	mu         sync.Mutex
	entries    map[string]*entry
	capacity   int
	defaultTTL time.Duration
	nextSeq    uint64
	now        Clock
	observer   Observer
}

type Option func(*Store)

func WithClock(c Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.now = c
		}
	}
}

func WithObserver(o Observer) Option {
	return func(s *Store) {
		if o != nil {
			s.observer = o
		}
	}
}

// NewStore creates a store holding at most capacity entries. Non-positive arguments
// fall back to DefaultCapacity and DefaultTTL.
func NewStore(capacity int, defaultTTL time.Duration, opts ...Option) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	s := &Store{
		entries:    make(map[string]*entry, capacity),
		capacity:   capacity,
		defaultTTL: defaultTTL,
		now:        time.Now,
		observer:   NoopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set implements ports.Cache.Set.
func (s *Store) Set(key string, value any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if e, ok := s.entries[key]; ok {
		e.value = value
		e.createdAt = now
		e.ttl = ttl
		e.hits = 0
		return
	}

	if len(s.entries) >= s.capacity {
		s.evictLocked(now)
	}
	s.nextSeq++
	s.entries[key] = &entry{value: value, createdAt: now, ttl: ttl, seq: s.nextSeq}
	s.observer.Size(len(s.entries))
}

// SetDefault implements ports.Cache.SetDefault.
func (s *Store) SetDefault(key string, value any) {
	s.Set(key, value, s.defaultTTL)
}

// Get implements ports.Cache.Get.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		s.observer.Miss()
		return nil, false
	}
	if e.expired(s.now()) {
		s.removeExpiredLocked(key)
		s.observer.Miss()
		return nil, false
	}
	e.hits++
	s.observer.Hit()
	return e.value, true
}

// Has implements ports.Cache.Has. Expired entries are dropped as in Get, but no hit is counted.
func (s *Store) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	if e.expired(s.now()) {
		s.removeExpiredLocked(key)
		return false
	}
	return true
}

// Delete implements ports.Cache.Delete.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; ok {
		delete(s.entries, key)
		s.observer.Size(len(s.entries))
	}
}

// DeleteFunc implements ports.Cache.DeleteFunc.
func (s *Store) DeleteFunc(match func(key string) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for key := range s.entries {
		if match(key) {
			delete(s.entries, key)
			n++
		}
	}
	if n > 0 {
		s.observer.Size(len(s.entries))
	}
	return n
}

// Clear implements ports.Cache.Clear.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*entry, s.capacity)
	s.observer.Size(0)
}

// SweepExpired implements ports.Cache.SweepExpired.
func (s *Store) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for key, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, key)
			s.observer.Expire()
			n++
		}
	}
	if n > 0 {
		s.observer.Size(len(s.entries))
	}
	return n
}

// Stats implements ports.Cache.Stats. Entries are listed in insertion order.
func (s *Store) Stats() ports.CacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	type keyed struct {
		key string
		e   *entry
	}
	now := s.now()
	ordered := make([]keyed, 0, len(s.entries))
	for k, e := range s.entries {
		ordered = append(ordered, keyed{k, e})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].e.seq < ordered[j].e.seq })

	out := ports.CacheStats{Size: len(s.entries), Capacity: s.capacity, Entries: make([]ports.EntryStats, 0, len(ordered))}
	for _, k := range ordered {
		out.Entries = append(out.Entries, ports.EntryStats{
			Key:  k.key,
			Hits: k.e.hits,
			Age:  now.Sub(k.e.createdAt),
			TTL:  k.e.ttl,
		})
	}
	return out
}

// Len returns the number of resident entries, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) Capacity() int { return s.capacity }

func (s *Store) DefaultTTL() time.Duration { return s.defaultTTL }

func (s *Store) removeExpiredLocked(key string) {
	delete(s.entries, key)
	s.observer.Expire()
	s.observer.Size(len(s.entries))
}

// evictLocked removes one entry to make room for a new key. Expired entries go first,
// then the live entry with the fewest hits; ties fall to the earliest insertion.
func (s *Store) evictLocked(now time.Time) {
	var victimKey string
	var victim *entry
	for k, e := range s.entries {
		if victim == nil || betterVictim(e, victim, now) {
			victimKey, victim = k, e
		}
	}
	if victim == nil {
		return
	}
	delete(s.entries, victimKey)
	if victim.expired(now) {
		s.observer.Expire()
	} else {
		s.observer.Eviction()
	}
}

func betterVictim(a, b *entry, now time.Time) bool {
	aExp, bExp := a.expired(now), b.expired(now)
	if aExp != bExp {
		return aExp
	}
	if !aExp && a.hits != b.hits {
		return a.hits < b.hits
	}
	return a.seq < b.seq
}

var _ ports.Cache = (*Store)(nil)
