package store

import (
	"context"
	"sync"
	"time"

	"github.com/preston-bernstein/sports-catalog-service/internal/domain/games"
)

type memoryEntry struct {
	value     games.GameList
	expiresAt time.Time
	timer     *time.Timer
	gen       uint64
}

// MemoryStore keeps game lists in memory. Each entry carries its own timer that removes it
// when the TTL elapses, whether or not it is read again.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	gen     uint64
	now     func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

// Get returns the live entry for key. An entry whose deadline passed is treated as absent even
// if its timer has not fired yet.
func (s *MemoryStore) Get(ctx context.Context, key Key) (games.GameList, bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key.String()]
	if !ok || !s.now().Before(e.expiresAt) {
		return nil, false, nil
	}
	return cloneList(e.value), true, nil
}

// Put stores list under key for ttl, replacing any live entry and restarting the clock.
func (s *MemoryStore) Put(ctx context.Context, key Key, list games.GameList, ttl time.Duration) error {
	_ = ctx
	if ttl <= 0 {
		ttl = GameListTTL
	}
	k := key.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.entries[k]; ok {
		old.timer.Stop()
	}
	s.gen++
	gen := s.gen
	e := &memoryEntry{
		value:     cloneList(list),
		expiresAt: s.now().Add(ttl),
		gen:       gen,
	}
	e.timer = time.AfterFunc(ttl, func() { s.expire(k, gen) })
	s.entries[k] = e
	return nil
}

// Delete removes the entry for key if present.
func (s *MemoryStore) Delete(ctx context.Context, key Key) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key.String()
	if e, ok := s.entries[k]; ok {
		e.timer.Stop()
		delete(s.entries, k)
	}
	return nil
}

// Clear removes every entry.
func (s *MemoryStore) Clear(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, e := range s.entries {
		e.timer.Stop()
		delete(s.entries, k)
	}
	return nil
}

// Close stops all pending timers.
func (s *MemoryStore) Close() error {
	return s.Clear(context.Background())
}

// Len returns the number of entries currently held, including ones past their deadline
// whose timer has not fired yet.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// expire removes key only if it still holds the generation the timer was armed for.
func (s *MemoryStore) expire(key string, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok && e.gen == gen {
		delete(s.entries, key)
	}
}
