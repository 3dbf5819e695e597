package tripstore

import (
	"context"
	"sync"
	"time"

	"github.com/Rushabh16-9/travel-planner/internal/domain/trip"
)

type entry struct {
	payload   trip.Itinerary
	expiresAt time.Time
}

// MemoryStore is an in-process itinerary cache for tests and deployments
// without a Valkey instance.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewMemoryStore constructs a cache backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]entry)}
}

// Get implements trip.Store.
func (s *MemoryStore) Get(_ context.Context, key string) (trip.Itinerary, bool, error) {
	s.mu.RLock()
	record, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return trip.Itinerary{}, false, nil
	}
	if hasExpired(record.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return trip.Itinerary{}, false, nil
	}
	return record.payload, true, nil
}

// Save caches the itinerary with optional TTL.
func (s *MemoryStore) Save(_ context.Context, key string, it trip.Itinerary, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.entries[key] = entry{payload: it, expiresAt: exp}
	return nil
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ trip.Store = (*MemoryStore)(nil)
