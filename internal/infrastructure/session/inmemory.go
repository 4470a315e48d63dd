package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	code      string
	expiresAt time.Time
}

// InMemoryPromotionStore keeps applied codes in a map with periodic
// expiry sweeps. Suitable for tests and single-instance deployments.
type InMemoryPromotionStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	done    chan struct{}
	stopped sync.Once
}

// NewInMemoryPromotionStore creates a memory-backed store and starts
// its cleanup loop.
func NewInMemoryPromotionStore(ttl time.Duration) *InMemoryPromotionStore {
	s := &InMemoryPromotionStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

func (s *InMemoryPromotionStore) Apply(_ context.Context, sessionID, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = memoryEntry{
		code:      code,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *InMemoryPromotionStore) Get(_ context.Context, sessionID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[sessionID]
	if !ok || time.Now().After(entry.expiresAt) {
		return "", false, nil
	}
	return entry.code, true, nil
}

func (s *InMemoryPromotionStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}

func (s *InMemoryPromotionStore) Close() error {
	s.stopped.Do(func() { close(s.done) })
	return nil
}

func (s *InMemoryPromotionStore) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.removeExpired()
		case <-s.done:
			return
		}
	}
}

func (s *InMemoryPromotionStore) removeExpired() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}
