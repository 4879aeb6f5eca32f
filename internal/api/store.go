// Package api holds the HTTP layer's shared state: a TTL'd in-memory
// store of completed analysis results.
package api

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"solar-analyzer/internal/analyzer"
)

const (
	defaultTTL        = time.Hour
	defaultMaxEntries = 64
)

type entry struct {
	result    *analyzer.Result
	expiresAt time.Time
}

// Store keeps recent analysis results addressable by id so clients can
// fetch day records separately from the run call. Results are
// immutable; the store only guards its own map.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	max     int
}

func NewStore() *Store {
	s := &Store{
		entries: make(map[string]entry),
		ttl:     defaultTTL,
		max:     defaultMaxEntries,
	}
	go s.cleanup()
	return s
}

// Put stores a result and returns its id.
func (s *Store) Put(result *analyzer.Result) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) >= s.max {
		s.evictOldestLocked()
	}
	s.entries[id] = entry{
		result:    result,
		expiresAt: time.Now().Add(s.ttl),
	}
	return id
}

// Get returns a stored result, or nil when unknown or expired.
func (s *Store) Get(id string) *analyzer.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok || time.Now().After(e.expiresAt) {
		return nil
	}
	return e.result
}

func (s *Store) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, e := range s.entries {
		if oldestID == "" || e.expiresAt.Before(oldest) {
			oldestID = id
			oldest = e.expiresAt
		}
	}
	if oldestID != "" {
		delete(s.entries, oldestID)
	}
}

func (s *Store) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		s.mu.Lock()
		for id, e := range s.entries {
			if now.After(e.expiresAt) {
				delete(s.entries, id)
			}
		}
		s.mu.Unlock()
	}
}
