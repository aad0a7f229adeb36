package storage

import (
	"sync"
)

// TasbihStorage provides in-memory storage for per-user tasbih session counts.
// Sessions are not persisted; only the cumulative total is.
type TasbihStorage struct {
	mu     sync.RWMutex
	counts map[int64]int
}

// NewTasbihStorage creates a new TasbihStorage.
func NewTasbihStorage() *TasbihStorage {
	return &TasbihStorage{
		counts: make(map[int64]int),
	}
}

// Increment adds one to the user's session count and returns the new value.
func (s *TasbihStorage) Increment(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[userID]++
	return s.counts[userID]
}

// Get returns the user's session count.
func (s *TasbihStorage) Get(userID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts[userID]
}

// Delete resets the user's session count to zero.
func (s *TasbihStorage) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counts, userID)
}
