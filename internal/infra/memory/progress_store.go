package memory

import (
	"context"
	"sync"

	"skyspotter-service/internal/domain"
)

// ProgressStore keeps player stats in a map. Useful for tests and
// single-node dev runs; production uses the Redis blob store.
type ProgressStore struct {
	mu    sync.RWMutex
	stats map[string]domain.UserStats
}

func NewProgressStore() *ProgressStore {
	return &ProgressStore{stats: make(map[string]domain.UserStats)}
}

// Load returns the stored record, or a zero record for new players.
func (s *ProgressStore) Load(_ context.Context, playerID string) (domain.UserStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats[playerID], nil
}

func (s *ProgressStore) Save(_ context.Context, playerID string, stats domain.UserStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats[playerID] = stats
	return nil
}
