package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"skyspotter-service/internal/domain"
)

// ProgressStore persists each player's stats as one serialized blob
// under a fixed key. The record is read and rewritten wholesale;
// last-writer-wins is acceptable because all writes for a player come
// from their single serialized session flow.
type ProgressStore struct {
	client *redis.Client
}

func NewProgressStore(client *redis.Client) *ProgressStore {
	return &ProgressStore{client: client}
}

func (s *ProgressStore) Load(ctx context.Context, playerID string) (domain.UserStats, error) {
	raw, err := s.client.Get(ctx, s.key(playerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.UserStats{}, nil
	}
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("load stats: %w", err)
	}

	var stats domain.UserStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return domain.UserStats{}, fmt.Errorf("decode stats: %w", err)
	}
	return stats, nil
}

func (s *ProgressStore) Save(ctx context.Context, playerID string, stats domain.UserStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	if err := s.client.Set(ctx, s.key(playerID), raw, 0).Err(); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}

func (s *ProgressStore) key(playerID string) string {
	return "skyspotter:stats:" + playerID
}
