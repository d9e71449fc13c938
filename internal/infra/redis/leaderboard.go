package redis

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// Leaderboard submits scores to per-board sorted sets. Submissions are
// fire-and-forget: errors are logged and never surfaced to the quiz flow.
type Leaderboard struct {
	client *redis.Client
}

func NewLeaderboard(client *redis.Client) *Leaderboard {
	return &Leaderboard{client: client}
}

func (l *Leaderboard) SubmitScore(ctx context.Context, boardID, playerID string, value int) {
	err := l.client.ZAdd(ctx, l.key(boardID), redis.Z{
		Score:  float64(value),
		Member: playerID,
	}).Err()
	if err != nil {
		log.Printf("leaderboard submit %s/%s: %v", boardID, playerID, err)
	}
}

func (l *Leaderboard) key(boardID string) string {
	return "skyspotter:board:" + boardID
}
