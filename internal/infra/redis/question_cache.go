package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"skyspotter-service/internal/domain"
)

const questionsKey = "skyspotter:questions"

// QuestionSource fetches the question pool from a backing store.
type QuestionSource interface {
	LoadQuestions(ctx context.Context) ([]domain.Question, error)
}

// QuestionCache keeps the serialized question list in Redis and falls
// back to the source on a miss. The whole list is one value: sessions
// need full question payloads (options, explanations), so per-question
// caching buys nothing here.
type QuestionCache struct {
	client *redis.Client
	source QuestionSource
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewQuestionCache(client *redis.Client, source QuestionSource, ttl time.Duration) *QuestionCache {
	return &QuestionCache{
		client: client,
		source: source,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *QuestionCache) Questions(ctx context.Context) ([]domain.Question, error) {
	raw, err := c.client.Get(ctx, questionsKey).Bytes()
	if err == nil && len(raw) > 0 {
		var pool []domain.Question
		if err := json.Unmarshal(raw, &pool); err == nil && len(pool) > 0 {
			return pool, nil
		}
	}

	result, err, _ := c.sf.Do(questionsKey, func() (interface{}, error) {
		// Re-check in case another goroutine filled the cache.
		raw, err := c.client.Get(ctx, questionsKey).Bytes()
		if err == nil && len(raw) > 0 {
			var pool []domain.Question
			if err := json.Unmarshal(raw, &pool); err == nil && len(pool) > 0 {
				return pool, nil
			}
		}

		pool, err := c.source.LoadQuestions(ctx)
		if err != nil {
			return nil, err
		}

		if encoded, err := json.Marshal(pool); err == nil {
			// best-effort cache fill
			_ = c.client.Set(ctx, questionsKey, encoded, c.ttlWithJitter()).Err()
		}
		return pool, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (c *QuestionCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
