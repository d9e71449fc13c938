package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"skyspotter-service/internal/domain"
)

// QuestionSource fetches the question pool from a backing store
// (bundled file, Postgres, etc).
type QuestionSource interface {
	LoadQuestions(ctx context.Context) ([]domain.Question, error)
}

// QuestionCache caches the pool with a TTL to avoid repeated source hits.
type QuestionCache struct {
	source QuestionSource
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	cached    []domain.Question
	expiresAt time.Time
}

func NewQuestionCache(source QuestionSource, ttl time.Duration) *QuestionCache {
	return &QuestionCache{
		source: source,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *QuestionCache) Questions(ctx context.Context) ([]domain.Question, error) {
	now := c.clock()

	c.mu.RLock()
	if c.cached != nil && c.expiresAt.After(now) {
		defer c.mu.RUnlock()
		return c.cached, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.sf.Do("pool", func() (interface{}, error) {
		now := c.clock()
		c.mu.RLock()
		if c.cached != nil && c.expiresAt.After(now) {
			defer c.mu.RUnlock()
			return c.cached, nil
		}
		c.mu.RUnlock()

		pool, err := c.source.LoadQuestions(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.cached = pool
		c.expiresAt = now.Add(c.ttlWithJitter())
		c.mu.Unlock()
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
	// add up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}

// StaticQuestionSource serves a fixed slice (useful for tests/demos).
type StaticQuestionSource struct {
	pool []domain.Question
}

func NewStaticQuestionSource(pool []domain.Question) *StaticQuestionSource {
	return &StaticQuestionSource{pool: pool}
}

func (s *StaticQuestionSource) LoadQuestions(_ context.Context) ([]domain.Question, error) {
	return s.pool, nil
}
