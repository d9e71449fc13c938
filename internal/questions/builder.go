// Package questions selects and generates the question set backing a
// single quiz session.
package questions

import (
	"math/rand"

	"skyspotter-service/internal/domain"
)

// Filter returns the pool questions eligible for a session. Mixed Mode
// accepts civil or military questions at the requested difficulty;
// questions already tagged Mixed are never drawn from the pool.
func Filter(pool []domain.Question, category domain.Category, difficulty domain.Difficulty) []domain.Question {
	var out []domain.Question
	for _, q := range pool {
		if q.Difficulty != difficulty {
			continue
		}
		if category == domain.CategoryMixed {
			if q.Category == domain.CategoryCivil || q.Category == domain.CategoryMilitary {
				out = append(out, q)
			}
			continue
		}
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

// BuildSet assembles exactly count questions for a session: a random
// sample without replacement from the eligible pool, padded with
// synthesized questions when the pool falls short.
func BuildSet(rnd *rand.Rand, pool []domain.Question, category domain.Category, difficulty domain.Difficulty, count int) []domain.Question {
	eligible := Filter(pool, category, difficulty)

	sampled := append([]domain.Question(nil), eligible...)
	rnd.Shuffle(len(sampled), func(i, j int) {
		sampled[i], sampled[j] = sampled[j], sampled[i]
	})
	if len(sampled) > count {
		sampled = sampled[:count]
	}

	if deficit := count - len(sampled); deficit > 0 {
		sampled = append(sampled, Synthesize(rnd, category, difficulty, deficit)...)
	}
	return sampled
}

// ShuffleOptions precomputes one permutation of each question's options.
// The permutations are fixed for the life of the session; grading and
// display both reference them instead of the original order.
func ShuffleOptions(rnd *rand.Rand, qs []domain.Question) [][]string {
	out := make([][]string, len(qs))
	for i, q := range qs {
		opts := append([]string(nil), q.Options...)
		rnd.Shuffle(len(opts), func(a, b int) {
			opts[a], opts[b] = opts[b], opts[a]
		})
		out[i] = opts
	}
	return out
}
