// Package bundle loads the bundled question pool: a JSON data file
// first, a small hardcoded set when the file yields nothing, and a
// procedurally generated pool as the last resort.
package bundle

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"skyspotter-service/internal/domain"
	"skyspotter-service/internal/questions"
)

// Source is one tier of the question pool.
type Source interface {
	LoadQuestions(ctx context.Context) ([]domain.Question, error)
}

// FileSource parses a JSON array of question records. Records that fail
// validation are skipped with a diagnostic; only a missing or unreadable
// file is an error, and callers treat that as "try the next tier".
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) LoadQuestions(_ context.Context) ([]domain.Question, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}

	var raw []domain.Question
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse question file: %w", err)
	}

	out := make([]domain.Question, 0, len(raw))
	for i, q := range raw {
		if err := validate(q); err != nil {
			log.Printf("skipping question %d (%q): %v", i, q.ID, err)
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

// validate enforces the record contract: required fields present, known
// enum labels, and the correct answer appearing exactly once among at
// least two options.
func validate(q domain.Question) error {
	if q.ID == "" {
		return fmt.Errorf("missing id")
	}
	if q.CorrectAnswer == "" {
		return fmt.Errorf("missing correct answer")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("need at least 2 options, got %d", len(q.Options))
	}
	if !q.Category.Valid() {
		return fmt.Errorf("unknown category %q", q.Category)
	}
	if !q.Difficulty.Valid() {
		return fmt.Errorf("unknown difficulty %q", q.Difficulty)
	}
	hits := 0
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			hits++
		}
	}
	if hits != 1 {
		return fmt.Errorf("correct answer must appear exactly once among options, found %d", hits)
	}
	return nil
}

// StaticSource is the hardcoded backup set.
type StaticSource struct{}

func NewStaticSource() *StaticSource { return &StaticSource{} }

func (s *StaticSource) LoadQuestions(_ context.Context) ([]domain.Question, error) {
	return starterQuestions(), nil
}

// GeneratedSource synthesizes a full pool covering every category and
// difficulty. Guarantees the quiz flow reaches a terminal state even
// with every other data source degraded.
type GeneratedSource struct {
	rnd      *rand.Rand
	perCombo int
}

func NewGeneratedSource(perCombo int) *GeneratedSource {
	return &GeneratedSource{
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		perCombo: perCombo,
	}
}

func (s *GeneratedSource) LoadQuestions(_ context.Context) ([]domain.Question, error) {
	return questions.SynthesizeAll(s.rnd, s.perCombo), nil
}

// TieredSource tries each source in order and returns the first
// non-empty pool. Source errors are logged, not propagated; the next
// tier covers for them.
type TieredSource struct {
	tiers []Source
}

func NewTieredSource(tiers ...Source) *TieredSource {
	return &TieredSource{tiers: tiers}
}

func (s *TieredSource) LoadQuestions(ctx context.Context) ([]domain.Question, error) {
	for _, tier := range s.tiers {
		pool, err := tier.LoadQuestions(ctx)
		if err != nil {
			log.Printf("question source tier failed: %v", err)
			continue
		}
		if len(pool) > 0 {
			return pool, nil
		}
	}
	return nil, domain.ErrNoQuestions
}
