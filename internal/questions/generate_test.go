package questions

import (
	"math/rand"
	"testing"

	"skyspotter-service/internal/domain"
)

func TestSynthesizeShape(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	qs := Synthesize(rnd, domain.CategoryMilitary, domain.DifficultyMedium, 25)

	if len(qs) != 25 {
		t.Fatalf("expected 25 questions, got %d", len(qs))
	}
	seen := make(map[string]bool)
	for _, q := range qs {
		if q.ID == "" || seen[q.ID] {
			t.Fatalf("expected unique non-empty ids, got %q", q.ID)
		}
		seen[q.ID] = true
		if q.Category != domain.CategoryMilitary || q.Difficulty != domain.DifficultyMedium {
			t.Fatalf("wrong tags on %+v", q)
		}
		if len(q.Options) != 4 {
			t.Fatalf("expected 4 options, got %d", len(q.Options))
		}

		hits := 0
		distinct := make(map[string]bool)
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				hits++
			}
			distinct[opt] = true
		}
		if hits != 1 {
			t.Fatalf("correct answer must appear exactly once, found %d in %v", hits, q.Options)
		}
		if len(distinct) != 4 {
			t.Fatalf("distractors drawn with replacement: %v", q.Options)
		}
		if q.Explanation == "" {
			t.Fatalf("expected an explanation")
		}
	}
}

func TestSynthesizeMixedUsesBothPools(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	qs := Synthesize(rnd, domain.CategoryMixed, domain.DifficultyEasy, 100)

	civil := map[string]bool{}
	for _, name := range civilAircraft {
		civil[name] = true
	}

	sawCivil, sawMilitary := false, false
	for _, q := range qs {
		if civil[q.CorrectAnswer] {
			sawCivil = true
		} else {
			sawMilitary = true
		}
	}
	if !sawCivil || !sawMilitary {
		t.Fatalf("mixed synthesis should draw both pools: civil=%v military=%v", sawCivil, sawMilitary)
	}
}

func TestSynthesizeAllCoversEveryCombo(t *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	qs := SynthesizeAll(rnd, 5)

	if len(qs) != 45 {
		t.Fatalf("expected 3x3x5 questions, got %d", len(qs))
	}
	combos := make(map[string]int)
	for _, q := range qs {
		combos[string(q.Category)+"/"+string(q.Difficulty)]++
	}
	if len(combos) != 9 {
		t.Fatalf("expected 9 category/difficulty combos, got %d", len(combos))
	}
	for combo, n := range combos {
		if n != 5 {
			t.Fatalf("combo %s has %d questions, want 5", combo, n)
		}
	}
}
