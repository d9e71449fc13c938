package app

import (
	"math/rand"
	"sync"

	"skyspotter-service/internal/domain"
	"skyspotter-service/internal/questions"
)

// Session is one in-flight quiz for a single player. The question set
// and per-question option permutations are fixed at creation; only the
// cursor, score, and per-question answered state mutate afterwards.
type Session struct {
	id         string
	category   domain.Category
	difficulty domain.Difficulty

	mu        sync.Mutex
	questions []domain.Question
	shuffled  [][]string
	index     int
	score     int
	correct   int
	answered  bool
	selected  string
	completed bool
}

// QuestionView is the client-facing shape of the current question. The
// correct answer is withheld until the question is answered.
type QuestionView struct {
	Index    int      `json:"index"`
	Total    int      `json:"total"`
	ImageRef string   `json:"imageFileName"`
	Options  []string `json:"options"`
}

// NewSession is exported for infrastructure layers and tests that need
// to seed sessions directly.
func NewSession(rnd *rand.Rand, id string, category domain.Category, difficulty domain.Difficulty, qs []domain.Question) *Session {
	return newSession(rnd, id, category, difficulty, qs)
}

func newSession(rnd *rand.Rand, id string, category domain.Category, difficulty domain.Difficulty, qs []domain.Question) *Session {
	return &Session{
		id:         id,
		category:   category,
		difficulty: difficulty,
		questions:  qs,
		shuffled:   questions.ShuffleOptions(rnd, qs),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Current returns the view of the question at the cursor.
func (s *Session) Current() (QuestionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

func (s *Session) currentLocked() (QuestionView, error) {
	if s.completed {
		return QuestionView{}, domain.ErrSessionCompleted
	}
	q := s.questions[s.index]
	return QuestionView{
		Index:    s.index,
		Total:    len(s.questions),
		ImageRef: q.ImageRef,
		Options:  s.shuffled[s.index],
	}, nil
}

// Answer grades choice against the current question. Only the first
// answer per question counts; repeats are rejected without touching the
// score.
func (s *Session) Answer(choice string) (domain.AnswerFeedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return domain.AnswerFeedback{}, domain.ErrSessionCompleted
	}
	if s.answered {
		return domain.AnswerFeedback{}, domain.ErrAlreadyAnswered
	}

	q := s.questions[s.index]
	correct := choice == q.CorrectAnswer
	awarded := 0
	if correct {
		awarded = q.Difficulty.BasePoints()
		s.score += awarded
		s.correct++
	}
	s.answered = true
	s.selected = choice

	return domain.AnswerFeedback{
		Choice:        choice,
		Correct:       correct,
		Awarded:       awarded,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		SessionScore:  s.score,
	}, nil
}

// Advance moves past an answered question. It returns (done=true) when
// the session just finished; the caller is responsible for committing
// the result exactly once.
func (s *Session) Advance() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return false, domain.ErrSessionCompleted
	}
	if !s.answered {
		return false, domain.ErrNotAnswered
	}

	if s.index+1 < len(s.questions) {
		s.index++
		s.answered = false
		s.selected = ""
		return false, nil
	}
	s.completed = true
	return true, nil
}

// Result summarizes the session for the progress commit.
func (s *Session) Result() domain.SessionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.SessionResult{
		Category:          s.category,
		Difficulty:        s.difficulty,
		Score:             s.score,
		QuestionsAnswered: len(s.questions),
		CorrectAnswers:    s.correct,
	}
}

// Score returns the running session score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}
