package app

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"skyspotter-service/internal/domain"
	"skyspotter-service/internal/questions"
)

// DefaultQuestionCount is the session length when the client does not ask
// for a specific one.
const DefaultQuestionCount = 10

// Leaderboard board identifiers. Total score and streak are submitted
// independently after every commit.
const (
	BoardTotalScore = "total-score"
	BoardStreak     = "daily-streak"
)

// SessionRepository abstracts how live sessions are stored (in-memory, Redis-marked, etc).
type SessionRepository interface {
	Put(playerID string, s *Session)
	Get(playerID string) (*Session, bool)
	Delete(playerID string)
}

// QuestionRepository supplies the full question pool (from cache/backing store).
type QuestionRepository interface {
	Questions(ctx context.Context) ([]domain.Question, error)
}

// ProgressStore persists the single per-player stats record.
type ProgressStore interface {
	Load(ctx context.Context, playerID string) (domain.UserStats, error)
	Save(ctx context.Context, playerID string, stats domain.UserStats) error
}

// AdService is the interstitial-ad collaborator. It never gates the
// scoring state machine; the service only asks whether an ad is ready so
// the presentation layer can defer the results reveal.
type AdService interface {
	LoadAd(ctx context.Context)
	CanShowAd() bool
	ShowAd(onDismissed func())
}

// EntitlementService reports whether a player's subscription suppresses ads.
type EntitlementService interface {
	HasActiveEntitlement(ctx context.Context, playerID string) bool
}

// LeaderboardService receives fire-and-forget score submissions.
type LeaderboardService interface {
	SubmitScore(ctx context.Context, boardID, playerID string, value int)
}

// QuizService contains the quiz use cases: start, answer, advance,
// commit, abandon.
type QuizService struct {
	sessions     SessionRepository
	catalog      QuestionRepository
	progress     ProgressStore
	ads          AdService
	entitlements EntitlementService
	leaderboard  LeaderboardService
	now          func() time.Time

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewQuizService(sessions SessionRepository, catalog QuestionRepository, progress ProgressStore, ads AdService, entitlements EntitlementService, leaderboard LeaderboardService) *QuizService {
	return NewQuizServiceWithClock(sessions, catalog, progress, ads, entitlements, leaderboard, time.Now)
}

// NewQuizServiceWithClock is for deterministic dates in tests.
func NewQuizServiceWithClock(sessions SessionRepository, catalog QuestionRepository, progress ProgressStore, ads AdService, entitlements EntitlementService, leaderboard LeaderboardService, now func() time.Time) *QuizService {
	return &QuizService{
		sessions:     sessions,
		catalog:      catalog,
		progress:     progress,
		ads:          ads,
		entitlements: entitlements,
		leaderboard:  leaderboard,
		now:          now,
		rnd:          rand.New(rand.NewSource(now().UnixNano())),
	}
}

// StartedQuiz describes a freshly created session.
type StartedQuiz struct {
	SessionID string       `json:"sessionId"`
	First     QuestionView `json:"first"`
}

// Start builds a new session for the player, replacing any session still
// in flight (the old one is discarded without a commit).
func (s *QuizService) Start(ctx context.Context, playerID string, category domain.Category, difficulty domain.Difficulty, count int) (StartedQuiz, error) {
	if !category.Valid() {
		return StartedQuiz{}, domain.ErrInvalidCategory
	}
	if !difficulty.Valid() {
		return StartedQuiz{}, domain.ErrInvalidDifficulty
	}
	if count <= 0 {
		count = DefaultQuestionCount
	}

	pool, err := s.catalog.Questions(ctx)
	if err != nil {
		// Degraded sources are not fatal; synthesis fills the session.
		log.Printf("question pool unavailable, synthesizing: %v", err)
		pool = nil
	}

	s.rndMu.Lock()
	set := questions.BuildSet(s.rnd, pool, category, difficulty, count)
	session := newSession(s.rnd, uuid.NewString(), category, difficulty, set)
	s.rndMu.Unlock()

	if len(set) == 0 {
		return StartedQuiz{}, domain.ErrNoQuestions
	}

	s.sessions.Put(playerID, session)
	s.ads.LoadAd(ctx)

	first, err := session.Current()
	if err != nil {
		return StartedQuiz{}, err
	}
	return StartedQuiz{SessionID: session.ID(), First: first}, nil
}

// Current returns the player's current question.
func (s *QuizService) Current(_ context.Context, playerID string) (QuestionView, error) {
	session, ok := s.sessions.Get(playerID)
	if !ok {
		return QuestionView{}, domain.ErrSessionNotFound
	}
	return session.Current()
}

// Answer grades the player's choice for the current question.
func (s *QuizService) Answer(_ context.Context, playerID, choice string) (domain.AnswerFeedback, error) {
	session, ok := s.sessions.Get(playerID)
	if !ok {
		return domain.AnswerFeedback{}, domain.ErrSessionNotFound
	}
	return session.Answer(choice)
}

// AdvanceOutcome is either the next question or the completion summary.
type AdvanceOutcome struct {
	Completed bool               `json:"completed"`
	Next      *QuestionView      `json:"next,omitempty"`
	Summary   *CompletionSummary `json:"summary,omitempty"`
}

// CompletionSummary carries everything the results screen needs.
// DeferReveal is purely a presentation hint: the commit already happened
// by the time the client sees it.
type CompletionSummary struct {
	Result      domain.SessionResult `json:"result"`
	Stats       domain.UserStats     `json:"stats"`
	NewBadges   []domain.Badge       `json:"newBadges,omitempty"`
	DeferReveal bool                 `json:"deferReveal"`
}

// Advance moves the session forward. When the last question is passed the
// session completes and its result is committed exactly once.
func (s *QuizService) Advance(ctx context.Context, playerID string) (AdvanceOutcome, error) {
	session, ok := s.sessions.Get(playerID)
	if !ok {
		return AdvanceOutcome{}, domain.ErrSessionNotFound
	}

	done, err := session.Advance()
	if err != nil {
		return AdvanceOutcome{}, err
	}
	if !done {
		next, err := session.Current()
		if err != nil {
			return AdvanceOutcome{}, err
		}
		return AdvanceOutcome{Next: &next}, nil
	}

	summary := s.commit(ctx, playerID, session.Result())
	s.sessions.Delete(playerID)
	return AdvanceOutcome{Completed: true, Summary: &summary}, nil
}

// commit folds the session result into the durable stats record. Storage
// failures are logged and swallowed: the returned stats stay
// authoritative for this run and the quiz flow never fails here.
func (s *QuizService) commit(ctx context.Context, playerID string, result domain.SessionResult) CompletionSummary {
	before, err := s.progress.Load(ctx, playerID)
	if err != nil {
		log.Printf("load stats for %s: %v", playerID, err)
		before = domain.UserStats{}
	}

	entitled := s.entitlements.HasActiveEntitlement(ctx, playerID)
	before.HasEntitlement = entitled

	after := ApplyCompletion(before, result, s.now())

	if err := s.progress.Save(ctx, playerID, after); err != nil {
		log.Printf("save stats for %s: %v", playerID, err)
	}

	s.leaderboard.SubmitScore(ctx, BoardTotalScore, playerID, after.TotalScore)
	s.leaderboard.SubmitScore(ctx, BoardStreak, playerID, after.CurrentStreak)

	return CompletionSummary{
		Result:      result,
		Stats:       after,
		NewBadges:   NewBadges(before, after),
		DeferReveal: !entitled && s.ads.CanShowAd(),
	}
}

// Abandon discards the player's in-flight session. Nothing is committed;
// stats are only touched at completion.
func (s *QuizService) Abandon(_ context.Context, playerID string) {
	s.sessions.Delete(playerID)
}

// Stats returns the player's durable progress record with the current
// entitlement state applied.
func (s *QuizService) Stats(ctx context.Context, playerID string) (domain.UserStats, error) {
	stats, err := s.progress.Load(ctx, playerID)
	if err != nil {
		return domain.UserStats{}, err
	}
	stats.HasEntitlement = s.entitlements.HasActiveEntitlement(ctx, playerID)
	return stats, nil
}
