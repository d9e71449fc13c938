package domain

import "time"

// Category partitions the question pool. Mixed Mode sessions draw from
// both aircraft pools; pool questions themselves are never tagged Mixed.
type Category string

const (
	CategoryCivil    Category = "Civil Aircraft"
	CategoryMilitary Category = "Military Aircraft"
	CategoryMixed    Category = "Mixed Mode"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryCivil, CategoryMilitary, CategoryMixed:
		return true
	}
	return false
}

// Difficulty orders questions by identification difficulty.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// BasePoints is the score awarded for a correct answer at this
// difficulty. Strictly increasing with difficulty.
func (d Difficulty) BasePoints() int {
	switch d {
	case DifficultyMedium:
		return 20
	case DifficultyHard:
		return 30
	default:
		return 10
	}
}

// Question is a single identify-the-aircraft prompt. Immutable once
// loaded; sessions hold copies and never write back.
type Question struct {
	ID            string     `json:"id"`
	ImageRef      string     `json:"imageFileName"`
	CorrectAnswer string     `json:"correctAnswer"`
	Options       []string   `json:"options"`
	Category      Category   `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
	Explanation   string     `json:"explanation"`
}

// Badge marks a daily-streak milestone. Earned at most once per
// milestone, never revoked.
type Badge struct {
	Milestone  int       `json:"milestone"`
	DateEarned time.Time `json:"dateEarned"`
}

// UserStats is the single durable progress record for a player. It is
// read and rewritten wholesale; there are no partial updates.
type UserStats struct {
	TotalScore        int        `json:"totalScore"`
	QuestionsAnswered int        `json:"questionsAnswered"`
	CorrectAnswers    int        `json:"correctAnswers"`
	CurrentStreak     int        `json:"currentStreak"`
	LongestStreak     int        `json:"longestStreak"`
	LastPlayedDate    *time.Time `json:"lastPlayedDate,omitempty"`
	Badges            []Badge    `json:"badges"`
	HasEntitlement    bool       `json:"hasActiveEntitlement"`
}

// Accuracy returns the lifetime correct-answer percentage.
func (s UserStats) Accuracy() float64 {
	if s.QuestionsAnswered == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.QuestionsAnswered) * 100
}

// HasBadge reports whether the given milestone badge was already earned.
func (s UserStats) HasBadge(milestone int) bool {
	for _, b := range s.Badges {
		if b.Milestone == milestone {
			return true
		}
	}
	return false
}

// SessionResult is the outcome of one finished quiz, folded into
// UserStats at commit time.
type SessionResult struct {
	Category          Category   `json:"category"`
	Difficulty        Difficulty `json:"difficulty"`
	Score             int        `json:"score"`
	QuestionsAnswered int        `json:"questionsAnswered"`
	CorrectAnswers    int        `json:"correctAnswers"`
}

// AnswerFeedback tells the presentation layer how a single answer landed.
type AnswerFeedback struct {
	Choice        string `json:"choice"`
	Correct       bool   `json:"correct"`
	Awarded       int    `json:"awarded"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
	SessionScore  int    `json:"sessionScore"`
}
