package domain

import "errors"

var (
	// ErrSessionNotFound is returned when a player has no active quiz session.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrSessionCompleted is returned for calls against a finished session.
	ErrSessionCompleted = errors.New("quiz session already completed")
	// ErrAlreadyAnswered is returned when the current question was answered before.
	ErrAlreadyAnswered = errors.New("current question already answered")
	// ErrNotAnswered is returned when advancing past an unanswered question.
	ErrNotAnswered = errors.New("current question not answered yet")
	// ErrInvalidCategory indicates an unknown quiz category label.
	ErrInvalidCategory = errors.New("unknown quiz category")
	// ErrInvalidDifficulty indicates an unknown difficulty label.
	ErrInvalidDifficulty = errors.New("unknown quiz difficulty")
	// ErrNoQuestions indicates that no source tier could supply questions.
	ErrNoQuestions = errors.New("no questions available")
)
