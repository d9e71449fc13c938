package memory

import (
	"sync"

	"skyspotter-service/internal/app"
)

// SessionStore is an in-memory implementation of app.SessionRepository.
// Sessions live exactly as long as a quiz is in flight.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*app.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*app.Session),
	}
}

func (s *SessionStore) Put(playerID string, session *app.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[playerID] = session
}

func (s *SessionStore) Get(playerID string) (*app.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[playerID]
	return session, ok
}

func (s *SessionStore) Delete(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, playerID)
}
