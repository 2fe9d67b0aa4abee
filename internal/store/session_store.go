package store

import (
	"sync"

	"github.com/preston-bernstein/worldcup-dashboard/internal/domain/chat"
)

// DefaultMaxSessions bounds how many chat logs NewSessionStore keeps.
const DefaultMaxSessions = 10000

// SessionStore keeps a thread-safe, append-only chat log per session in memory.
// Once maxSessions logs exist, starting a new one drops the oldest session.
type SessionStore struct {
	mu          sync.RWMutex
	sessions    map[string][]chat.Exchange
	order       []string
	maxSessions int
}

// NewSessionStore constructs an empty SessionStore holding up to DefaultMaxSessions logs.
func NewSessionStore() *SessionStore {
	return NewBoundedSessionStore(DefaultMaxSessions)
}

// NewBoundedSessionStore constructs an empty SessionStore holding up to max logs.
// A max below one keeps a single session.
func NewBoundedSessionStore(max int) *SessionStore {
	if max < 1 {
		max = 1
	}
	return &SessionStore{
		sessions:    make(map[string][]chat.Exchange),
		maxSessions: max,
	}
}

// Append adds an exchange to the end of a session's log.
func (s *SessionStore) Append(sessionID string, e chat.Exchange) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		for len(s.order) >= s.maxSessions {
			delete(s.sessions, s.order[0])
			s.order = s.order[1:]
		}
		s.order = append(s.order, sessionID)
	}
	s.sessions[sessionID] = append(s.sessions[sessionID], e)
}

// History returns a copy of a session's log, oldest first.
func (s *SessionStore) History(sessionID string) []chat.Exchange {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log := s.sessions[sessionID]
	result := make([]chat.Exchange, len(log))
	copy(result, log)
	return result
}

// Sessions reports how many sessions have at least one exchange.
func (s *SessionStore) Sessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
