package memory

import (
	"context"
	"sync"

	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/ports"
)

var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore keeps sessions in memory for development and tests.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]string
}

// NewSessionStore constructs an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: map[string]string{}}
}

func (s *SessionStore) Save(_ context.Context, email, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[email] = token
	return nil
}

func (s *SessionStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, email)
	return nil
}

// Token returns the stored token for an email, if any.
func (s *SessionStore) Token(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.sessions[email]
	return token, ok
}
