package sessions

import (
	"fmt"
	"sync"
	"time"

	apperrors "github.com/paletogarage/auth-gateway/internal/errors"
)

// InMemoryRepo is an in-memory implementation of Repo. Sessions live in
// process memory for their TTL; nothing survives a restart.
type InMemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

var _ Repo = (*InMemoryRepo)(nil)

func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		sessions: make(map[string]Session),
	}
}

// Upsert creates or replaces the session stored under token
func (r *InMemoryRepo) Upsert(token string, session Session) error {
	if token == "" {
		return fmt.Errorf("token is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[token] = session
	return nil
}

// Get retrieves a session. Expired sessions are deleted on read; the caller
// sees them exactly as a missing session.
func (r *InMemoryRepo) Get(token string) (Session, error) {
	if token == "" {
		return Session{}, fmt.Errorf("token is required")
	}

	r.mu.RLock()
	session, ok := r.sessions[token]
	r.mu.RUnlock()

	if !ok {
		return Session{}, apperrors.ErrSessionNotFound
	}

	if session.Expired(time.Now()) {
		r.mu.Lock()
		delete(r.sessions, token)
		r.mu.Unlock()
		return Session{}, apperrors.ErrSessionNotFound
	}

	return session, nil
}

// Delete removes a session; idempotent
func (r *InMemoryRepo) Delete(token string) error {
	if token == "" {
		return fmt.Errorf("token is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}
