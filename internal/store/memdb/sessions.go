package memdb

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hedisam/txpager/internal/store"
)

// SessionStore keeps the open paging sessions.
type SessionStore struct {
	sessions map[string]*store.Session
	now      func() time.Time
	mu       sync.RWMutex
}

func NewSessionStore(opts ...Option) *SessionStore {
	cfg := newConfig(opts)
	return &SessionStore{
		sessions: make(map[string]*store.Session, cfg.memSize),
		now:      cfg.now,
	}
}

// CreateSession assigns a new id to the session and stores it.
func (s *SessionStore) CreateSession(_ context.Context, session *store.Session) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.ID = uuid.NewString()
	session.CreatedAt = s.now()
	session.SetLastAccess(session.CreatedAt)
	s.sessions[session.ID] = session

	return session.ID, nil
}

// GetSession returns the session with the given id or store.ErrNotFound.
func (s *SessionStore) GetSession(_ context.Context, id string) (*store.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	session.SetLastAccess(s.now())

	return session, nil
}

// DeleteSession removes the session with the given id.
func (s *SessionStore) DeleteSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.sessions, id)

	return nil
}

// DeleteIdleSessions removes the sessions not accessed for longer than idle and returns how
// many were removed.
func (s *SessionStore) DeleteIdleSessions(_ context.Context, idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	var removed int
	for id, session := range s.sessions {
		if session.LastAccess().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}

	return removed
}
