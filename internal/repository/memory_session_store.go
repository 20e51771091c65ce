package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"factor_quiz_backend/internal/model"
	"factor_quiz_backend/internal/util"
)

// MemorySessionStore is a single-process SessionStore. Expired sessions are
// dropped when they are read and swept on every create.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*model.QuizSession
	now      func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*model.QuizSession),
		now:      time.Now,
	}
}

func (r *MemorySessionStore) Create(ctx context.Context, s *model.QuizSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()
	if _, exists := r.sessions[s.ID]; exists {
		return fmt.Errorf("session %q already exists", s.ID)
	}
	r.sessions[s.ID] = s.Clone()
	return nil
}

func (r *MemorySessionStore) Get(ctx context.Context, id string) (*model.QuizSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.liveLocked(id)
	if err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

func (r *MemorySessionStore) Update(ctx context.Context, id string, fn func(s *model.QuizSession) error) (*model.QuizSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.liveLocked(id)
	if err != nil {
		return nil, err
	}
	working := s.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	r.sessions[id] = working
	return working.Clone(), nil
}

func (r *MemorySessionStore) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *MemorySessionStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Len counts stored sessions, expired ones included until swept.
func (r *MemorySessionStore) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *MemorySessionStore) liveLocked(id string) (*model.QuizSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", util.ErrSessionNotFound, id)
	}
	if s.Expired(r.now()) {
		delete(r.sessions, id)
		return nil, fmt.Errorf("%w: %s", util.ErrSessionExpired, id)
	}
	return s, nil
}

func (r *MemorySessionStore) sweepLocked() {
	now := r.now()
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
		}
	}
}
