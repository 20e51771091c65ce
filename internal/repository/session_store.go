package repository

import (
	"context"

	"factor_quiz_backend/internal/model"
)

// SessionStore keeps quiz sessions until they expire. Implementations return
// util.ErrSessionNotFound for unknown ids and never hand out shared state.
type SessionStore interface {
	Create(ctx context.Context, s *model.QuizSession) error
	Get(ctx context.Context, id string) (*model.QuizSession, error)
	// Update applies fn to the stored session atomically and persists the
	// result. An error from fn aborts the update and is returned unchanged.
	Update(ctx context.Context, id string, fn func(s *model.QuizSession) error) (*model.QuizSession, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
