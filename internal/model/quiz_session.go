package model

import (
	"time"

	"github.com/google/uuid"
)

// QuizSession is one respondent's working set and answer mapping. It lives
// only as long as its TTL.
type QuizSession struct {
	ID          string         `json:"id"`
	Locale      string         `json:"locale"`
	QuestionIDs []string       `json:"questionIds"`
	Answers     map[string]int `json:"answers"`
	Blend       bool           `json:"blend"`
	Seed        uint64         `json:"seed"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	ExpiresAt   time.Time      `json:"expiresAt"`
}

func NewQuizSession(locale string, questionIDs []string, seed uint64, blend bool, now time.Time, ttl time.Duration) *QuizSession {
	return &QuizSession{
		ID:          GenerateUUID(),
		Locale:      locale,
		QuestionIDs: questionIDs,
		Answers:     make(map[string]int),
		Blend:       blend,
		Seed:        seed,
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}
}

func GenerateUUID() string {
	return uuid.New().String()
}

// Touch records a change. The expiry stays fixed so the session and its
// token lapse together.
func (s *QuizSession) Touch(now time.Time) {
	s.UpdatedAt = now
}

func (s *QuizSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

func (s *QuizSession) HasQuestion(id string) bool {
	for _, q := range s.QuestionIDs {
		if q == id {
			return true
		}
	}
	return false
}

// Clone deep-copies the session so stores never share maps with callers.
func (s *QuizSession) Clone() *QuizSession {
	c := *s
	c.QuestionIDs = append([]string(nil), s.QuestionIDs...)
	c.Answers = make(map[string]int, len(s.Answers))
	for k, v := range s.Answers {
		c.Answers[k] = v
	}
	return &c
}
