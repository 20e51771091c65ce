package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"factor_quiz_backend/internal/model"
	"factor_quiz_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

const (
	sessionKeyPrefix = "quiz:session:"
	maxUpdateRetries = 5
)

var errUpdateContention = errors.New("session update lost too many optimistic races")

// RedisSessionStore keeps each session as a JSON value whose key TTL tracks
// the session's ExpiresAt. Updates use WATCH/MULTI.
type RedisSessionStore struct {
	Redis  *redis.Client
	Prefix string
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Redis: rdb, Prefix: sessionKeyPrefix}
}

func (r *RedisSessionStore) key(id string) string {
	return r.Prefix + id
}

func (r *RedisSessionStore) Create(ctx context.Context, s *model.QuizSession) error {
	data, ttl, err := encodeSession(s)
	if err != nil {
		return err
	}
	ok, err := r.Redis.SetNX(ctx, r.key(s.ID), data, ttl).Result()
	if err != nil {
		return fmt.Errorf("store session %s: %w", s.ID, err)
	}
	if !ok {
		return fmt.Errorf("session %q already exists", s.ID)
	}
	return nil
}

func (r *RedisSessionStore) Get(ctx context.Context, id string) (*model.QuizSession, error) {
	data, err := r.Redis.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		return nil, r.readError(id, err)
	}
	return decodeSession(id, data)
}

func (r *RedisSessionStore) Update(ctx context.Context, id string, fn func(s *model.QuizSession) error) (*model.QuizSession, error) {
	key := r.key(id)
	var updated *model.QuizSession

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			return r.readError(id, err)
		}
		s, err := decodeSession(id, data)
		if err != nil {
			return err
		}
		if err := fn(s); err != nil {
			return err
		}
		out, ttl, err := encodeSession(s)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, ttl)
			return nil
		})
		if err == nil {
			updated = s
		}
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.Redis.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, fmt.Errorf("update session %s: %w", id, errUpdateContention)
}

func (r *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return r.Redis.Del(ctx, r.key(id)).Err()
}

func (r *RedisSessionStore) Ping(ctx context.Context) error {
	return r.Redis.Ping(ctx).Err()
}

func (r *RedisSessionStore) readError(id string, err error) error {
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: %s", util.ErrSessionNotFound, id)
	}
	return fmt.Errorf("load session %s: %w", id, err)
}

func encodeSession(s *model.QuizSession) ([]byte, time.Duration, error) {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return nil, 0, fmt.Errorf("%w: %s", util.ErrSessionExpired, s.ID)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, 0, fmt.Errorf("encode session %s: %w", s.ID, err)
	}
	return data, ttl, nil
}

func decodeSession(id string, data []byte) (*model.QuizSession, error) {
	var s model.QuizSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	if s.Answers == nil {
		s.Answers = make(map[string]int)
	}
	return &s, nil
}
