package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"factor_quiz_backend/internal/model"
	"factor_quiz_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(ttl time.Duration) *model.QuizSession {
	return model.NewQuizSession("en", []string{"ei-01", "value-01"}, 7, true, time.Now(), ttl)
}

// testStoreContract checks the behaviour every SessionStore shares.
func testStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		s := newSession(time.Hour)
		require.NoError(t, store.Create(ctx, s))
		t.Cleanup(func() { store.Delete(ctx, s.ID) })

		got, err := store.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, s.ID, got.ID)
		assert.Equal(t, s.QuestionIDs, got.QuestionIDs)
		assert.Empty(t, got.Answers)
		assert.True(t, got.Blend)

		assert.Error(t, store.Create(ctx, s), "duplicate id")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, util.ErrSessionNotFound)

		_, err = store.Update(ctx, "missing", func(*model.QuizSession) error { return nil })
		assert.ErrorIs(t, err, util.ErrSessionNotFound)
	})

	t.Run("update persists and isolates", func(t *testing.T) {
		s := newSession(time.Hour)
		require.NoError(t, store.Create(ctx, s))
		t.Cleanup(func() { store.Delete(ctx, s.ID) })

		updated, err := store.Update(ctx, s.ID, func(s *model.QuizSession) error {
			s.Answers["ei-01"] = 5
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 5, updated.Answers["ei-01"])

		updated.Answers["ei-01"] = 1
		got, err := store.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"ei-01": 5}, got.Answers)
	})

	t.Run("failed update leaves session untouched", func(t *testing.T) {
		s := newSession(time.Hour)
		require.NoError(t, store.Create(ctx, s))
		t.Cleanup(func() { store.Delete(ctx, s.ID) })

		boom := errors.New("boom")
		_, err := store.Update(ctx, s.ID, func(s *model.QuizSession) error {
			s.Answers["ei-01"] = 4
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := store.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Answers)
	})

	t.Run("delete", func(t *testing.T) {
		s := newSession(time.Hour)
		require.NoError(t, store.Create(ctx, s))
		require.NoError(t, store.Delete(ctx, s.ID))
		_, err := store.Get(ctx, s.ID)
		assert.ErrorIs(t, err, util.ErrSessionNotFound)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}

func TestMemorySessionStore(t *testing.T) {
	testStoreContract(t, NewMemorySessionStore())
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore()
	now := time.Now()
	store.now = func() time.Time { return now }

	ctx := context.Background()
	stale := model.NewQuizSession("en", []string{"ei-01"}, 1, false, now, time.Minute)
	require.NoError(t, store.Create(ctx, stale))

	now = now.Add(2 * time.Minute)
	_, err := store.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, util.ErrSessionExpired)

	_, err = store.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	other := model.NewQuizSession("en", []string{"ei-01"}, 1, false, now.Add(-2*time.Minute), time.Minute)
	store.sessions[other.ID] = other
	require.NoError(t, store.Create(ctx, model.NewQuizSession("en", nil, 1, false, now, time.Minute)))
	assert.Equal(t, 1, store.Len())
}

func TestRedisSessionStore(t *testing.T) {
	addr := os.Getenv("FACTOR_QUIZ_TEST_REDIS")
	if addr == "" {
		t.Skip("FACTOR_QUIZ_TEST_REDIS not set")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { rdb.Close() })
	require.NoError(t, rdb.Ping(context.Background()).Err())

	store := NewRedisSessionStore(rdb)
	store.Prefix = "quiz:test:" + model.GenerateUUID() + ":"
	testStoreContract(t, store)

	s := newSession(time.Hour)
	require.NoError(t, store.Create(context.Background(), s))
	ttl, err := rdb.TTL(context.Background(), store.key(s.ID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Minute)
	store.Delete(context.Background(), s.ID)
}
