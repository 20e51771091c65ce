package util

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("sess-1", "ko", testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "ko", claims.Locale)
	assert.Equal(t, "sess-1", claims.Subject)
}

func TestParseSessionTokenRejects(t *testing.T) {
	expired, err := GenerateSessionToken("sess-1", "en", testSecret, -time.Minute)
	require.NoError(t, err)
	_, err = ParseSessionToken(expired, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	valid, err := GenerateSessionToken("sess-1", "en", testSecret, time.Hour)
	require.NoError(t, err)
	_, err = ParseSessionToken(valid, "another-secret")
	assert.Error(t, err)

	_, err = ParseSessionToken("not-a-token", testSecret)
	assert.Error(t, err)
}
