package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"factor_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestSessionAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/sessions/:id", SessionAuth(secret), func(c *gin.Context) {
		c.String(http.StatusOK, util.GetSessionFromContext(c).SessionID)
	})

	token, err := util.GenerateSessionToken("abc", "en", secret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"bearer header", "/sessions/abc", "Bearer " + token, http.StatusOK},
		{"query token", "/sessions/abc?token=" + token, "", http.StatusOK},
		{"missing token", "/sessions/abc", "", http.StatusUnauthorized},
		{"garbage token", "/sessions/abc", "Bearer nope", http.StatusUnauthorized},
		{"other session", "/sessions/xyz", "Bearer " + token, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, "abc", w.Body.String())
			}
		})
	}
}
