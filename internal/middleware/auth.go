package middleware

import (
	"strings"

	"factor_quiz_backend/internal/util"
	"factor_quiz_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionAuth requires a session token, from the Authorization header or the
// token query parameter, whose session id matches the :id path parameter.
func SessionAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseSessionToken(tokenString, secret)
		if err != nil {
			logger.Log.Debug("Session token rejected", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if id := c.Param("id"); id != "" && id != claims.SessionID {
			util.Error(c, 403, util.ErrSessionMismatch.Error())
			c.Abort()
			return
		}

		c.Set(util.ContextSessionKey, claims)
		c.Next()
	}
}
