package controller

import (
	"context"
	"net/http"
	"time"

	"factor_quiz_backend/internal/repository"
	"factor_quiz_backend/internal/util"
	"factor_quiz_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthController struct {
	Store     repository.SessionStore
	StoreName string
	Questions int
}

func NewHealthController(store repository.SessionStore, storeName string, questions int) *HealthController {
	return &HealthController{Store: store, StoreName: storeName, Questions: questions}
}

// @Summary Health check
// @Description Reports whether the session store is reachable
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.Store.Ping(pingCtx); err != nil {
		logger.Log.Warn("Session store unavailable", zap.String("store", c.StoreName), zap.Error(err))
		util.Error(ctx, http.StatusServiceUnavailable, "Session store unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"sessionStore": gin.H{"type": c.StoreName, "status": "up"},
			"questionBank": gin.H{"questions": c.Questions},
		},
	})
}
