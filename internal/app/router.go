package app

import (
	"factor_quiz_backend/docs"
	"factor_quiz_backend/internal/config"
	"factor_quiz_backend/internal/middleware"
	"factor_quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. public routes
	a.registerPublicRoutes(router, c)

	// 2. routes scoped to one quiz session
	a.registerSessionRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/questions", c.quiz.ListCatalog)
		public.POST("/score", c.quiz.Score)
		public.POST("/sessions", c.quiz.StartSession)
	}
}

func (a *App) registerSessionRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	session := router.Group("/api/sessions/:id")
	session.Use(middleware.SessionAuth(cfg.JWT.Secret))
	{
		session.GET("/questions", c.quiz.ListQuestions)
		session.PUT("/answers/:questionId", c.quiz.SubmitAnswer)
		session.POST("/answers", c.quiz.SubmitAnswers)
		session.DELETE("/answers/:questionId", c.quiz.ClearAnswer)
		session.POST("/reset", c.quiz.ResetSession)
		session.PUT("/blend", c.quiz.SetBlend)
		session.GET("/result", c.quiz.GetResult)
		session.POST("/export", c.quiz.ExportReport)
		session.GET("/export.csv", c.quiz.DownloadReport)
	}
}
