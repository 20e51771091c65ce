package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"factor_quiz_backend/internal/bank"
	"factor_quiz_backend/internal/config"
	"factor_quiz_backend/internal/controller"
	"factor_quiz_backend/internal/repository"
	"factor_quiz_backend/internal/service"
	"factor_quiz_backend/internal/util"
	"factor_quiz_backend/pkg/configwatcher"
	"factor_quiz_backend/pkg/database"
	"factor_quiz_backend/pkg/logger"
	"factor_quiz_backend/pkg/monitoring"
	"factor_quiz_backend/pkg/security"
	"factor_quiz_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Redis           *redis.Client
	Store           repository.SessionStore
	services        *services
	configCallbacks []func(*config.Config)
	tracer          *sdktrace.TracerProvider
	stopWatch       context.CancelFunc
}

type services struct {
	storage *service.StorageService
	quiz    *service.QuizService
}

type controllers struct {
	quiz   *controller.QuizController
	health *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initSessionStore(ctx context.Context, cfg *config.Config) (repository.SessionStore, *redis.Client, error) {
	if cfg.Quiz.SessionStore != config.SessionStoreRedis {
		return repository.NewMemorySessionStore(), nil, nil
	}
	rdb, err := database.InitRedis(ctx, &cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewRedisSessionStore(rdb), rdb, nil
}

func (a *App) initServices(cfg *config.Config, store repository.SessionStore, b *bank.Bank) *services {
	s := &services{}
	s.storage = service.NewStorageService(cfg)
	s.quiz = service.NewQuizService(store, b, s.storage, cfg)
	return s
}

func (a *App) initControllers(s *services, cfg *config.Config, b *bank.Bank) *controllers {
	return &controllers{
		quiz:   controller.NewQuizController(s.quiz),
		health: controller.NewHealthController(a.Store, cfg.Quiz.SessionStore, b.Len()),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp builds the infrastructure named by cfg and the HTTP router on top of
// it. It exits the process when a required backend is unreachable.
func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	var tp *sdktrace.TracerProvider
	if cfg.Tracing.Enabled {
		var err error
		tp, err = tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	b, err := bank.Load()
	if err != nil {
		logger.Log.Fatal("Failed to load question bank", zap.Error(err))
	}

	app := &App{Config: cfg, tracer: tp}
	store, rdb, err := app.initSessionStore(context.Background(), cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize session store", zap.Error(err))
	}
	app.Redis = rdb

	app.build(store, b)
	return app
}

// build wires services, controllers and routes over an existing store.
func (a *App) build(store repository.SessionStore, b *bank.Bank) {
	cfg := a.Config
	a.Store = store

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	a.services = a.initServices(cfg, store, b)
	controllers := a.initControllers(a.services, cfg, b)

	router := gin.Default()
	a.Router = router

	a.setupMiddlewares(router, cfg)
	a.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static(service.LocalURLPrefix, cfg.Storage.LocalPath)
	}

	a.RegisterConfigCallback(a.services.quiz.UpdateConfig)
	a.RegisterConfigCallback(func(cfg *config.Config) {
		logger.SetMode(cfg.Server.Mode)
	})
}

// WatchConfig hot-reloads configDir/config.yaml until Run shuts down.
func (a *App) WatchConfig(configDir string) {
	ctx, cancel := context.WithCancel(context.Background())
	a.stopWatch = cancel

	path := filepath.Join(configDir, "config.yaml")
	go func() {
		if err := configwatcher.WatchConfig(ctx, path, a.applyConfig); err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.String("path", path), zap.Error(err))
		}
	}()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	if a.stopWatch != nil {
		a.stopWatch()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}

	logger.Log.Info("Server exiting")
}
