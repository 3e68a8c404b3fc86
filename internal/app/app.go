package app

import (
	"book_quiz_backend/internal/config"
	"book_quiz_backend/internal/controller"
	"book_quiz_backend/internal/repository"
	"book_quiz_backend/internal/service"
	"book_quiz_backend/pkg/cache"
	"book_quiz_backend/pkg/database"
	"book_quiz_backend/pkg/logger"
	"book_quiz_backend/pkg/monitoring"
	"book_quiz_backend/pkg/security"
	"book_quiz_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	quiz     *repository.QuizRepository
	question *repository.QuestionRepository
	book     *repository.BookRepository
	admin    *repository.AdminRepository
	report   *repository.ReportRepository
}

type services struct {
	storage     *service.StorageService
	auth        *service.AuthService
	quiz        *service.QuizService
	question    *service.QuestionService
	book        *service.BookService
	report      *service.ReportService
	analytics   *service.AnalyticsService
	leaderboard *service.LeaderboardService
}

type controllers struct {
	analytics *controller.AnalyticsController
	quiz      *controller.QuizController
	question  *controller.QuestionController
	book      *controller.BookController
	report    *controller.ReportController
	auth      *controller.AuthController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		quiz:     repository.NewQuizRepository(db),
		question: repository.NewQuestionRepository(db),
		book:     repository.NewBookRepository(db),
		admin:    repository.NewAdminRepository(db),
		report:   repository.NewReportRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, store cache.Store) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.admin, cfg)
	s.quiz = service.NewQuizService(repos.quiz, repos.question)
	s.question = service.NewQuestionService(repos.question, repos.book)
	s.book = service.NewBookService(repos.book, repos.question, s.storage)
	s.report = service.NewReportService(repos.report, repos.question)
	s.analytics = service.NewAnalyticsService(repos.quiz, repos.question, store)
	s.leaderboard = service.NewLeaderboardService(repos.quiz)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, cfg *config.Config) *controllers {
	return &controllers{
		analytics: controller.NewAnalyticsController(s.analytics, s.leaderboard, &cfg.Analytics),
		quiz:      controller.NewQuizController(s.quiz),
		question:  controller.NewQuestionController(s.question),
		book:      controller.NewBookController(s.book),
		report:    controller.NewReportController(s.report),
		auth:      controller.NewAuthController(s.auth),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// initCacheStore 配置了 Redis 时用 Redis 作概览缓存，否则退回进程内缓存
func (a *App) initCacheStore(cfg *config.Config) cache.Store {
	ttl := cfg.Analytics.OverviewCacheTTL()

	if cfg.Redis.Host == "" {
		logger.Log.Info("Redis not configured, using in-memory analytics cache")
		return cache.NewMemoryStore(ttl)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, falling back to in-memory analytics cache", zap.Error(err))
		return cache.NewMemoryStore(ttl)
	}

	a.Redis = rdb
	return cache.NewRedisStore(rdb, ttl)
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	// release 模式默认跳过迁移，--migrate / --migrate-only 可强制执行
	migrate := cfg.Server.Mode != "release" || cfg.ForceMigrate

	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := database.SeedAdmin(db, &cfg.Admin); err != nil {
		logger.Log.Fatal("Failed to seed admin account", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	store := app.initCacheStore(cfg)
	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, store)
	controllers := app.initControllers(services, db, cfg)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("book-quiz-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			log.Printf("Redis close error: %v", err)
		}
	}

	log.Println("Server exiting")
}
