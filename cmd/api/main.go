// @title Quizera API
// @version 1.0
// @description Generates quizzes from uploaded PDF documents with a language model.
// @host localhost:5000
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizera/internal/adapter"
	"quizera/internal/adapter/llm"
	"quizera/internal/adapter/pdftext"
	"quizera/internal/cache"
	"quizera/internal/config"
	"quizera/internal/database"
	"quizera/internal/domain"
	"quizera/internal/handler"
	"quizera/internal/logger"
	"quizera/internal/middleware"
	"quizera/internal/quizgen"
	"quizera/internal/repository"
	"quizera/internal/service"
	"quizera/internal/validation"

	_ "quizera/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	model, err := llm.NewModel(ctx, cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.String("provider", cfg.LLM.Provider), zap.Error(err))
	}
	invoker, err := llm.NewInvoker(model, cfg.LLM.Temperature, appLogger.Named("llm"))
	if err != nil {
		appLogger.Fatal("Failed to create LLM invoker", zap.Error(err))
	}
	appLogger.Info("LLM client initialized", zap.String("provider", cfg.LLM.Provider), zap.String("model", cfg.LLM.Model))

	generator, err := quizgen.NewGenerator(invoker, quizgen.PromptOptions{MaxSourceChars: cfg.Quiz.MaxSourceChars}, appLogger.Named("quizgen"))
	if err != nil {
		appLogger.Fatal("Failed to create quiz generator", zap.Error(err))
	}

	var (
		store        domain.DocumentStore
		sessions     domain.QuizSessionStore
		healthChecks []service.HealthCheck
	)
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
		store, err = service.NewCacheDocumentStore(cacheAdapter, cfg.Redis.DocumentTTL)
		if err != nil {
			appLogger.Fatal("Failed to create document store", zap.Error(err))
		}
		sessions, err = service.NewCacheQuizSessionStore(cacheAdapter, cfg.Session.TTL)
		if err != nil {
			appLogger.Fatal("Failed to create session quiz store", zap.Error(err))
		}
		healthChecks = append(healthChecks, service.HealthCheck{Name: "redis", Ping: cacheAdapter.Ping})
		appLogger.Info("Using Redis document and session stores", zap.Duration("ttl", cfg.Redis.DocumentTTL))
	} else {
		store = service.NewMemoryDocumentStore()
		sessions = service.NewMemoryQuizSessionStore(cfg.Session.TTL)
		appLogger.Info("Redis not configured, using in-memory document and session stores")
	}

	var (
		docRepo   domain.DocumentRepository
		genRepo   domain.GenerationRepository
		scoreRepo domain.ScoreRepository
	)
	if cfg.DatabaseEnabled() {
		db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		docRepo = repository.NewSQLXDocumentRepository(db)
		genRepo = repository.NewSQLXGenerationRepository(db)
		scoreRepo = repository.NewSQLXScoreRepository(db)
		healthChecks = append(healthChecks, service.HealthCheck{Name: "database", Ping: db.PingContext})
	} else {
		scoreRepo = service.NewMemoryScoreRepository()
		appLogger.Info("Database not configured, generation history is disabled and scores are kept in memory")
	}

	extractor := pdftext.NewExtractor(appLogger.Named("pdftext"))

	quizService, err := service.NewQuizService(
		extractor,
		generator,
		store,
		docRepo,
		genRepo,
		afero.NewOsFs(),
		cfg,
	)
	if err != nil {
		appLogger.Fatal("Failed to create QuizService", zap.Error(err))
	}

	practiceService, err := service.NewPracticeService(extractor, generator, sessions, genRepo, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create PracticeService", zap.Error(err))
	}
	leaderboardService, err := service.NewLeaderboardService(scoreRepo)
	if err != nil {
		appLogger.Fatal("Failed to create LeaderboardService", zap.Error(err))
	}

	validator := validation.NewValidator(cfg.Quiz.DefaultQuestionCount, cfg.Quiz.MaxQuestionCount)
	quizHandler := handler.NewQuizHandler(quizService, validator)
	practiceHandler := handler.NewPracticeHandler(practiceService, validator)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService, validator)
	healthHandler := handler.NewHealthHandler(service.NewHealthService(healthCheckTimeout, healthChecks...))

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, quizHandler, middleware.NewValidationMiddleware(validator))
	handler.RegisterPracticeRoutes(app, practiceHandler, middleware.Session(cfg.Session))
	handler.RegisterLeaderboardRoutes(app, leaderboardHandler)
	handler.RegisterHealthRoutes(app, healthHandler)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
