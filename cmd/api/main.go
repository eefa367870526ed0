package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/osglvelarde/LicenPrepAI/internal/adapter"
	"github.com/osglvelarde/LicenPrepAI/internal/adapter/completion"
	"github.com/osglvelarde/LicenPrepAI/internal/adapter/embedding"
	"github.com/osglvelarde/LicenPrepAI/internal/adapter/retriever"
	"github.com/osglvelarde/LicenPrepAI/internal/cache"
	"github.com/osglvelarde/LicenPrepAI/internal/config"
	"github.com/osglvelarde/LicenPrepAI/internal/domain"
	"github.com/osglvelarde/LicenPrepAI/internal/handler"
	"github.com/osglvelarde/LicenPrepAI/internal/logger"
	"github.com/osglvelarde/LicenPrepAI/internal/middleware"
	"github.com/osglvelarde/LicenPrepAI/internal/service"
	"github.com/osglvelarde/LicenPrepAI/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Initialize Redis client and cache adapter
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Initialize embedding service
	var embeddingService domain.EmbeddingService
	switch cfg.Embedding.Source {
	case "ollama":
		appLogger.Info("Initializing Ollama Embedding Service",
			zap.String("server_url", cfg.Embedding.Ollama.ServerURL),
			zap.String("model", cfg.Embedding.Ollama.Model),
		)
		embeddingService, err = embedding.NewOllamaEmbeddingService(cfg.Embedding.Ollama.ServerURL, cfg.Embedding.Ollama.Model)
		if err != nil {
			appLogger.Fatal("Failed to create Ollama Embedding Service", zap.Error(err))
		}
	case "openai":
		appLogger.Info("Initializing OpenAI Embedding Service", zap.String("model", cfg.Embedding.OpenAI.Model))
		embeddingService, err = embedding.NewOpenAIEmbeddingService(cfg.Embedding.OpenAI.APIKey, cfg.Embedding.OpenAI.Model, cacheAdapter, cfg.Embedding.CacheTTL)
		if err != nil {
			appLogger.Fatal("Failed to create OpenAI Embedding Service", zap.Error(err))
		}
	default:
		appLogger.Fatal(fmt.Sprintf("Unsupported embedding source: %s. Please check embedding.source in config.", cfg.Embedding.Source))
	}

	// Initialize Chroma document retriever
	chromaStore, err := retriever.NewChromaStore(cfg.Chroma)
	if err != nil {
		appLogger.Fatal("Failed to connect to Chroma", zap.Error(err))
	}
	appLogger.Info("Connected to Chroma",
		zap.String("url", cfg.Chroma.URL),
		zap.String("collection", cfg.Chroma.Collection),
	)

	// Initialize completion client
	var completionClient domain.CompletionClient
	switch cfg.LLM.Source {
	case "deepseek":
		appLogger.Info("Initializing DeepSeek completion client", zap.String("model", cfg.LLM.DeepSeek.Model))
		completionClient, err = completion.NewDeepSeekClient(cfg.LLM.DeepSeek, cfg.LLM.Timeout)
		if err != nil {
			appLogger.Fatal("Failed to create DeepSeek client", zap.Error(err))
		}
	case "ollama":
		appLogger.Info("Initializing Ollama completion client",
			zap.String("server_url", cfg.LLM.Ollama.ServerURL),
			zap.String("model", cfg.LLM.Ollama.Model),
		)
		completionClient, err = completion.NewOllamaClient(cfg.LLM.Ollama, cfg.LLM.Timeout)
		if err != nil {
			appLogger.Fatal("Failed to create Ollama completion client", zap.Error(err))
		}
	default:
		appLogger.Fatal(fmt.Sprintf("Unsupported LLM source: %s. Please check llm.source in config.", cfg.LLM.Source))
	}

	// Initialize services
	selector := service.NewDiversitySelector(cfg.Generation.SimilarityThreshold, time.Now().UnixNano())
	sampler := service.NewScenarioSampler(time.Now().UnixNano())
	generationService := service.NewGenerationService(embeddingService, chromaStore, completionClient, selector, sampler, cfg)

	// Initialize handlers
	validator := validation.NewValidator()
	generateHandler := handler.NewGenerateHandler(generationService, validator)
	quizHandler := handler.NewQuizHandler(validator)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))

	// Routes
	app.Get("/", handler.HealthCheck)
	apiGroup := app.Group("/api")
	apiGroup.Post("/generate", generateHandler.GenerateQuestions)
	apiGroup.Get("/quiz", quizHandler.GetQuiz)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		appLogger.Warn("Failed to close Redis client", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
