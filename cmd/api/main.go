package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/gema-tutor/internal/config"
	"github.com/noah-isme/gema-tutor/internal/database"
	"github.com/noah-isme/gema-tutor/internal/extractor"
	"github.com/noah-isme/gema-tutor/internal/handler"
	"github.com/noah-isme/gema-tutor/internal/langdetect"
	"github.com/noah-isme/gema-tutor/internal/middleware"
	"github.com/noah-isme/gema-tutor/internal/router"
	"github.com/noah-isme/gema-tutor/internal/service"
	"github.com/noah-isme/gema-tutor/internal/translator"
	"github.com/noah-isme/gema-tutor/pkg/ai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", cfg.AppName).Logger()
	if cfg.AppEnv == "development" {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	ctx := context.Background()

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(ctx, cfg.RedisURL, 5*time.Second)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		logger.Info().Msg("redis not configured, language catalogue will not be cached")
	}

	googleTranslator, err := translator.NewGoogleTranslator(ctx, translator.GoogleConfig{
		APIKey: cfg.TranslateAPIKey,
		Logger: logger,
	})
	if err != nil {
		log.Fatalf("failed to create translation client: %v", err)
	}

	generator := ai.NewLazy(generatorFactory(cfg, logger))
	validate := validator.New(validator.WithRequiredStructEnabled())

	tutorService := service.NewTutorService(
		extractor.New(),
		langdetect.NewLinguaDetector(),
		googleTranslator,
		generator,
		validate,
		service.TutorConfig{
			Generation: ai.Params{
				MaxLength:   cfg.GenerationMaxLen,
				Sample:      cfg.GenerationSample,
				Temperature: cfg.GenerationTemp,
			},
			GenerationTimeout: cfg.GenerationTimeout,
			TranslateTimeout:  cfg.TranslateTimeout,
		},
		logger,
	)
	languageService := service.NewLanguageService(googleTranslator, redisClient, cfg.LanguageCacheTTL, cfg.TranslateTimeout, logger)

	tutorHandler := handler.NewTutorHandler(tutorService, languageService, cfg.UploadMaxBytes(), logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		BodyLimit:    int(cfg.UploadMaxBytes()) + 1<<20,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.GenerationTimeout + 2*cfg.TranslateTimeout + 10*time.Second,
	})

	middleware.Register(app, middleware.Config{
		Logger:    &logger,
		AccessLog: cfg.AppEnv == "development",
	})
	router.Register(app, cfg, router.Dependencies{
		TutorHandler: tutorHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

// generatorFactory builds the configured model provider on first use.
func generatorFactory(cfg config.Config, logger zerolog.Logger) ai.Factory {
	return func(ctx context.Context) (ai.Generator, error) {
		logger.Info().Str("provider", cfg.AIProvider).Msg("loading answer generator")

		switch cfg.AIProvider {
		case config.ProviderGemini:
			generator, err := ai.NewGeminiGenerator(ctx, ai.GeminiConfig{
				APIKey:  cfg.GeminiAPIKey,
				Model:   cfg.GeminiModel,
				BaseURL: cfg.GeminiBaseURL,
				Logger:  logger,
			})
			if err != nil {
				return nil, err
			}
			return generator, nil
		case config.ProviderOpenAI:
			generator, err := ai.NewOpenAIGenerator(ai.OpenAIConfig{
				APIKey:  cfg.OpenAIAPIKey,
				Model:   cfg.OpenAIModel,
				BaseURL: cfg.OpenAIBaseURL,
				Logger:  logger,
			})
			if err != nil {
				return nil, err
			}
			return generator, nil
		default:
			return nil, fmt.Errorf("unsupported ai provider %q", cfg.AIProvider)
		}
	}
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
