package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"feedback-server/services/feedback-api/internal/config"
	"feedback-server/services/feedback-api/internal/domain/feedback"
	"feedback-server/services/feedback-api/internal/domain/generation"
	"feedback-server/services/feedback-api/internal/domain/retry"
	"feedback-server/services/feedback-api/internal/infrastructure/database"
	"feedback-server/services/feedback-api/internal/infrastructure/llmprovider"
	"feedback-server/services/feedback-api/internal/infrastructure/logger"
	"feedback-server/services/feedback-api/internal/infrastructure/observability"
	feedbackrepo "feedback-server/services/feedback-api/internal/infrastructure/repository/feedback"
	"feedback-server/services/feedback-api/internal/interfaces/httpserver"
	"feedback-server/services/feedback-api/internal/refresh"
)

// Application bundles the long-running pieces of the service.
type Application struct {
	httpServer *httpserver.HTTPServer
	log        zerolog.Logger
}

// NewApplication constructs the application wrapper.
func NewApplication(httpServer *httpserver.HTTPServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

// Start runs the HTTP server until the context is cancelled.
func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	recordRepository := feedbackrepo.NewPostgresRepository(db)
	llmClient := llmprovider.NewClient(cfg.LLMAPIURL, cfg.LLMAPIKey, cfg.LLMTimeout)

	generator := generation.NewGenerator(llmClient, cfg.LLMModel, retry.Policy{
		MaxAttempts:     cfg.GenerationMaxAttempts,
		InitialDelay:    cfg.GenerationBackoff,
		MaxDelay:        cfg.GenerationBackoff,
		BackoffStrategy: retry.BackoffFixed,
	}, log)

	feedbackService := feedback.NewService(
		recordRepository,
		generator,
		feedback.ValidationConfig{
			ReviewMinLength: cfg.ReviewMinLength,
			ReviewMaxLength: cfg.ReviewMaxLength,
		},
		cfg.DisplayLocation,
		log,
	)

	// Background dashboard snapshot refresher (the auto-refresh loop).
	refresher := refresh.NewRefresher(feedbackService, cfg.RefreshInterval, log)
	refresher.Start(ctx)
	defer refresher.Stop()

	httpServer := httpserver.New(cfg, log, feedbackService, refresher)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
