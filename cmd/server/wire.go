//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"feedback-server/services/feedback-api/internal/config"
	"feedback-server/services/feedback-api/internal/domain/feedback"
	"feedback-server/services/feedback-api/internal/domain/generation"
	"feedback-server/services/feedback-api/internal/domain/llm"
	"feedback-server/services/feedback-api/internal/domain/retry"
	"feedback-server/services/feedback-api/internal/infrastructure/database"
	"feedback-server/services/feedback-api/internal/infrastructure/llmprovider"
	"feedback-server/services/feedback-api/internal/infrastructure/logger"
	feedbackrepo "feedback-server/services/feedback-api/internal/infrastructure/repository/feedback"
	"feedback-server/services/feedback-api/internal/interfaces/httpserver"
	"feedback-server/services/feedback-api/internal/refresh"
)

var feedbackSet = wire.NewSet(
	feedbackrepo.NewPostgresRepository,
	wire.Bind(new(feedback.Repository), new(*feedbackrepo.PostgresRepository)),
	newLLMProvider,
	wire.Bind(new(llm.Provider), new(*llmprovider.Client)),
	newGenerator,
	wire.Bind(new(feedback.ContentGenerator), new(*generation.Generator)),
	newFeedbackService,
	wire.Bind(new(feedback.Service), new(*feedback.ServiceImpl)),
	newRefresher,
)

// BuildApplication demonstrates how to assemble the feedback service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newDatabaseConfig,
		newGormDB,
		feedbackSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}

func newLLMProvider(cfg *config.Config) *llmprovider.Client {
	return llmprovider.NewClient(cfg.LLMAPIURL, cfg.LLMAPIKey, cfg.LLMTimeout)
}

func newGenerator(cfg *config.Config, provider llm.Provider, log zerolog.Logger) *generation.Generator {
	return generation.NewGenerator(provider, cfg.LLMModel, retry.Policy{
		MaxAttempts:     cfg.GenerationMaxAttempts,
		InitialDelay:    cfg.GenerationBackoff,
		MaxDelay:        cfg.GenerationBackoff,
		BackoffStrategy: retry.BackoffFixed,
	}, log)
}

func newFeedbackService(
	cfg *config.Config,
	records feedback.Repository,
	generator feedback.ContentGenerator,
	log zerolog.Logger,
) *feedback.ServiceImpl {
	return feedback.NewService(
		records,
		generator,
		feedback.ValidationConfig{
			ReviewMinLength: cfg.ReviewMinLength,
			ReviewMaxLength: cfg.ReviewMaxLength,
		},
		cfg.DisplayLocation,
		log,
	)
}

func newRefresher(cfg *config.Config, service feedback.Service, log zerolog.Logger) *refresh.Refresher {
	return refresh.NewRefresher(service, cfg.RefreshInterval, log)
}
