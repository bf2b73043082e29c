// Package feedback provides the Postgres-backed record store adapter.
package feedback

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "feedback-server/services/feedback-api/internal/domain/feedback"
	"feedback-server/services/feedback-api/internal/infrastructure/database/entities"
	"feedback-server/services/feedback-api/internal/infrastructure/metrics"
	"feedback-server/services/feedback-api/internal/utils/platformerrors"
)

// PostgresRepository provides persistence for feedback records.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Ensure interface compliance.
var _ domain.Repository = (*PostgresRepository)(nil)

// Insert appends one record. The write either persists the fully
// assembled record or fails loudly; there is no partial write.
func (r *PostgresRepository) Insert(ctx context.Context, record *domain.Record) error {
	defer observe("insert", time.Now())

	entity := mapToEntity(record)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to insert feedback record",
			err,
		)
	}

	mapFromEntity(entity, record)
	return nil
}

// SelectAll returns every record ordered by timestamp descending. An
// empty table yields an empty slice, not an error.
func (r *PostgresRepository) SelectAll(ctx context.Context) ([]domain.Record, error) {
	defer observe("select_all", time.Now())

	var rows []entities.Feedback
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to read feedback records",
			err,
		)
	}

	records := make([]domain.Record, len(rows))
	for i := range rows {
		mapFromEntity(&rows[i], &records[i])
	}
	return records, nil
}

// DeleteAll wipes the table. Irreversible.
func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	defer observe("delete_all", time.Now())

	if err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&entities.Feedback{}).Error; err != nil {
		return platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete feedback records",
			err,
		)
	}
	return nil
}

func observe(operation string, start time.Time) {
	metrics.StoreQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func mapToEntity(record *domain.Record) *entities.Feedback {
	return &entities.Feedback{
		ID:                 record.ID,
		PublicID:           record.PublicID,
		Timestamp:          record.Timestamp,
		Rating:             record.Rating,
		Review:             record.Review,
		AIResponse:         record.AIResponse,
		AISummary:          record.AISummary,
		RecommendedActions: record.RecommendedActions,
	}
}

func mapFromEntity(entity *entities.Feedback, record *domain.Record) {
	record.ID = entity.ID
	record.PublicID = entity.PublicID
	// Stored timestamps carry no timezone semantics beyond UTC; read
	// paths treat them as UTC and convert for display.
	record.Timestamp = entity.Timestamp.UTC()
	record.Rating = entity.Rating
	record.Review = entity.Review
	record.AIResponse = entity.AIResponse
	record.AISummary = entity.AISummary
	record.RecommendedActions = entity.RecommendedActions
}
