package feedback

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"feedback-server/services/feedback-api/internal/domain/generation"
	"feedback-server/services/feedback-api/internal/infrastructure/metrics"
	"feedback-server/services/feedback-api/internal/infrastructure/observability"
	"feedback-server/services/feedback-api/internal/utils/platformerrors"
)

// Service is the application surface over the feedback pipeline.
type Service interface {
	Submit(ctx context.Context, params SubmitParams) (*Record, error)
	ListAll(ctx context.Context) ([]Record, error)
	Dashboard(ctx context.Context, filter *Filter) (*DashboardView, error)
	ClearAll(ctx context.Context) error
}

// ContentGenerator is the content generation adapter contract.
type ContentGenerator interface {
	Generate(ctx context.Context, rating int, review string) generation.Result
}

// SubmitParams carries one feedback submission.
type SubmitParams struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// DashboardView is the dashboard read model: the filtered records plus
// their summary statistics.
type DashboardView struct {
	GeneratedAt time.Time `json:"generated_at"`
	Total       int64     `json:"total"`
	Records     []Record  `json:"records"`
	Summary     Summary   `json:"summary"`
}

// Validation limits for review text.
type ValidationConfig struct {
	ReviewMinLength int
	ReviewMaxLength int
}

// ServiceImpl provides the domain implementation.
type ServiceImpl struct {
	records    Repository
	generator  ContentGenerator
	validation ValidationConfig
	location   *time.Location
	now        func() time.Time
	log        zerolog.Logger
}

// NewService wires dependencies.
func NewService(
	records Repository,
	generator ContentGenerator,
	validation ValidationConfig,
	location *time.Location,
	log zerolog.Logger,
) *ServiceImpl {
	if location == nil {
		location = time.UTC
	}
	return &ServiceImpl{
		records:    records,
		generator:  generator,
		validation: validation,
		location:   location,
		now:        time.Now,
		log:        log.With().Str("component", "feedback-service").Logger(),
	}
}

// Ensure interface compliance.
var _ Service = (*ServiceImpl)(nil)

// Submit validates the submission, produces the three derived fields
// and appends the combined record. Validation failures stop the
// pipeline before any I/O; generation failures are absorbed into
// fallback text; store failures propagate.
func (s *ServiceImpl) Submit(ctx context.Context, params SubmitParams) (*Record, error) {
	ctx, span := observability.StartSubmissionSpan(ctx, params.Rating, len(params.Review))
	defer span.End()

	review := strings.TrimSpace(params.Review)
	if err := s.validate(params.Rating, review); err != nil {
		metrics.SubmissionsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	// All three derived fields are joined before the insert; the
	// record is either fully assembled or not written at all.
	content := s.generator.Generate(ctx, params.Rating, review)

	record := &Record{
		Timestamp:          s.now().UTC(),
		Rating:             params.Rating,
		Review:             review,
		AIResponse:         content.Reply,
		AISummary:          content.Summary,
		RecommendedActions: content.Actions,
	}

	if err := s.records.Insert(ctx, record); err != nil {
		metrics.SubmissionsTotal.WithLabelValues("store_error").Inc()
		observability.RecordError(span, err)
		return nil, err
	}

	metrics.SubmissionsTotal.WithLabelValues("accepted").Inc()
	record.Classify()
	s.log.Info().
		Str("public_id", record.PublicID).
		Int("rating", record.Rating).
		Int("fallback_fields", content.FallbackCount()).
		Msg("feedback submitted")
	return record, nil
}

// ListAll returns every record, classified, newest first.
func (s *ServiceImpl) ListAll(ctx context.Context) ([]Record, error) {
	records, err := s.records.SelectAll(ctx)
	if err != nil {
		return nil, err
	}
	return ClassifyAll(records), nil
}

// Dashboard reads all records, classifies them, applies the filter and
// recomputes the summary. A failed read degrades to the empty state so
// a transient store outage presents as "no data yet" rather than an
// error page.
func (s *ServiceImpl) Dashboard(ctx context.Context, filter *Filter) (*DashboardView, error) {
	records, err := s.records.SelectAll(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("store read failed, degrading to empty collection")
		metrics.StoreReadFailuresTotal.Inc()
		records = nil
	}

	ClassifyAll(records)
	filtered := filter.Apply(records, s.location)

	now := s.now()
	return &DashboardView{
		GeneratedAt: now,
		Total:       int64(len(records)),
		Records:     filtered,
		Summary:     Summarize(filtered, now, s.location),
	}, nil
}

// ClearAll wipes the store. Callers gate this behind an explicit
// confirmation; it is never invoked automatically.
func (s *ServiceImpl) ClearAll(ctx context.Context) error {
	if err := s.records.DeleteAll(ctx); err != nil {
		return err
	}
	s.log.Info().Msg("all feedback records deleted")
	return nil
}

// Location returns the display timezone the service buckets dates in.
func (s *ServiceImpl) Location() *time.Location {
	return s.location
}

func (s *ServiceImpl) validate(rating int, review string) error {
	if rating < MinRating || rating > MaxRating {
		return platformerrors.NewError(
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"rating must be between 1 and 5",
			nil,
		)
	}
	if review == "" {
		return platformerrors.NewError(
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"review text is required",
			nil,
		)
	}
	if len(review) < s.validation.ReviewMinLength {
		return platformerrors.NewError(
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"review text is too short",
			nil,
		)
	}
	if s.validation.ReviewMaxLength > 0 && len(review) > s.validation.ReviewMaxLength {
		return platformerrors.NewError(
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"review text is too long",
			nil,
		)
	}
	return nil
}
