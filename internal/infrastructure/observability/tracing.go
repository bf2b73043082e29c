package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "feedback-server/feedback-api"

// GetTracer returns the tracer for the feedback-api service.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartSubmissionSpan starts a span covering one feedback submission
// from validation through insert.
func StartSubmissionSpan(ctx context.Context, rating int, reviewLength int) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "feedback.submit",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.Int("feedback.rating", rating),
			attribute.Int("feedback.review_length", reviewLength),
		),
	)
}

// StartGenerationSpan starts a span covering the three parallel
// content generation calls for one submission.
func StartGenerationSpan(ctx context.Context, rating int) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "generation.generate",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.Int("feedback.rating", rating)),
	)
}

// AddRetryEvent records a retry attempt on the current span.
func AddRetryEvent(ctx context.Context, attempt int, field string) {
	trace.SpanFromContext(ctx).AddEvent("retry",
		trace.WithAttributes(
			attribute.Int("retry.attempt", attempt),
			attribute.String("generation.field", field),
		),
	)
}

// RecordError records an error on a span.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
