package dto

import (
	"time"

	"feedback-server/services/feedback-api/internal/domain/feedback"
)

// RecordPayload is the HTTP representation of one feedback record.
// Timestamps are rendered in the display timezone.
type RecordPayload struct {
	ID                 string             `json:"id"`
	Timestamp          time.Time          `json:"timestamp"`
	Rating             int                `json:"rating"`
	Review             string             `json:"review"`
	AIResponse         string             `json:"ai_response"`
	AISummary          string             `json:"ai_summary"`
	RecommendedActions string             `json:"recommended_actions"`
	Sentiment          feedback.Sentiment `json:"sentiment"`
	Priority           feedback.Priority  `json:"priority"`
}

// SubmitFeedbackResponse models POST /v1/feedback output. Reply is
// surfaced separately so the intake UI can show it immediately.
type SubmitFeedbackResponse struct {
	Message  string        `json:"message"`
	Reply    string        `json:"reply"`
	Feedback RecordPayload `json:"feedback"`
}

// ListFeedbackResponse models GET /v1/feedback output.
type ListFeedbackResponse struct {
	Total   int             `json:"total"`
	Records []RecordPayload `json:"records"`
}

// DashboardPayload models GET /v1/dashboard output.
type DashboardPayload struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Total       int64            `json:"total"`
	Filtered    int64            `json:"filtered"`
	Summary     feedback.Summary `json:"summary"`
	Records     []RecordPayload  `json:"records"`
}

// FromRecord maps a domain record into its HTTP payload.
func FromRecord(r *feedback.Record, loc *time.Location) RecordPayload {
	return RecordPayload{
		ID:                 r.PublicID,
		Timestamp:          r.Timestamp.In(loc),
		Rating:             r.Rating,
		Review:             r.Review,
		AIResponse:         r.AIResponse,
		AISummary:          r.AISummary,
		RecommendedActions: r.RecommendedActions,
		Sentiment:          r.Sentiment,
		Priority:           r.Priority,
	}
}

// FromRecords maps a record slice, preserving order.
func FromRecords(records []feedback.Record, loc *time.Location) []RecordPayload {
	out := make([]RecordPayload, len(records))
	for i := range records {
		out[i] = FromRecord(&records[i], loc)
	}
	return out
}

// FromDashboard maps the dashboard view.
func FromDashboard(view *feedback.DashboardView, loc *time.Location) DashboardPayload {
	return DashboardPayload{
		GeneratedAt: view.GeneratedAt.In(loc),
		Total:       view.Total,
		Filtered:    view.Summary.Count,
		Summary:     view.Summary,
		Records:     FromRecords(view.Records, loc),
	}
}
