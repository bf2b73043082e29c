package handlers

import (
	"time"

	"github.com/rs/zerolog"

	"feedback-server/services/feedback-api/internal/domain/feedback"
	"feedback-server/services/feedback-api/internal/refresh"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Feedback  *FeedbackHandler
	Dashboard *DashboardHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(service feedback.Service, refresher *refresh.Refresher, location *time.Location, log zerolog.Logger) *Provider {
	return &Provider{
		Feedback:  NewFeedbackHandler(service, location, log),
		Dashboard: NewDashboardHandler(service, refresher, location, log),
	}
}
