package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"feedback-server/services/feedback-api/internal/domain/feedback"
	"feedback-server/services/feedback-api/internal/interfaces/httpserver/dto"
	"feedback-server/services/feedback-api/internal/refresh"
	"feedback-server/services/feedback-api/internal/utils/platformerrors"
)

// DashboardHandler exposes the analytics read model.
type DashboardHandler struct {
	service   feedback.Service
	refresher *refresh.Refresher
	location  *time.Location
	log       zerolog.Logger
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service feedback.Service, refresher *refresh.Refresher, location *time.Location, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service:   service,
		refresher: refresher,
		location:  location,
		log:       log.With().Str("handler", "dashboard").Logger(),
	}
}

// Get handles GET /v1/dashboard, computing the filtered summary from
// query parameters.
func (h *DashboardHandler) Get(c *gin.Context) {
	var query dto.DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		platformerrors.WriteValidationError(c, err.Error())
		return
	}

	filter, err := h.buildFilter(&query)
	if err != nil {
		platformerrors.WriteValidationError(c, err.Error())
		return
	}

	view, err := h.service.Dashboard(c.Request.Context(), filter)
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}

	c.JSON(http.StatusOK, dto.FromDashboard(view, h.location))
}

// Live handles GET /v1/dashboard/live, serving the latest background
// snapshot without touching the store.
func (h *DashboardHandler) Live(c *gin.Context) {
	snapshot := h.refresher.Snapshot()
	if snapshot == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "warming up"})
		return
	}
	c.JSON(http.StatusOK, dto.FromDashboard(snapshot, h.location))
}

func (h *DashboardHandler) buildFilter(query *dto.DashboardQuery) (*feedback.Filter, error) {
	filter := feedback.NewFilter()
	now := time.Now()

	switch strings.ToLower(strings.TrimSpace(query.Period)) {
	case "", "all":
		// All time: no date bounds.
	case "7d":
		filter.WithLastDays(7, now, h.location)
	case "30d":
		filter.WithLastDays(30, now, h.location)
	case "custom":
		from, err := time.ParseInLocation("2006-01-02", query.From, h.location)
		if err != nil {
			return nil, platformerrors.NewError(platformerrors.LayerHandler, platformerrors.ErrorTypeValidation, "invalid from date, expected YYYY-MM-DD", err)
		}
		to, err := time.ParseInLocation("2006-01-02", query.To, h.location)
		if err != nil {
			return nil, platformerrors.NewError(platformerrors.LayerHandler, platformerrors.ErrorTypeValidation, "invalid to date, expected YYYY-MM-DD", err)
		}
		filter.WithDateRange(from, to)
	default:
		return nil, platformerrors.NewError(platformerrors.LayerHandler, platformerrors.ErrorTypeValidation, "period must be one of all, 7d, 30d, custom", nil)
	}

	for _, raw := range splitCSV(query.Ratings) {
		rating, err := strconv.Atoi(raw)
		if err != nil || rating < feedback.MinRating || rating > feedback.MaxRating {
			return nil, platformerrors.NewError(platformerrors.LayerHandler, platformerrors.ErrorTypeValidation, "ratings must be integers between 1 and 5", err)
		}
		filter.Ratings = append(filter.Ratings, rating)
	}

	for _, raw := range splitCSV(query.Sentiments) {
		sentiment, ok := parseSentiment(raw)
		if !ok {
			return nil, platformerrors.NewError(platformerrors.LayerHandler, platformerrors.ErrorTypeValidation, "sentiments must be Positive, Neutral or Negative", nil)
		}
		filter.Sentiments = append(filter.Sentiments, sentiment)
	}

	for _, raw := range splitCSV(query.Priorities) {
		priority, ok := parsePriority(raw)
		if !ok {
			return nil, platformerrors.NewError(platformerrors.LayerHandler, platformerrors.ErrorTypeValidation, "priorities must be High, Medium or Low", nil)
		}
		filter.Priorities = append(filter.Priorities, priority)
	}

	return filter, nil
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseSentiment(raw string) (feedback.Sentiment, bool) {
	for _, s := range feedback.Sentiments {
		if strings.EqualFold(raw, string(s)) {
			return s, true
		}
	}
	return "", false
}

func parsePriority(raw string) (feedback.Priority, bool) {
	for _, p := range feedback.Priorities {
		if strings.EqualFold(raw, string(p)) {
			return p, true
		}
	}
	return "", false
}
