package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"feedback-server/services/feedback-api/internal/domain/feedback"
	"feedback-server/services/feedback-api/internal/interfaces/httpserver/dto"
	"feedback-server/services/feedback-api/internal/utils/platformerrors"
)

// FeedbackHandler exposes HTTP entrypoints for feedback intake and
// administration.
type FeedbackHandler struct {
	service  feedback.Service
	location *time.Location
	log      zerolog.Logger
}

// NewFeedbackHandler constructs the handler.
func NewFeedbackHandler(service feedback.Service, location *time.Location, log zerolog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service:  service,
		location: location,
		log:      log.With().Str("handler", "feedback").Logger(),
	}
}

// Submit handles POST /v1/feedback.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteValidationError(c, err.Error())
		return
	}

	record, err := h.service.Submit(c.Request.Context(), feedback.SubmitParams{
		Rating: req.Rating,
		Review: req.Review,
	})
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitFeedbackResponse{
		Message:  "feedback submitted successfully",
		Reply:    record.AIResponse,
		Feedback: dto.FromRecord(record, h.location),
	})
}

// List handles GET /v1/feedback.
func (h *FeedbackHandler) List(c *gin.Context) {
	records, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}

	c.JSON(http.StatusOK, dto.ListFeedbackResponse{
		Total:   len(records),
		Records: dto.FromRecords(records, h.location),
	})
}

// Export handles GET /v1/feedback/export, streaming all records as CSV
// with display-timezone timestamps.
func (h *FeedbackHandler) Export(c *gin.Context) {
	records, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}

	filename := fmt.Sprintf("feedback_%s.csv", time.Now().In(h.location).Format("20060102_150405"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"id", "timestamp", "rating", "review", "ai_response", "ai_summary", "recommended_actions", "sentiment", "priority"})
	for i := range records {
		r := &records[i]
		_ = w.Write([]string{
			r.PublicID,
			r.Timestamp.In(h.location).Format("2006-01-02 15:04:05"),
			strconv.Itoa(r.Rating),
			r.Review,
			r.AIResponse,
			r.AISummary,
			r.RecommendedActions,
			string(r.Sentiment),
			string(r.Priority),
		})
	}
	w.Flush()
}

// Clear handles DELETE /v1/feedback. The wipe is irreversible, so it
// requires an explicit confirm=true.
func (h *FeedbackHandler) Clear(c *gin.Context) {
	if c.Query("confirm") != "true" {
		platformerrors.WriteForbidden(c, "pass confirm=true to delete all feedback records")
		return
	}

	if err := h.service.ClearAll(c.Request.Context()); err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "all feedback records deleted"})
}
