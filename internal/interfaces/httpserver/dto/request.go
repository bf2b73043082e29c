package dto

// SubmitFeedbackRequest models POST /v1/feedback input. Range and
// length rules are enforced by the domain service so that validation
// failures stop the pipeline before any external call.
type SubmitFeedbackRequest struct {
	Rating int    `json:"rating" binding:"required"`
	Review string `json:"review" binding:"required"`
}

// DashboardQuery models GET /v1/dashboard query parameters. Comma
// separated multi-selects left empty match everything.
type DashboardQuery struct {
	Period     string `form:"period"` // all | 7d | 30d | custom
	From       string `form:"from"`   // 2006-01-02, custom period only
	To         string `form:"to"`     // 2006-01-02, custom period only
	Ratings    string `form:"ratings"`
	Sentiments string `form:"sentiments"`
	Priorities string `form:"priorities"`
}
