// Package feedback implements the feedback record domain: the record
// model, rating classification, filtering, aggregation, and the
// submission/dashboard service that ties them together.
package feedback

import "time"

// Sentiment is the three-level label derived from a record's rating.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// Priority is the triage urgency label derived from a record's rating.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Sentiments lists all sentiment labels in display order.
var Sentiments = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}

// Priorities lists all priority labels in display order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Rating bounds. Ratings outside [MinRating, MaxRating] are rejected
// before any I/O happens; the classifier assumes the invariant holds.
const (
	MinRating = 1
	MaxRating = 5
)

// SentimentFor maps a rating to its sentiment label.
func SentimentFor(rating int) Sentiment {
	switch {
	case rating >= 4:
		return SentimentPositive
	case rating == 3:
		return SentimentNeutral
	default:
		return SentimentNegative
	}
}

// PriorityFor maps a rating to its triage priority.
func PriorityFor(rating int) Priority {
	switch {
	case rating <= 2:
		return PriorityHigh
	case rating == 3:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Record is a single customer feedback submission. Sentiment and
// Priority are never persisted: they are recomputed from Rating on
// every read, so a change to the classification rule retroactively
// reclassifies historical records.
type Record struct {
	ID                 uint      `json:"-"`
	PublicID           string    `json:"id"`
	Timestamp          time.Time `json:"timestamp"`
	Rating             int       `json:"rating"`
	Review             string    `json:"review"`
	AIResponse         string    `json:"ai_response"`
	AISummary          string    `json:"ai_summary"`
	RecommendedActions string    `json:"recommended_actions"`

	// Derived on read, never stored.
	Sentiment Sentiment `json:"sentiment"`
	Priority  Priority  `json:"priority"`
}

// Classify attaches the derived sentiment and priority labels.
func (r *Record) Classify() {
	r.Sentiment = SentimentFor(r.Rating)
	r.Priority = PriorityFor(r.Rating)
}

// Date returns the civil date of the record's timestamp in the given
// display timezone, truncated to midnight in that zone.
func (r *Record) Date(loc *time.Location) time.Time {
	return civilDate(r.Timestamp, loc)
}

func civilDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// ClassifyAll attaches derived labels to every record in place and
// returns the same slice for chaining.
func ClassifyAll(records []Record) []Record {
	for i := range records {
		records[i].Classify()
	}
	return records
}
