package feedback_test

import (
	"testing"
	"time"

	"feedback-server/services/feedback-api/internal/domain/feedback"
)

func TestSentimentFor(t *testing.T) {
	tests := []struct {
		name     string
		rating   int
		expected feedback.Sentiment
	}{
		{name: "rating 1 is negative", rating: 1, expected: feedback.SentimentNegative},
		{name: "rating 2 is negative", rating: 2, expected: feedback.SentimentNegative},
		{name: "rating 3 is neutral", rating: 3, expected: feedback.SentimentNeutral},
		{name: "rating 4 is positive", rating: 4, expected: feedback.SentimentPositive},
		{name: "rating 5 is positive", rating: 5, expected: feedback.SentimentPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := feedback.SentimentFor(tt.rating); got != tt.expected {
				t.Errorf("SentimentFor(%d) = %v, want %v", tt.rating, got, tt.expected)
			}
		})
	}
}

func TestPriorityFor(t *testing.T) {
	tests := []struct {
		name     string
		rating   int
		expected feedback.Priority
	}{
		{name: "rating 1 is high", rating: 1, expected: feedback.PriorityHigh},
		{name: "rating 2 is high", rating: 2, expected: feedback.PriorityHigh},
		{name: "rating 3 is medium", rating: 3, expected: feedback.PriorityMedium},
		{name: "rating 4 is low", rating: 4, expected: feedback.PriorityLow},
		{name: "rating 5 is low", rating: 5, expected: feedback.PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := feedback.PriorityFor(tt.rating); got != tt.expected {
				t.Errorf("PriorityFor(%d) = %v, want %v", tt.rating, got, tt.expected)
			}
		})
	}
}

func TestSentimentAndPriorityAgree(t *testing.T) {
	// The two labels derive from the same rating, so they move together:
	// every negative record is high priority and every positive record
	// is low priority.
	for rating := feedback.MinRating; rating <= feedback.MaxRating; rating++ {
		sentiment := feedback.SentimentFor(rating)
		priority := feedback.PriorityFor(rating)

		switch sentiment {
		case feedback.SentimentNegative:
			if priority != feedback.PriorityHigh {
				t.Errorf("rating %d: negative sentiment with priority %v", rating, priority)
			}
		case feedback.SentimentNeutral:
			if priority != feedback.PriorityMedium {
				t.Errorf("rating %d: neutral sentiment with priority %v", rating, priority)
			}
		case feedback.SentimentPositive:
			if priority != feedback.PriorityLow {
				t.Errorf("rating %d: positive sentiment with priority %v", rating, priority)
			}
		}
	}
}

func TestRecord_Classify(t *testing.T) {
	record := feedback.Record{Rating: 2}
	record.Classify()

	if record.Sentiment != feedback.SentimentNegative {
		t.Errorf("Classify() sentiment = %v, want %v", record.Sentiment, feedback.SentimentNegative)
	}
	if record.Priority != feedback.PriorityHigh {
		t.Errorf("Classify() priority = %v, want %v", record.Priority, feedback.PriorityHigh)
	}
}

func TestClassifyAll(t *testing.T) {
	records := []feedback.Record{
		{Rating: 5},
		{Rating: 3},
		{Rating: 1},
	}

	classified := feedback.ClassifyAll(records)

	if len(classified) != 3 {
		t.Fatalf("ClassifyAll() returned %d records, want 3", len(classified))
	}
	if classified[0].Sentiment != feedback.SentimentPositive {
		t.Errorf("records[0].Sentiment = %v, want Positive", classified[0].Sentiment)
	}
	if classified[1].Priority != feedback.PriorityMedium {
		t.Errorf("records[1].Priority = %v, want Medium", classified[1].Priority)
	}
	if classified[2].Sentiment != feedback.SentimentNegative {
		t.Errorf("records[2].Sentiment = %v, want Negative", classified[2].Sentiment)
	}
}

func TestRecord_Date(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load IST: %v", err)
	}

	// 2025-01-15 20:00 UTC is already 2025-01-16 01:30 in IST.
	record := feedback.Record{
		Timestamp: time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC),
	}

	utcDate := record.Date(time.UTC)
	if utcDate.Day() != 15 {
		t.Errorf("Date(UTC).Day() = %d, want 15", utcDate.Day())
	}

	istDate := record.Date(ist)
	if istDate.Day() != 16 {
		t.Errorf("Date(IST).Day() = %d, want 16", istDate.Day())
	}
	if h, m, s := istDate.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("Date() not truncated to midnight: %02d:%02d:%02d", h, m, s)
	}
}
