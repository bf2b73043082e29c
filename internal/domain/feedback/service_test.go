package feedback_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"feedback-server/services/feedback-api/internal/domain/feedback"
	"feedback-server/services/feedback-api/internal/domain/generation"
	"feedback-server/services/feedback-api/internal/utils/platformerrors"
)

// MockRepository is a scriptable feedback.Repository for testing.
type MockRepository struct {
	InsertFunc    func(ctx context.Context, record *feedback.Record) error
	SelectAllFunc func(ctx context.Context) ([]feedback.Record, error)
	DeleteAllFunc func(ctx context.Context) error

	InsertCalls    int
	SelectAllCalls int
	DeleteAllCalls int
}

func (m *MockRepository) Insert(ctx context.Context, record *feedback.Record) error {
	m.InsertCalls++
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, record)
	}
	return nil
}

func (m *MockRepository) SelectAll(ctx context.Context) ([]feedback.Record, error) {
	m.SelectAllCalls++
	if m.SelectAllFunc != nil {
		return m.SelectAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockRepository) DeleteAll(ctx context.Context) error {
	m.DeleteAllCalls++
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return nil
}

// MockGenerator returns canned content and counts invocations.
type MockGenerator struct {
	GenerateFunc func(ctx context.Context, rating int, review string) generation.Result
	Calls        int
}

func (m *MockGenerator) Generate(ctx context.Context, rating int, review string) generation.Result {
	m.Calls++
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, rating, review)
	}
	return generation.Result{
		Reply:   "Thanks for the detailed feedback, we appreciate it.",
		Summary: "Canned summary",
		Actions: "• Canned action",
		States: map[generation.Field]generation.CallState{
			generation.FieldReply:   generation.StateSucceeded,
			generation.FieldSummary: generation.StateSucceeded,
			generation.FieldActions: generation.StateSucceeded,
		},
	}
}

func newTestService(repo *MockRepository, gen *MockGenerator) *feedback.ServiceImpl {
	return feedback.NewService(repo, gen, feedback.ValidationConfig{
		ReviewMinLength: 5,
		ReviewMaxLength: 500,
	}, time.UTC, zerolog.Nop())
}

func TestService_Submit(t *testing.T) {
	t.Run("stores the combined record", func(t *testing.T) {
		var stored *feedback.Record
		repo := &MockRepository{
			InsertFunc: func(ctx context.Context, record *feedback.Record) error {
				stored = record
				record.PublicID = "fb-123"
				return nil
			},
		}
		gen := &MockGenerator{}
		service := newTestService(repo, gen)

		record, err := service.Submit(context.Background(), feedback.SubmitParams{
			Rating: 5,
			Review: "Excellent service all around",
		})

		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if stored == nil {
			t.Fatal("Insert was not called")
		}
		if stored.AIResponse == "" || stored.AISummary == "" || stored.RecommendedActions == "" {
			t.Error("record stored with empty derived fields")
		}
		if record.Sentiment != feedback.SentimentPositive {
			t.Errorf("returned record sentiment = %v, want Positive", record.Sentiment)
		}
		if record.Priority != feedback.PriorityLow {
			t.Errorf("returned record priority = %v, want Low", record.Priority)
		}
		if record.Timestamp.IsZero() {
			t.Error("record timestamp not set")
		}
		if gen.Calls != 1 {
			t.Errorf("Generate called %d times, want 1", gen.Calls)
		}
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		var stored *feedback.Record
		repo := &MockRepository{
			InsertFunc: func(ctx context.Context, record *feedback.Record) error {
				stored = record
				return nil
			},
		}
		service := newTestService(repo, &MockGenerator{})

		_, err := service.Submit(context.Background(), feedback.SubmitParams{
			Rating: 4,
			Review: "   padded review text   ",
		})

		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if stored.Review != "padded review text" {
			t.Errorf("stored review = %q, want trimmed", stored.Review)
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		repo := &MockRepository{
			InsertFunc: func(ctx context.Context, record *feedback.Record) error {
				return storeErr
			},
		}
		service := newTestService(repo, &MockGenerator{})

		_, err := service.Submit(context.Background(), feedback.SubmitParams{
			Rating: 3,
			Review: "valid enough review",
		})

		if !errors.Is(err, storeErr) {
			t.Errorf("Submit() error = %v, want the store error", err)
		}
	})
}

func TestService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name   string
		rating int
		review string
	}{
		{name: "rating below minimum", rating: 0, review: "a perfectly valid review"},
		{name: "rating above maximum", rating: 6, review: "a perfectly valid review"},
		{name: "empty review", rating: 3, review: ""},
		{name: "whitespace-only review", rating: 3, review: "    "},
		{name: "review below minimum length", rating: 3, review: "hey"},
		{name: "review above maximum length", rating: 3, review: strings.Repeat("x", 501)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockRepository{}
			gen := &MockGenerator{}
			service := newTestService(repo, gen)

			_, err := service.Submit(context.Background(), feedback.SubmitParams{
				Rating: tt.rating,
				Review: tt.review,
			})

			if err == nil {
				t.Fatal("Submit() accepted an invalid submission")
			}

			var platformErr *platformerrors.PlatformError
			if !errors.As(err, &platformErr) {
				t.Fatalf("Submit() error type = %T, want PlatformError", err)
			}
			if platformErr.Type != platformerrors.ErrorTypeValidation {
				t.Errorf("error type = %v, want validation", platformErr.Type)
			}

			// Rejection must happen before any generation or I/O.
			if gen.Calls != 0 {
				t.Errorf("Generate called %d times for invalid input", gen.Calls)
			}
			if repo.InsertCalls != 0 {
				t.Errorf("Insert called %d times for invalid input", repo.InsertCalls)
			}
		})
	}
}

func TestService_ListAll(t *testing.T) {
	repo := &MockRepository{
		SelectAllFunc: func(ctx context.Context) ([]feedback.Record, error) {
			return []feedback.Record{
				{Rating: 5, Timestamp: time.Now()},
				{Rating: 1, Timestamp: time.Now().Add(-time.Hour)},
			}, nil
		},
	}
	service := newTestService(repo, &MockGenerator{})

	records, err := service.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("ListAll() returned %d records, want 2", len(records))
	}
	if records[0].Sentiment != feedback.SentimentPositive {
		t.Errorf("records not classified on read: %+v", records[0])
	}
	if records[1].Priority != feedback.PriorityHigh {
		t.Errorf("records not classified on read: %+v", records[1])
	}
}

func TestService_Dashboard(t *testing.T) {
	now := time.Now()

	t.Run("filters and summarizes", func(t *testing.T) {
		repo := &MockRepository{
			SelectAllFunc: func(ctx context.Context) ([]feedback.Record, error) {
				return []feedback.Record{
					{Rating: 5, Timestamp: now},
					{Rating: 4, Timestamp: now},
					{Rating: 1, Timestamp: now},
				}, nil
			},
		}
		service := newTestService(repo, &MockGenerator{})

		filter := feedback.NewFilter().WithSentiments(feedback.SentimentPositive)
		view, err := service.Dashboard(context.Background(), filter)
		if err != nil {
			t.Fatalf("Dashboard() error = %v", err)
		}

		if view.Total != 3 {
			t.Errorf("Total = %d, want 3 (unfiltered count)", view.Total)
		}
		if len(view.Records) != 2 {
			t.Errorf("Records has %d entries, want 2 after filtering", len(view.Records))
		}
		if view.Summary.Count != 2 {
			t.Errorf("Summary.Count = %d, want 2 (summary follows the filter)", view.Summary.Count)
		}
	})

	t.Run("degrades read failure to empty state", func(t *testing.T) {
		repo := &MockRepository{
			SelectAllFunc: func(ctx context.Context) ([]feedback.Record, error) {
				return nil, errors.New("connection reset")
			},
		}
		service := newTestService(repo, &MockGenerator{})

		view, err := service.Dashboard(context.Background(), nil)
		if err != nil {
			t.Fatalf("Dashboard() must not error on a failed read, got %v", err)
		}
		if view.Total != 0 {
			t.Errorf("Total = %d, want 0", view.Total)
		}
		if view.Summary.Count != 0 {
			t.Errorf("Summary.Count = %d, want 0", view.Summary.Count)
		}
		if view.Summary.MeanRating != nil {
			t.Error("MeanRating computed over an empty collection")
		}
	})
}

func TestService_ClearAll(t *testing.T) {
	t.Run("delegates to the repository", func(t *testing.T) {
		repo := &MockRepository{}
		service := newTestService(repo, &MockGenerator{})

		if err := service.ClearAll(context.Background()); err != nil {
			t.Fatalf("ClearAll() error = %v", err)
		}
		if repo.DeleteAllCalls != 1 {
			t.Errorf("DeleteAll called %d times, want 1", repo.DeleteAllCalls)
		}
	})

	t.Run("propagates deletion errors", func(t *testing.T) {
		deleteErr := errors.New("permission denied")
		repo := &MockRepository{
			DeleteAllFunc: func(ctx context.Context) error { return deleteErr },
		}
		service := newTestService(repo, &MockGenerator{})

		if err := service.ClearAll(context.Background()); !errors.Is(err, deleteErr) {
			t.Errorf("ClearAll() error = %v, want the repository error", err)
		}
	})
}
