package generation_test

import (
	"errors"
	"testing"

	"feedback-server/services/feedback-api/internal/domain/generation"
)

func TestCallState_IsTerminal(t *testing.T) {
	tests := []struct {
		state    generation.CallState
		expected bool
	}{
		{generation.StatePending, false},
		{generation.StateRetrying, false},
		{generation.StateSucceeded, true},
		{generation.StateFallback, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.IsTerminal(); got != tt.expected {
				t.Errorf("%s.IsTerminal() = %v, want %v", tt.state, got, tt.expected)
			}
		})
	}
}

func TestCallState_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		from     generation.CallState
		to       generation.CallState
		expected bool
	}{
		{name: "pending to succeeded", from: generation.StatePending, to: generation.StateSucceeded, expected: true},
		{name: "pending to retrying", from: generation.StatePending, to: generation.StateRetrying, expected: true},
		{name: "pending to fallback", from: generation.StatePending, to: generation.StateFallback, expected: true},
		{name: "retrying back to pending", from: generation.StateRetrying, to: generation.StatePending, expected: true},
		{name: "retrying directly to succeeded", from: generation.StateRetrying, to: generation.StateSucceeded, expected: false},
		{name: "succeeded is final", from: generation.StateSucceeded, to: generation.StatePending, expected: false},
		{name: "fallback is final", from: generation.StateFallback, to: generation.StateRetrying, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.expected {
				t.Errorf("%s.CanTransitionTo(%s) = %v, want %v", tt.from, tt.to, got, tt.expected)
			}
		})
	}
}

func TestCallState_TransitionTo(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		next, err := generation.StatePending.TransitionTo(generation.StateSucceeded)
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
		if next != generation.StateSucceeded {
			t.Errorf("Expected StateSucceeded, got %v", next)
		}
	})

	t.Run("invalid transition keeps state", func(t *testing.T) {
		next, err := generation.StateSucceeded.TransitionTo(generation.StatePending)
		if !errors.Is(err, generation.ErrInvalidTransition) {
			t.Errorf("Expected ErrInvalidTransition, got %v", err)
		}
		if next != generation.StateSucceeded {
			t.Errorf("Expected state unchanged, got %v", next)
		}
	})
}
