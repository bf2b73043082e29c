// Package generation implements the content generation adapter: three
// derived text fields produced per submission via the external
// text-generation service, with bounded retry and deterministic
// fallback templates.
package generation

import "errors"

// CallState is the lifecycle state of a single sub-generation call.
type CallState string

const (
	StatePending   CallState = "pending"   // Not yet attempted
	StateRetrying  CallState = "retrying"  // Transient failure, will re-attempt
	StateSucceeded CallState = "succeeded" // External text returned
	StateFallback  CallState = "fallback"  // Retries exhausted, template substituted
)

// ErrInvalidTransition is returned when a state transition is not allowed.
var ErrInvalidTransition = errors.New("invalid generation state transition")

// IsTerminal returns true for states that end a call. A call always
// terminates in Succeeded or Fallback; failure is never surfaced to
// the caller as an error.
func (s CallState) IsTerminal() bool {
	return s == StateSucceeded || s == StateFallback
}

// String returns the string representation of the state.
func (s CallState) String() string {
	return string(s)
}

// validTransitions defines the allowed call state transitions.
var validTransitions = map[CallState][]CallState{
	StatePending:   {StateSucceeded, StateRetrying, StateFallback},
	StateRetrying:  {StatePending},
	StateSucceeded: {},
	StateFallback:  {},
}

// CanTransitionTo checks whether a transition to target is valid.
func (s CallState) CanTransitionTo(target CallState) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// TransitionTo attempts the transition and returns an error if invalid.
func (s CallState) TransitionTo(target CallState) (CallState, error) {
	if !s.CanTransitionTo(target) {
		return s, ErrInvalidTransition
	}
	return target, nil
}
