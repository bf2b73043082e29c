// Package retry defines the bounded retry policy and the
// retry-with-fallback combinator used by the content generation
// adapter. One combinator replaces the per-call retry loops the three
// generations would otherwise each carry.
package retry

import (
	"context"
	"math"
	"time"
)

// Policy defines a bounded retry strategy. MaxAttempts counts the
// initial call, so MaxAttempts=3 means at most two retries after the
// first failure.
type Policy struct {
	MaxAttempts     int           `json:"max_attempts"`
	InitialDelay    time.Duration `json:"initial_delay"`
	MaxDelay        time.Duration `json:"max_delay"`
	BackoffStrategy BackoffType   `json:"backoff_strategy"`
}

// BackoffType identifies the backoff strategy.
type BackoffType string

const (
	BackoffFixed       BackoffType = "fixed"       // Same delay each time
	BackoffLinear      BackoffType = "linear"      // Delay grows linearly
	BackoffExponential BackoffType = "exponential" // Delay doubles each time
)

// DefaultPolicy returns the generation default: three attempts with a
// fixed one second pause between them.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:     3,
		InitialDelay:    1 * time.Second,
		MaxDelay:        5 * time.Second,
		BackoffStrategy: BackoffFixed,
	}
}

// NoRetryPolicy returns a policy that performs the single initial call
// and never retries.
func NoRetryPolicy() Policy {
	return Policy{MaxAttempts: 1}
}

// CalculateDelay returns the pause before the given retry attempt
// (1-based). Attempt 0 is the initial call and has no delay.
func (p *Policy) CalculateDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	var delay time.Duration
	switch p.BackoffStrategy {
	case BackoffLinear:
		delay = p.InitialDelay * time.Duration(attempt)
	case BackoffExponential:
		delay = p.InitialDelay * time.Duration(math.Pow(2, float64(attempt-1)))
	default:
		delay = p.InitialDelay
	}

	if p.MaxDelay > 0 && delay > p.MaxDelay {
		delay = p.MaxDelay
	}
	return delay
}

func (p *Policy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

// ExecuteWithResult runs fn until it succeeds or the policy's attempts
// are exhausted, pausing per the backoff strategy between attempts.
// The last error is returned after exhaustion.
func ExecuteWithResult[T any](ctx context.Context, policy Policy, fn func(ctx context.Context, attempt int) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < policy.attempts(); attempt++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn(ctx, attempt)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt+1 >= policy.attempts() {
			break
		}

		if delay := policy.CalculateDelay(attempt + 1); delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return zero, ctx.Err()
			case <-timer.C:
			}
		}
	}

	return zero, lastErr
}

// ExecuteWithFallback runs fn under the policy and, once every attempt
// has failed, substitutes the deterministic fallback value. The second
// return reports whether the fallback was used. Errors never escape:
// the caller always receives a usable value.
func ExecuteWithFallback[T any](ctx context.Context, policy Policy, fn func(ctx context.Context, attempt int) (T, error), fallback func() T) (T, bool) {
	result, err := ExecuteWithResult(ctx, policy, fn)
	if err != nil {
		return fallback(), true
	}
	return result, false
}
