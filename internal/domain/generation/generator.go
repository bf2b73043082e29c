package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"feedback-server/services/feedback-api/internal/domain/llm"
	"feedback-server/services/feedback-api/internal/domain/retry"
	"feedback-server/services/feedback-api/internal/infrastructure/metrics"
	"feedback-server/services/feedback-api/internal/infrastructure/observability"
)

// Replies shorter than this are treated as a failed attempt; the
// provider occasionally returns empty or truncated text on success
// status.
const minReplyLength = 20

// Result holds the three derived text fields for one submission. Every
// field is guaranteed non-empty: a degraded provider yields fallback
// text, never an error.
type Result struct {
	Reply   string
	Summary string
	Actions string

	// Terminal state per field: StateSucceeded or StateFallback.
	States map[Field]CallState
}

// FallbackCount returns how many of the three fields fell back to a
// template.
func (r *Result) FallbackCount() int {
	n := 0
	for _, s := range r.States {
		if s == StateFallback {
			n++
		}
	}
	return n
}

// Generator produces the derived content fields via the external
// text-generation service. The three sub-generations are independent
// and run concurrently, bounded to three in-flight calls.
type Generator struct {
	provider llm.Provider
	model    string
	policy   retry.Policy
	log      zerolog.Logger
}

// NewGenerator constructs the adapter.
func NewGenerator(provider llm.Provider, model string, policy retry.Policy, log zerolog.Logger) *Generator {
	return &Generator{
		provider: provider,
		model:    model,
		policy:   policy,
		log:      log.With().Str("component", "generator").Logger(),
	}
}

// Generate produces the customer-facing reply, the admin summary and
// the recommended actions for one submission. All three fields are
// joined before returning; the caller persists the combined record
// atomically. Generate never returns an error.
func (g *Generator) Generate(ctx context.Context, rating int, review string) Result {
	ctx, span := observability.StartGenerationSpan(ctx, rating)
	defer span.End()

	result := Result{States: make(map[Field]CallState, 3)}

	type fieldResult struct {
		field Field
		text  string
		state CallState
	}
	results := make(chan fieldResult, 3)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(3)
	for _, field := range []Field{FieldReply, FieldSummary, FieldActions} {
		field := field
		group.Go(func() error {
			text, state := g.generateField(groupCtx, field, rating, review)
			results <- fieldResult{field: field, text: text, state: state}
			return nil
		})
	}
	_ = group.Wait()
	close(results)

	for r := range results {
		result.States[r.field] = r.state
		switch r.field {
		case FieldReply:
			result.Reply = r.text
		case FieldSummary:
			result.Summary = r.text
		case FieldActions:
			result.Actions = r.text
		}
	}

	if n := result.FallbackCount(); n > 0 {
		g.log.Warn().Int("fallback_fields", n).Int("rating", rating).
			Msg("generation degraded, fallback templates substituted")
	}
	return result
}

// generateField runs one sub-generation to a terminal state.
func (g *Generator) generateField(ctx context.Context, field Field, rating int, review string) (string, CallState) {
	start := time.Now()
	params := fieldParams[field]

	text, fellBack := retry.ExecuteWithFallback(ctx, g.policy,
		func(ctx context.Context, attempt int) (string, error) {
			if attempt > 0 {
				g.log.Debug().Str("field", string(field)).Int("attempt", attempt).Msg("retrying generation call")
				observability.AddRetryEvent(ctx, attempt, string(field))
			}
			resp, err := g.provider.CreateChatCompletion(ctx, llm.UserPrompt(
				g.model,
				promptFor(field, rating, review),
				params.Temperature,
				params.MaxTokens,
			))
			if err != nil {
				return "", err
			}
			text := strings.TrimSpace(resp.Text())
			if text == "" {
				return "", fmt.Errorf("empty completion for %s", field)
			}
			if field == FieldReply && len(text) < minReplyLength {
				return "", fmt.Errorf("implausibly short reply (%d chars)", len(text))
			}
			return text, nil
		},
		func() string {
			return FallbackText(field, rating, review)
		},
	)

	state := StateSucceeded
	if fellBack {
		state = StateFallback
	}

	metrics.GenerationCallsTotal.WithLabelValues(string(field), state.String()).Inc()
	metrics.GenerationDuration.WithLabelValues(string(field)).Observe(time.Since(start).Seconds())
	return text, state
}
