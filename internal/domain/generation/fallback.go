package generation

import "fmt"

// ratingTier buckets a rating into the three tone tiers the fallback
// templates key on.
type ratingTier int

const (
	tierNegative ratingTier = iota // 1-2 stars
	tierNeutral                    // 3 stars
	tierPositive                   // 4-5 stars
)

func tierFor(rating int) ratingTier {
	switch {
	case rating >= 4:
		return tierPositive
	case rating == 3:
		return tierNeutral
	default:
		return tierNegative
	}
}

// FallbackText returns the deterministic template for a field when the
// generation service stays degraded past the last retry. Submissions
// must never block or fail on a degraded service, so these are always
// non-empty and require no external call.
func FallbackText(field Field, rating int, review string) string {
	switch field {
	case FieldReply:
		return fallbackReply(rating)
	case FieldSummary:
		return fallbackSummary(rating, review)
	default:
		return fallbackActions(rating)
	}
}

func fallbackReply(rating int) string {
	switch tierFor(rating) {
	case tierPositive:
		return fmt.Sprintf("Thank you so much for your wonderful %d-star review! We're thrilled to hear about your positive experience. Your feedback means the world to us and motivates our team to keep delivering excellent service. We look forward to serving you again soon!", rating)
	case tierNegative:
		return fmt.Sprintf("We sincerely apologize for your experience that led to this %d-star review. Your feedback is extremely important to us and we take it very seriously. We would love the opportunity to make things right and discuss how we can improve. Please don't hesitate to reach out to our support team.", rating)
	default:
		return fmt.Sprintf("Thank you for your %d-star review and honest feedback. We appreciate you taking the time to share your experience with us. We're always working to improve our service and your input helps us identify areas where we can do better. We hope to exceed your expectations next time!", rating)
	}
}

func fallbackSummary(rating int, review string) string {
	const maxPreview = 50
	preview := review
	if len(preview) > maxPreview {
		preview = preview[:maxPreview] + "..."
	}
	return fmt.Sprintf("%d-star review: %s", rating, preview)
}

func fallbackActions(rating int) string {
	switch tierFor(rating) {
	case tierNegative:
		return "• Contact customer immediately for service recovery\n• Investigate root cause of reported issues\n• Implement corrective measures to prevent recurrence"
	case tierPositive:
		return "• Thank customer personally for positive feedback\n• Request permission to use as testimonial\n• Share success with team and continue excellent service"
	default:
		return "• Acknowledge feedback and thank customer\n• Identify specific improvement areas mentioned\n• Follow up to address concerns"
	}
}
