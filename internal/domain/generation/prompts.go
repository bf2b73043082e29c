package generation

import "fmt"

// Field identifies one of the three derived text fields.
type Field string

const (
	FieldReply   Field = "reply"
	FieldSummary Field = "summary"
	FieldActions Field = "actions"
)

// Per-field sampling parameters. The reply is allowed to be creative,
// the summary is kept tight.
var fieldParams = map[Field]struct {
	Temperature float64
	MaxTokens   int
}{
	FieldReply:   {Temperature: 0.9, MaxTokens: 500},
	FieldSummary: {Temperature: 0.7, MaxTokens: 100},
	FieldActions: {Temperature: 0.8, MaxTokens: 300},
}

func replyPrompt(rating int, review string) string {
	return fmt.Sprintf(`You are an empathetic customer service manager responding to customer reviews.

Write a natural, human-sounding reply (3-4 sentences) to the customer's review.
Your response must be directly based on the rating and the exact details mentioned in the review.
Rating: %d/5 stars
Review: "%s"

Guidelines:
1. SPECIFICALLY mention what the customer talked about
2. Show genuine emotion appropriate to their rating
3. If negative (1-2 stars): Apologize SPECIFICALLY and offer a concrete solution
4. If positive (4-5 stars): Express genuine excitement about what they praised
5. If neutral (3 stars): Acknowledge mixed feelings and commit to improvement

Be conversational, warm, and reference SPECIFIC details. No preamble.

Your response:`, rating, review)
}

func summaryPrompt(rating int, review string) string {
	return fmt.Sprintf(`You are a business analyst creating concise summaries.

Create a summary (15-25 words) of this review:

Rating: %d/5 stars
Review: "%s"

Focus on SPECIFIC points mentioned. Be concrete and actionable.

Summary:`, rating, review)
}

func actionsPrompt(rating int, review string) string {
	return fmt.Sprintf(`You are a business consultant analyzing customer feedback.

Generate 3-4 CONCRETE, SPECIFIC action items for this review:

Rating: %d/5 stars
Review: "%s"

Requirements:
1. Reference SPECIFIC issues or praises from the review
2. Give actionable steps with WHAT to do and HOW
3. Use action verbs: Contact, Investigate, Train, Implement, etc.

Format as bullet points (use • not -).
Each action should be 1-2 lines maximum.

Recommended Actions:`, rating, review)
}

func promptFor(field Field, rating int, review string) string {
	switch field {
	case FieldReply:
		return replyPrompt(rating, review)
	case FieldSummary:
		return summaryPrompt(rating, review)
	default:
		return actionsPrompt(rating, review)
	}
}
