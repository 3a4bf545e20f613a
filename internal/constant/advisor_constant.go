package constant

// Advisory session tuning. History is the retention cap per session; the
// completion request carries only the most recent ContextTurns of it.
const (
	AdvisoryHistoryTurns = 10
	AdvisoryContextTurns = 6

	AdvisoryTemperature = 0.7
	AdvisoryMaxTokens   = 500
)

// AdvisorySystemPrompt frames every consultation. Product facts are appended
// by the service when the session starts.
const AdvisorySystemPrompt = "You are an agronomy advisor for a farm supply store. " +
	"Answer questions about the product under discussion: application rates, dosage, " +
	"timing, crop compatibility and safe handling. Be concise and practical. " +
	"If a question is outside the product's scope, say so and steer back to the product."

// AdvisoryFallbackAnswer is returned verbatim when the completion backend
// fails; it must never look like advice.
const AdvisoryFallbackAnswer = "The advisor is temporarily unavailable. Please try your question again in a moment."
