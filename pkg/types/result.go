// Package types defines the shared types for the Frontdesk support agent.
package types

// Intent is a coarse conversational category detected from a query.
// It is distinct from topic matching: intents classify how the user is
// talking (greeting, thanks, confusion), not what they are asking about.
type Intent string

// Supported intents, in classification priority order.
const (
	IntentHelp           Intent = "help"
	IntentGreeting       Intent = "greeting"
	IntentFarewell       Intent = "farewell"
	IntentGratitude      Intent = "gratitude"
	IntentAcknowledgment Intent = "acknowledgment"
	IntentConfusion      Intent = "confusion"
	IntentUnknown        Intent = "unknown"
)

// Source labels where a response came from.
type Source string

const (
	// SourcePredefined means the answer came from the knowledge base,
	// either via a facet match or an embedding similarity match.
	SourcePredefined Source = "predefined"

	// SourceLLM means the answer was generated by the external LLM fallback.
	SourceLLM Source = "llm"

	// SourceError means the input was invalid (empty or whitespace-only).
	SourceError Source = "error"
)

// genericSources maps intents to their generic response source labels.
// Acknowledgment keeps its historical short form.
var genericSources = map[Intent]Source{
	IntentGreeting:       "generic-greeting",
	IntentHelp:           "generic-help",
	IntentFarewell:       "generic-farewell",
	IntentGratitude:      "generic-gratitude",
	IntentAcknowledgment: "generic-ack",
	IntentConfusion:      "generic-confusion",
	IntentUnknown:        "generic-unknown",
}

// GenericSource returns the source label for a generic response to the
// given intent. Unregistered intents report as generic-unknown.
func GenericSource(intent Intent) Source {
	if s, ok := genericSources[intent]; ok {
		return s
	}
	return "generic-unknown"
}

// MatchResult is the sole contract the agent exposes to any presentation
// layer. Confidence is nil for generic, LLM, and error responses; for
// predefined responses it carries the similarity score (or the fixed facet
// match constant).
type MatchResult struct {
	Text       string   `json:"text"`
	Source     Source   `json:"source"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// ConfidenceOf wraps a confidence value for inclusion in a MatchResult.
func ConfidenceOf(v float64) *float64 {
	return &v
}
