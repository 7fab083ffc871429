package agent

import (
	"strings"

	"github.com/scrypster/frontdesk/pkg/types"
)

// intentRule matches a conversational intent by keyword presence.
// A rule fires when any phrase occurs as a substring of the lowercased
// query, or any word is present in the query's whitespace-split token set.
type intentRule struct {
	intent  types.Intent
	phrases []string
	words   []string
}

// intentRules is a decision list, not a scored classifier: rules are
// evaluated strictly in order and the first match wins. Order encodes
// precedence — help is checked first because phrases like "what can you do"
// would otherwise collide with the greeting and confusion categories
// ("hi help" must classify as help, not greeting).
var intentRules = []intentRule{
	{
		intent: types.IntentHelp,
		phrases: []string{
			"help", "what can you do", "what do you do", "capabilities",
			"what are you", "who are you", "features", "functions", "assist",
		},
	},
	{
		intent:  types.IntentGreeting,
		words:   []string{"hi", "hello", "hey", "greetings", "howdy", "hiya", "yo", "sup"},
		phrases: []string{"morning", "afternoon", "evening"},
	},
	{
		intent:  types.IntentFarewell,
		words:   []string{"bye", "goodbye", "cya", "later", "exit", "quit"},
		phrases: []string{"see you"},
	},
	{
		intent: types.IntentGratitude,
		words:  []string{"thanks", "thank", "thx", "ty", "appreciate", "grateful", "cheers"},
	},
	{
		intent: types.IntentAcknowledgment,
		words:  []string{"ok", "okay", "cool", "great", "good", "nice", "perfect", "sure", "alright"},
	},
	{
		intent:  types.IntentConfusion,
		words:   []string{"what", "huh", "confused"},
		phrases: []string{"don't understand", "dont understand"},
	},
}

// ClassifyIntent maps a query to a conversational intent label.
// It is a total function: queries that match no rule are IntentUnknown.
func ClassifyIntent(query string) types.Intent {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	tokens := make(map[string]struct{})
	for _, w := range strings.Fields(queryLower) {
		tokens[w] = struct{}{}
	}

	for _, rule := range intentRules {
		if rule.matches(queryLower, tokens) {
			return rule.intent
		}
	}
	return types.IntentUnknown
}

func (r intentRule) matches(queryLower string, tokens map[string]struct{}) bool {
	for _, phrase := range r.phrases {
		if strings.Contains(queryLower, phrase) {
			return true
		}
	}
	for _, word := range r.words {
		if _, ok := tokens[word]; ok {
			return true
		}
	}
	return false
}
