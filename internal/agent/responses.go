package agent

import (
	"sync"

	"github.com/scrypster/frontdesk/pkg/types"
)

// defaultPools holds the canned reply templates per intent. Templates are
// served round-robin so repeated small talk doesn't get identical replies.
var defaultPools = map[types.Intent][]string{
	types.IntentGreeting: {
		"Hello! Welcome to Thoughtful AI support. Ask me about our healthcare automation agents — EVA, CAM, or PHIL.",
		"Hi there! I can answer questions about eligibility verification, claims processing, and payment posting.",
		"Hey! How can I help you with Thoughtful AI's automation agents today?",
	},
	types.IntentHelp: {
		"I answer questions about Thoughtful AI's healthcare automation agents: EVA verifies patient eligibility, CAM processes claims, and PHIL posts payments. Ask me about any of them!",
		"You can ask me what EVA, CAM, or PHIL do, how they work, or what benefits they bring to your billing workflow.",
		"Try questions like \"What does EVA do?\", \"How do you handle claims?\", or \"Tell me about payment posting\".",
	},
	types.IntentFarewell: {
		"Goodbye! Feel free to come back if you have more questions about our agents.",
		"Take care! I'm here whenever you need help with EVA, CAM, or PHIL.",
		"Bye for now — happy automating!",
	},
	types.IntentGratitude: {
		"You're welcome! Anything else you'd like to know about our agents?",
		"Happy to help! Let me know if you have more questions.",
		"Any time! That's what I'm here for.",
	},
	types.IntentAcknowledgment: {
		"Great! Let me know if you have any other questions.",
		"Sounds good. I'm here if anything else comes up.",
		"Perfect. Ask away whenever you're ready.",
	},
	types.IntentConfusion: {
		"No worries — I can help. Ask me about EVA (eligibility verification), CAM (claims processing), or PHIL (payment posting).",
		"Let me clarify: I answer questions about Thoughtful AI's healthcare automation agents. Try \"What does CAM do?\"",
		"I may have been unclear. Ask me about eligibility checks, claims, or payment posting and I'll explain.",
	},
	types.IntentUnknown: {
		"I'm not sure about that one. I specialize in Thoughtful AI's healthcare automation agents — try asking about EVA, CAM, or PHIL.",
		"That's outside what I know. I can tell you about eligibility verification, claims processing, and payment posting.",
		"I don't have an answer for that, but I'd be glad to explain what Thoughtful AI's automation agents can do.",
	},
}

// ResponseBank serves canned replies per intent with deterministic
// round-robin rotation. Cursors are per-bank mutable state; a single mutex
// covers every read-modify-write so concurrent sessions sharing one agent
// instance never race or skip a template.
type ResponseBank struct {
	mu      sync.Mutex
	pools   map[types.Intent][]string
	cursors map[types.Intent]int
}

// NewResponseBank creates a bank with the default template pools.
func NewResponseBank() *ResponseBank {
	return NewResponseBankWithPools(defaultPools)
}

// NewResponseBankWithPools creates a bank with custom pools. The unknown
// intent pool is required since it backstops unregistered intents.
func NewResponseBankWithPools(pools map[types.Intent][]string) *ResponseBank {
	return &ResponseBank{
		pools:   pools,
		cursors: make(map[types.Intent]int),
	}
}

// Next returns the next template for the intent along with the intent's
// derived source label. Rotation is templates[cursor % N] followed by an
// unconditional cursor increment — no randomness, no reset on wrap.
// An intent with no registered pool draws from the unknown pool (advancing
// the unknown cursor) but still reports the requested intent's label.
func (b *ResponseBank) Next(intent types.Intent) (string, types.Source) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := intent
	pool, ok := b.pools[key]
	if !ok || len(pool) == 0 {
		key = types.IntentUnknown
		pool = b.pools[key]
	}

	text := pool[b.cursors[key]%len(pool)]
	b.cursors[key]++

	return text, types.GenericSource(intent)
}

// Reset rewinds every rotation cursor. Exposed for tests and for callers
// that want a fresh conversation without rebuilding the indexes.
func (b *ResponseBank) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursors = make(map[types.Intent]int)
}
