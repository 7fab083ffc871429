package agent

import (
	"sync"
	"testing"

	"github.com/scrypster/frontdesk/pkg/types"
)

func TestResponseBank_RoundRobinRotation(t *testing.T) {
	bank := NewResponseBank()
	pool := defaultPools[types.IntentGreeting]

	// Cycle through the pool twice: cursor wraps with modulo, no reset.
	for i := 0; i < 2*len(pool); i++ {
		text, source := bank.Next(types.IntentGreeting)
		if text != pool[i%len(pool)] {
			t.Fatalf("call %d: got %q, want %q", i, text, pool[i%len(pool)])
		}
		if source != "generic-greeting" {
			t.Fatalf("call %d: source = %s, want generic-greeting", i, source)
		}
	}
}

func TestResponseBank_CursorsIndependentPerIntent(t *testing.T) {
	bank := NewResponseBank()

	bank.Next(types.IntentGreeting)
	bank.Next(types.IntentGreeting)
	bank.Next(types.IntentGreeting)

	// Heavy greeting traffic must not advance the gratitude cursor.
	gratitude, _ := bank.Next(types.IntentGratitude)
	if gratitude != defaultPools[types.IntentGratitude][0] {
		t.Errorf("gratitude cursor advanced by greeting traffic")
	}
}

func TestResponseBank_SourceLabels(t *testing.T) {
	bank := NewResponseBank()

	cases := map[types.Intent]types.Source{
		types.IntentGreeting:       "generic-greeting",
		types.IntentHelp:           "generic-help",
		types.IntentFarewell:       "generic-farewell",
		types.IntentGratitude:      "generic-gratitude",
		types.IntentAcknowledgment: "generic-ack",
		types.IntentConfusion:      "generic-confusion",
		types.IntentUnknown:        "generic-unknown",
	}
	for intent, want := range cases {
		if _, source := bank.Next(intent); source != want {
			t.Errorf("Next(%s) source = %s, want %s", intent, source, want)
		}
	}
}

func TestResponseBank_UnregisteredIntentUsesUnknownPool(t *testing.T) {
	bank := NewResponseBankWithPools(map[types.Intent][]string{
		types.IntentUnknown: {"fallback one", "fallback two"},
	})

	text, source := bank.Next(types.IntentGreeting)
	if text != "fallback one" {
		t.Errorf("unregistered intent should draw from the unknown pool, got %q", text)
	}
	// The label still reflects the requested intent, not the pool drawn from.
	if source != "generic-greeting" {
		t.Errorf("source = %s, want generic-greeting", source)
	}

	// The draw advanced the unknown cursor.
	text, _ = bank.Next(types.IntentUnknown)
	if text != "fallback two" {
		t.Errorf("unknown cursor did not advance: got %q", text)
	}
}

func TestResponseBank_Reset(t *testing.T) {
	bank := NewResponseBank()
	first, _ := bank.Next(types.IntentHelp)
	bank.Next(types.IntentHelp)

	bank.Reset()

	again, _ := bank.Next(types.IntentHelp)
	if again != first {
		t.Errorf("after Reset expected %q, got %q", first, again)
	}
}

func TestResponseBank_ConcurrentNext(t *testing.T) {
	bank := NewResponseBank()
	pool := defaultPools[types.IntentGreeting]

	const workers = 8
	const perWorker = 24

	var wg sync.WaitGroup
	counts := make([]map[string]int, workers)
	for w := 0; w < workers; w++ {
		counts[w] = make(map[string]int)
		wg.Add(1)
		go func(m map[string]int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				text, _ := bank.Next(types.IntentGreeting)
				m[text]++
			}
		}(counts[w])
	}
	wg.Wait()

	// workers*perWorker is a multiple of the pool size, so fair rotation
	// hands out every template exactly the same number of times.
	total := make(map[string]int)
	for _, m := range counts {
		for text, n := range m {
			total[text] += n
		}
	}
	want := workers * perWorker / len(pool)
	for _, template := range pool {
		if total[template] != want {
			t.Errorf("template %q served %d times, want %d", template, total[template], want)
		}
	}
}
