// Package kb holds the static knowledge base catalog the support agent
// answers from: one entry per supported topic, each with a canonical
// question, an answer, paraphrase variations, and facet keywords.
package kb

import (
	"fmt"
	"strings"
)

// TopicEntry describes one supported topic. Immutable after load.
type TopicEntry struct {
	// Name is a short identifier for the topic (e.g. "EVA").
	Name string `yaml:"name"`

	// Question is the canonical phrasing of the topic's question.
	Question string `yaml:"question"`

	// Answer is the predefined answer returned for any match on this topic.
	Answer string `yaml:"answer"`

	// Variations are alternate phrasings of the canonical question. They
	// are embedded alongside the canonical question so paraphrases match.
	Variations []string `yaml:"variations"`

	// Facets are lowercase functional keyword phrases describing what the
	// answer covers, independent of the topic's proper name
	// (e.g. "process claims").
	Facets []string `yaml:"facets"`
}

// Catalog is the validated, immutable topic catalog. Build it once at
// startup; the facet and embedding indexes are derived from it.
type Catalog struct {
	entries   []TopicEntry
	questions []string          // canonical questions and variations, load order
	answers   map[string]string // question (canonical or variation) -> answer
}

// NewCatalog validates the entries and builds the question/answer lookup.
// Entry order is preserved; it determines facet iteration order and
// embedding index storage order.
func NewCatalog(entries []TopicEntry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("kb: catalog has no entries")
	}

	c := &Catalog{
		entries: entries,
		answers: make(map[string]string),
	}

	for i, e := range entries {
		if strings.TrimSpace(e.Question) == "" {
			return nil, fmt.Errorf("kb: entry %d (%s): question is empty", i, e.Name)
		}
		if strings.TrimSpace(e.Answer) == "" {
			return nil, fmt.Errorf("kb: entry %d (%s): answer is empty", i, e.Name)
		}
		for _, f := range e.Facets {
			if strings.TrimSpace(f) == "" {
				return nil, fmt.Errorf("kb: entry %d (%s): facet phrase is empty", i, e.Name)
			}
			if f != strings.ToLower(f) {
				return nil, fmt.Errorf("kb: entry %d (%s): facet %q is not lowercase", i, e.Name, f)
			}
		}

		c.questions = append(c.questions, e.Question)
		c.answers[e.Question] = e.Answer
		for _, v := range e.Variations {
			if strings.TrimSpace(v) == "" {
				return nil, fmt.Errorf("kb: entry %d (%s): variation is empty", i, e.Name)
			}
			c.questions = append(c.questions, v)
			c.answers[v] = e.Answer
		}
	}

	return c, nil
}

// Entries returns the catalog entries in load order.
func (c *Catalog) Entries() []TopicEntry {
	return c.entries
}

// Questions returns every canonical question and variation, in load order.
// This is the storage order of the embedding index.
func (c *Catalog) Questions() []string {
	return c.questions
}

// AnswerFor returns the answer for a canonical question or variation.
func (c *Catalog) AnswerFor(question string) (string, bool) {
	answer, ok := c.answers[question]
	return answer, ok
}

// Len returns the number of topics in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}
