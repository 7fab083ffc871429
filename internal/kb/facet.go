package kb

import (
	"log"
	"strings"
)

// FacetIndex maps lowercase functional keyword phrases to answers. It lets
// users describe functionality ("handle claims") without knowing a topic's
// proper name, and is checked before semantic search because exact functional
// phrasing is more reliable than embedding similarity for short queries.
type FacetIndex struct {
	phrases []string          // catalog load order; drives the substring pass
	answers map[string]string // phrase -> answer
}

// BuildFacetIndex flattens every entry's facets into a single lookup.
// Known limitation: if two topics register the same phrase, the later topic
// wins (last-write-wins); a warning is logged rather than failing the build.
func BuildFacetIndex(c *Catalog) *FacetIndex {
	ix := &FacetIndex{
		answers: make(map[string]string),
	}

	for _, entry := range c.Entries() {
		for _, phrase := range entry.Facets {
			if prev, exists := ix.answers[phrase]; exists {
				if prev != entry.Answer {
					log.Printf("kb: facet %q registered by multiple topics, keeping %s", phrase, entry.Name)
				}
			} else {
				ix.phrases = append(ix.phrases, phrase)
			}
			ix.answers[phrase] = entry.Answer
		}
	}

	return ix
}

// Lookup returns the answer for the best facet match, or ok=false when no
// facet qualifies. Absence of a match is a normal outcome, not an error.
//
// Two passes, first hit wins:
//  1. Substring: the first phrase (in load order) occurring in the lowercased
//     query wins outright. No ranking among multiple substring hits.
//  2. Word overlap: a facet qualifies when its word set shares at least two
//     words with the query's word set. The strictly largest overlap wins;
//     ties keep the earliest-seen facet.
func (ix *FacetIndex) Lookup(query string) (string, bool) {
	queryLower := strings.ToLower(query)

	for _, phrase := range ix.phrases {
		if strings.Contains(queryLower, phrase) {
			return ix.answers[phrase], true
		}
	}

	queryWords := wordSet(queryLower)
	bestScore := 0
	bestAnswer := ""

	for _, phrase := range ix.phrases {
		overlap := 0
		for word := range wordSet(phrase) {
			if _, ok := queryWords[word]; ok {
				overlap++
			}
		}
		// Two-word minimum keeps single common words from matching.
		if overlap >= 2 && overlap > bestScore {
			bestScore = overlap
			bestAnswer = ix.answers[phrase]
		}
	}

	if bestScore == 0 {
		return "", false
	}
	return bestAnswer, true
}

// Len returns the number of distinct facet phrases.
func (ix *FacetIndex) Len() int {
	return len(ix.phrases)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}
