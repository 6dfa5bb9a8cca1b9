// Package router implements the topic router: a static mapping from
// user-intent categories to reference documents, plus a deterministic
// keyword matcher over it. The table mirrors the human-readable
// routing table in SKILL.md; an external agent pattern-matching
// against that table and Route over the same query should land on the
// same document.
package router

import (
	"strings"

	"github.com/flowgraph-tools/flowskill/internal/skill"
)

// FallbackDocument is returned when no topic matches a query. Starting
// from the entry document is always safe: it carries the routing table
// and the reference index.
const FallbackDocument = skill.EntryFile

// Result is the outcome of routing one query.
type Result struct {
	TopicID  string `json:"topicId,omitempty"`
	Document string `json:"document"`
	Matched  bool   `json:"matched"`
	Score    int    `json:"score"`
}

// Route matches a free-text query against the routing table and
// returns the best topic's document. Matching is case-insensitive
// keyword scoring; multi-word keywords outweigh single words. Ties
// resolve to the earliest topic in table order, and a query that
// matches nothing falls back to the entry document.
func Route(query string) Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Result{Document: FallbackDocument}
	}

	best := Result{Document: FallbackDocument}
	for _, topic := range table {
		score := scoreTopic(topic, q)
		if score > best.Score {
			best = Result{
				TopicID:  topic.ID,
				Document: topic.Document,
				Matched:  true,
				Score:    score,
			}
		}
	}
	return best
}

func scoreTopic(topic Topic, query string) int {
	score := 0
	if strings.Contains(query, topic.ID) {
		score += 3
	}
	for _, kw := range topic.Keywords {
		if !MatchKeyword(query, kw) {
			continue
		}
		// Phrases are stronger signals than single words.
		if strings.ContainsRune(kw, ' ') {
			score += 2
		} else {
			score++
		}
	}
	return score
}

// MatchKeyword reports whether a lowercased query hits a routing
// keyword. Multi-word phrases match as substrings; single words must
// land on word boundaries, so "pan" does not fire inside "panel".
func MatchKeyword(query, kw string) bool {
	if strings.ContainsRune(kw, ' ') {
		return strings.Contains(query, kw)
	}
	return containsWord(query, kw)
}

func containsWord(query, kw string) bool {
	for start := 0; ; {
		idx := strings.Index(query[start:], kw)
		if idx < 0 {
			return false
		}
		idx += start
		if !isWordChar(query, idx-1) && !isWordChar(query, idx+len(kw)) {
			return true
		}
		start = idx + 1
	}
}

func isWordChar(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	c := s[i]
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}

// Lookup returns the topic with the given ID.
func Lookup(id string) (Topic, bool) {
	for _, topic := range table {
		if topic.ID == id {
			return topic, true
		}
	}
	return Topic{}, false
}
