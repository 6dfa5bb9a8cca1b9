package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/flowgraph-tools/flowskill/internal/contract"
	"github.com/flowgraph-tools/flowskill/internal/corpus"
	"github.com/flowgraph-tools/flowskill/internal/router"
	"github.com/flowgraph-tools/flowskill/internal/skill"
)

// checkRouterTargets verifies that every routing table entry points at
// a document shipped in the bundle.
func checkRouterTargets(bundle *corpus.Bundle) []Finding {
	var findings []Finding
	for _, topic := range router.Table() {
		if _, ok := bundle.Document(topic.Document); !ok {
			findings = append(findings, Finding{
				Check:    CheckRouterTargets,
				Severity: SeverityError,
				Message:  fmt.Sprintf("topic %q routes to missing document %s", topic.ID, topic.Document),
			})
		}
	}
	return findings
}

// checkTableSync verifies that the routing table compiled into the
// binary and the markdown table in SKILL.md agree: same topics, same
// order, same targets.
func checkTableSync(bundle *corpus.Bundle) []Finding {
	rows := skill.ParseRoutingRows(bundle.Skill.Body)
	topics := router.Table()

	if len(rows) != len(topics) {
		return []Finding{{
			Check:    CheckTableSync,
			Severity: SeverityError,
			Document: skill.EntryFile,
			Message:  fmt.Sprintf("SKILL.md routing table has %d rows, compiled table has %d topics", len(rows), len(topics)),
		}}
	}

	var findings []Finding
	for i, row := range rows {
		topic := topics[i]
		if row.Topic != topic.ID {
			findings = append(findings, Finding{
				Check:    CheckTableSync,
				Severity: SeverityError,
				Document: skill.EntryFile,
				Message:  fmt.Sprintf("routing table row %d is %q, compiled table has %q", i+1, row.Topic, topic.ID),
			})
			continue
		}
		ref := corpus.ResolveLink(skill.EntryFile, row.Reference)
		if ref != topic.Document {
			findings = append(findings, Finding{
				Check:    CheckTableSync,
				Severity: SeverityError,
				Document: skill.EntryFile,
				Message:  fmt.Sprintf("topic %q routes to %s in SKILL.md but %s in the compiled table", row.Topic, ref, topic.Document),
			})
		}
	}
	return findings
}

// checkRoundTrip verifies that the routing table targets, the
// reference index links, and the files shipped under references/ are
// the same set — no orphans in any direction.
func checkRoundTrip(bundle *corpus.Bundle) []Finding {
	routed := make(map[string]bool)
	for _, row := range skill.ParseRoutingRows(bundle.Skill.Body) {
		routed[corpus.ResolveLink(skill.EntryFile, row.Reference)] = true
	}

	indexed := make(map[string]bool)
	for _, link := range bundle.Entry.Links {
		if link.Section != indexHeading {
			continue
		}
		if id := corpus.ResolveLink(skill.EntryFile, link.Destination); id != "" {
			indexed[id] = true
		}
	}

	shipped := make(map[string]bool)
	for _, id := range bundle.ReferenceIDs() {
		shipped[id] = true
	}

	var findings []Finding
	add := func(msg string) {
		findings = append(findings, Finding{
			Check:    CheckRoundTrip,
			Severity: SeverityError,
			Document: skill.EntryFile,
			Message:  msg,
		})
	}

	for _, id := range sortedKeys(shipped) {
		if !indexed[id] {
			add(fmt.Sprintf("%s is shipped but missing from the reference index", id))
		}
		if !routed[id] {
			add(fmt.Sprintf("%s is shipped but no topic routes to it", id))
		}
	}
	for _, id := range sortedKeys(indexed) {
		if !shipped[id] {
			add(fmt.Sprintf("reference index lists %s which is not shipped", id))
		}
	}
	for _, id := range sortedKeys(routed) {
		if !shipped[id] {
			add(fmt.Sprintf("routing table targets %s which is not shipped", id))
		}
	}
	return findings
}

const indexHeading = "Reference index"

// checkIndex verifies that every reference index entry resolves to a
// readable, non-empty document.
func checkIndex(bundle *corpus.Bundle) []Finding {
	var findings []Finding
	for _, link := range bundle.Entry.Links {
		if link.Section != indexHeading {
			continue
		}
		id := corpus.ResolveLink(skill.EntryFile, link.Destination)
		if id == "" {
			continue
		}
		doc, ok := bundle.Document(id)
		if !ok {
			findings = append(findings, Finding{
				Check:    CheckIndex,
				Severity: SeverityError,
				Document: skill.EntryFile,
				Message:  fmt.Sprintf("index entry %q points at missing document %s", link.Text, id),
			})
			continue
		}
		if len(strings.TrimSpace(string(doc.Raw))) == 0 {
			findings = append(findings, Finding{
				Check:    CheckIndex,
				Severity: SeverityError,
				Document: id,
				Message:  "indexed document is empty",
			})
		}
	}
	return findings
}

// checkContract verifies the behavior contract shape.
func checkContract(bundle *corpus.Bundle) []Finding {
	rules := contract.ParseRules(bundle.Skill.Body)
	if err := contract.Check(rules); err != nil {
		return []Finding{{
			Check:    CheckContract,
			Severity: SeverityError,
			Document: skill.EntryFile,
			Message:  err.Error(),
		}}
	}
	return nil
}

// checkTopicOverlap warns when two topics routing to different
// documents have keywords that collide: identical, or one firing
// inside the other under the router's matching rules. A query hitting
// the longer keyword would score both topics at once.
func checkTopicOverlap() []Finding {
	topics := router.Table()
	var findings []Finding

	for i, a := range topics {
		for _, b := range topics[i+1:] {
			if a.Document == b.Document {
				continue
			}
			if ka, kb, ok := conflictingKeywords(a.Keywords, b.Keywords); ok {
				msg := fmt.Sprintf("topics %q and %q share keyword %q but route to different documents", a.ID, b.ID, ka)
				if ka != kb {
					msg = fmt.Sprintf("topics %q and %q have colliding keywords %q and %q but route to different documents", a.ID, b.ID, ka, kb)
				}
				findings = append(findings, Finding{
					Check:    CheckTopicOverlap,
					Severity: SeverityWarning,
					Message:  msg,
				})
			}
		}
	}
	return findings
}

// conflictingKeywords returns the first pair (one keyword from each
// list) that some query could hit simultaneously: equal keywords, or
// one firing inside the other under the router's matching rules.
func conflictingKeywords(a, b []string) (string, string, bool) {
	for _, ka := range a {
		for _, kb := range b {
			if router.MatchKeyword(kb, ka) || router.MatchKeyword(ka, kb) {
				return ka, kb, true
			}
		}
	}
	return "", "", false
}

// checkNonEmpty flags documents with no content.
func checkNonEmpty(doc *corpus.Document) []Finding {
	if len(strings.TrimSpace(string(doc.Raw))) > 0 {
		return nil
	}
	return []Finding{{
		Check:    CheckNonEmpty,
		Severity: SeverityError,
		Document: doc.ID,
		Message:  "document is empty",
	}}
}

// checkDeadLinks flags intra-bundle links that do not resolve to a
// shipped document.
func checkDeadLinks(bundle *corpus.Bundle, doc *corpus.Document) []Finding {
	var findings []Finding
	for _, link := range doc.Links {
		id := corpus.ResolveLink(doc.ID, link.Destination)
		if id == "" {
			continue // external or anchor link
		}
		if _, ok := bundle.Document(id); !ok {
			findings = append(findings, Finding{
				Check:    CheckDeadLinks,
				Severity: SeverityError,
				Document: doc.ID,
				Message:  fmt.Sprintf("link %q points at missing document %s", link.Text, id),
			})
		}
	}
	return findings
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
