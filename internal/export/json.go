// Package export renders the skill bundle's structure for consumption
// outside the binary: a JSON manifest for tooling and a Mermaid
// diagram of the routing table for documentation.
package export

import (
	"github.com/flowgraph-tools/flowskill/internal/corpus"
	"github.com/flowgraph-tools/flowskill/internal/router"
)

// BundleExport is the JSON manifest of a loaded bundle.
type BundleExport struct {
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Library       string         `json:"library,omitempty"`
	Compatibility string         `json:"compatibility,omitempty"`
	Topics        []TopicExport  `json:"topics"`
	Documents     []DocRefExport `json:"documents"`
}

// TopicExport is one routing table entry.
type TopicExport struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Document    string   `json:"document"`
}

// DocRefExport summarizes one reference document.
type DocRefExport struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Samples int    `json:"samples"`
	Links   int    `json:"links"`
}

// ExportBundle builds the JSON manifest for a bundle.
func ExportBundle(bundle *corpus.Bundle) BundleExport {
	m := bundle.Skill.Manifest

	out := BundleExport{
		Name:          m.Name,
		Description:   m.Description,
		Library:       m.Library,
		Compatibility: m.Compatibility,
	}

	for _, topic := range router.Table() {
		out.Topics = append(out.Topics, TopicExport{
			ID:          topic.ID,
			Description: topic.Description,
			Keywords:    topic.Keywords,
			Document:    topic.Document,
		})
	}

	for _, doc := range bundle.References {
		out.Documents = append(out.Documents, DocRefExport{
			ID:      doc.ID,
			Title:   doc.Title,
			Samples: len(doc.Samples),
			Links:   len(doc.Links),
		})
	}

	return out
}
