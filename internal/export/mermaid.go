package export

import (
	"fmt"
	"path"
	"strings"

	"github.com/flowgraph-tools/flowskill/internal/router"
)

// GenerateMermaid produces a Mermaid graph LR diagram of the routing
// table: topics on the left, reference documents on the right, one
// arrow per table entry.
func GenerateMermaid() string {
	nodeIDs := make(map[string]string)
	nextID := 0
	getID := func(key string) string {
		if id, ok := nodeIDs[key]; ok {
			return id
		}
		id := fmt.Sprintf("N%d", nextID)
		nextID++
		nodeIDs[key] = id
		return id
	}

	var sb strings.Builder
	sb.WriteString("graph LR\n")

	// Documents as a subgraph so they line up in one column.
	sb.WriteString("  subgraph references\n")
	for _, doc := range router.Documents() {
		label := strings.TrimSuffix(path.Base(doc), ".md")
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", getID(doc), label))
	}
	sb.WriteString("  end\n")

	for _, topic := range router.Table() {
		sb.WriteString(fmt.Sprintf("  %s([\"%s\"]) --> %s\n",
			getID("topic:"+topic.ID), topic.ID, getID(topic.Document)))
	}

	return sb.String()
}
