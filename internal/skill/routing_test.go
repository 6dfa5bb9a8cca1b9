package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routingBody = `# Some Skill

## Topic routing

| Topic | Use when the user asks about | Reference |
| --- | --- | --- |
| blank-canvas | nothing renders | [troubleshooting](references/troubleshooting.md) |
| custom-nodes | custom node components | [custom-nodes](references/custom-nodes.md) |

## Agent behavior contract

1. Not a table row.

## Reference index

| not-a-routing-row | outside the routing section | [x](references/x.md) |
`

func TestParseRoutingRows(t *testing.T) {
	rows := ParseRoutingRows(routingBody)
	require.Len(t, rows, 2)

	assert.Equal(t, "blank-canvas", rows[0].Topic)
	assert.Equal(t, "nothing renders", rows[0].Intent)
	assert.Equal(t, "references/troubleshooting.md", rows[0].Reference)

	assert.Equal(t, "custom-nodes", rows[1].Topic)
	assert.Equal(t, "references/custom-nodes.md", rows[1].Reference)
}

func TestParseRoutingRows_NoSection(t *testing.T) {
	rows := ParseRoutingRows("# Heading\n\n| a | b | [c](d.md) |\n")
	assert.Empty(t, rows)
}

func TestParseRoutingRows_SkipsHeaderAndSeparator(t *testing.T) {
	body := "## Topic routing\n\n| Topic | Intent | Reference |\n| --- | --- | --- |\n"
	rows := ParseRoutingRows(body)
	assert.Empty(t, rows)
}

func TestSplitRow(t *testing.T) {
	cells := splitRow("| a | b c |  d |")
	assert.Equal(t, []string{"a", "b c", "d"}, cells)
}
