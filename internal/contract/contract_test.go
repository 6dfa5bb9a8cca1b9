package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowgraph-tools/flowskill/internal/skilldata"
)

const contractBody = `# Skill

## Topic routing

1. This numbered line is outside the contract section.

## Agent behavior contract

1. Always import the stylesheet.
2. Give the container a size.

Some prose between rules is ignored.

3. Use controlled state.

## Reference index

4. Also outside the section.
`

func TestParseRules(t *testing.T) {
	rules := ParseRules(contractBody)
	require.Len(t, rules, 3)

	assert.Equal(t, Rule{Ordinal: 1, Text: "Always import the stylesheet."}, rules[0])
	assert.Equal(t, Rule{Ordinal: 2, Text: "Give the container a size."}, rules[1])
	assert.Equal(t, Rule{Ordinal: 3, Text: "Use controlled state."}, rules[2])
}

func TestParseRules_NoSection(t *testing.T) {
	assert.Empty(t, ParseRules("# Skill\n\n1. A rule with no section.\n"))
}

func TestCheck(t *testing.T) {
	rules := make([]Rule, ExpectedRuleCount)
	for i := range rules {
		rules[i] = Rule{Ordinal: i + 1, Text: "rule"}
	}
	assert.NoError(t, Check(rules))
}

func TestCheck_WrongCount(t *testing.T) {
	err := Check([]Rule{{Ordinal: 1, Text: "only one"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 12 rules, found 1")
}

func TestCheck_NonContiguousOrdinals(t *testing.T) {
	rules := make([]Rule, ExpectedRuleCount)
	for i := range rules {
		rules[i] = Rule{Ordinal: i + 1, Text: "rule"}
	}
	rules[5].Ordinal = 7

	err := Check(rules)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position 6 has ordinal 7")
}

func TestCheck_EmptyRule(t *testing.T) {
	rules := make([]Rule, ExpectedRuleCount)
	for i := range rules {
		rules[i] = Rule{Ordinal: i + 1, Text: "rule"}
	}
	rules[3].Text = ""

	err := Check(rules)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule 4 is empty")
}

// The shipped bundle must always carry a well-formed contract.
func TestLoad_EmbeddedBundle(t *testing.T) {
	fsys, err := skilldata.Bundle()
	require.NoError(t, err)

	rules, err := Load(fsys)
	require.NoError(t, err)
	require.NoError(t, Check(rules))

	assert.Len(t, rules, ExpectedRuleCount)
	assert.Contains(t, rules[0].Text, "style.css")
}
