// Package contract extracts the agent behavior contract from a
// bundle's entry document: the fixed, numbered list of rules the
// consuming agent is expected to follow. The markdown is the single
// source of truth; this package only parses and checks it.
package contract

import (
	"fmt"
	"io/fs"
	"regexp"
	"strconv"
	"strings"

	"github.com/flowgraph-tools/flowskill/internal/skill"
)

// ExpectedRuleCount is the declared size of the contract.
const ExpectedRuleCount = 12

// SectionHeading marks the contract section inside SKILL.md.
const SectionHeading = "## Agent behavior contract"

// Rule is one contract entry.
type Rule struct {
	Ordinal int    `json:"ordinal"`
	Text    string `json:"text"`
}

var ruleLine = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)

// ParseRules extracts the numbered rules from a SKILL.md body. It
// returns whatever it finds; use Check to enforce the contract shape.
func ParseRules(body string) []Rule {
	var rules []Rule
	inSection := false

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "## ") {
			inSection = trimmed == SectionHeading
			continue
		}
		if !inSection {
			continue
		}

		m := ruleLine.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		ordinal, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		rules = append(rules, Rule{Ordinal: ordinal, Text: strings.TrimSpace(m[2])})
	}
	return rules
}

// Load parses the contract out of a bundle filesystem.
func Load(bundle fs.FS) ([]Rule, error) {
	sk, err := skill.Load(bundle)
	if err != nil {
		return nil, err
	}
	return ParseRules(sk.Body), nil
}

// Check verifies the contract shape: exactly ExpectedRuleCount rules,
// contiguous ordinals starting at 1, no empty instruction text.
func Check(rules []Rule) error {
	if len(rules) != ExpectedRuleCount {
		return fmt.Errorf("contract: expected %d rules, found %d", ExpectedRuleCount, len(rules))
	}
	for i, rule := range rules {
		if rule.Ordinal != i+1 {
			return fmt.Errorf("contract: rule at position %d has ordinal %d", i+1, rule.Ordinal)
		}
		if rule.Text == "" {
			return fmt.Errorf("contract: rule %d is empty", rule.Ordinal)
		}
	}
	return nil
}
