package main

import (
	"fmt"

	"github.com/flowgraph-tools/flowskill/internal/contract"
	"github.com/flowgraph-tools/flowskill/internal/router"
)

// runRoute matches a free-text question against the routing table and
// prints where it lands.
func runRoute(query string) error {
	if query == "" {
		return fmt.Errorf("usage: flowskill route <question>")
	}

	result := router.Route(query)
	if !result.Matched {
		fmt.Printf("no topic matched; start from %s\n", result.Document)
		return nil
	}

	topic, _ := router.Lookup(result.TopicID)
	fmt.Printf("topic:     %s\n", result.TopicID)
	fmt.Printf("matches:   %s\n", topic.Description)
	fmt.Printf("reference: %s\n", result.Document)
	return nil
}

// runShow prints one bundle document to stdout.
func runShow(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: flowskill show <document>")
	}

	bundle, err := loadEmbeddedBundle()
	if err != nil {
		return err
	}

	doc, ok := bundle.Document(args[0])
	if !ok {
		return fmt.Errorf("unknown document %q (try 'flowskill topics')", args[0])
	}

	raw, err := bundle.Raw(doc.ID)
	if err != nil {
		return err
	}
	_, err = fmt.Print(string(raw))
	return err
}

// runTopics prints the routing table.
func runTopics() error {
	for _, topic := range router.Table() {
		fmt.Printf("%-22s %-46s %s\n", topic.ID, topic.Description, topic.Document)
	}
	return nil
}

// runRules prints the agent behavior contract.
func runRules() error {
	bundle, err := loadEmbeddedBundle()
	if err != nil {
		return err
	}

	rules := contract.ParseRules(bundle.Skill.Body)
	for _, rule := range rules {
		fmt.Printf("%2d. %s\n", rule.Ordinal, rule.Text)
	}
	return nil
}
