package mcptools

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/flowgraph-tools/flowskill/internal/contract"
	"github.com/flowgraph-tools/flowskill/internal/corpus"
	"github.com/flowgraph-tools/flowskill/internal/lint"
	"github.com/flowgraph-tools/flowskill/internal/router"
	"github.com/flowgraph-tools/flowskill/internal/status"
)

// SkillService handles MCP tool calls over a loaded skill bundle.
type SkillService struct {
	bundle *corpus.Bundle
	linter *lint.Linter
}

// NewSkillService creates a SkillService for the given bundle.
func NewSkillService(bundle *corpus.Bundle, linter *lint.Linter) *SkillService {
	return &SkillService{bundle: bundle, linter: linter}
}

// RouteTopic matches a free-text query against the routing table.
func (s *SkillService) RouteTopic(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RouteTopicInput,
) (*mcp.CallToolResult, RouteTopicOutput, error) {
	if input.Query == "" {
		return nil, RouteTopicOutput{}, fmt.Errorf("query is required")
	}

	result := router.Route(input.Query)
	out := RouteTopicOutput{Result: result}
	if topic, ok := router.Lookup(result.TopicID); ok {
		out.Description = topic.Description
	}
	return nil, out, nil
}

// ReadReference returns the raw markdown of one bundle document.
func (s *SkillService) ReadReference(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ReadReferenceInput,
) (*mcp.CallToolResult, ReadReferenceOutput, error) {
	if input.Document == "" {
		return nil, ReadReferenceOutput{}, fmt.Errorf("document is required")
	}

	doc, ok := s.bundle.Document(input.Document)
	if !ok {
		return nil, ReadReferenceOutput{}, fmt.Errorf("unknown document %q", input.Document)
	}

	raw, err := s.bundle.Raw(doc.ID)
	if err != nil {
		return nil, ReadReferenceOutput{}, err
	}

	return nil, ReadReferenceOutput{
		Document: doc.ID,
		Title:    doc.Title,
		Content:  string(raw),
	}, nil
}

// ListTopics returns the full routing table.
func (s *SkillService) ListTopics(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListTopicsInput,
) (*mcp.CallToolResult, ListTopicsOutput, error) {
	table := router.Table()
	out := ListTopicsOutput{Topics: make([]TopicInfo, len(table))}
	for i, topic := range table {
		out.Topics[i] = TopicInfo{
			ID:          topic.ID,
			Description: topic.Description,
			Document:    topic.Document,
		}
	}
	return nil, out, nil
}

// GetRules returns the agent behavior contract.
func (s *SkillService) GetRules(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ GetRulesInput,
) (*mcp.CallToolResult, GetRulesOutput, error) {
	rules := contract.ParseRules(s.bundle.Skill.Body)
	return nil, GetRulesOutput{Rules: rules, Count: len(rules)}, nil
}

// CheckBundle lints the embedded bundle, or the copy installed under
// input.ProjectRoot when given.
func (s *SkillService) CheckBundle(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckBundleInput,
) (*mcp.CallToolResult, CheckBundleOutput, error) {
	bundle := s.bundle
	if input.ProjectRoot != "" {
		skillDir := status.SkillDir(input.ProjectRoot)
		if _, err := os.Stat(skillDir); err != nil {
			return nil, CheckBundleOutput{}, fmt.Errorf("no installed bundle at %s", skillDir)
		}
		installed, err := corpus.Load(os.DirFS(skillDir))
		if err != nil {
			return nil, CheckBundleOutput{}, fmt.Errorf("load installed bundle: %w", err)
		}
		bundle = installed
	}

	findings, err := s.linter.Run(ctx, bundle)
	if err != nil {
		return nil, CheckBundleOutput{}, err
	}

	out := CheckBundleOutput{Findings: findings}
	for _, f := range findings {
		if f.Severity == lint.SeverityError {
			out.Errors++
		} else {
			out.Warnings++
		}
	}
	return nil, out, nil
}
