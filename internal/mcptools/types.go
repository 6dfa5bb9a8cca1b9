package mcptools

import (
	"github.com/flowgraph-tools/flowskill/internal/contract"
	"github.com/flowgraph-tools/flowskill/internal/lint"
	"github.com/flowgraph-tools/flowskill/internal/router"
)

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// RouteTopicInput is the input for the route_topic MCP tool.
type RouteTopicInput struct {
	Query string `json:"query" jsonschema:"free-text description of the user's React Flow problem or question"`
}

// RouteTopicOutput is the result of the route_topic MCP tool.
type RouteTopicOutput struct {
	Result      router.Result `json:"result"`
	Description string        `json:"description,omitempty"` // matched topic description
}

// ReadReferenceInput is the input for the read_reference MCP tool.
type ReadReferenceInput struct {
	Document string `json:"document" jsonschema:"bundle-relative document id, e.g. references/layout.md or SKILL.md"`
}

// ReadReferenceOutput is the result of the read_reference MCP tool.
type ReadReferenceOutput struct {
	Document string `json:"document"`
	Title    string `json:"title,omitempty"`
	Content  string `json:"content"`
}

// ListTopicsInput is the input for the list_topics MCP tool.
type ListTopicsInput struct{}

// TopicInfo is one routing table entry as returned by list_topics.
type TopicInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Document    string `json:"document"`
}

// ListTopicsOutput is the result of the list_topics MCP tool.
type ListTopicsOutput struct {
	Topics []TopicInfo `json:"topics"`
}

// GetRulesInput is the input for the get_rules MCP tool.
type GetRulesInput struct{}

// GetRulesOutput is the result of the get_rules MCP tool.
type GetRulesOutput struct {
	Rules []contract.Rule `json:"rules"`
	Count int             `json:"count"`
}

// CheckBundleInput is the input for the check_bundle MCP tool.
type CheckBundleInput struct {
	ProjectRoot string `json:"projectRoot,omitempty" jsonschema:"lint the bundle installed under this project instead of the embedded one"`
}

// CheckBundleOutput is the result of the check_bundle MCP tool.
type CheckBundleOutput struct {
	Findings []lint.Finding `json:"findings"`
	Errors   int            `json:"errors"`
	Warnings int            `json:"warnings"`
}
