package router

// Topic is one entry in the routing table: a user-intent category and
// the reference document that covers it.
type Topic struct {
	ID          string
	Description string
	Keywords    []string
	Document    string
}

// table is the static routing table. Order matters: ties resolve to
// the earliest entry, so more specific symptom topics come before the
// broad ones that share their vocabulary. Must stay in sync with the
// "Topic routing" table in SKILL.md (checked by lint).
var table = []Topic{
	{
		ID:          "blank-canvas",
		Description: "nothing renders, empty screen, canvas has no size",
		Keywords:    []string{"blank", "empty screen", "nothing renders", "nothing shows", "not rendering anything", "no size", "white screen", "canvas is empty"},
		Document:    "references/troubleshooting.md",
	},
	{
		ID:          "edges-not-rendering",
		Description: "edges invisible or missing while nodes render fine",
		Keywords:    []string{"edges not rendering", "edges not showing", "edges are not", "invisible", "edges missing", "edges don't show", "edges disappear", "can't see edges"},
		Document:    "references/troubleshooting.md",
	},
	{
		ID:          "getting-started",
		Description: "installing React Flow, rendering a first flow, basic setup",
		Keywords:    []string{"install", "getting started", "get started", "setup", "first flow", "hello world", "basic example", "npm"},
		Document:    "references/getting-started.md",
	},
	{
		ID:          "migration",
		Description: "upgrading from reactflow v11 to @xyflow/react v12",
		Keywords:    []string{"migrate", "migration", "upgrade", "v11", "v12", "reactflow package", "xyflow", "legacy import"},
		Document:    "references/migration.md",
	},
	{
		ID:          "custom-nodes",
		Description: "building a custom node component, nodeTypes, node data",
		Keywords:    []string{"custom node", "nodetypes", "node component", "nodeprops", "own node"},
		Document:    "references/custom-nodes.md",
	},
	{
		ID:          "custom-edges",
		Description: "building a custom edge component, edge paths, edgeTypes",
		Keywords:    []string{"custom edge", "edgetypes", "edge component", "edge path", "bezier", "smoothstep", "baseedge"},
		Document:    "references/custom-edges.md",
	},
	{
		ID:          "edge-labels",
		Description: "labels on edges, interactive edge content, markers",
		Keywords:    []string{"edge label", "label on edge", "edgelabelrenderer", "marker", "arrowhead", "arrow head"},
		Document:    "references/custom-edges.md",
	},
	{
		ID:          "handles-connections",
		Description: "handles, connecting nodes, source and target positions",
		Keywords:    []string{"handle", "connect nodes", "connecting", "onconnect", "source handle", "target handle", "connection line"},
		Document:    "references/connections.md",
	},
	{
		ID:          "connection-validation",
		Description: "restricting which connections are allowed",
		Keywords:    []string{"valid connection", "isvalidconnection", "restrict connection", "prevent connection", "connection rules", "allow connection"},
		Document:    "references/connections.md",
	},
	{
		ID:          "auto-layout",
		Description: "arranging nodes automatically, dagre, ELK, tree layout",
		Keywords:    []string{"layout", "dagre", "elk", "arrange", "auto position", "tree", "hierarchy", "tidy"},
		Document:    "references/layout.md",
	},
	{
		ID:          "state-management",
		Description: "controlled flows, node/edge state, Zustand, updating data",
		Keywords:    []string{"state", "zustand", "controlled", "usenodesstate", "update node data", "store", "redux", "save", "restore"},
		Document:    "references/state-management.md",
	},
	{
		ID:          "viewport-controls",
		Description: "zooming, panning, fitView, saving the viewport",
		Keywords:    []string{"zoom", "pan", "fitview", "fit view", "viewport", "center", "scroll"},
		Document:    "references/viewport.md",
	},
	{
		ID:          "styling-theming",
		Description: "CSS, dark mode, theming nodes and edges",
		Keywords:    []string{"style", "styling", "css", "theme", "dark mode", "color", "tailwind", "appearance"},
		Document:    "references/styling.md",
	},
	{
		ID:          "helper-components",
		Description: "Background, MiniMap, Controls, Panel, NodeToolbar, NodeResizer",
		Keywords:    []string{"minimap", "mini map", "background", "controls", "panel", "toolbar", "resizer", "resize node"},
		Document:    "references/built-in-components.md",
	},
	{
		ID:          "performance",
		Description: "slow flows, many nodes, unnecessary re-renders",
		Keywords:    []string{"slow", "performance", "lag", "re-render", "rerender", "many nodes", "thousands", "fps", "optimize"},
		Document:    "references/performance.md",
	},
	{
		ID:          "subflows",
		Description: "nested nodes, group nodes, parent/child relationships",
		Keywords:    []string{"subflow", "group", "nested", "parent", "child", "parentid"},
		Document:    "references/subflows.md",
	},
	{
		ID:          "drag-and-drop",
		Description: "dragging new nodes from a sidebar onto the canvas",
		Keywords:    []string{"drag and drop", "drop", "sidebar", "palette", "dnd", "drag from"},
		Document:    "references/drag-and-drop.md",
	},
	{
		ID:          "testing",
		Description: "unit or end-to-end testing flows, jsdom errors",
		Keywords:    []string{"test", "jest", "vitest", "jsdom", "resizeobserver", "playwright", "cypress"},
		Document:    "references/testing.md",
	},
}

// Table returns the routing table in priority order.
func Table() []Topic {
	out := make([]Topic, len(table))
	copy(out, table)
	return out
}

// Documents returns the deduplicated set of documents the table routes
// to, in first-appearance order.
func Documents() []string {
	seen := make(map[string]bool, len(table))
	var docs []string
	for _, t := range table {
		if !seen[t.Document] {
			seen[t.Document] = true
			docs = append(docs, t.Document)
		}
	}
	return docs
}
