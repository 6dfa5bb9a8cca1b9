package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewSkillMCPServer creates an MCP server with the 5 skill tools
// registered. The version is the binary's, passed down from main.
func NewSkillMCPServer(svc *SkillService, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "flowskill",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "route_topic",
		Description: "Match a free-text React Flow question against the skill's topic routing table and return the reference document to read. Falls back to SKILL.md when nothing matches.",
	}, svc.RouteTopic)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_reference",
		Description: "Read one reference document from the skill bundle by its id (e.g. references/custom-nodes.md).",
	}, svc.ReadReference)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_topics",
		Description: "List the full topic routing table: topic ids, the intents they match, and the documents they route to.",
	}, svc.ListTopics)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_rules",
		Description: "Return the agent behavior contract: the fixed numbered rules to follow when writing React Flow code.",
	}, svc.GetRules)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_bundle",
		Description: "Lint a skill bundle for documentation drift: missing routing targets, index mismatches, empty documents, malformed contract, and inconsistent import paths in code samples.",
	}, svc.CheckBundle)

	return server
}

// RunStdio runs the MCP server on stdio transport, blocking until
// stdin is closed or the context is cancelled.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts an HTTP server exposing the skill tools over the
// streamable HTTP transport.
func RunHTTP(ctx context.Context, server *mcp.Server, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
