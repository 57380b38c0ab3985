package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"customer-support-agent/pkg/log"
)

// NewMCPServer publishes every registered tool over the Model Context Protocol.
func NewMCPServer(l log.Logger, name, version string, registry *ToolRegistry) (*server.MCPServer, error) {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	for _, tool := range registry.List() {
		schema, err := json.Marshal(tool.Parameters())
		if err != nil {
			return nil, fmt.Errorf("tool %s: marshal schema: %w", tool.Name(), err)
		}
		s.AddTool(mcp.NewToolWithRawSchema(tool.Name(), tool.Description(), schema), ToolHandler(l, tool))
	}
	return s, nil
}

// ToolHandler adapts a Tool to an MCP handler. Tool failures are reported as error
// results so the assistant can read them; only protocol problems are returned as errors.
func ToolHandler(l log.Logger, tool Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := tool.Execute(ctx, req.GetArguments())
		if err != nil {
			l.Warnf(ctx, "internal.agent.ToolHandler: %s: %v", tool.Name(), err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to format result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(out)), nil
	}
}
