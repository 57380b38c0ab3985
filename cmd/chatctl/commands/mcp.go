package commands

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"customer-support-agent/internal/agent"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the support tools over MCP on stdio",
	Long: `Start a Model Context Protocol server on standard input/output that
exposes process_message, classify_message, order_status and
search_knowledge to an assistant. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, l, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	registry := a.Tools()
	s, err := agent.NewMCPServer(l, "customer-support-agent", Version, registry)
	if err != nil {
		return err
	}

	l.Infof(ctx, "cmd.chatctl.mcp: serving %d tools on stdio", len(registry.List()))
	return server.ServeStdio(s)
}
