package app

import (
	"customer-support-agent/internal/agent"
	"customer-support-agent/internal/agent/tools"
)

// Tools exposes the pipeline and its stores as assistant-callable tools.
func (a *App) Tools() *agent.ToolRegistry {
	return agent.NewToolRegistry(
		tools.NewProcessMessageTool(a.Pipeline),
		tools.NewClassifyMessageTool(a.Classifier, a.Rules),
		tools.NewOrderStatusTool(a.Orders),
		tools.NewSearchKnowledgeTool(a.Knowledge),
	)
}
