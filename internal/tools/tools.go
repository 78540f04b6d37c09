package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/form"
)

// Tool is implemented by every MCP tool in this package
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// All returns every tool, wired to the given evaluator and form sessions
func All(evaluator *calc.Evaluator, forms *form.Manager) []Tool {
	return []Tool{
		NewEvaluateTool(evaluator),
		NewListOperationsTool(),
		NewFormOpenTool(forms),
		NewFormSetInputsTool(forms),
		NewFormSelectOperationTool(forms),
		NewFormComputeTool(forms),
		NewFormClearTool(forms),
		NewFormCloseTool(forms),
	}
}
