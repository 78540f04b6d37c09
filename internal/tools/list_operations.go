package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/results"
)

// ListOperationsTool lists the operations of the selector
type ListOperationsTool struct{}

// NewListOperationsTool creates a new list operations tool
func NewListOperationsTool() *ListOperationsTool {
	return &ListOperationsTool{}
}

// GetTool returns the MCP tool definition
func (t *ListOperationsTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolListOperations,
		mcp.WithDescription("List the supported operations with their selector index and symbol"),
	)
}

// Handle processes the tool request
func (t *ListOperationsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	toolResult := results.ListOperationsToolResult{
		Default:    results.NewOperationInfo(calc.Add),
		Operations: make([]results.OperationInfo, 0, len(calc.Operations)),
	}
	for _, op := range calc.Operations {
		toolResult.Operations = append(toolResult.Operations, results.NewOperationInfo(op))
	}
	toolResult.Message = fmt.Sprintf("Found %d operations.", len(toolResult.Operations))

	return jsonResult(toolResult, false), nil
}
