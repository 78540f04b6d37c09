package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/averycrespi/calc-mcp/internal/form"
)

// FormOpenTool opens a new form session
type FormOpenTool struct {
	forms *form.Manager
}

// NewFormOpenTool creates a new form open tool
func NewFormOpenTool(forms *form.Manager) *FormOpenTool {
	return &FormOpenTool{
		forms: forms,
	}
}

// GetTool returns the MCP tool definition
func (t *FormOpenTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolFormOpen,
		mcp.WithDescription("Open a calculator form with two empty inputs and the add operation selected"),
	)
}

// Handle processes the tool request
func (t *FormOpenTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, f, err := t.forms.Open()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to open form session: %v", err)), nil
	}
	return formResult(id, f, "Opened form session."), nil
}
