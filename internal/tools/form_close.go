package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/averycrespi/calc-mcp/internal/form"
	"github.com/averycrespi/calc-mcp/internal/results"
)

// FormCloseTool discards a form session
type FormCloseTool struct {
	forms *form.Manager
}

// NewFormCloseTool creates a new form close tool
func NewFormCloseTool(forms *form.Manager) *FormCloseTool {
	return &FormCloseTool{
		forms: forms,
	}
}

// GetTool returns the MCP tool definition
func (t *FormCloseTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolFormClose,
		mcp.WithDescription("Close a form session"),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Form session id")),
	)
}

// Handle processes the tool request
func (t *FormCloseTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, _, errResult := lookupForm(t.forms, req)
	if errResult != nil {
		return errResult, nil
	}

	if err := t.forms.Close(id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to close form session: %v", err)), nil
	}

	return jsonResult(results.FormToolResult{Message: "Closed form session.", SessionID: id}, false), nil
}
