package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/averycrespi/calc-mcp/internal/form"
)

// FormClearTool presses the clear button of a form
type FormClearTool struct {
	forms *form.Manager
}

// NewFormClearTool creates a new form clear tool
func NewFormClearTool(forms *form.Manager) *FormClearTool {
	return &FormClearTool{
		forms: forms,
	}
}

// GetTool returns the MCP tool definition
func (t *FormClearTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolFormClear,
		mcp.WithDescription("Clear both inputs of a form and reset the display; the selected operation is kept"),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Form session id")),
	)
}

// Handle processes the tool request
func (t *FormClearTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, f, errResult := lookupForm(t.forms, req)
	if errResult != nil {
		return errResult, nil
	}

	f.Clear()
	return formResult(id, f, "Cleared inputs."), nil
}
