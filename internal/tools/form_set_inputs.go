package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/averycrespi/calc-mcp/internal/form"
)

// FormSetInputsTool types text into the inputs of a form
type FormSetInputsTool struct {
	forms *form.Manager
}

// NewFormSetInputsTool creates a new form set inputs tool
func NewFormSetInputsTool(forms *form.Manager) *FormSetInputsTool {
	return &FormSetInputsTool{
		forms: forms,
	}
}

// GetTool returns the MCP tool definition
func (t *FormSetInputsTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolFormSetInputs,
		mcp.WithDescription("Set the raw text of input A and/or input B of a form; omitted inputs keep their text"),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Form session id")),
		mcp.WithString("a", mcp.Description("New text for input A")),
		mcp.WithString("b", mcp.Description("New text for input B")),
	)
}

// Handle processes the tool request
func (t *FormSetInputsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, f, errResult := lookupForm(t.forms, req)
	if errResult != nil {
		return errResult, nil
	}

	if !hasArgument(req, "a") && !hasArgument(req, "b") {
		return mcp.NewToolResultError("at least one of a or b is required"), nil
	}
	if hasArgument(req, "a") {
		f.SetInputA(mcp.ParseString(req, "a", ""))
	}
	if hasArgument(req, "b") {
		f.SetInputB(mcp.ParseString(req, "b", ""))
	}

	return formResult(id, f, "Updated inputs."), nil
}
