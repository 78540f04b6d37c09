package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/form"
)

// FormComputeTool presses the compute button of a form
type FormComputeTool struct {
	forms *form.Manager
}

// NewFormComputeTool creates a new form compute tool
func NewFormComputeTool(forms *form.Manager) *FormComputeTool {
	return &FormComputeTool{
		forms: forms,
	}
}

// GetTool returns the MCP tool definition
func (t *FormComputeTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolFormCompute,
		mcp.WithDescription("Compute the selected operation on the form inputs and show the result or error"),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Form session id")),
	)
}

// Handle processes the tool request
func (t *FormComputeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, f, errResult := lookupForm(t.forms, req)
	if errResult != nil {
		return errResult, nil
	}

	message := "Computed result."
	if p := f.Compute(ctx); p.Status == calc.StatusError {
		message = "Computation failed."
	}
	return formResult(id, f, message), nil
}
