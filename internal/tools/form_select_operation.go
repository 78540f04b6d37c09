package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/averycrespi/calc-mcp/internal/form"
)

// FormSelectOperationTool changes the selected operation of a form
type FormSelectOperationTool struct {
	forms *form.Manager
}

// NewFormSelectOperationTool creates a new form select operation tool
func NewFormSelectOperationTool(forms *form.Manager) *FormSelectOperationTool {
	return &FormSelectOperationTool{
		forms: forms,
	}
}

// GetTool returns the MCP tool definition
func (t *FormSelectOperationTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolFormSelectOperation,
		mcp.WithDescription("Select the operation of a form by selector index "+
			"(0 add, 1 subtract, 2 multiply, 3 divide); other indices select add"),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Form session id")),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("Selector index (0-3)")),
	)
}

// Handle processes the tool request
func (t *FormSelectOperationTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, f, errResult := lookupForm(t.forms, req)
	if errResult != nil {
		return errResult, nil
	}

	if !hasArgument(req, "index") {
		return mcp.NewToolResultError("index parameter is required"), nil
	}
	op := f.SelectOperation(mcp.ParseInt(req, "index", 0))

	return formResult(id, f, fmt.Sprintf("Selected %s (%s).", op.Name(), op.Symbol())), nil
}
