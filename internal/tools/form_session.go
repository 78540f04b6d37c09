package tools

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/form"
	"github.com/averycrespi/calc-mcp/internal/results"
)

// lookupForm resolves the session named by the request.
// The returned tool result is non-nil when the lookup failed.
func lookupForm(forms *form.Manager, req mcp.CallToolRequest) (string, *form.Form, *mcp.CallToolResult) {
	id, err := GetSessionID(req)
	if err != nil {
		return "", nil, mcp.NewToolResultError(err.Error())
	}

	f, err := forms.Get(id)
	if err != nil {
		if errors.Is(err, form.ErrSessionNotFound) {
			return "", nil, mcp.NewToolResultError(
				fmt.Sprintf("No form session %q. Open one with %s.", id, ToolFormOpen),
			)
		}
		return "", nil, mcp.NewToolResultError(fmt.Sprintf("Failed to get form session: %v", err))
	}
	return id, f, nil
}

// formResult reports the current state of a form session
func formResult(id string, f *form.Form, message string) *mcp.CallToolResult {
	state := f.Snapshot()
	toolResult := results.FormToolResult{
		Message:   message,
		SessionID: id,
		Form:      results.NewFormState(state),
	}
	return jsonResult(toolResult, state.Presentation.Status == calc.StatusError)
}
