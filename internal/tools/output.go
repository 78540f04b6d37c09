package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult marshals a tool result as indented JSON text.
// isError marks results that describe a failed calculation.
func jsonResult(toolResult any, isError bool) *mcp.CallToolResult {
	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err))
	}

	result := mcp.NewToolResultText(string(jsonBytes))
	result.IsError = isError
	return result
}
