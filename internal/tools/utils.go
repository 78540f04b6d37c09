package tools

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/averycrespi/calc-mcp/internal/calc"
)

// operationNames lists the canonical operation names for tool schemas
func operationNames() []string {
	names := make([]string, 0, len(calc.Operations))
	for _, op := range calc.Operations {
		names = append(names, op.Name())
	}
	return names
}

// hasArgument reports whether the request carries a value for key
func hasArgument(req mcp.CallToolRequest, key string) bool {
	_, ok := req.GetArguments()[key]
	return ok
}

// GetOperation extracts the operation from an MCP request, defaulting to add
func GetOperation(req mcp.CallToolRequest) (calc.Operation, error) {
	name := mcp.ParseString(req, "operation", "")
	if strings.TrimSpace(name) == "" {
		return calc.Add, nil
	}

	op, err := calc.ParseOperation(name)
	if err != nil {
		return calc.Add, fmt.Errorf("operation must be one of %s: %v", strings.Join(operationNames(), ", "), err)
	}
	return op, nil
}

// GetSessionID extracts the form session id from an MCP request
func GetSessionID(req mcp.CallToolRequest) (string, error) {
	id := strings.TrimSpace(mcp.ParseString(req, "session_id", ""))
	if id == "" {
		return "", fmt.Errorf("session_id parameter is required")
	}
	return id, nil
}
