package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/results"
)

// EvaluateTool handles one-shot evaluation requests
type EvaluateTool struct {
	evaluator *calc.Evaluator
}

// NewEvaluateTool creates a new evaluate tool
func NewEvaluateTool(evaluator *calc.Evaluator) *EvaluateTool {
	return &EvaluateTool{
		evaluator: evaluator,
	}
}

// GetTool returns the MCP tool definition
func (t *EvaluateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolEvaluate,
		mcp.WithDescription("Apply an arithmetic operation to two numbers given as text. "+
			"Both comma and dot are accepted as decimal separators."),
		mcp.WithString("a", mcp.Required(), mcp.Description("First operand, e.g. \"3,5\" or \"1e3\"")),
		mcp.WithString("b", mcp.Required(), mcp.Description("Second operand")),
		mcp.WithString("operation",
			mcp.Description("Operation name or symbol (+, -, *, /); defaults to add"),
			mcp.Enum(calc.OperationSpellings()...),
		),
	)
	return tool
}

// Handle processes the tool request
func (t *EvaluateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	op, err := GetOperation(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// empty operands are reported as invalid input, not as missing arguments
	args := results.EvaluateToolArgs{
		A:         mcp.ParseString(req, "a", ""),
		B:         mcp.ParseString(req, "b", ""),
		Operation: results.NewOperationInfo(op),
	}

	res, evalErr := t.evaluator.Evaluate(ctx, args.A, args.B, op)
	return jsonResult(results.NewEvaluateToolResult(args, res, evalErr), evalErr != nil), nil
}
