package results

import "github.com/averycrespi/calc-mcp/internal/calc"

// OperationInfo describes an operation the way the selector shows it
type OperationInfo struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// NewOperationInfo returns the OperationInfo for op
func NewOperationInfo(op calc.Operation) OperationInfo {
	return OperationInfo{
		Index:  op.Index(),
		Name:   op.Name(),
		Symbol: op.Symbol(),
	}
}

// ListOperationsToolResult represents the result of the list_operations tool
type ListOperationsToolResult struct {
	Message    string          `json:"message"`
	Default    OperationInfo   `json:"default"`
	Operations []OperationInfo `json:"operations"`
}
