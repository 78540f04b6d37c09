package results

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/averycrespi/calc-mcp/internal/calc"
)

// EvaluateToolResult represents the result of the evaluate tool
type EvaluateToolResult struct {
	Message   string           `json:"message"`
	Arguments EvaluateToolArgs `json:"arguments"`
	Status    calc.Status      `json:"status"`
	Display   string           `json:"display"`
	// Value is omitted on failure and when the result overflowed
	Value   *float64 `json:"value,omitempty"`
	Failure *Failure `json:"failure,omitempty"`
}

// EvaluateToolArgs represents the arguments for the evaluate tool
type EvaluateToolArgs struct {
	A         string        `json:"a"`
	B         string        `json:"b"`
	Operation OperationInfo `json:"operation"`
}

// Failure is the classified failure of an evaluation
type Failure struct {
	Category calc.Category `json:"category"`
	Cause    string        `json:"cause"`
	Detail   string        `json:"detail,omitempty"`
}

// NewFailure converts an evaluation error into a Failure.
// It returns nil for errors that are not *calc.EvaluationError.
func NewFailure(err error) *Failure {
	var everr *calc.EvaluationError
	if !errors.As(err, &everr) {
		return nil
	}

	f := &Failure{Category: everr.Category, Detail: everr.Detail()}
	switch {
	case errors.Is(err, calc.ErrEmptyInput):
		f.Cause = "empty_input"
	case errors.Is(err, calc.ErrUnparseable):
		f.Cause = "unparseable"
	case errors.Is(err, calc.ErrDivisionByZero):
		f.Cause = "division_by_zero"
	default:
		f.Cause = "unknown"
	}
	return f
}

// NewEvaluateToolResult builds the tool result for an evaluation outcome
func NewEvaluateToolResult(args EvaluateToolArgs, res calc.Result, err error) EvaluateToolResult {
	p := calc.Present(res, err)
	out := EvaluateToolResult{
		Message:   p.Message,
		Arguments: args,
		Status:    p.Status,
		Display:   p.Message,
	}

	if err != nil {
		out.Failure = NewFailure(err)
		return out
	}

	if !math.IsInf(res.Value, 0) && !math.IsNaN(res.Value) {
		v := res.Value
		out.Value = &v
	}
	return out
}
