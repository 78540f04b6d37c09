package calc

import (
	"context"
	"log/slog"
	"strconv"
)

// Result is the success side of an evaluation outcome
type Result struct {
	Value   float64
	Display string
}

// Evaluator parses two operands and applies an operation to them.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	parser Parser
	logger *slog.Logger
}

// NewEvaluator creates an evaluator that falls back to locale when parsing
func NewEvaluator(locale Locale, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{
		parser: NewParser(locale),
		logger: logger.With("component", "calc.Evaluator"),
	}
}

// Parser returns the number parser used by the evaluator
func (e *Evaluator) Parser() Parser {
	return e.parser
}

// Evaluate parses rawA, then rawB, and applies op.
// The first failure is returned as an *EvaluationError and stops the evaluation.
func (e *Evaluator) Evaluate(ctx context.Context, rawA, rawB string, op Operation) (Result, error) {
	a, err := e.parser.Parse(rawA)
	if err != nil {
		e.logger.DebugContext(ctx, "operand A rejected", "raw", rawA, "error", err)
		return Result{}, &EvaluationError{Category: CategoryInvalidInputA, Err: err}
	}

	b, err := e.parser.Parse(rawB)
	if err != nil {
		e.logger.DebugContext(ctx, "operand B rejected", "raw", rawB, "error", err)
		return Result{}, &EvaluationError{Category: CategoryInvalidInputB, Err: err}
	}

	v, err := Apply(op, a, b)
	if err != nil {
		e.logger.DebugContext(ctx, "evaluation failed", "a", a, "op", op.Symbol(), "b", b, "error", err)
		return Result{}, &EvaluationError{Category: CategoryDivisionByZero, Err: err}
	}

	res := Result{Value: v, Display: FormatNumber(v)}
	e.logger.DebugContext(ctx, "evaluation complete", "a", a, "op", op.Symbol(), "b", b, "result", res.Display)
	return res, nil
}

// FormatNumber renders v with 15 significant digits, a dot for decimals and no grouping
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 15, 64)
}
