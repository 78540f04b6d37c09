package calc

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrEmptyInput means the operand was blank after trimming
	ErrEmptyInput = errors.New("empty input")
	// ErrUnparseable means neither the invariant nor the locale grammar accepted the operand
	ErrUnparseable = errors.New("unparseable input")
	// ErrDivisionByZero means the divisor was zero
	ErrDivisionByZero = errors.New("division by zero")
)

// ParseError describes an operand that could not be turned into a number
type ParseError struct {
	// Kind is ErrEmptyInput or ErrUnparseable
	Kind error
	// Raw is the operand text as received
	Raw string
	// Detail is the raw text for empty input and the quoted trimmed text otherwise
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// Category classifies a failed evaluation
type Category string

const (
	CategoryInvalidInputA  Category = "invalid_input_a"
	CategoryInvalidInputB  Category = "invalid_input_b"
	CategoryDivisionByZero Category = "division_by_zero"
)

// EvaluationError is the failure side of an evaluation outcome
type EvaluationError struct {
	Category Category
	// Err is the underlying cause: a *ParseError or ErrDivisionByZero
	Err error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Category, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// Detail returns the human-readable context of the failure, if any
func (e *EvaluationError) Detail() string {
	var perr *ParseError
	if errors.As(e.Err, &perr) {
		return perr.Detail
	}
	return ""
}
