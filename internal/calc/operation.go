package calc

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Operation is one of the four binary arithmetic operations
type Operation int

const (
	Add Operation = iota
	Subtract
	Multiply
	Divide
)

// Operations lists every operation in selector order
var Operations = []Operation{Add, Subtract, Multiply, Divide}

var operationNames = [...]string{
	Add:      "add",
	Subtract: "subtract",
	Multiply: "multiply",
	Divide:   "divide",
}

var operationSymbols = [...]string{
	Add:      "+",
	Subtract: "−",
	Multiply: "×",
	Divide:   "÷",
}

// operationSpellings lists every accepted spelling per operation, canonical name first
var operationSpellings = [...][]string{
	Add:      {"add", "plus", "+"},
	Subtract: {"subtract", "sub", "minus", "-", "−"},
	Multiply: {"multiply", "mul", "times", "x", "*", "×"},
	Divide:   {"divide", "div", "/", "÷"},
}

// operationAliases maps accepted spellings to operations
var operationAliases = func() map[string]Operation {
	aliases := make(map[string]Operation)
	for _, op := range Operations {
		for _, s := range operationSpellings[op] {
			aliases[s] = op
		}
	}
	return aliases
}()

// ErrUnknownOperation is returned by ParseOperation for unrecognized input
var ErrUnknownOperation = errors.New("unknown operation")

// Valid reports whether op is one of the four defined operations
func (op Operation) Valid() bool {
	return op >= Add && op <= Divide
}

// Name returns the lower-case name of the operation
func (op Operation) Name() string {
	if !op.Valid() {
		return fmt.Sprintf("operation(%d)", int(op))
	}
	return operationNames[op]
}

// Symbol returns the display symbol of the operation
func (op Operation) Symbol() string {
	if !op.Valid() {
		return "?"
	}
	return operationSymbols[op]
}

// Index returns the selector index of the operation
func (op Operation) Index() int {
	return int(op)
}

func (op Operation) String() string {
	return op.Name()
}

// OperationSpellings returns every spelling ParseOperation accepts, grouped by operation
func OperationSpellings() []string {
	var spellings []string
	for _, op := range Operations {
		spellings = append(spellings, operationSpellings[op]...)
	}
	return spellings
}

// OperationFromIndex maps a selector index to an operation.
// Malformed indices fall back to Add.
func OperationFromIndex(idx int) Operation {
	op := Operation(idx)
	if !op.Valid() {
		return Add
	}
	return op
}

// ParseOperation resolves an operation name or symbol
func ParseOperation(s string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if op, ok := operationAliases[key]; ok {
		return op, nil
	}
	return Add, errors.Wrapf(ErrUnknownOperation, "%q", s)
}
