package form

import (
	"context"
	"sync"

	"github.com/averycrespi/calc-mcp/internal/calc"
)

// State is a point-in-time copy of a form
type State struct {
	InputA       string
	InputB       string
	Operation    calc.Operation
	Presentation calc.Presentation
}

// Form is the controller behind a calculator form.
// It owns the current operation; the evaluator only reads it.
type Form struct {
	evaluator *calc.Evaluator

	mu    sync.Mutex
	state State
}

// New creates a form with empty inputs, Add selected and the idle message shown
func New(evaluator *calc.Evaluator) *Form {
	return &Form{
		evaluator: evaluator,
		state: State{
			Operation:    calc.Add,
			Presentation: calc.Idle(),
		},
	}
}

// SetInputs replaces both raw inputs
func (f *Form) SetInputs(a, b string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.InputA = a
	f.state.InputB = b
}

// SetInputA replaces the first raw input
func (f *Form) SetInputA(a string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.InputA = a
}

// SetInputB replaces the second raw input
func (f *Form) SetInputB(b string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.InputB = b
}

// SelectOperation handles a selector change; unknown indices select Add
func (f *Form) SelectOperation(index int) calc.Operation {
	op := calc.OperationFromIndex(index)
	f.SetOperation(op)
	return op
}

// SetOperation selects op directly
func (f *Form) SetOperation(op calc.Operation) {
	if !op.Valid() {
		op = calc.Add
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.Operation = op
}

// Compute evaluates the current inputs and shows the outcome
func (f *Form) Compute(ctx context.Context) calc.Presentation {
	f.mu.Lock()
	defer f.mu.Unlock()

	res, err := f.evaluator.Evaluate(ctx, f.state.InputA, f.state.InputB, f.state.Operation)
	f.state.Presentation = calc.Present(res, err)
	return f.state.Presentation
}

// Clear empties both inputs and shows the ready message.
// The selected operation is kept.
func (f *Form) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.InputA = ""
	f.state.InputB = ""
	f.state.Presentation = calc.Cleared()
}

// Snapshot returns a copy of the current state
func (f *Form) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}
