package results

import (
	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/form"
)

// FormToolResult represents the result of every form tool
type FormToolResult struct {
	Message   string     `json:"message"`
	SessionID string     `json:"session_id"`
	Form      *FormState `json:"form,omitempty"`
}

// FormState is the visible state of a form session
type FormState struct {
	InputA    string        `json:"input_a"`
	InputB    string        `json:"input_b"`
	Operation OperationInfo `json:"operation"`
	Display   string        `json:"display"`
	Status    calc.Status   `json:"status"`
}

// NewFormState converts a form snapshot into a FormState
func NewFormState(state form.State) *FormState {
	return &FormState{
		InputA:    state.InputA,
		InputB:    state.InputB,
		Operation: NewOperationInfo(state.Operation),
		Display:   state.Presentation.Message,
		Status:    state.Presentation.Status,
	}
}
