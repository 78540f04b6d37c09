package calc

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Status tells the form how to style the display
type Status string

const (
	StatusInfo    Status = "info"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const (
	// IdleMessage is shown before the first computation
	IdleMessage = "Enter values before calculating."
	// ClearedMessage is shown after the inputs are cleared
	ClearedMessage = "Ready."
)

// Presentation is the single message shown for an outcome
type Presentation struct {
	Message string
	Status  Status
}

// Idle returns the presentation of a form that has not computed anything yet
func Idle() Presentation {
	return Presentation{Message: IdleMessage, Status: StatusInfo}
}

// Cleared returns the presentation of a form whose inputs were just cleared
func Cleared() Presentation {
	return Presentation{Message: ClearedMessage, Status: StatusInfo}
}

// Present maps an evaluation outcome to the message shown to the user
func Present(res Result, err error) Presentation {
	if err == nil {
		return Presentation{Message: res.Display, Status: StatusSuccess}
	}

	var everr *EvaluationError
	if !errors.As(err, &everr) {
		return Presentation{Message: "Calculation error", Status: StatusError}
	}

	switch everr.Category {
	case CategoryInvalidInputA:
		return Presentation{Message: invalidInputMessage("A", everr.Err), Status: StatusError}
	case CategoryInvalidInputB:
		return Presentation{Message: invalidInputMessage("B", everr.Err), Status: StatusError}
	case CategoryDivisionByZero:
		return Presentation{Message: "Error: division by zero", Status: StatusError}
	default:
		return Presentation{Message: "Calculation error", Status: StatusError}
	}
}

func invalidInputMessage(input string, err error) string {
	if errors.Is(err, ErrEmptyInput) {
		return fmt.Sprintf("Invalid input %s: empty", input)
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		return fmt.Sprintf("Invalid input %s: %s", input, perr.Detail)
	}
	return fmt.Sprintf("Invalid input %s", input)
}
