package calc

import (
	"fmt"
	"math"
)

// Apply combines a and b with op.
// Divisors smaller in magnitude than the smallest positive float64 are
// treated as zero and yield ErrDivisionByZero.
func Apply(op Operation, a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if math.Abs(b) < math.SmallestNonzeroFloat64 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		panic(fmt.Sprintf("calc: invalid operation %d", int(op)))
	}
}
