package calculus

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDerivative indicates a horizontal tangent at the current estimate.
	ErrZeroDerivative = errors.New("calculus: derivative is zero")

	// ErrEvaluation indicates a callback failed to produce a finite value.
	ErrEvaluation = errors.New("calculus: function evaluation failed")

	// ErrNoConvergence indicates the iteration cap was reached.
	ErrNoConvergence = errors.New("calculus: no convergence within iteration limit")

	// ErrDiverged indicates the next estimate overflowed.
	ErrDiverged = errors.New("calculus: estimate diverged (NaN or Inf)")

	// ErrInvalidInput indicates a NaN or infinite starting value or tolerance.
	ErrInvalidInput = errors.New("calculus: non-finite input")

	errNilFunc = errors.New("nil function")
)

// EvalError wraps a callback failure with the point it was evaluated at.
type EvalError struct {
	Step    int
	X       float64
	Y       float64
	Wrapped error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("step %d (x=%.4f): %v", e.Step, e.X, e.Wrapped)
}

func (e *EvalError) Unwrap() error {
	return e.Wrapped
}

// Is reports EvalError as an ErrEvaluation.
func (e *EvalError) Is(target error) bool {
	return target == ErrEvaluation
}
