package calculus

import (
	"fmt"
	"math"
)

// Newton refines initialX toward a root of equation using the
// Newton-Raphson update x - f(x)/f'(x), stopping once successive estimates
// differ by no more than epsilon (zero selects DefaultEpsilon).
//
// The returned value is only meaningful when err is nil. A zero derivative
// yields ErrZeroDerivative, a failed callback an error matching
// ErrEvaluation, and hitting the iteration cap ErrNoConvergence. A NaN or
// infinite initialX or epsilon is ErrInvalidInput.
func (s *Solver) Newton(equation, derivative Func1, initialX, epsilon float64) (float64, error) {
	x, _, err := s.NewtonStats(equation, derivative, initialX, epsilon)
	return x, err
}

func (s *Solver) NewtonStats(equation, derivative Func1, initialX, epsilon float64) (float64, Stats, error) {
	var stats Stats

	if !isFinite(initialX) || !isFinite(epsilon) {
		s.logger.Error("newton: non-finite input", "x0", initialX, "epsilon", epsilon)
		return 0, stats, fmt.Errorf("%w: x0=%g epsilon=%g", ErrInvalidInput, initialX, epsilon)
	}

	eps := math.Abs(epsilon)
	if eps == 0 {
		eps = DefaultEpsilon
	}

	x := initialX
	diff := math.Inf(1)

	iter := 0
	for ; diff > eps; iter++ {
		if s.maxIter > 0 && iter >= s.maxIter {
			s.logger.Error("newton: iteration limit reached",
				"iterations", iter, "x", x, "diff", diff)
			return 0, stats, fmt.Errorf("%w (%d iterations, last x=%g)", ErrNoConvergence, iter, x)
		}

		stats.Evaluations++
		d, err := call1(derivative, x)
		if err != nil {
			s.logger.Error("newton: derivative evaluation failed", "iteration", iter, "x", x, "err", err)
			return 0, stats, &EvalError{Step: iter, X: x, Wrapped: fmt.Errorf("derivative: %w", err)}
		}
		if d == 0 {
			s.logger.Error("newton: zero derivative, method undefined", "iteration", iter, "x", x)
			return 0, stats, fmt.Errorf("%w at x=%g", ErrZeroDerivative, x)
		}

		stats.Evaluations++
		fx, err := call1(equation, x)
		if err != nil {
			s.logger.Error("newton: equation evaluation failed", "iteration", iter, "x", x, "err", err)
			return 0, stats, &EvalError{Step: iter, X: x, Wrapped: fmt.Errorf("equation: %w", err)}
		}
		s.step(iter, Coordinate{X: x, Y: fx})

		next := x - fx/d
		if !isFinite(next) {
			s.logger.Error("newton: estimate diverged", "iteration", iter, "x", x)
			return 0, stats, fmt.Errorf("%w at iteration %d", ErrDiverged, iter)
		}

		diff = math.Abs(x - next)
		x = next
		stats.Iterations++
		s.logger.Debug("newton: iteration", "iteration", iter, "x", x, "diff", diff)
	}

	// closing point at the converged estimate
	stats.Evaluations++
	if fx, err := call1(equation, x); err == nil {
		s.step(iter, Coordinate{X: x, Y: fx})
	} else {
		s.logger.Debug("newton: equation undefined at converged x", "x", x, "err", err)
	}

	return x, stats, nil
}
