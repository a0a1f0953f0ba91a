package experiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/san-kum/approx/internal/calculus"
)

// Config selects a method and problem. Nil pointers fall back to the
// problem's own defaults.
type Config struct {
	Method        string
	Problem       string
	Initial       *calculus.Coordinate
	TargetX       *float64
	DeltaX        float64
	InitialX      *float64
	Epsilon       float64
	MaxIterations int
}

type Result struct {
	Method   string
	Problem  string
	Initial  calculus.Coordinate
	TargetX  float64
	DeltaX   float64
	Epsilon  float64
	Estimate float64
	// Exact and AbsError are NaN when the answer is not known.
	Exact    float64
	AbsError float64
	Points   []calculus.Coordinate
	Skipped  []int
	Stats    calculus.Stats
	Err      error
}

func (r *Result) Failed() bool { return r.Err != nil }

type Experiment struct {
	cfg      Config
	registry *Registry
	logger   *slog.Logger
}

func New(cfg Config, registry *Registry, logger *slog.Logger) *Experiment {
	if registry == nil {
		registry = NewRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Experiment{cfg: cfg, registry: registry, logger: logger}
}

// Run executes the configured job. Setup problems (unknown method or
// problem, canceled context) return a nil Result. A Newton failure returns
// the partial Result together with the error, which is also in Result.Err.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	trace := calculus.NewTrace()
	solver := calculus.New(
		calculus.WithLogger(e.logger.With("method", e.cfg.Method, "problem", e.cfg.Problem)),
		calculus.WithObserver(trace),
		calculus.WithMaxIterations(e.cfg.MaxIterations),
	)

	var (
		result *Result
		err    error
	)
	switch e.cfg.Method {
	case MethodEulerConstant:
		result, err = e.runEulerConstant(solver)
	case MethodEulerGeneral:
		result, err = e.runEulerGeneral(solver)
	case MethodNewton:
		result, err = e.runNewton(solver)
	default:
		return nil, fmt.Errorf("unknown method: %s", e.cfg.Method)
	}
	if result == nil {
		return nil, err
	}

	result.Points = trace.Points
	result.Skipped = trace.Skipped
	return result, err
}

func (e *Experiment) newResult(initial calculus.Coordinate, target float64) *Result {
	return &Result{
		Method:   e.cfg.Method,
		Problem:  e.cfg.Problem,
		Initial:  initial,
		TargetX:  target,
		DeltaX:   e.cfg.DeltaX,
		Epsilon:  e.cfg.Epsilon,
		Exact:    math.NaN(),
		AbsError: math.NaN(),
	}
}

func (e *Experiment) eulerInputs(initial calculus.Coordinate, target float64) (calculus.Coordinate, float64) {
	if e.cfg.Initial != nil {
		initial = *e.cfg.Initial
	}
	if e.cfg.TargetX != nil {
		target = *e.cfg.TargetX
	}
	return initial, target
}

func (e *Experiment) runEulerConstant(s *calculus.Solver) (*Result, error) {
	p, err := e.registry.GetODE(e.cfg.Problem)
	if err != nil {
		return nil, err
	}
	initial, target := e.eulerInputs(p.Initial, p.TargetX)

	res := e.newResult(initial, target)
	res.Estimate, res.Stats = s.EulerConstantStats(p.Rate, initial, target, e.cfg.DeltaX)
	if p.Exact != nil {
		res.setExact(p.Exact(target, initial))
	}
	return res, nil
}

func (e *Experiment) runEulerGeneral(s *calculus.Solver) (*Result, error) {
	p, err := e.registry.GetODE2(e.cfg.Problem)
	if err != nil {
		return nil, err
	}
	initial, target := e.eulerInputs(p.Initial, p.TargetX)

	res := e.newResult(initial, target)
	res.Estimate, res.Stats = s.EulerGeneralStats(p.Rate, initial, target, e.cfg.DeltaX)
	if p.Exact != nil {
		res.setExact(p.Exact(target, initial))
	}
	return res, nil
}

func (e *Experiment) runNewton(s *calculus.Solver) (*Result, error) {
	p, err := e.registry.GetRoot(e.cfg.Problem)
	if err != nil {
		return nil, err
	}
	x0 := p.InitialX
	if e.cfg.InitialX != nil {
		x0 = *e.cfg.InitialX
	}

	res := e.newResult(calculus.Coordinate{X: x0}, math.NaN())
	res.Estimate, res.Stats, res.Err = s.NewtonStats(p.Equation, p.DerivativeOrNumeric(), x0, e.cfg.Epsilon)
	if res.Err != nil {
		res.Estimate = math.NaN()
		return res, res.Err
	}
	res.setExact(p.Nearest(res.Estimate))
	return res, nil
}

func (r *Result) setExact(v float64) {
	r.Exact = v
	if !math.IsNaN(v) {
		r.AbsError = math.Abs(r.Estimate - v)
	}
}

// IsRoutineError reports whether err came from the approximation itself
// rather than from setting the run up.
func IsRoutineError(err error) bool {
	return errors.Is(err, calculus.ErrZeroDerivative) ||
		errors.Is(err, calculus.ErrEvaluation) ||
		errors.Is(err, calculus.ErrNoConvergence) ||
		errors.Is(err, calculus.ErrDiverged) ||
		errors.Is(err, calculus.ErrInvalidInput)
}
