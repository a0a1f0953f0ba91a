package calculus

import "log/slog"

// Solver runs the approximation routines with a logger, observers and an
// iteration cap for Newton.
type Solver struct {
	logger    *slog.Logger
	observers []Observer
	maxIter   int
}

type Option func(*Solver)

// WithLogger sets where diagnostics go. Nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(s *Solver) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithMaxIterations caps Newton iterations. n == 0 keeps the default and
// n < 0 removes the cap.
func WithMaxIterations(n int) Option {
	return func(s *Solver) {
		if n != 0 {
			s.maxIter = n
		}
	}
}

func New(opts ...Option) *Solver {
	s := &Solver{
		logger:    slog.Default(),
		observers: make([]Observer, 0),
		maxIter:   DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Solver) step(i int, p Coordinate) {
	for _, o := range s.observers {
		o.OnStep(i, p)
	}
}

func (s *Solver) skip(i int, err error) {
	for _, o := range s.observers {
		o.OnSkip(i, err)
	}
}

// EulerConstant estimates y(targetX) for dy/dx = f(x) using a default Solver.
func EulerConstant(f Func1, initial Coordinate, targetX, deltaX float64) float64 {
	return New().EulerConstant(f, initial, targetX, deltaX)
}

// EulerGeneral estimates y(targetX) for dy/dx = f(x, y) using a default Solver.
func EulerGeneral(f Func2, initial Coordinate, targetX, deltaX float64) float64 {
	return New().EulerGeneral(f, initial, targetX, deltaX)
}

// Newton finds a root of equation near initialX using a default Solver.
func Newton(equation, derivative Func1, initialX, epsilon float64) (float64, error) {
	return New().Newton(equation, derivative, initialX, epsilon)
}
