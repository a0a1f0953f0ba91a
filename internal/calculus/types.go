package calculus

import "math"

const (
	DefaultDeltaX        = 0.01
	DefaultEpsilon       = 0.0001
	DefaultMaxIterations = 10000
)

// Coordinate is an (x, y) pair, used as the initial condition for Euler.
type Coordinate struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Func1 is a unary callback that may fail.
type Func1 func(x float64) (float64, error)

// Func2 is a binary callback (x, y) that may fail.
type Func2 func(x, y float64) (float64, error)

// Unary adapts a plain function to a Func1.
func Unary(f func(float64) float64) Func1 {
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

// Binary adapts a plain function to a Func2.
func Binary(f func(x, y float64) float64) Func2 {
	return func(x, y float64) (float64, error) {
		return f(x, y), nil
	}
}

// Observer receives the points a routine evaluates.
//
// Euler calls OnStep with step 0 for the initial coordinate and then once
// per accepted step with the updated running y. Newton calls OnStep once
// per iteration with the current estimate and the equation's value there.
type Observer interface {
	OnStep(step int, p Coordinate)
	OnSkip(step int, err error)
}

// Trace is an Observer that records everything it sees.
type Trace struct {
	Points  []Coordinate
	Skipped []int
	Errors  []error
}

func NewTrace() *Trace {
	return &Trace{Points: make([]Coordinate, 0, 64)}
}

func (t *Trace) OnStep(step int, p Coordinate) { t.Points = append(t.Points, p) }

func (t *Trace) OnSkip(step int, err error) {
	t.Skipped = append(t.Skipped, step)
	t.Errors = append(t.Errors, err)
}

func (t *Trace) Reset() {
	t.Points = t.Points[:0]
	t.Skipped = nil
	t.Errors = nil
}

// Stats counts the work done by one call.
type Stats struct {
	Steps       int     `json:"steps"`
	Skipped     int     `json:"skipped"`
	Evaluations int     `json:"evaluations"`
	Iterations  int     `json:"iterations"`
	StepSize    float64 `json:"step_size"`
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
