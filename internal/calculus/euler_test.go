package calculus

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func quietSolver(opts ...Option) *Solver {
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return New(opts...)
}

func TestEulerConstant_Accuracy(t *testing.T) {
	tests := []struct {
		name    string
		f       func(float64) float64
		initial Coordinate
		target  float64
		dx      float64
		want    float64
		tol     float64
	}{
		{"2x forward", func(x float64) float64 { return 2 * x }, Coordinate{0, 0}, 2, 0.0001, 4, 1e-2},
		{"2x backward", func(x float64) float64 { return 2 * x }, Coordinate{2, 4}, 0, 0.0001, 0, 1e-2},
		{"constant", func(x float64) float64 { return 3 }, Coordinate{1, 1}, 3, 0.5, 7, 1e-9},
		{"cos", math.Cos, Coordinate{0, 0}, math.Pi / 2, 0.0001, 1, 1e-3},
		{"default step", func(x float64) float64 { return 1 }, Coordinate{0, 0}, 1, 0, 1, 2e-2},
	}

	s := quietSolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.EulerConstant(Unary(tt.f), tt.initial, tt.target, tt.dx)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("EulerConstant() = %.6f, want %.6f (tol %g)", got, tt.want, tt.tol)
			}
		})
	}
}

func TestEulerConstant_ZeroDistance(t *testing.T) {
	s := quietSolver()
	for _, dx := range []float64{0.01, -0.5, 1e-7, 0, 3} {
		got := s.EulerConstant(Unary(func(x float64) float64 { return x * x }), Coordinate{1.5, -7.25}, 1.5, dx)
		if got != -7.25 {
			t.Errorf("dx=%g: got %v, want -7.25", dx, got)
		}
	}
}

func TestEulerConstant_StepSignIgnored(t *testing.T) {
	s := quietSolver()
	f := Unary(func(x float64) float64 { return 2 * x })

	pos := s.EulerConstant(f, Coordinate{0, 0}, 2, 0.001)
	neg := s.EulerConstant(f, Coordinate{0, 0}, 2, -0.001)
	if pos != neg {
		t.Errorf("step sign changed the result: %v vs %v", pos, neg)
	}

	_, stats := s.EulerConstantStats(f, Coordinate{0, 0}, -2, 0.001)
	if stats.StepSize >= 0 {
		t.Errorf("backward run used step %v, want negative", stats.StepSize)
	}
}

func TestEulerConstant_DirectionSymmetry(t *testing.T) {
	s := quietSolver()
	f := Unary(func(x float64) float64 { return 2 * x })

	forward := s.EulerConstant(f, Coordinate{0, 0}, 2, 0.0001)
	backward := s.EulerConstant(f, Coordinate{0, 0}, -2, 0.0001)

	if math.Abs(forward-4) > 1e-2 || math.Abs(backward-4) > 1e-2 {
		t.Errorf("forward=%.6f backward=%.6f, both want ~4", forward, backward)
	}
}

func TestEulerConstant_SkipsFailedSteps(t *testing.T) {
	var buf bytes.Buffer
	trace := NewTrace()
	s := New(WithLogger(slog.New(slog.NewTextHandler(&buf, nil))), WithObserver(trace))

	// 1/x is undefined at x=0, which lies on the grid of this backward run.
	f := Unary(func(x float64) float64 { return 1 / x })
	y, stats := s.EulerConstantStats(f, Coordinate{1, 0}, -1, 0.5)

	if stats.Steps != 4 {
		t.Fatalf("expected 4 steps, got %d", stats.Steps)
	}
	if stats.Skipped != 1 {
		t.Fatalf("expected 1 skipped step, got %d", stats.Skipped)
	}
	if len(trace.Skipped) != 1 || trace.Skipped[0] != 2 {
		t.Errorf("expected step 2 skipped, got %v", trace.Skipped)
	}
	if !errors.Is(trace.Errors[0], ErrEvaluation) {
		t.Errorf("skip error should match ErrEvaluation: %v", trace.Errors[0])
	}

	// steps at x = 0.5, 0 (skipped), -0.5, -1 with dx = -0.5
	want := 2*-0.5 + -2*-0.5 + -1*-0.5
	if math.Abs(y-want) > 1e-12 {
		t.Errorf("got %v, want %v", y, want)
	}
	if !strings.Contains(buf.String(), "skipping step") {
		t.Errorf("expected a diagnostic, log was %q", buf.String())
	}
}

func TestEulerConstant_AllStepsFail(t *testing.T) {
	s := quietSolver()
	tests := []struct {
		name string
		f    Func1
	}{
		{"error", func(x float64) (float64, error) { return 0, errors.New("boom") }},
		{"panic", func(x float64) (float64, error) { panic("bad callback") }},
		{"nan", Unary(func(x float64) float64 { return math.NaN() })},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, stats := s.EulerConstantStats(tt.f, Coordinate{0, 42}, 1, 0.1)
			if y != 42 {
				t.Errorf("got %v, want unchanged 42", y)
			}
			if stats.Skipped != stats.Steps {
				t.Errorf("skipped %d of %d", stats.Skipped, stats.Steps)
			}
		})
	}
}

func TestEulerConstant_NonFiniteInput(t *testing.T) {
	s := quietSolver()
	f := Unary(func(x float64) float64 { return 1 })
	if got := s.EulerConstant(f, Coordinate{0, 3}, 1, math.NaN()); got != 3 {
		t.Errorf("NaN step: got %v, want 3", got)
	}
	if got := s.EulerConstant(f, Coordinate{0, 3}, math.Inf(1), 0.1); got != 3 {
		t.Errorf("Inf target: got %v, want 3", got)
	}
}

func TestEulerConstant_TooManySteps(t *testing.T) {
	var buf bytes.Buffer
	s := New(WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	f := Unary(func(x float64) float64 { return 1 })

	tests := []struct {
		name    string
		initial Coordinate
		target  float64
		dx      float64
	}{
		{"forward", Coordinate{0, 2}, 1e6, 1e-15},
		{"backward", Coordinate{0, 2}, -1e6, 1e-15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			y, stats := s.EulerConstantStats(f, tt.initial, tt.target, tt.dx)
			if y != tt.initial.Y {
				t.Errorf("got %v, want initial y %v", y, tt.initial.Y)
			}
			if stats.Steps != 0 || stats.Evaluations != 0 {
				t.Errorf("expected no steps, got %+v", stats)
			}
			if !strings.Contains(buf.String(), "step count overflows") {
				t.Errorf("expected a diagnostic, log was %q", buf.String())
			}
		})
	}
}

func TestEulerGeneral_Exponential(t *testing.T) {
	s := quietSolver()
	f := Binary(func(x, y float64) float64 { return y })

	got := s.EulerGeneral(f, Coordinate{0, 1}, 1, 0.0001)
	if math.Abs(got-math.E) > 1e-3 {
		t.Errorf("got %.6f, want e=%.6f", got, math.E)
	}
}

func TestEulerGeneral_UsesRunningY(t *testing.T) {
	s := quietSolver()
	var seen []float64
	f := func(x, y float64) (float64, error) {
		seen = append(seen, y)
		return y, nil
	}

	s.EulerGeneral(f, Coordinate{0, 1}, 0.3, 0.1)

	// floor(0.3/0.1) is 2 in floating point
	want := []float64{1, 1.1}
	if len(seen) != len(want) {
		t.Fatalf("expected %d evaluations, got %d", len(want), len(seen))
	}
	for i := range want {
		if math.Abs(seen[i]-want[i]) > 1e-12 {
			t.Errorf("evaluation %d saw y=%v, want %v", i, seen[i], want[i])
		}
	}
}

func TestEulerGeneral_MatchesConstantForXOnlyRate(t *testing.T) {
	s := quietSolver()
	general := s.EulerGeneral(Binary(func(x, _ float64) float64 { return math.Sin(x) }), Coordinate{0, 0}, 3, 0.01)
	constant := s.EulerConstant(Unary(math.Sin), Coordinate{0, 0}, 3, 0.01)
	if general != constant {
		t.Errorf("general=%v constant=%v", general, constant)
	}
}

func TestEulerGeneral_SkipKeepsRunningY(t *testing.T) {
	s := quietSolver()
	calls := 0
	f := func(x, y float64) (float64, error) {
		calls++
		if calls == 2 {
			return 0, errors.New("transient")
		}
		return 1, nil
	}

	y, stats := s.EulerGeneralStats(f, Coordinate{0, 0}, 1, 0.25)
	if stats.Skipped != 1 {
		t.Fatalf("expected 1 skip, got %d", stats.Skipped)
	}
	if math.Abs(y-0.75) > 1e-12 {
		t.Errorf("got %v, want 0.75", y)
	}
}

func TestTrace_RecordsTrajectory(t *testing.T) {
	trace := NewTrace()
	s := quietSolver(WithObserver(trace))

	s.EulerConstant(Unary(func(x float64) float64 { return 1 }), Coordinate{0, 0}, 1, 0.25)

	if len(trace.Points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(trace.Points))
	}
	if trace.Points[0] != (Coordinate{0, 0}) {
		t.Errorf("first point should be the initial coordinate, got %v", trace.Points[0])
	}
	last := trace.Points[len(trace.Points)-1]
	if math.Abs(last.X-1) > 1e-12 || math.Abs(last.Y-1) > 1e-12 {
		t.Errorf("last point = %v, want (1, 1)", last)
	}

	trace.Reset()
	if len(trace.Points) != 0 || trace.Skipped != nil {
		t.Error("Reset did not clear the trace")
	}
}
