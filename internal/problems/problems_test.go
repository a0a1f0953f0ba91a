package problems

import (
	"math"
	"testing"

	"github.com/san-kum/approx/internal/calculus"
)

func TestODEExactMatchesInitial(t *testing.T) {
	for _, p := range []ODE{NewLinear(), NewCosine(), NewCubic(), NewReciprocal()} {
		if got := p.Exact(p.Initial.X, p.Initial); math.Abs(got-p.Initial.Y) > 1e-12 {
			t.Errorf("%s: exact(x0) = %v, want %v", p.Name, got, p.Initial.Y)
		}
	}
	for _, p := range []ODE2{NewGrowth(), NewDecay(), NewLogistic(), NewMixed()} {
		if got := p.Exact(p.Initial.X, p.Initial); math.Abs(got-p.Initial.Y) > 1e-12 {
			t.Errorf("%s: exact(x0) = %v, want %v", p.Name, got, p.Initial.Y)
		}
	}
}

func TestODE2ExactSatisfiesRate(t *testing.T) {
	const h = 1e-6
	for _, p := range []ODE2{NewGrowth(), NewDecay(), NewLogistic(), NewMixed()} {
		x := p.Initial.X + 0.5
		y := p.Exact(x, p.Initial)
		slope := (p.Exact(x+h, p.Initial) - p.Exact(x-h, p.Initial)) / (2 * h)
		rate, err := p.Rate(x, y)
		if err != nil {
			t.Fatalf("%s: rate failed: %v", p.Name, err)
		}
		if math.Abs(slope-rate) > 1e-5 {
			t.Errorf("%s: exact slope %v, rate %v", p.Name, slope, rate)
		}
	}
}

func TestReciprocalPole(t *testing.T) {
	p := NewReciprocal()
	if _, err := p.Rate(0); err == nil {
		t.Error("expected an error at the pole")
	}
	if !math.IsNaN(p.Exact(-1, p.Initial)) {
		t.Error("exact solution should be undefined across the pole")
	}
}

func TestGeneralLift(t *testing.T) {
	p := NewLinear()
	g := p.General()
	v, err := g.Rate(3, 100)
	if err != nil || v != 6 {
		t.Errorf("lifted rate = %v, %v; want 6", v, err)
	}
}

func TestRootsAreRoots(t *testing.T) {
	for _, r := range []Root{NewSqrt2(), NewCubicRoot(), NewDottie(), NewCbrt()} {
		if len(r.Roots) == 0 {
			t.Fatalf("%s: no roots listed", r.Name)
		}
		for _, root := range r.Roots {
			v, err := r.Equation(root)
			if err != nil {
				t.Fatalf("%s: %v", r.Name, err)
			}
			if math.Abs(v) > 1e-12 {
				t.Errorf("%s: equation(%v) = %v", r.Name, root, v)
			}
		}
	}
	if len(NewTangent().Roots) != 0 {
		t.Error("tangent should have no real root")
	}
}

func TestRootNearest(t *testing.T) {
	r := NewSqrt2()
	tests := []struct {
		x    float64
		want float64
	}{
		{1.4, math.Sqrt2},
		{-1.5, -math.Sqrt2},
		{100, math.Sqrt2},
		{-0.1, -math.Sqrt2},
	}
	for _, tt := range tests {
		if got := r.Nearest(tt.x); got != tt.want {
			t.Errorf("Nearest(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if !math.IsNaN(NewTangent().Nearest(0)) {
		t.Error("no roots should give NaN")
	}
}

func TestDerivativeOrNumeric(t *testing.T) {
	d := NewDottie().DerivativeOrNumeric()
	got, err := d(0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-(-1)) > 1e-6 {
		t.Errorf("numeric derivative at 0 = %v, want -1", got)
	}

	r := NewSqrt2()
	root, err := calculus.Newton(r.Equation, r.DerivativeOrNumeric(), r.InitialX, 1e-10)
	if err != nil || math.Abs(root-math.Sqrt2) > 1e-10 {
		t.Errorf("Newton on sqrt2 = %v, %v", root, err)
	}
}
