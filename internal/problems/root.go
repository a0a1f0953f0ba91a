package problems

import (
	"math"

	"github.com/san-kum/approx/internal/calculus"
)

// Root is equation(x) = 0. A nil Derivative means the caller should fall
// back to calculus.NumericDerivative. Roots lists the real roots, empty when
// there are none.
type Root struct {
	Name        string
	Description string
	Equation    calculus.Func1
	Derivative  calculus.Func1
	Roots       []float64
	InitialX    float64
}

// Nearest returns the known root closest to x, or NaN without real roots.
func (r Root) Nearest(x float64) float64 {
	best := math.NaN()
	for _, root := range r.Roots {
		if math.IsNaN(best) || math.Abs(root-x) < math.Abs(best-x) {
			best = root
		}
	}
	return best
}

// DerivativeOrNumeric returns the analytic derivative if known.
func (r Root) DerivativeOrNumeric() calculus.Func1 {
	if r.Derivative != nil {
		return r.Derivative
	}
	return calculus.NumericDerivative(r.Equation)
}

func NewSqrt2() Root {
	return Root{
		Name:        "sqrt2",
		Description: "x^2 - 2 = 0",
		Equation:    calculus.Unary(func(x float64) float64 { return x*x - 2 }),
		Derivative:  calculus.Unary(func(x float64) float64 { return 2 * x }),
		Roots:       []float64{-math.Sqrt2, math.Sqrt2},
		InitialX:    1,
	}
}

func NewCubicRoot() Root {
	return Root{
		Name:        "cubic",
		Description: "x^3 - x - 2 = 0",
		Equation:    calculus.Unary(func(x float64) float64 { return x*x*x - x - 2 }),
		Derivative:  calculus.Unary(func(x float64) float64 { return 3*x*x - 1 }),
		Roots:       []float64{1.5213797068045676},
		InitialX:    1.5,
	}
}

// NewDottie has no derivative attached.
func NewDottie() Root {
	return Root{
		Name:        "dottie",
		Description: "cos x - x = 0 (numeric derivative)",
		Equation:    calculus.Unary(func(x float64) float64 { return math.Cos(x) - x }),
		Roots:       []float64{0.7390851332151607},
		InitialX:    1,
	}
}

// NewTangent starts on a horizontal tangent and has no real root.
func NewTangent() Root {
	return Root{
		Name:        "tangent",
		Description: "x^2 + 1 = 0 (horizontal tangent at 0, no real root)",
		Equation:    calculus.Unary(func(x float64) float64 { return x*x + 1 }),
		Derivative:  calculus.Unary(func(x float64) float64 { return 2 * x }),
		InitialX:    0,
	}
}

// NewCbrt diverges: each update maps x to -2x.
func NewCbrt() Root {
	return Root{
		Name:        "cbrt",
		Description: "x^(1/3) = 0 (Newton diverges)",
		Equation:    calculus.Unary(math.Cbrt),
		Derivative: calculus.Unary(func(x float64) float64 {
			c := math.Cbrt(x)
			return 1 / (3 * c * c)
		}),
		Roots:    []float64{0},
		InitialX: 1,
	}
}
