package problems

import (
	"errors"
	"math"

	"github.com/san-kum/approx/internal/calculus"
)

var errPole = errors.New("pole at x=0")

// ODE is dy/dx = Rate(x).
type ODE struct {
	Name        string
	Description string
	Rate        calculus.Func1
	// Exact is y(x) through initial, nil when there is no closed form.
	Exact   func(x float64, initial calculus.Coordinate) float64
	Initial calculus.Coordinate
	TargetX float64
}

// ODE2 is dy/dx = Rate(x, y).
type ODE2 struct {
	Name        string
	Description string
	Rate        calculus.Func2
	Exact       func(x float64, initial calculus.Coordinate) float64
	Initial     calculus.Coordinate
	TargetX     float64
}

// General lifts an x-only problem so it can run through EulerGeneral.
func (o ODE) General() ODE2 {
	return ODE2{
		Name:        o.Name,
		Description: o.Description,
		Rate:        func(x, _ float64) (float64, error) { return o.Rate(x) },
		Exact:       o.Exact,
		Initial:     o.Initial,
		TargetX:     o.TargetX,
	}
}

// antiderivative builds Exact from F with F' = rate.
func antiderivative(F func(float64) float64) func(float64, calculus.Coordinate) float64 {
	return func(x float64, c calculus.Coordinate) float64 {
		return c.Y + F(x) - F(c.X)
	}
}

func NewLinear() ODE {
	return ODE{
		Name:        "linear",
		Description: "dy/dx = 2x, y = x^2 + C",
		Rate:        calculus.Unary(func(x float64) float64 { return 2 * x }),
		Exact:       antiderivative(func(x float64) float64 { return x * x }),
		Initial:     calculus.Coordinate{X: 0, Y: 0},
		TargetX:     2,
	}
}

func NewCosine() ODE {
	return ODE{
		Name:        "cosine",
		Description: "dy/dx = cos x, y = sin x + C",
		Rate:        calculus.Unary(math.Cos),
		Exact:       antiderivative(math.Sin),
		Initial:     calculus.Coordinate{X: 0, Y: 0},
		TargetX:     math.Pi / 2,
	}
}

func NewCubic() ODE {
	return ODE{
		Name:        "cubic",
		Description: "dy/dx = 3x^2, y = x^3 + C",
		Rate:        calculus.Unary(func(x float64) float64 { return 3 * x * x }),
		Exact:       antiderivative(func(x float64) float64 { return x * x * x }),
		Initial:     calculus.Coordinate{X: -1, Y: -1},
		TargetX:     1,
	}
}

// NewReciprocal has a pole at zero; runs that cross it skip that step.
func NewReciprocal() ODE {
	return ODE{
		Name:        "reciprocal",
		Description: "dy/dx = 1/x, y = ln|x| + C (undefined at 0)",
		Rate: func(x float64) (float64, error) {
			if x == 0 {
				return 0, errPole
			}
			return 1 / x, nil
		},
		Exact: func(x float64, c calculus.Coordinate) float64 {
			if x == 0 || c.X == 0 || (x < 0) != (c.X < 0) {
				return math.NaN()
			}
			return c.Y + math.Log(math.Abs(x)) - math.Log(math.Abs(c.X))
		},
		Initial: calculus.Coordinate{X: 1, Y: 0},
		TargetX: math.E,
	}
}

func NewGrowth() ODE2 {
	return ODE2{
		Name:        "growth",
		Description: "dy/dx = y, y = y0 e^(x - x0)",
		Rate:        calculus.Binary(func(_, y float64) float64 { return y }),
		Exact: func(x float64, c calculus.Coordinate) float64 {
			return c.Y * math.Exp(x-c.X)
		},
		Initial: calculus.Coordinate{X: 0, Y: 1},
		TargetX: 1,
	}
}

func NewDecay() ODE2 {
	return ODE2{
		Name:        "decay",
		Description: "dy/dx = -y, y = y0 e^-(x - x0)",
		Rate:        calculus.Binary(func(_, y float64) float64 { return -y }),
		Exact: func(x float64, c calculus.Coordinate) float64 {
			return c.Y * math.Exp(-(x - c.X))
		},
		Initial: calculus.Coordinate{X: 0, Y: 1},
		TargetX: 2,
	}
}

func NewLogistic() ODE2 {
	return ODE2{
		Name:        "logistic",
		Description: "dy/dx = y(1 - y)",
		Rate:        calculus.Binary(func(_, y float64) float64 { return y * (1 - y) }),
		Exact: func(x float64, c calculus.Coordinate) float64 {
			if c.Y == 0 {
				return 0
			}
			return 1 / (1 + (1-c.Y)/c.Y*math.Exp(-(x-c.X)))
		},
		Initial: calculus.Coordinate{X: 0, Y: 0.1},
		TargetX: 5,
	}
}

func NewMixed() ODE2 {
	return ODE2{
		Name:        "mixed",
		Description: "dy/dx = x + y, y = (y0 + x0 + 1) e^(x - x0) - x - 1",
		Rate:        calculus.Binary(func(x, y float64) float64 { return x + y }),
		Exact: func(x float64, c calculus.Coordinate) float64 {
			return (c.Y+c.X+1)*math.Exp(x-c.X) - x - 1
		},
		Initial: calculus.Coordinate{X: 0, Y: 0},
		TargetX: 1,
	}
}
