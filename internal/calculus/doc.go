// Package calculus provides scalar numerical approximation routines.
//
// Three routines are exposed:
//
//   - [EulerConstant]: Euler's method for dy/dx = f(x)
//   - [EulerGeneral]: Euler's method for dy/dx = f(x, y)
//   - [Newton]: Newton-Raphson root finding for equation(x) = 0
//
// Callbacks report failure through an explicit error return ([Func1],
// [Func2]). A callback that panics or produces NaN/Inf is treated the same
// way as one that returns an error. Euler routines skip a failed step and
// keep going; Newton aborts and returns the error.
//
// # Example
//
//	f := calculus.Unary(func(x float64) float64 { return 2 * x })
//	y := calculus.EulerConstant(f, calculus.Coordinate{X: 0, Y: 0}, 2, 0.0001)
//
//	eq := calculus.Unary(func(x float64) float64 { return x*x - 2 })
//	root, err := calculus.Newton(eq, calculus.NumericDerivative(eq), 1, 1e-6)
//
// # Thread Safety
//
// A [Solver] holds no per-call state, so calls may run concurrently as long
// as the supplied callbacks and observers are themselves safe to share.
package calculus
