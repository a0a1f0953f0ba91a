// Package problems provides named test problems with known answers.
//
// Each problem bundles its callbacks with a default starting point and,
// where one exists, the closed form used to measure approximation error:
//
//   - [ODE]: dy/dx = f(x), for [calculus.EulerConstant]
//   - [ODE2]: dy/dx = f(x, y), for [calculus.EulerGeneral]
//   - [Root]: equation(x) = 0, for [calculus.Newton]
//
// Some problems are deliberately ill-behaved (a pole on the grid, a
// horizontal tangent, a divergent iteration) so the failure paths can be
// exercised from the command line.
package problems
