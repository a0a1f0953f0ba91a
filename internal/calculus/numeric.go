package calculus

import "gonum.org/v1/gonum/diff/fd"

// NumericDerivative approximates f' with a central finite difference. The
// first failure of f while sampling becomes the derivative's error.
func NumericDerivative(f Func1) Func1 {
	return func(x float64) (float64, error) {
		var first error
		g := func(x float64) float64 {
			v, err := call1(f, x)
			if err != nil && first == nil {
				first = err
			}
			return v
		}
		d := fd.Derivative(g, x, &fd.Settings{Formula: fd.Central})
		if first != nil {
			return 0, first
		}
		return d, nil
	}
}
