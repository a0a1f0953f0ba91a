package calculus

import "fmt"

func call1(f Func1, x float64) (v float64, err error) {
	if f == nil {
		return 0, errNilFunc
	}
	defer func() {
		if r := recover(); r != nil {
			v, err = 0, fmt.Errorf("panic: %v", r)
		}
	}()
	v, err = f(x)
	if err != nil {
		return 0, err
	}
	if !isFinite(v) {
		return 0, fmt.Errorf("non-finite result %v", v)
	}
	return v, nil
}

func call2(f Func2, x, y float64) (v float64, err error) {
	if f == nil {
		return 0, errNilFunc
	}
	defer func() {
		if r := recover(); r != nil {
			v, err = 0, fmt.Errorf("panic: %v", r)
		}
	}()
	v, err = f(x, y)
	if err != nil {
		return 0, err
	}
	if !isFinite(v) {
		return 0, fmt.Errorf("non-finite result %v", v)
	}
	return v, nil
}
