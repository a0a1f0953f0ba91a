package calculus

import "math"

// EulerConstant estimates y(targetX) for dy/dx = f(x), starting at initial.
//
// deltaX is a step magnitude; its sign is ignored and derived from the
// direction of targetX. Zero selects DefaultDeltaX. A step whose rate cannot
// be evaluated is logged and skipped, so a value is always returned.
func (s *Solver) EulerConstant(f Func1, initial Coordinate, targetX, deltaX float64) float64 {
	y, _ := s.EulerConstantStats(f, initial, targetX, deltaX)
	return y
}

func (s *Solver) EulerConstantStats(f Func1, initial Coordinate, targetX, deltaX float64) (float64, Stats) {
	rate := func(x, _ float64) (float64, error) { return call1(f, x) }
	return s.euler(rate, initial, targetX, deltaX)
}

// EulerGeneral estimates y(targetX) for dy/dx = f(x, y). The rate at each
// step sees the running y accumulated so far.
func (s *Solver) EulerGeneral(f Func2, initial Coordinate, targetX, deltaX float64) float64 {
	y, _ := s.EulerGeneralStats(f, initial, targetX, deltaX)
	return y
}

func (s *Solver) EulerGeneralStats(f Func2, initial Coordinate, targetX, deltaX float64) (float64, Stats) {
	rate := func(x, y float64) (float64, error) { return call2(f, x, y) }
	return s.euler(rate, initial, targetX, deltaX)
}

func (s *Solver) euler(rate Func2, initial Coordinate, targetX, deltaX float64) (float64, Stats) {
	var stats Stats
	y := initial.Y

	if deltaX == 0 {
		deltaX = DefaultDeltaX
	}
	if !isFinite(deltaX) || !isFinite(initial.X) || !isFinite(targetX) {
		s.logger.Warn("euler: non-finite input, returning initial y",
			"x0", initial.X, "target", targetX, "dx", deltaX)
		return y, stats
	}

	step := math.Abs(deltaX)
	if initial.X >= targetX {
		step = -step
	}
	stats.StepSize = step

	q := math.Floor((targetX - initial.X) / step)
	if q >= float64(math.MaxInt) {
		s.logger.Warn("euler: step count overflows, returning initial y",
			"x0", initial.X, "target", targetX, "dx", deltaX)
		return y, stats
	}
	n := int(q)
	stats.Steps = n
	s.step(0, initial)

	for i := 1; i <= n; i++ {
		x := initial.X + float64(i)*step
		stats.Evaluations++
		v, err := rate(x, y)
		if err != nil {
			stats.Skipped++
			evalErr := &EvalError{Step: i, X: x, Y: y, Wrapped: err}
			s.logger.Warn("euler: rate evaluation failed, skipping step",
				"step", i, "x", x, "err", err)
			s.skip(i, evalErr)
			continue
		}
		y += v * step
		s.step(i, Coordinate{X: x, Y: y})
	}

	return y, stats
}
