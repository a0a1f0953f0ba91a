package calculus_test

import (
	"io"
	"log/slog"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/approx/internal/calculus"
)

var _ = Describe("approximation properties", func() {
	var s *calculus.Solver

	BeforeEach(func() {
		s = calculus.New(calculus.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	})

	Describe("EulerConstant", func() {
		twoX := calculus.Unary(func(x float64) float64 { return 2 * x })

		It("solves dy/dx = 2x to y = x^2", func() {
			y := s.EulerConstant(twoX, calculus.Coordinate{X: 0, Y: 0}, 2, 0.0001)
			Expect(y).To(BeNumerically("~", 4, 1e-2))
		})

		DescribeTable("returns the initial y when the target is the start",
			func(a, b, dx float64) {
				f := calculus.Unary(func(x float64) float64 { return math.Exp(x) })
				Expect(s.EulerConstant(f, calculus.Coordinate{X: a, Y: b}, a, dx)).To(Equal(b))
			},
			Entry("unit step", 0.0, 1.0, 1.0),
			Entry("tiny step", -3.5, 12.0, 1e-9),
			Entry("negative step", 7.0, -2.0, -0.25),
			Entry("default step", 1.0, 0.5, 0.0),
		)

		It("reaches the same value stepping backward on a symmetric problem", func() {
			forward := s.EulerConstant(twoX, calculus.Coordinate{X: 0, Y: 0}, 2, 0.0001)
			backward := s.EulerConstant(twoX, calculus.Coordinate{X: 0, Y: 0}, -2, 0.0001)
			Expect(backward).To(BeNumerically("~", forward, 1e-2))
			Expect(backward).To(BeNumerically("~", 4, 1e-2))
		})
	})

	Describe("EulerGeneral", func() {
		It("approaches e for dy/dx = y from (0, 1)", func() {
			f := calculus.Binary(func(_, y float64) float64 { return y })
			Expect(s.EulerGeneral(f, calculus.Coordinate{X: 0, Y: 1}, 1, 0.0001)).
				To(BeNumerically("~", math.E, 1e-3))
		})

		It("decays for dy/dx = -y", func() {
			f := calculus.Binary(func(_, y float64) float64 { return -y })
			Expect(s.EulerGeneral(f, calculus.Coordinate{X: 0, Y: 1}, 2, 0.0001)).
				To(BeNumerically("~", math.Exp(-2), 1e-3))
		})
	})

	Describe("Newton", func() {
		It("converges to sqrt(2)", func() {
			root, err := s.Newton(
				calculus.Unary(func(x float64) float64 { return x*x - 2 }),
				calculus.Unary(func(x float64) float64 { return 2 * x }),
				1, 1e-6)
			Expect(err).NotTo(HaveOccurred())
			Expect(root).To(BeNumerically("~", 1.41421356, 1e-6))
		})

		It("reports a horizontal tangent instead of panicking", func() {
			run := func() error {
				_, err := s.Newton(
					calculus.Unary(func(x float64) float64 { return x*x + 1 }),
					calculus.Unary(func(x float64) float64 { return 2 * x }),
					0, calculus.DefaultEpsilon)
				return err
			}
			Expect(func() { _ = run() }).NotTo(Panic())
			Expect(run()).To(MatchError(calculus.ErrZeroDerivative))
		})
	})

	Describe("determinism", func() {
		It("returns identical results for identical inputs", func() {
			f := calculus.Binary(func(x, y float64) float64 { return x*y + math.Sin(x) })
			first := s.EulerGeneral(f, calculus.Coordinate{X: 0, Y: 1}, 1.5, 0.001)
			for i := 0; i < 5; i++ {
				Expect(s.EulerGeneral(f, calculus.Coordinate{X: 0, Y: 1}, 1.5, 0.001)).To(Equal(first))
			}

			eq := calculus.Unary(func(x float64) float64 { return math.Cos(x) - x })
			root, err := s.Newton(eq, calculus.NumericDerivative(eq), 1, 1e-9)
			Expect(err).NotTo(HaveOccurred())
			again, _ := s.Newton(eq, calculus.NumericDerivative(eq), 1, 1e-9)
			Expect(again).To(Equal(root))
		})
	})
})
