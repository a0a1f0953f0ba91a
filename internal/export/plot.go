package export

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/approx/internal/calculus"
)

const referenceSamples = 200

var ErrEmptyTrace = errors.New("export: trace has no points")

var (
	traceColor = color.RGBA{R: 0, G: 160, B: 220, A: 255}
	exactColor = color.RGBA{R: 220, G: 80, B: 60, A: 255}
)

// Options controls the figure. Zero values pick sensible defaults.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	// Reference is drawn as a dashed curve over the trace's x range.
	Reference      func(x float64) float64
	ReferenceLabel string
	Width, Height  vg.Length
}

// TracePlot builds a line-and-points plot of a recorded trace.
func TracePlot(points []calculus.Coordinate, opts Options) (*plot.Plot, error) {
	if len(points) == 0 {
		return nil, ErrEmptyTrace
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = orDefault(opts.XLabel, "x")
	p.Y.Label.Text = orDefault(opts.YLabel, "y")
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(points))
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i, pt := range points {
		xys[i].X, xys[i].Y = pt.X, pt.Y
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
	}

	line, scatter, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	line.LineStyle.Color = traceColor
	scatter.GlyphStyle.Color = traceColor
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(line, scatter)
	p.Legend.Add("approximation", line, scatter)

	if opts.Reference != nil && maxX > minX {
		xys := sample(opts.Reference, minX, maxX, referenceSamples)
		if ref, err := plotter.NewLine(xys); err == nil && len(xys) > 1 {
			ref.LineStyle.Color = exactColor
			ref.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			p.Add(ref)
			p.Legend.Add(orDefault(opts.ReferenceLabel, "exact"), ref)
		}
	}
	p.Legend.Top = true

	return p, nil
}

// SaveTrace writes the trace plot to path. The format follows the file
// extension (png, svg, pdf, ...).
func SaveTrace(path string, points []calculus.Coordinate, opts Options) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff":
	default:
		return fmt.Errorf("export: unsupported format %q", ext)
	}

	p, err := TracePlot(points, opts)
	if err != nil {
		return err
	}

	w, h := opts.Width, opts.Height
	if w == 0 {
		w = 6 * vg.Inch
	}
	if h == 0 {
		h = 4 * vg.Inch
	}
	return p.Save(w, h, path)
}

// sample evaluates f on an even grid, dropping points where f is undefined.
func sample(f func(float64) float64, lo, hi float64, n int) plotter.XYs {
	xys := make(plotter.XYs, 0, n)
	for i := 0; i < n; i++ {
		x := lo + (hi-lo)*float64(i)/float64(n-1)
		y := f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		xys = append(xys, plotter.XY{X: x, Y: y})
	}
	return xys
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
