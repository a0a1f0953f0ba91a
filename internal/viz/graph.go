package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/approx/internal/calculus"
)

const maxGraphPoints = 400

// PlotTrace renders the y values of a trace as an ASCII line graph. Long
// traces are thinned so the graph stays readable.
func PlotTrace(points []calculus.Coordinate, caption string, width, height int) string {
	if len(points) == 0 {
		return ""
	}

	stride := 1
	if len(points) > maxGraphPoints {
		stride = (len(points) + maxGraphPoints - 1) / maxGraphPoints
	}
	data := make([]float64, 0, len(points)/stride+1)
	for i := 0; i < len(points); i += stride {
		data = append(data, points[i].Y)
	}
	if (len(points)-1)%stride != 0 {
		data = append(data, points[len(points)-1].Y)
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
