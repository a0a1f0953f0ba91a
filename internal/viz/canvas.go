package viz

import (
	"math"
	"strings"

	"github.com/san-kum/approx/internal/calculus"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set turns on the sub-pixel (x, y). The canvas is (Width*2) x (Height*4)
// sub-pixels with the origin at the top left.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Plot clears the canvas and draws points joined by lines, scaled to fit.
func (c *Canvas) Plot(points []calculus.Coordinate) {
	c.PlotIn(points, points)
}

// PlotIn is Plot with the scale taken from frame instead of points, so a
// growing prefix of a trace keeps a fixed viewport.
func (c *Canvas) PlotIn(points, frame []calculus.Coordinate) {
	c.Clear()
	if len(points) == 0 || len(frame) == 0 {
		return
	}

	minX, maxX, minY, maxY := bounds(frame)
	w := float64(c.Width*2 - 1)
	h := float64(c.Height*4 - 1)

	project := func(p calculus.Coordinate) (int, int) {
		px := int(math.Round(w * (p.X - minX) / (maxX - minX)))
		py := int(math.Round(h * (p.Y - minY) / (maxY - minY)))
		return px, int(h) - py
	}

	x0, y0 := project(points[0])
	c.Set(x0, y0)
	for _, p := range points[1:] {
		x1, y1 := project(p)
		c.DrawLine(x0, y0, x1, y1)
		x0, y0 = x1, y1
	}
}

// bounds never returns an empty range.
func bounds(points []calculus.Coordinate) (minX, maxX, minY, maxY float64) {
	minX, maxX = points[0].X, points[0].X
	minY, maxY = points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	if maxX == minX {
		minX, maxX = minX-1, maxX+1
	}
	if maxY == minY {
		minY, maxY = minY-1, maxY+1
	}
	return
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
