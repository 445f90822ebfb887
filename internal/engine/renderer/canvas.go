package renderer

import (
	gomath "math"
	"strings"

	"github.com/gdamore/tcell"

	"github.com/Faultbox/dddragon/internal/engine/scene"
	"github.com/Faultbox/dddragon/pkg/math"
)

// Each terminal cell holds a 2x4 grid of braille dots.
const (
	dotsX = 2
	dotsY = 4
)

// dotBits maps a dot's position within its cell to its braille bit.
var dotBits = [dotsX][dotsY]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Canvas is a braille dot raster with one color per cell. When two lines
// share a cell, the last one drawn sets its color.
type Canvas struct {
	cols, rows int
	bits       []rune
	colors     []tcell.Color
}

// NewCanvas creates a blank canvas of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	return &Canvas{
		cols:   cols,
		rows:   rows,
		bits:   make([]rune, cols*rows),
		colors: make([]tcell.Color, cols*rows),
	}
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Dots returns the canvas size in dots.
func (c *Canvas) Dots() (w, h int) {
	return c.cols * dotsX, c.rows * dotsY
}

// Clear removes every dot.
func (c *Canvas) Clear() {
	clear(c.bits)
	clear(c.colors)
}

// Set turns on the dot at x, y, counted from the top left. Dots outside
// the canvas are ignored.
func (c *Canvas) Set(x, y int, color tcell.Color) {
	w, h := c.Dots()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	i := (y/dotsY)*c.cols + x/dotsX
	c.bits[i] |= dotBits[x%dotsX][y%dotsY]
	c.colors[i] = color
}

// Dot reports whether the dot at x, y is on, and the color of its cell.
func (c *Canvas) Dot(x, y int) (bool, tcell.Color) {
	w, h := c.Dots()
	if x < 0 || y < 0 || x >= w || y >= h {
		return false, tcell.ColorDefault
	}
	i := (y/dotsY)*c.cols + x/dotsX
	return c.bits[i]&dotBits[x%dotsX][y%dotsY] != 0, c.colors[i]
}

// Line draws a straight run of dots from (x0, y0) to (x1, y1) inclusive.
func (c *Canvas) Line(x0, y0, x1, y1 int, color tcell.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.Set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Polyline maps points from display-plane bounds b onto the dot grid and
// joins consecutive points with lines. A non-finite point breaks the line.
func (c *Canvas) Polyline(b scene.Bounds, points []math.Vec2, color tcell.Color) {
	var (
		px, py int
		pen    bool
	)
	for _, p := range points {
		x, y, ok := c.toDots(b, p)
		if !ok {
			pen = false
			continue
		}
		if pen {
			c.Line(px, py, x, y, color)
		} else {
			c.Set(x, y, color)
		}
		px, py, pen = x, y, true
	}
}

// toDots converts a display-plane point to dot coordinates. Points far
// outside the canvas are pulled in to keep the line walk bounded.
func (c *Canvas) toDots(b scene.Bounds, p math.Vec2) (int, int, bool) {
	w, h := c.Dots()
	if w == 0 || h == 0 || b.XMax <= b.XMin || b.YMax <= b.YMin {
		return 0, 0, false
	}
	fx := (p.X - b.XMin) / (b.XMax - b.XMin) * float64(w-1)
	fy := (b.YMax - p.Y) / (b.YMax - b.YMin) * float64(h-1)
	if gomath.IsNaN(fx) || gomath.IsNaN(fy) {
		return 0, 0, false
	}
	lim := float64(2 * (w + h))
	fx = gomath.Max(-lim, gomath.Min(lim, fx))
	fy = gomath.Max(-lim, gomath.Min(lim, fy))
	return int(gomath.Round(fx)), int(gomath.Round(fy)), true
}

// Cell returns the braille glyph and color of a cell. Empty cells return
// a space.
func (c *Canvas) Cell(col, row int) (rune, tcell.Color) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return ' ', tcell.ColorDefault
	}
	i := row*c.cols + col
	if c.bits[i] == 0 {
		return ' ', tcell.ColorDefault
	}
	return 0x2800 + c.bits[i], c.colors[i]
}

// String renders the canvas as lines of braille text without color.
func (c *Canvas) String() string {
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			r, _ := c.Cell(col, row)
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Rasterize draws every polyline of a frame, in order, onto a new canvas.
func Rasterize(frame scene.Frame, cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)
	for _, pl := range frame.Polylines {
		c.Polyline(frame.Bounds, pl.Points, pl.Color)
	}
	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
