// Package renderer draws frames of projected polylines onto a terminal as
// braille line art inside a titled chart frame.
package renderer

import (
	"github.com/gdamore/tcell"

	"github.com/Faultbox/dddragon/internal/engine/scene"
)

// DefaultTitle is shown on the top border.
const DefaultTitle = " 3T "

// DefaultCharacterRatio is the height/width ratio of a terminal cell.
const DefaultCharacterRatio = 1.8

// Config holds renderer configuration.
type Config struct {
	Title          string
	CharacterRatio float64
}

// Renderer composes the chart frame, axis labels and the braille canvas
// onto a screen.
type Renderer struct {
	config Config
	canvas *Canvas
}

// New creates a new renderer.
func New(cfg Config) *Renderer {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.CharacterRatio <= 0 {
		cfg.CharacterRatio = DefaultCharacterRatio
	}
	return &Renderer{config: cfg, canvas: NewCanvas(0, 0)}
}

// Canvas returns the canvas of the last Draw.
func (r *Renderer) Canvas() *Canvas {
	return r.canvas
}

// Y labels are at most "-1.0" plus a space.
const labelWidth = 5

// plotArea is the cell rectangle the canvas occupies on a width x height
// screen: inside the border, right of the Y labels and above the X labels.
type plotArea struct {
	x, y       int
	cols, rows int
}

func layout(width, height int) plotArea {
	return plotArea{
		x:    1 + labelWidth,
		y:    1,
		cols: max(width-2-labelWidth, 0),
		rows: max(height-3, 0),
	}
}

// Aspect returns the width/height ratio, in square units, of the plot area
// on a width x height screen.
func (r *Renderer) Aspect(width, height int) float64 {
	a := layout(width, height)
	if a.cols == 0 || a.rows == 0 {
		return 1
	}
	return float64(a.cols) / float64(a.rows) / r.config.CharacterRatio
}

// Draw clears the screen and draws the frame. The caller calls Show.
func (r *Renderer) Draw(screen tcell.Screen, frame scene.Frame) {
	width, height := screen.Size()
	screen.Clear()
	if width < 2 || height < 2 {
		return
	}

	border := tcell.StyleDefault
	drawBox(screen, width, height, border)
	puts(screen, 2, 0, r.config.Title, border.Bold(true))

	a := layout(width, height)
	if a.cols == 0 || a.rows == 0 {
		return
	}

	if c, rr := r.canvas.Size(); c != a.cols || rr != a.rows {
		r.canvas = NewCanvas(a.cols, a.rows)
	} else {
		r.canvas.Clear()
	}
	for _, pl := range frame.Polylines {
		r.canvas.Polyline(frame.Bounds, pl.Points, pl.Color)
	}
	for row := 0; row < a.rows; row++ {
		for col := 0; col < a.cols; col++ {
			g, color := r.canvas.Cell(col, row)
			if g == ' ' {
				continue
			}
			screen.SetContent(a.x+col, a.y+row, g, nil, tcell.StyleDefault.Foreground(color))
		}
	}

	r.drawLabels(screen, a, frame.Bounds)
}

func (r *Renderer) drawLabels(screen tcell.Screen, a plotArea, b scene.Bounds) {
	style := tcell.StyleDefault.Dim(true)

	y := b.YLabels()
	puts(screen, 1, a.y+a.rows-1, y[0], style)
	puts(screen, 1, a.y+a.rows/2, y[1], style)
	puts(screen, 1, a.y, y[2], style)

	x := b.XLabels()
	row := a.y + a.rows
	puts(screen, a.x, row, x[0], style)
	puts(screen, a.x+(a.cols-len(x[1]))/2, row, x[1], style)
	puts(screen, a.x+a.cols-len(x[2]), row, x[2], style)
}

func drawBox(screen tcell.Screen, width, height int, style tcell.Style) {
	for x := 1; x < width-1; x++ {
		screen.SetContent(x, 0, tcell.RuneHLine, nil, style)
		screen.SetContent(x, height-1, tcell.RuneHLine, nil, style)
	}
	for y := 1; y < height-1; y++ {
		screen.SetContent(0, y, tcell.RuneVLine, nil, style)
		screen.SetContent(width-1, y, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(0, 0, tcell.RuneULCorner, nil, style)
	screen.SetContent(width-1, 0, tcell.RuneURCorner, nil, style)
	screen.SetContent(0, height-1, tcell.RuneLLCorner, nil, style)
	screen.SetContent(width-1, height-1, tcell.RuneLRCorner, nil, style)
}

func puts(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
