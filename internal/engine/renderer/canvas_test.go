package renderer

import (
	gomath "math"
	"testing"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/dddragon/internal/engine/scene"
	"github.com/Faultbox/dddragon/internal/engine/wire"
	"github.com/Faultbox/dddragon/pkg/math"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Set(0, 3, tcell.ColorRed)
	assert.Equal(t, "⡀", c.String())

	for x := 0; x < 2; x++ {
		for y := 0; y < 4; y++ {
			c.Set(x, y, tcell.ColorRed)
		}
	}
	assert.Equal(t, "⣿", c.String())

	c.Clear()
	assert.Equal(t, " ", c.String())
}

func TestCanvasSetOutside(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Set(-1, 0, tcell.ColorRed)
	c.Set(2, 0, tcell.ColorRed)
	c.Set(0, 4, tcell.ColorRed)
	assert.Equal(t, " ", c.String())
}

func TestCanvasLastColorWins(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Set(0, 0, tcell.ColorRed)
	c.Set(1, 1, tcell.ColorBlue)

	g, color := c.Cell(0, 0)
	assert.Equal(t, '⠑', g)
	assert.Equal(t, tcell.ColorBlue, color)
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Line(0, 0, 3, 0, tcell.ColorWhite)
	assert.Equal(t, "⠉⠉", c.String())

	c = NewCanvas(2, 1)
	c.Line(3, 3, 0, 0, tcell.ColorWhite)
	assert.Equal(t, "⠑⢄", c.String())
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(0, 0, tcell.ColorWhite)
	c.Set(3, 7, tcell.ColorWhite)
	assert.Equal(t, "⠁ \n ⢀", c.String())
}

func TestCanvasPolyline(t *testing.T) {
	b := scene.AxisBounds(1)

	c := NewCanvas(1, 1)
	c.Polyline(b, []math.Vec2{{X: -1, Y: 1}}, tcell.ColorWhite)
	assert.Equal(t, "⠁", c.String())

	c = NewCanvas(1, 1)
	c.Polyline(b, []math.Vec2{{X: 1, Y: -1}}, tcell.ColorWhite)
	assert.Equal(t, "⢀", c.String())

	// A NaN lifts the pen, so the corners stay unconnected.
	c = NewCanvas(1, 1)
	c.Polyline(b, []math.Vec2{{X: -1, Y: 1}, {X: gomath.NaN()}, {X: 1, Y: -1}}, tcell.ColorWhite)
	assert.Equal(t, "⢁", c.String())

	c = NewCanvas(1, 1)
	c.Polyline(b, []math.Vec2{{X: -1, Y: 1}, {X: 1, Y: -1}}, tcell.ColorWhite)
	assert.NotEqual(t, "⢁", c.String())
}

func TestCanvasPolylineFarPoints(t *testing.T) {
	c := NewCanvas(4, 1)
	c.Polyline(scene.AxisBounds(1), []math.Vec2{{X: -1e300}, {X: gomath.Inf(1)}}, tcell.ColorWhite)
	assert.Equal(t, "⠤⠤⠤⠤", c.String())
}

func TestRasterizeDrawsInOrder(t *testing.T) {
	line := []math.Vec2{{X: -1, Y: 1}, {X: 1, Y: 1}}
	frame := scene.Frame{
		Bounds: scene.AxisBounds(1),
		Polylines: []wire.Polyline{
			{Name: "far", Points: line, Color: tcell.ColorRed},
			{Name: "near", Points: line, Color: tcell.ColorGreen},
		},
	}

	c := Rasterize(frame, 3, 1)
	assert.Equal(t, "⠉⠉⠉", c.String())
	for col := 0; col < 3; col++ {
		_, color := c.Cell(col, 0)
		assert.Equal(t, tcell.ColorGreen, color)
	}
}
