package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/dddragon/internal/engine/scene"
	"github.com/Faultbox/dddragon/internal/engine/wire"
	"github.com/Faultbox/dddragon/pkg/math"
)

func simScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	require.NoError(t, scr.Init())
	t.Cleanup(scr.Fini)
	scr.SetSize(width, height)
	return scr
}

func contents(scr tcell.SimulationScreen) ([]string, []tcell.SimCell, int) {
	scr.Show()
	cells, width, height := scr.GetContents()
	lines := make([]string, 0, height)
	var buf bytes.Buffer
	for i := 0; i < len(cells); i++ {
		if i > 0 && i%width == 0 {
			lines = append(lines, buf.String())
			buf.Reset()
		}
		buf.Write(cells[i].Bytes)
	}
	return append(lines, buf.String()), cells, width
}

func TestAspect(t *testing.T) {
	r := New(Config{})
	assert.InDelta(t, 13.0/5.0/1.8, r.Aspect(20, 8), 1e-12)
	assert.Equal(t, 1.0, r.Aspect(3, 3))

	r = New(Config{CharacterRatio: 1})
	assert.InDelta(t, 13.0/5.0, r.Aspect(20, 8), 1e-12)
}

func TestDraw(t *testing.T) {
	scr := simScreen(t, 20, 8)
	r := New(Config{})
	b := scene.AxisBounds(r.Aspect(20, 8))

	r.Draw(scr, scene.Frame{
		Bounds: b,
		Polylines: []wire.Polyline{{
			Name:   "horizon",
			Points: []math.Vec2{{X: b.XMin}, {X: b.XMax}},
			Color:  tcell.ColorRed,
		}},
	})

	lines, cells, width := contents(scr)
	require.Len(t, lines, 8)

	assert.True(t, strings.HasPrefix(lines[0], "┌─ 3T ─"), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "┐"))
	assert.Equal(t, "└"+strings.Repeat("─", 18)+"┘", lines[7])

	assert.True(t, strings.HasPrefix(lines[1], "│1.0 "), lines[1])
	assert.True(t, strings.HasPrefix(lines[5], "│-1.0"), lines[5])
	assert.Equal(t, "│0    "+strings.Repeat("⠤", 13)+"│", lines[3])

	xl := b.XLabels()
	assert.Contains(t, lines[6], xl[0])
	assert.Contains(t, lines[6], xl[2])

	fg, _, _ := cells[3*width+6].Style.Decompose()
	assert.Equal(t, tcell.ColorRed, fg)
}

func TestDrawRedrawClears(t *testing.T) {
	scr := simScreen(t, 20, 8)
	r := New(Config{})
	b := scene.AxisBounds(r.Aspect(20, 8))

	r.Draw(scr, scene.Frame{
		Bounds:    b,
		Polylines: []wire.Polyline{{Points: []math.Vec2{{X: b.XMin}, {X: b.XMax}}, Color: tcell.ColorRed}},
	})
	r.Draw(scr, scene.Frame{Bounds: b})

	lines, _, _ := contents(scr)
	assert.Equal(t, "│0    "+strings.Repeat(" ", 13)+"│", lines[3])
}

func TestDrawTinyScreen(t *testing.T) {
	r := New(Config{Title: "x"})
	for _, size := range [][2]int{{1, 1}, {2, 2}, {4, 3}} {
		scr := simScreen(t, size[0], size[1])
		assert.NotPanics(t, func() {
			r.Draw(scr, scene.Frame{
				Bounds:    scene.AxisBounds(1),
				Polylines: []wire.Polyline{{Points: []math.Vec2{{}, {X: 1, Y: 1}}}},
			})
		})
	}
}
