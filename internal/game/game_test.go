package game

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/dddragon/internal/config"
	"github.com/Faultbox/dddragon/internal/engine/input"
	"github.com/Faultbox/dddragon/pkg/math"
)

func newGame(t *testing.T) (*Game, tcell.SimulationScreen) {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	g, err := NewWithScreen(config.Default(), scr)
	require.NoError(t, err)
	scr.SetSize(60, 20)
	return g, scr
}

func screenText(scr tcell.SimulationScreen) string {
	cells, _, _ := scr.GetContents()
	var buf bytes.Buffer
	for _, c := range cells {
		buf.Write(c.Bytes)
	}
	return buf.String()
}

func TestApply(t *testing.T) {
	g, _ := newGame(t)
	defer g.Close()

	changed := g.apply([]input.Event{
		{Type: input.EventLook, Pitch: -1},
		{Type: input.EventLook, Yaw: 1},
		{Type: input.EventMove, Move: math.Vec3{Z: -1}},
	})
	assert.True(t, changed)

	ws := g.camera.Snapshot()
	assert.InDelta(t, -0.05, ws.Pitch, 1e-12)
	assert.InDelta(t, 0.05, ws.Yaw, 1e-12)
	assert.InDelta(t, -0.05, ws.Translation.Z, 1e-12)

	assert.True(t, g.apply([]input.Event{{Type: input.EventReset}}))
	assert.Zero(t, g.camera.Snapshot().Pitch)

	assert.False(t, g.apply([]input.Event{{Type: input.EventNone}}))
}

func TestDraw(t *testing.T) {
	g, scr := newGame(t)
	defer g.Close()

	at := time.UnixMilli(1_700_000_000_000)
	g.now = func() time.Time { return at }

	require.NoError(t, g.draw(context.Background()))
	assert.Equal(t, at.UnixMilli(), g.camera.Snapshot().Timestamp)

	text := screenText(scr)
	assert.Contains(t, text, " 3T ")
	assert.True(t, strings.ContainsFunc(text, func(r rune) bool {
		return r > 0x2800 && r <= 0x28FF
	}), "frame has braille dots")
}

func TestRunQuitsOnEscape(t *testing.T) {
	g, scr := newGame(t)
	defer g.Close()

	done := make(chan error, 1)
	go func() { done <- g.Run(context.Background()) }()

	scr.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("viewer did not quit")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	g, _ := newGame(t)
	defer g.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("viewer did not stop")
	}
}
