package input

import (
	"testing"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/dddragon/pkg/math"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want Event
	}{
		{"escape", key(tcell.KeyEscape), Event{Type: EventQuit}},
		{"ctrl-d", tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModCtrl), Event{Type: EventQuit}},
		{"up", key(tcell.KeyUp), Event{Type: EventLook, Pitch: -1}},
		{"down", key(tcell.KeyDown), Event{Type: EventLook, Pitch: 1}},
		{"left", key(tcell.KeyLeft), Event{Type: EventLook, Yaw: -1}},
		{"right", key(tcell.KeyRight), Event{Type: EventLook, Yaw: 1}},
		{"forward", char('w'), Event{Type: EventMove, Move: math.Vec3{Z: -1}}},
		{"back", char('S'), Event{Type: EventMove, Move: math.Vec3{Z: 1}}},
		{"left strafe", char('a'), Event{Type: EventMove, Move: math.Vec3{X: 1}}},
		{"down", char('q'), Event{Type: EventMove, Move: math.Vec3{Y: 1}}},
		{"reset", char('r'), Event{Type: EventReset}},
		{"capture", char('P'), Event{Type: EventCapture}},
		{"unbound rune", char('z'), Event{}},
		{"unbound key", key(tcell.KeyF5), Event{}},
		{"resize", tcell.NewEventResize(80, 24), Event{Type: EventResize, Width: 80, Height: 24}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(tt.ev))
		})
	}
}

func TestUpdate(t *testing.T) {
	in := New()

	quit := in.Update([]tcell.Event{char('x'), key(tcell.KeyUp), char('d')})
	assert.False(t, quit)
	require.Len(t, in.Events(), 2)
	assert.Equal(t, EventLook, in.Events()[0].Type)
	assert.Equal(t, EventMove, in.Events()[1].Type)

	// Events after a quit are dropped.
	quit = in.Update([]tcell.Event{key(tcell.KeyLeft), key(tcell.KeyEscape), key(tcell.KeyRight)})
	assert.True(t, quit)
	require.Len(t, in.Events(), 2)
	assert.Equal(t, EventQuit, in.Events()[1].Type)

	assert.False(t, in.Update(nil))
	assert.Empty(t, in.Events())
}
