// Package input maps terminal events to viewer events.
package input

import (
	"github.com/gdamore/tcell"

	"github.com/Faultbox/dddragon/pkg/math"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventLook
	EventMove
	EventReset
	EventCapture
)

// Event represents a processed input event. Look and Move carry step
// counts; the camera controller scales them.
type Event struct {
	Type   EventType
	Pitch  float64
	Yaw    float64
	Move   math.Vec3
	Width  int
	Height int
}

// Input collects the events of one frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update converts pending terminal events into viewer events.
// Returns true if the viewer should quit.
func (i *Input) Update(pending []tcell.Event) bool {
	i.events = i.events[:0] // Clear previous events

	for _, ev := range pending {
		e := Translate(ev)
		if e.Type == EventNone {
			continue
		}
		i.events = append(i.events, e)
		if e.Type == EventQuit {
			return true
		}
	}
	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Translate maps a single terminal event. Unbound keys map to EventNone.
//
//	Esc, Ctrl-D   quit
//	arrows        pitch and yaw
//	w/s           forward/back (z)
//	a/d           left/right (x)
//	q/e           down/up (y)
//	r             reset the camera
//	p             save the frame as PNG
func Translate(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlD:
			return Event{Type: EventQuit}
		case tcell.KeyUp:
			return Event{Type: EventLook, Pitch: -1}
		case tcell.KeyDown:
			return Event{Type: EventLook, Pitch: 1}
		case tcell.KeyLeft:
			return Event{Type: EventLook, Yaw: -1}
		case tcell.KeyRight:
			return Event{Type: EventLook, Yaw: 1}
		case tcell.KeyRune:
			return translateRune(e.Rune())
		}
	}
	return Event{}
}

func translateRune(r rune) Event {
	switch r {
	case 'w', 'W':
		return Event{Type: EventMove, Move: math.Vec3{Z: -1}}
	case 's', 'S':
		return Event{Type: EventMove, Move: math.Vec3{Z: 1}}
	case 'a', 'A':
		return Event{Type: EventMove, Move: math.Vec3{X: 1}}
	case 'd', 'D':
		return Event{Type: EventMove, Move: math.Vec3{X: -1}}
	case 'q', 'Q':
		return Event{Type: EventMove, Move: math.Vec3{Y: 1}}
	case 'e', 'E':
		return Event{Type: EventMove, Move: math.Vec3{Y: -1}}
	case 'r', 'R':
		return Event{Type: EventReset}
	case 'p', 'P':
		return Event{Type: EventCapture}
	}
	return Event{}
}
