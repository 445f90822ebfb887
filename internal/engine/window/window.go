// Package window owns the terminal screen: creation, size, the event pump
// and teardown.
package window

import (
	"fmt"

	"github.com/gdamore/tcell"
	"go.uber.org/zap"

	"github.com/Faultbox/dddragon/internal/logger"
)

// Config holds window configuration.
type Config struct {
	// Buffered terminal events before the pump blocks
	EventBuffer int
}

// Window wraps a tcell screen.
type Window struct {
	config Config
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
}

// New opens the terminal screen.
func New(cfg Config) (*Window, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return Wrap(cfg, screen)
}

// Wrap initializes an existing screen, such as a simulation screen, and
// starts pumping its events.
func Wrap(cfg Config, screen tcell.Screen) (*Window, error) {
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = 64
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	w := &Window{
		config: cfg,
		screen: screen,
		events: make(chan tcell.Event, cfg.EventBuffer),
		done:   make(chan struct{}),
	}
	go w.pump()

	width, height := screen.Size()
	logger.Info("screen opened",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("colors", screen.Colors()),
	)
	return w, nil
}

// pump forwards screen events until the screen is finalized, when
// PollEvent returns nil.
func (w *Window) pump() {
	defer close(w.done)
	defer close(w.events)
	for {
		ev := w.screen.PollEvent()
		if ev == nil {
			return
		}
		w.events <- ev
	}
}

// Events returns the channel of terminal events. It is closed after Close.
func (w *Window) Events() <-chan tcell.Event {
	return w.events
}

// Screen returns the underlying screen.
func (w *Window) Screen() tcell.Screen {
	return w.screen
}

// GetSize returns the current screen size in cells.
func (w *Window) GetSize() (int, int) {
	return w.screen.Size()
}

// Show presents everything drawn since the last Show.
func (w *Window) Show() {
	w.screen.Show()
}

// Sync redraws the whole terminal, after a resize.
func (w *Window) Sync() {
	w.screen.Sync()
}

// Close restores the terminal and stops the event pump.
func (w *Window) Close() {
	logger.Info("closing screen")
	w.screen.Fini()
	// Drain so a pump blocked on a full buffer can observe the nil event.
	for range w.events {
	}
	<-w.done
}
