// Package game implements the viewer's frame loop.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell"
	"go.uber.org/zap"

	"github.com/Faultbox/dddragon/internal/config"
	"github.com/Faultbox/dddragon/internal/engine/camera"
	"github.com/Faultbox/dddragon/internal/engine/debug"
	"github.com/Faultbox/dddragon/internal/engine/input"
	"github.com/Faultbox/dddragon/internal/engine/renderer"
	"github.com/Faultbox/dddragon/internal/engine/scene"
	"github.com/Faultbox/dddragon/internal/engine/window"
	"github.com/Faultbox/dddragon/internal/logger"
)

// Game is the viewer instance.
type Game struct {
	config   *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.Controller
	scene    *scene.Scene
	capture  *debug.Capture
	log      *zap.Logger

	// Wall clock, replaced in tests
	now func() time.Time
}

// New creates a viewer on the terminal.
func New(cfg *config.Config) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return NewWithScreen(cfg, screen)
}

// NewWithScreen creates a viewer on the given, uninitialized screen.
func NewWithScreen(cfg *config.Config, screen tcell.Screen) (*Game, error) {
	log := logger.Named("game")
	log.Info("initializing viewer",
		zap.Int("objects", len(cfg.Scene.Objects)),
		zap.Float64("fov", cfg.Render.FOVDegrees),
		zap.Int("workers", cfg.Render.Workers),
	)

	sc, err := scene.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	w, err := window.Wrap(window.Config{}, screen)
	if err != nil {
		return nil, fmt.Errorf("failed to open screen: %w", err)
	}

	return &Game{
		config:   cfg,
		window:   w,
		renderer: renderer.New(renderer.Config{CharacterRatio: cfg.Render.CharacterRatio}),
		input:    input.New(),
		camera:   camera.NewController(cfg.Controls.LookStep, cfg.Controls.MoveStep),
		scene:    sc,
		capture:  debug.NewCapture(cfg.Debug.CaptureDir, "dddragon"),
		log:      log,
		now:      time.Now,
	}, nil
}

// Run draws frames until the user quits or ctx is done. A frame is drawn
// after every tick and every input event, at most FPS times a second.
func (g *Game) Run(ctx context.Context) error {
	tick := time.NewTicker(g.config.Controls.TickRate)
	defer tick.Stop()
	frames := time.NewTicker(time.Second / time.Duration(g.config.Controls.FPS))
	defer frames.Stop()

	frameCount := 0
	fpsTimer := g.now()
	dirty := true

	g.log.Info("starting frame loop")

	for {
		if dirty {
			if err := g.draw(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("render error: %w", err)
			}
			dirty = false
			frameCount++
		}

		if g.now().Sub(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = g.now()
		}

		// Wait for the next frame slot, collecting events until then.
		var pending []tcell.Event
	wait:
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-g.window.Events():
				if !ok {
					return nil
				}
				pending = append(pending, ev)
			case <-tick.C:
				dirty = true
			case <-frames.C:
				if dirty || len(pending) > 0 {
					break wait
				}
			}
		}

		if g.input.Update(pending) {
			g.log.Info("quit requested")
			return nil
		}
		if g.apply(g.input.Events()) {
			dirty = true
		}
	}
}

// apply feeds input events to the camera. It reports whether anything
// changed.
func (g *Game) apply(events []input.Event) bool {
	changed := false
	for _, e := range events {
		switch e.Type {
		case input.EventLook:
			g.camera.Look(e.Pitch, e.Yaw)
		case input.EventMove:
			g.camera.Move(e.Move.X, e.Move.Y, e.Move.Z)
		case input.EventReset:
			g.camera.Reset()
		case input.EventResize:
			g.window.Sync()
		case input.EventCapture:
			g.saveCapture()
			continue
		default:
			continue
		}
		changed = true
	}
	return changed
}

// saveCapture writes the last drawn frame to a PNG file.
func (g *Game) saveCapture() {
	path, err := g.capture.Save(g.renderer.Canvas())
	if err != nil {
		g.log.Warn("capture failed", zap.Error(err))
		return
	}
	g.log.Info("frame captured", zap.String("path", path))
}

// draw renders and presents one frame at the current time.
func (g *Game) draw(ctx context.Context) error {
	g.camera.Tick(g.now())
	ws := g.camera.Snapshot()

	width, height := g.window.GetSize()
	frame, err := g.scene.RenderFrame(ctx, ws, g.renderer.Aspect(width, height))
	if err != nil {
		return err
	}
	g.renderer.Draw(g.window.Screen(), frame)
	g.window.Show()
	return nil
}

// Close restores the terminal.
func (g *Game) Close() {
	g.log.Info("closing viewer")
	if g.window != nil {
		g.window.Close()
	}
}
