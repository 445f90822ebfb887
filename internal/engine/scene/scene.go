// Package scene assembles the wireframe shapes of a frame: it builds them
// from static objects, drops those behind the near plane, renders the rest
// and orders them for painter's-algorithm drawing.
package scene

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/Faultbox/dddragon/internal/config"
	"github.com/Faultbox/dddragon/internal/engine/camera"
	"github.com/Faultbox/dddragon/internal/engine/wire"
	"github.com/Faultbox/dddragon/internal/logger"
	"github.com/Faultbox/dddragon/pkg/math"
)

// DefaultNearPlane is the depth at or below which shapes are culled.
const DefaultNearPlane = 1.0

// Config contains scene configuration options.
type Config struct {
	FOV       float64 // Radians
	MinDepth  float64
	NearPlane float64
	Workers   int // 0 = no limit, 1 = sequential
}

// Scene holds the objects drawn each frame.
type Scene struct {
	config    Config
	objects   []Object
	projector wire.Projector
	log       *zap.Logger
}

// New creates a scene with the given objects.
func New(cfg Config, objects ...Object) *Scene {
	return &Scene{
		config:    cfg,
		objects:   objects,
		projector: wire.NewProjector(cfg.FOV, cfg.MinDepth),
		log:       logger.Named("scene"),
	}
}

// FromConfig creates a scene from the render settings and objects of cfg.
func FromConfig(cfg *config.Config) (*Scene, error) {
	objects, err := ObjectsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return New(Config{
		FOV:       float64(math.Degrees(cfg.Render.FOVDegrees).Radians()),
		MinDepth:  cfg.Render.MinDepth,
		NearPlane: cfg.Render.NearPlane,
		Workers:   cfg.Render.Workers,
	}, objects...), nil
}

// Add appends an object to the scene.
func (s *Scene) Add(o Object) {
	s.objects = append(s.objects, o)
}

// Objects returns the scene's objects.
func (s *Scene) Objects() []Object {
	return s.objects
}

// Projector returns the projector used for every shape.
func (s *Scene) Projector() wire.Projector {
	return s.projector
}

// RenderFrame builds, culls, renders and depth-sorts the shapes for one
// frame. ws must not change until RenderFrame returns.
func (s *Scene) RenderFrame(ctx context.Context, ws camera.WorldState, aspect float64) (Frame, error) {
	var shapes []*wire.Shape
	for _, o := range s.objects {
		p, err := o.Build()
		if err != nil {
			return Frame{}, fmt.Errorf("building frame: %w", err)
		}
		shapes = append(shapes, p.Shapes()...)
	}
	for _, sh := range shapes {
		sh.Tessellate()
	}

	visible := Cull(shapes, ws, s.nearPlane())

	if err := wire.RenderAll(ctx, visible, ws, s.projector, s.config.Workers); err != nil {
		return Frame{}, fmt.Errorf("rendering frame: %w", err)
	}

	DepthSort(visible)

	frame := Frame{
		Polylines: make([]wire.Polyline, len(visible)),
		Bounds:    AxisBounds(aspect),
		Shapes:    len(shapes),
		Culled:    len(shapes) - len(visible),
	}
	for i, sh := range visible {
		frame.Polylines[i] = sh.Drawable()
		frame.Clamped += sh.Clamped()
	}

	s.log.Debug("frame rendered",
		zap.Int64("ts", ws.Timestamp),
		zap.Int("shapes", frame.Shapes),
		zap.Int("culled", frame.Culled),
		zap.Int("clamped", frame.Clamped),
	)
	return frame, nil
}

func (s *Scene) nearPlane() float64 {
	if s.config.NearPlane == 0 {
		return DefaultNearPlane
	}
	return s.config.NearPlane
}

// Cull keeps the shapes whose center.z + offset.z + world z is above
// nearPlane. The test uses the center estimate, not individual points, so
// a shape straddling the plane is kept or dropped as a whole.
func Cull(shapes []*wire.Shape, ws camera.WorldState, nearPlane float64) []*wire.Shape {
	out := make([]*wire.Shape, 0, len(shapes))
	for _, sh := range shapes {
		if sh.Depth(ws) > nearPlane {
			out = append(out, sh)
		}
	}
	return out
}

// DepthSort orders shapes for drawing: sorted by descending center.z, then
// reversed, so the largest z is drawn last.
func DepthSort(shapes []*wire.Shape) {
	slices.SortStableFunc(shapes, func(a, b *wire.Shape) int {
		return cmp.Compare(b.Center().Z, a.Center().Z)
	})
	slices.Reverse(shapes)
}
