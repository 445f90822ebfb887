package wire

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell"

	"github.com/Faultbox/dddragon/internal/engine/camera"
	"github.com/Faultbox/dddragon/pkg/math"
)

var (
	// ErrDegenerateRing is returned for vertex rings with fewer than 2 vertices.
	ErrDegenerateRing = errors.New("vertex ring needs at least 2 vertices")

	// ErrResolution is returned for a negative edge resolution.
	ErrResolution = errors.New("edge resolution must be positive")

	// ErrNonFinite is returned for vertices or offsets containing NaN or Inf.
	ErrNonFinite = errors.New("non-finite coordinate")
)

// Config describes a shape before construction.
type Config struct {
	Name     string
	Vertices []math.Vec3
	Color    tcell.Color
	Offset   math.Vec3

	// Nil means no rotation
	Rotation Rotation

	// Points per edge; 0 selects DefaultResolution
	Resolution int
}

// Polyline is a drawable 2D point sequence with its color.
type Polyline struct {
	Name   string
	Points []math.Vec2
	Color  tcell.Color
}

// Shape is a closed polygon: an ordered vertex ring with an implied edge
// from the last vertex back to the first.
type Shape struct {
	name       string
	vertices   []math.Vec3
	color      tcell.Color
	offset     math.Vec3
	rotation   Rotation
	resolution int

	// Tessellated model-space points and the mean of edge midpoints
	model  []math.Vec3
	center math.Vec3

	projection []math.Vec2
	clamped    int
	rendered   bool
}

// NewShape validates cfg and builds a shape. The vertex slice is copied.
func NewShape(cfg Config) (*Shape, error) {
	if len(cfg.Vertices) < 2 {
		return nil, fmt.Errorf("shape %q: %w (got %d)", cfg.Name, ErrDegenerateRing, len(cfg.Vertices))
	}
	if cfg.Resolution < 0 {
		return nil, fmt.Errorf("shape %q: %w (got %d)", cfg.Name, ErrResolution, cfg.Resolution)
	}
	for i, v := range cfg.Vertices {
		if !v.IsFinite() {
			return nil, fmt.Errorf("shape %q vertex %d: %w", cfg.Name, i, ErrNonFinite)
		}
	}
	if !cfg.Offset.IsFinite() {
		return nil, fmt.Errorf("shape %q offset: %w", cfg.Name, ErrNonFinite)
	}

	s := &Shape{
		name:       cfg.Name,
		vertices:   append([]math.Vec3(nil), cfg.Vertices...),
		color:      cfg.Color,
		offset:     cfg.Offset,
		rotation:   cfg.Rotation,
		resolution: cfg.Resolution,
	}
	if s.rotation == nil {
		s.rotation = Still()
	}
	if s.resolution == 0 {
		s.resolution = DefaultResolution
	}
	return s, nil
}

// Name returns the shape's name.
func (s *Shape) Name() string { return s.name }

// Offset returns the shape's world offset.
func (s *Shape) Offset() math.Vec3 { return s.offset }

// Color returns the shape's color tag.
func (s *Shape) Color() tcell.Color { return s.color }

// Vertices returns a copy of the vertex ring.
func (s *Shape) Vertices() []math.Vec3 {
	return append([]math.Vec3(nil), s.vertices...)
}

// Edges returns one edge per consecutive vertex pair, closing edge included.
func (s *Shape) Edges() []Edge {
	n := len(s.vertices)
	edges := make([]Edge, n)
	for i := range s.vertices {
		edges[i] = NewEdge(s.vertices[i], s.vertices[(i+1)%n], s.resolution)
	}
	return edges
}

// Tessellate builds the model-space point cloud from all edges and records
// the center as the unweighted mean of edge midpoints. That center is an
// ordering estimate, not the polygon centroid.
func (s *Shape) Tessellate() []math.Vec3 {
	edges := s.Edges()
	points := make([]math.Vec3, 0, len(edges)*s.resolution)
	var sum math.Vec3
	for _, e := range edges {
		points = append(points, e.Points...)
		sum = sum.Add(e.Center)
	}
	s.model = points
	s.center = sum.Scale(1 / float64(len(edges)))
	return points
}

// Center returns the mean of edge midpoints in model space.
func (s *Shape) Center() math.Vec3 {
	if s.model == nil {
		s.Tessellate()
	}
	return s.center
}

// Depth is the near-plane test value: center.z + offset.z + world z.
func (s *Shape) Depth(ws camera.WorldState) float64 {
	return s.Center().Z + s.offset.Z + ws.Translation.Z
}

// Transform rotates each point, then adds the shape offset and the world
// translation. The input is left untouched.
func (s *Shape) Transform(points []math.Vec3, ws camera.WorldState) []math.Vec3 {
	rotate := s.rotation.Frame(ws)
	shift := s.offset.Add(ws.Translation)
	out := make([]math.Vec3, len(points))
	for i, p := range points {
		out[i] = rotate(p).Add(shift)
	}
	return out
}

// Project maps transformed points onto the display plane and reports how
// many needed their depth clamped.
func (s *Shape) Project(points []math.Vec3, view View) ([]math.Vec2, int) {
	out := make([]math.Vec2, len(points))
	clamped := 0
	for i, p := range points {
		var c bool
		out[i], c = view.Project(p)
		if c {
			clamped++
		}
	}
	return out, clamped
}

// Render tessellates, transforms and projects the shape for one frame.
func (s *Shape) Render(ws camera.WorldState, p Projector) {
	if s.model == nil {
		s.Tessellate()
	}
	world := s.Transform(s.model, ws)
	s.projection, s.clamped = s.Project(world, p.View(ws))
	s.rendered = true
}

// Rendered reports whether Render has run.
func (s *Shape) Rendered() bool { return s.rendered }

// Clamped returns the number of points whose depth was clamped in the
// last Render.
func (s *Shape) Clamped() int { return s.clamped }

// Drawable returns the projected polyline. It is empty until Render runs.
func (s *Shape) Drawable() Polyline {
	return Polyline{Name: s.name, Points: s.projection, Color: s.color}
}
