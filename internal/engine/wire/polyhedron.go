package wire

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/dddragon/internal/engine/camera"
)

// Polyhedron is a set of shapes rendered as one unit, e.g. cube faces.
type Polyhedron struct {
	Name   string
	shapes []*Shape
}

// NewPolyhedron groups shapes.
func NewPolyhedron(name string, shapes ...*Shape) *Polyhedron {
	return &Polyhedron{Name: name, shapes: shapes}
}

// Shapes returns the constituent shapes.
func (p *Polyhedron) Shapes() []*Shape {
	return p.shapes
}

// Render renders every face, up to workers at a time.
func (p *Polyhedron) Render(ctx context.Context, ws camera.WorldState, proj Projector, workers int) error {
	return RenderAll(ctx, p.shapes, ws, proj, workers)
}

// Drawables returns one polyline per face, each with its own color.
func (p *Polyhedron) Drawables() []Polyline {
	out := make([]Polyline, len(p.shapes))
	for i, s := range p.shapes {
		out[i] = s.Drawable()
	}
	return out
}

// RenderAll renders shapes concurrently. Shapes share no mutable state, so
// the result does not depend on workers; workers <= 0 means no limit and
// workers == 1 renders sequentially.
func RenderAll(ctx context.Context, shapes []*Shape, ws camera.WorldState, proj Projector, workers int) error {
	if workers == 1 {
		for _, s := range shapes {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.Render(ws, proj)
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for _, s := range shapes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.Render(ws, proj)
			return nil
		})
	}
	return g.Wait()
}
