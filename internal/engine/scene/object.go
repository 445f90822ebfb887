package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell"

	"github.com/Faultbox/dddragon/internal/config"
	"github.com/Faultbox/dddragon/internal/engine/wire"
	"github.com/Faultbox/dddragon/pkg/math"
)

// ErrUnknownSolid is returned for an object naming an unknown solid kind.
var ErrUnknownSolid = errors.New("unknown solid")

// Solid kinds.
const (
	SolidPolygon      = "polygon"
	SolidSquare       = "square"
	SolidPentagram    = "pentagram"
	SolidPentaface    = "pentaface"
	SolidCube         = "cube"
	SolidBox          = "box"
	SolidDodecahedron = "dodecahedron"
)

// Face colors of the cube, front to left.
var cubeColors = []tcell.Color{tcell.ColorBlue, tcell.ColorGreen, tcell.ColorLightYellow, tcell.ColorFuchsia}

// Object is the static description of a solid. Shapes are rebuilt from it
// every frame.
type Object struct {
	Name       string
	Solid      string
	Color      tcell.Color // ColorDefault picks the solid's own colors
	Offset     math.Vec3
	Rotation   wire.Rotation
	Resolution int
	Vertices   []math.Vec3 // SolidPolygon only
}

// Build constructs this frame's shapes. Compound solids come back as a
// polyhedron, everything else as a single-shape polyhedron.
func (o Object) Build() (*wire.Polyhedron, error) {
	var rings [][]math.Vec3
	colors := []tcell.Color{o.Color}

	switch o.Solid {
	case SolidPolygon:
		rings = [][]math.Vec3{o.Vertices}
	case SolidSquare:
		rings = [][]math.Vec3{Square()}
	case SolidPentagram:
		rings = [][]math.Vec3{Pentagram()}
	case SolidPentaface:
		rings = [][]math.Vec3{Pentaface()}
	case SolidCube:
		rings = CubeFaces()
		if o.Color == tcell.ColorDefault {
			colors = cubeColors
		}
	case SolidBox:
		for _, e := range BoxEdges(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1}) {
			rings = append(rings, e[:])
		}
	case SolidDodecahedron:
		for _, e := range DodecahedronEdges() {
			rings = append(rings, e[:])
		}
	default:
		return nil, fmt.Errorf("object %q: %w %q", o.Name, ErrUnknownSolid, o.Solid)
	}

	shapes := make([]*wire.Shape, 0, len(rings))
	for i, ring := range rings {
		name := o.Name
		if len(rings) > 1 {
			name = fmt.Sprintf("%s/%d", o.Name, i)
		}
		s, err := wire.NewShape(wire.Config{
			Name:       name,
			Vertices:   ring,
			Color:      colors[i%len(colors)],
			Offset:     o.Offset,
			Rotation:   o.Rotation,
			Resolution: o.Resolution,
		})
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", o.Solid, err)
		}
		shapes = append(shapes, s)
	}
	return wire.NewPolyhedron(o.Name, shapes...), nil
}

// ObjectFromConfig converts a configured object. spinRate is used when the
// object asks for a spin axis without a rate of its own.
func ObjectFromConfig(oc config.ObjectConfig, resolution int, spinRate float64) (Object, error) {
	o := Object{
		Name:       oc.Name,
		Solid:      strings.ToLower(oc.Solid),
		Color:      tcell.ColorDefault,
		Offset:     vec(oc.Offset),
		Resolution: oc.Resolution,
	}
	if o.Name == "" {
		o.Name = o.Solid
	}
	if o.Resolution == 0 {
		o.Resolution = resolution
	}
	if oc.Color != "" {
		o.Color = tcell.GetColor(oc.Color)
		if o.Color == tcell.ColorDefault {
			return Object{}, fmt.Errorf("object %q: unknown color %q", o.Name, oc.Color)
		}
	} else if o.Solid != SolidCube {
		o.Color = tcell.ColorWhite
	}
	for _, v := range oc.Vertices {
		o.Vertices = append(o.Vertices, vec(v))
	}

	r := oc.Rotation
	axis := vec(r.Axis)
	switch {
	case axis != (math.Vec3{}):
		rate := r.Rate
		if rate == 0 {
			rate = spinRate
		}
		o.Rotation = wire.Spin{Axis: axis, Rate: rate}
	case r.Roll != 0 || r.Pitch != 0 || r.Yaw != 0:
		o.Rotation = wire.Fixed{M: math.TaitBryan(
			float64(math.Degrees(r.Roll).Radians()),
			float64(math.Degrees(r.Pitch).Radians()),
			float64(math.Degrees(r.Yaw).Radians()),
		)}
	default:
		o.Rotation = wire.Still()
	}

	// Catch unknown kinds and bad rings at load time rather than per frame.
	if _, err := o.Build(); err != nil {
		return Object{}, err
	}
	return o, nil
}

// ObjectsFromConfig converts every object of the scene config.
func ObjectsFromConfig(cfg *config.Config) ([]Object, error) {
	objects := make([]Object, 0, len(cfg.Scene.Objects))
	for i, oc := range cfg.Scene.Objects {
		o, err := ObjectFromConfig(oc, cfg.Render.LinePoints, cfg.Animation.SpinRate)
		if err != nil {
			return nil, fmt.Errorf("scene object %d: %w", i, err)
		}
		objects = append(objects, o)
	}
	return objects, nil
}

func vec(a [3]float64) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
