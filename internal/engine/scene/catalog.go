package scene

import (
	gomath "math"

	"github.com/Faultbox/dddragon/pkg/math"
)

// Square is the 2x2 square in the XY plane.
func Square() []math.Vec3 {
	return []math.Vec3{
		{X: -1, Y: -1},
		{X: -1, Y: 1},
		{X: 1, Y: 1},
		{X: 1, Y: -1},
	}
}

// Pentagram is the five-pointed star on the unit circle in the XY plane,
// visiting every second vertex of a pentagon.
func Pentagram() []math.Vec3 {
	step := 2 * gomath.Pi / 5
	offset := -gomath.Pi / 10
	out := make([]math.Vec3, 5)
	for n := range out {
		s, c := gomath.Sincos(float64(n)*2*step + offset)
		out[n] = math.Vec3{X: c, Y: s}
	}
	return out
}

// Pentaface is a regular pentagon of radius 0.5 in the XZ plane.
func Pentaface() []math.Vec3 {
	step := gomath.Pi / 5
	out := make([]math.Vec3, 5)
	for n := range out {
		s, c := gomath.Sincos(float64(n) * 2 * step)
		out[n] = math.Vec3{X: c * 0.5, Z: s * 0.5}
	}
	return out
}

// CubeFaces returns the four side faces of the cube [-1,1]³: front, right,
// back and left. Top and bottom are left open.
func CubeFaces() [][]math.Vec3 {
	// (front|back)(top|bottom)(left|right)
	ftr := math.Vec3{X: 1, Y: 1, Z: 1}
	ftl := math.Vec3{X: -1, Y: 1, Z: 1}
	fbr := math.Vec3{X: 1, Y: -1, Z: 1}
	fbl := math.Vec3{X: -1, Y: -1, Z: 1}
	btr := math.Vec3{X: 1, Y: 1, Z: -1}
	btl := math.Vec3{X: -1, Y: 1, Z: -1}
	bbr := math.Vec3{X: 1, Y: -1, Z: -1}
	bbl := math.Vec3{X: -1, Y: -1, Z: -1}

	return [][]math.Vec3{
		{ftr, fbr, fbl, ftl},
		{ftr, fbr, bbr, btr},
		{btr, bbr, bbl, btl},
		{ftl, fbl, bbl, btl},
	}
}

// BoxEdges returns the 12 edges of the axis-aligned box spanning lo..hi:
// four on the bottom face, four on the top and four verticals.
func BoxEdges(lo, hi math.Vec3) [][2]math.Vec3 {
	corner := func(x, y, z float64) math.Vec3 { return math.Vec3{X: x, Y: y, Z: z} }
	return [][2]math.Vec3{
		// Bottom face
		{corner(lo.X, lo.Y, lo.Z), corner(hi.X, lo.Y, lo.Z)},
		{corner(hi.X, lo.Y, lo.Z), corner(hi.X, lo.Y, hi.Z)},
		{corner(hi.X, lo.Y, hi.Z), corner(lo.X, lo.Y, hi.Z)},
		{corner(lo.X, lo.Y, hi.Z), corner(lo.X, lo.Y, lo.Z)},
		// Top face
		{corner(lo.X, hi.Y, lo.Z), corner(hi.X, hi.Y, lo.Z)},
		{corner(hi.X, hi.Y, lo.Z), corner(hi.X, hi.Y, hi.Z)},
		{corner(hi.X, hi.Y, hi.Z), corner(lo.X, hi.Y, hi.Z)},
		{corner(lo.X, hi.Y, hi.Z), corner(lo.X, hi.Y, lo.Z)},
		// Verticals
		{corner(lo.X, lo.Y, lo.Z), corner(lo.X, hi.Y, lo.Z)},
		{corner(hi.X, lo.Y, lo.Z), corner(hi.X, hi.Y, lo.Z)},
		{corner(hi.X, lo.Y, hi.Z), corner(hi.X, hi.Y, hi.Z)},
		{corner(lo.X, lo.Y, hi.Z), corner(lo.X, hi.Y, hi.Z)},
	}
}

// DodecahedronVertices returns the 20 vertices of the regular dodecahedron
// with edge length 2/φ.
func DodecahedronVertices() []math.Vec3 {
	phi := (1 + gomath.Sqrt(5)) / 2
	inv := 1 / phi

	verts := make([]math.Vec3, 0, 20)
	for _, x := range []float64{1, -1} {
		for _, y := range []float64{1, -1} {
			for _, z := range []float64{1, -1} {
				verts = append(verts, math.Vec3{X: x, Y: y, Z: z})
			}
		}
	}
	for _, a := range []float64{inv, -inv} {
		for _, b := range []float64{phi, -phi} {
			verts = append(verts,
				math.Vec3{X: 0, Y: a, Z: b},
				math.Vec3{X: a, Y: b, Z: 0},
				math.Vec3{X: b, Y: 0, Z: a},
			)
		}
	}
	return verts
}

// DodecahedronEdges returns the 30 edges of the dodecahedron as vertex
// pairs: every pair of vertices at the shortest distance.
func DodecahedronEdges() [][2]math.Vec3 {
	verts := DodecahedronVertices()
	shortest := gomath.Inf(1)
	for i := range verts {
		for j := i + 1; j < len(verts); j++ {
			shortest = gomath.Min(shortest, verts[i].Distance(verts[j]))
		}
	}

	var edges [][2]math.Vec3
	for i := range verts {
		for j := i + 1; j < len(verts); j++ {
			if verts[i].Distance(verts[j]) < shortest+1e-9 {
				edges = append(edges, [2]math.Vec3{verts[i], verts[j]})
			}
		}
	}
	return edges
}
