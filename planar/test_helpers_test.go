package planar_test

import (
	"math"

	"github.com/katalvlaran/girih/geometry"
	"github.com/katalvlaran/girih/planar"
)

// square returns the closed unit square with corners (0,0)…(1,1).
func square() *planar.Map {
	m := planar.NewMap()
	pts := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(1, 0), geometry.Pt(1, 1), geometry.Pt(0, 1)}
	for i := range pts {
		m.InsertLine(pts[i], pts[(i+1)%len(pts)])
	}
	return m
}

// triangle returns the closed triangle (0,0), (1,0), (0,-1); it shares the
// edge (0,0)-(1,0) with square().
func triangle() *planar.Map {
	m := planar.NewMap()
	m.InsertLine(geometry.Pt(0, 0), geometry.Pt(1, 0))
	m.InsertLine(geometry.Pt(1, 0), geometry.Pt(0, -1))
	m.InsertLine(geometry.Pt(0, -1), geometry.Pt(0, 0))
	return m
}

// rotations returns the n rotations by multiples of 2π/n.
func rotations(n int) []geometry.Transform {
	out := make([]geometry.Transform, n)
	for i := range out {
		out[i] = geometry.Rotation(2 * math.Pi * float64(i) / float64(n))
	}
	return out
}
